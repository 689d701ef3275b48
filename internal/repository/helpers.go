package repository

import (
	"github.com/maheshrc27/shutterpost/pkg/logging"
	"go.uber.org/zap"
)

type scanner interface {
	Scan(dest ...any) error
}

func logQueryError(op string, err error) {
	logging.WithComponent("repository").Info(err.Error(), zap.String("op", op))
}
