package job

import (
	"context"
	"sync"
	"time"

	"github.com/maheshrc27/shutterpost/internal/models"
	"github.com/maheshrc27/shutterpost/pkg/logging"
	"go.uber.org/zap"
)

type OverdueLister interface {
	Overdue(ctx context.Context, now time.Time) ([]*models.ScheduledPost, error)
}

// OverdueSweepJob reports pending posts whose day has passed without an
// external publisher picking them up. Each post is warned about once; later
// sweeps only count it.
type OverdueSweepJob struct {
	cs  OverdueLister
	now func() time.Time
	log *zap.Logger

	mu       sync.Mutex
	reported map[string]bool
}

func NewOverdueSweepJob(cs OverdueLister) *OverdueSweepJob {
	return &OverdueSweepJob{
		cs:       cs,
		now:      time.Now,
		log:      logging.WithComponent("overdue_sweep"),
		reported: make(map[string]bool),
	}
}

// Sweep matches the cron.FuncJob signature.
func (j *OverdueSweepJob) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	j.Run(ctx)
}

// Run returns how many overdue posts were found.
func (j *OverdueSweepJob) Run(ctx context.Context) int {
	posts, err := j.cs.Overdue(ctx, j.now())
	if err != nil {
		j.log.Error("overdue sweep failed", zap.Error(err))
		return 0
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	// Posts that left the overdue set (cancelled or published) are forgotten.
	current := make(map[string]bool, len(posts))
	newlyOverdue := 0
	for _, p := range posts {
		current[p.ID] = true
		if j.reported[p.ID] {
			continue
		}
		newlyOverdue++
		j.log.Warn("scheduled post is overdue",
			zap.String("schedule_id", p.ID),
			zap.String("content_id", p.ContentID),
			zap.String("scheduled_date", p.ScheduledDate),
			zap.String("scheduled_time", p.ScheduledTime))
	}
	j.reported = current

	if len(posts) > 0 {
		j.log.Info("overdue sweep finished",
			zap.Int("overdue", len(posts)),
			zap.Int("newly_overdue", newlyOverdue))
	}
	return len(posts)
}
