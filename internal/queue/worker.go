package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

func (q *Queue) HandlePostDueTask(ctx context.Context, task *asynq.Task) error {
	var payload PostDuePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid post due payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.ScheduleID == "" {
		return fmt.Errorf("post due payload without schedule id: %w", asynq.SkipRetry)
	}

	return q.h.PostDue(ctx, payload.ScheduleID)
}

// Register mounts the queue's handlers on mux.
func (q *Queue) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskTypePostDue, q.HandlePostDueTask)
}
