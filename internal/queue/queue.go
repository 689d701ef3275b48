package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/shutterpost/pkg/logging"
	"go.uber.org/zap"
)

const defaultQueue = "default"

// Scheduler enqueues and removes post due tasks. Task IDs are schedule IDs,
// so a cancelled schedule can find its task again.
type Scheduler struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

func NewScheduler(client *asynq.Client, inspector *asynq.Inspector) *Scheduler {
	return &Scheduler{client: client, inspector: inspector}
}

func NewPostDueTask(scheduleID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PostDuePayload{ScheduleID: scheduleID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypePostDue, payload), nil
}

func (s *Scheduler) SchedulePostDue(ctx context.Context, scheduleID string, at time.Time) error {
	task, err := NewPostDueTask(scheduleID)
	if err != nil {
		return err
	}

	info, err := s.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(at),
		asynq.TaskID(scheduleID),
		asynq.Queue(defaultQueue),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue post due task: %w", err)
	}

	logging.WithComponent("queue").Info("Task scheduled",
		zap.String("schedule_id", scheduleID),
		zap.String("task_id", info.ID),
		zap.Time("process_at", at))
	return nil
}

// CancelPostDue deletes the queued task. A task that already ran or was
// never queued is not an error.
func (s *Scheduler) CancelPostDue(ctx context.Context, scheduleID string) error {
	err := s.inspector.DeleteTask(defaultQueue, scheduleID)
	if err == nil || errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return fmt.Errorf("failed to delete post due task: %w", err)
}
