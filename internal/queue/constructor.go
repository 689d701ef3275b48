package queue

import "context"

// PostDueHandler reacts to a scheduled post reaching its time.
type PostDueHandler interface {
	PostDue(ctx context.Context, scheduleID string) error
}

type Queue struct {
	h PostDueHandler
}

func NewQueue(h PostDueHandler) *Queue {
	return &Queue{h: h}
}

const TaskTypePostDue = "calendar:post_due"

type PostDuePayload struct {
	ScheduleID string `json:"schedule_id"`
}
