package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskLog is a time-boxed record of work against a task. DurationMin is
// derived from StartAt and EndAt and is set exactly when EndAt is set.
type TaskLog struct {
	ID          uuid.UUID  `json:"id"`
	TaskID      uuid.UUID  `json:"task_id"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	DurationMin *int64     `json:"duration_min"`
	Memo        *string    `json:"memo"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskLogParams carries the caller-supplied fields of a create or update.
// A nil field means "not supplied".
type TaskLogParams struct {
	StartAt *time.Time
	EndAt   *time.Time
	Memo    *string
}

// NewTaskLog creates a log for taskID. StartAt defaults to now.
// EndAt earlier than StartAt is accepted and yields a negative duration.
func NewTaskLog(taskID uuid.UUID, params TaskLogParams) (*TaskLog, error) {
	if taskID == uuid.Nil {
		return nil, NewValidationError("task_id", "cannot be empty", ErrEmptyTaskID)
	}

	now := time.Now().UTC()
	log := &TaskLog{
		ID:        uuid.New(),
		TaskID:    taskID,
		StartAt:   now,
		Memo:      cloneString(params.Memo),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if params.StartAt != nil {
		log.StartAt = params.StartAt.UTC()
	}
	if params.EndAt != nil {
		end := params.EndAt.UTC()
		log.EndAt = &end
	}
	log.recomputeDuration()

	return log, nil
}

// Apply overwrites every supplied field, recomputes the duration and
// refreshes UpdatedAt. A supplied memo replaces the old one even when empty.
func (l *TaskLog) Apply(params TaskLogParams) {
	if params.StartAt != nil {
		l.StartAt = params.StartAt.UTC()
	}
	if params.EndAt != nil {
		end := params.EndAt.UTC()
		l.EndAt = &end
	}
	if params.Memo != nil {
		l.Memo = cloneString(params.Memo)
	}
	l.recomputeDuration()
	l.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy of the log.
func (l *TaskLog) Clone() *TaskLog {
	c := *l
	if l.EndAt != nil {
		end := *l.EndAt
		c.EndAt = &end
	}
	if l.DurationMin != nil {
		d := *l.DurationMin
		c.DurationMin = &d
	}
	c.Memo = cloneString(l.Memo)
	return &c
}

func (l *TaskLog) recomputeDuration() {
	if l.EndAt == nil {
		l.DurationMin = nil
		return
	}
	d := DurationMinutes(l.StartAt, *l.EndAt)
	l.DurationMin = &d
}

// DurationMinutes returns floor((end - start) in minutes). The result is
// negative when end precedes start.
func DurationMinutes(start, end time.Time) int64 {
	secs := end.Unix() - start.Unix()
	if end.Nanosecond() < start.Nanosecond() {
		secs--
	}
	mins := secs / 60
	if secs%60 < 0 {
		mins--
	}
	return mins
}
