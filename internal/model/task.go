package model

import (
	"encoding/json"
	"time"
)

// TimeLayout is ISO-8601 in UTC with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type taskJSON struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskJSON{
		ID:        t.ID,
		Title:     t.Title,
		Done:      t.Done,
		CreatedAt: t.CreatedAt.UTC().Format(TimeLayout),
		UpdatedAt: t.UpdatedAt.UTC().Format(TimeLayout),
	})
}

func (t *Task) UnmarshalJSON(data []byte) error {
	var raw taskJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	created, err := time.Parse(time.RFC3339Nano, raw.CreatedAt)
	if err != nil {
		return err
	}
	updated, err := time.Parse(time.RFC3339Nano, raw.UpdatedAt)
	if err != nil {
		return err
	}
	*t = Task{
		ID:        raw.ID,
		Title:     raw.Title,
		Done:      raw.Done,
		CreatedAt: created,
		UpdatedAt: updated,
	}
	return nil
}

// TaskPatch lists the fields supplied by a partial update. A nil field
// was not supplied and is left untouched.
type TaskPatch struct {
	Title *string
	Done  *bool
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Done == nil
}
