package model

import "time"

// Timestamps are stored as TEXT in ISO-8601 with milliseconds, UTC. The
// format orders the same lexically and temporally.
const timeLayout = "2006-01-02T15:04:05.000Z"

func Now() string {
	return time.Now().UTC().Format(timeLayout)
}

type Task struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Title       string `gorm:"not null;index" json:"title"`
	Description string `gorm:"not null;default:''" json:"description"`
	Completed   bool   `gorm:"not null;default:0;index" json:"completed"`
	CreatedAt   string `gorm:"not null" json:"created_at"`
	UpdatedAt   string `gorm:"not null" json:"updated_at"`
}

// TaskPage is the envelope returned by filtered list queries. Total counts
// the filtered set, not the whole table.
type TaskPage struct {
	Data    []Task `json:"data"`
	Total   int64  `json:"total"`
	Page    int    `json:"page"`
	PerPage int    `json:"perPage"`
	Pages   int    `json:"pages"`
}
