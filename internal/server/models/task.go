package models

import "time"

// Task is a single task record. UserID is a back-reference to the owning
// user and is set once at creation; every repository query carries it as a
// filter so one user can never see or touch another user's tasks.
type Task struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"-"`
}
