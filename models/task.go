package models

import (
	"time"
)

// Task represents a to-do item owned by exactly one user. OwnerID is set at
// creation and never changes; every query against tasks filters by it.
type Task struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	OwnerID     int64     `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Task model
func (Task) TableName() string {
	return "tasks"
}

// NewTask creates a new Task for the given owner. The ID is assigned by the
// database on insert.
func NewTask(ownerID int64, title string, description *string, completed bool) *Task {
	now := time.Now()
	return &Task{
		Title:       title,
		Description: description,
		Completed:   completed,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
