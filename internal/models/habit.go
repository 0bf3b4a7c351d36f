package models

import "time"

// Habit represents a user-defined recurring task tracked by completion events
type Habit struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"index;not null"` // User ID of the owner
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// CreateHabitRequest defines the request body for creating a habit
type CreateHabitRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description *string `json:"description"`
}
