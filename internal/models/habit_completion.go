package models

import "time"

// HabitCompletion is an append-only record that a habit was performed.
// Multiple completions per day are permitted by the store.
type HabitCompletion struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	HabitID     uint      `json:"habitId" gorm:"index;not null"`
	UserID      uint      `json:"userId" gorm:"index;not null"` // Owner of the habit at completion time
	CompletedAt time.Time `json:"completedAt" gorm:"autoCreateTime"`
}
