package models

import "time"

// Friend request statuses
const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
)

// Friend represents a directed friend request between two users.
// Acceptance flips the status on the existing row; the edge is never
// duplicated into a reverse row.
type Friend struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_friend_pair"`   // User ID of the requester
	FriendID  uint      `json:"friendId" gorm:"not null;uniqueIndex:idx_friend_pair"` // User ID of the recipient
	Status    string    `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// FriendRequestEntry pairs the requesting user with the request status
type FriendRequestEntry struct {
	User   User   `json:"user"`
	Status string `json:"status"`
}

// LeaderboardEntry aggregates a user's completion count across all of
// their habits
type LeaderboardEntry struct {
	ID              uint   `json:"id"`
	Username        string `json:"username"`
	CompletionCount int    `json:"completionCount"`
}
