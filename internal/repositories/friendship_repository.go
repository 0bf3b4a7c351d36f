package repositories

import (
	"errors"

	"github.com/habitpal/backend/internal/models"
	"gorm.io/gorm"
)

// Conflict conditions surfaced by SendFriendRequest
var (
	ErrFriendRequestExists = errors.New("friend request already exists")
	ErrAlreadyFriends      = errors.New("users are already friends")
)

// FriendshipRepository defines the interface for friend edge data operations
type FriendshipRepository interface {
	GetFriends(userID uint) ([]models.User, error)
	GetFriendRequests(userID uint) ([]models.FriendRequestEntry, error)
	SendFriendRequest(userID, friendID uint) error
	AcceptFriendRequest(userID, friendID uint) error
	RejectFriendRequest(userID, friendID uint) error
}

// PostgresFriendshipRepository implements FriendshipRepository for PostgreSQL
type PostgresFriendshipRepository struct {
	db *gorm.DB
}

// NewPostgresFriendshipRepository creates a new PostgresFriendshipRepository
func NewPostgresFriendshipRepository(db *gorm.DB) *PostgresFriendshipRepository {
	return &PostgresFriendshipRepository{db: db}
}

// GetFriends retrieves all users connected to userID by an accepted edge,
// regardless of which side sent the original request
func (r *PostgresFriendshipRepository) GetFriends(userID uint) ([]models.User, error) {
	sent := r.db.Table("friends").Select("friend_id").
		Where("user_id = ? AND status = ?", userID, models.FriendStatusAccepted)
	received := r.db.Table("friends").Select("user_id").
		Where("friend_id = ? AND status = ?", userID, models.FriendStatusAccepted)

	var friends []models.User
	if err := r.db.Where("id IN (?) OR id IN (?)", sent, received).Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}

// GetFriendRequests retrieves the users who sent a still-pending request to
// userID, each tagged with status "pending"
func (r *PostgresFriendshipRepository) GetFriendRequests(userID uint) ([]models.FriendRequestEntry, error) {
	var edges []models.Friend
	err := r.db.Where("friend_id = ? AND status = ?", userID, models.FriendStatusPending).
		Order("created_at, id").Find(&edges).Error
	if err != nil {
		return nil, err
	}

	entries := []models.FriendRequestEntry{}
	if len(edges) == 0 {
		return entries, nil
	}

	senderIDs := make([]uint, 0, len(edges))
	for _, e := range edges {
		senderIDs = append(senderIDs, e.UserID)
	}

	var senders []models.User
	if err := r.db.Where("id IN ?", senderIDs).Find(&senders).Error; err != nil {
		return nil, err
	}
	for _, sender := range senders {
		entries = append(entries, models.FriendRequestEntry{User: sender, Status: models.FriendStatusPending})
	}
	return entries, nil
}

// SendFriendRequest inserts a pending edge from userID to friendID.
// An existing edge in either direction rejects the request, so a mutual
// pair can never hold more than one edge.
func (r *PostgresFriendshipRepository) SendFriendRequest(userID, friendID uint) error {
	var existing models.Friend
	err := r.db.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		userID, friendID, friendID, userID).First(&existing).Error
	if err == nil {
		if existing.Status == models.FriendStatusAccepted {
			return ErrAlreadyFriends
		}
		return ErrFriendRequestExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	edge := models.Friend{
		UserID:   userID,
		FriendID: friendID,
		Status:   models.FriendStatusPending,
	}
	return r.db.Create(&edge).Error
}

// AcceptFriendRequest flips the pending edge sent by friendID to userID to
// accepted. A no-op when no matching pending edge exists.
func (r *PostgresFriendshipRepository) AcceptFriendRequest(userID, friendID uint) error {
	return r.db.Model(&models.Friend{}).
		Where("user_id = ? AND friend_id = ? AND status = ?", friendID, userID, models.FriendStatusPending).
		Update("status", models.FriendStatusAccepted).Error
}

// RejectFriendRequest deletes the pending edge sent by friendID to userID.
// No rejected state persists, so the same request can be sent again later.
func (r *PostgresFriendshipRepository) RejectFriendRequest(userID, friendID uint) error {
	return r.db.Where("user_id = ? AND friend_id = ? AND status = ?", friendID, userID, models.FriendStatusPending).
		Delete(&models.Friend{}).Error
}
