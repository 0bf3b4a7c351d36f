package handlers

import (
	"net/http"

	"github.com/habitpal/backend/internal/models"
	"github.com/habitpal/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LeaderboardHandler serves completion counts for a user and their friends
type LeaderboardHandler struct {
	habitRepository      repositories.HabitRepository
	friendshipRepository repositories.FriendshipRepository
}

// NewLeaderboardHandler creates a new LeaderboardHandler
func NewLeaderboardHandler(habitRepo repositories.HabitRepository, friendshipRepo repositories.FriendshipRepository) *LeaderboardHandler {
	return &LeaderboardHandler{
		habitRepository:      habitRepo,
		friendshipRepository: friendshipRepo,
	}
}

// RegisterLeaderboardRoutes registers leaderboard routes
func (h *LeaderboardHandler) RegisterLeaderboardRoutes(g *echo.Group) {
	g.GET("/leaderboard", h.GetLeaderboard)
}

// GetLeaderboard returns completion counts for the authenticated user and
// every accepted friend
func (h *LeaderboardHandler) GetLeaderboard(c echo.Context) error {
	claims := c.Get("user").(*models.SessionClaims)

	friends, err := h.friendshipRepository.GetFriends(claims.UserID)
	if err != nil {
		c.Logger().Errorf("Error fetching friends for leaderboard: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch leaderboard data")
	}

	userIDs := []uint{claims.UserID}
	for _, friend := range friends {
		userIDs = append(userIDs, friend.ID)
	}

	entries, err := h.habitRepository.GetCompletionCounts(userIDs)
	if err != nil {
		c.Logger().Errorf("Error fetching leaderboard data: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch leaderboard data")
	}
	return c.JSON(http.StatusOK, entries)
}
