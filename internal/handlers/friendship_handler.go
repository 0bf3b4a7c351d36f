package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/habitpal/backend/internal/models"
	"github.com/habitpal/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FriendshipHandler handles HTTP requests related to friendships
type FriendshipHandler struct {
	friendshipRepository repositories.FriendshipRepository
	userRepository       repositories.UserRepository // To verify request targets exist
}

// NewFriendshipHandler creates a new FriendshipHandler
func NewFriendshipHandler(friendshipRepo repositories.FriendshipRepository, userRepo repositories.UserRepository) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipRepository: friendshipRepo,
		userRepository:       userRepo,
	}
}

// RegisterFriendshipRoutes registers friendship-related routes
func (h *FriendshipHandler) RegisterFriendshipRoutes(g *echo.Group) {
	g.GET("/friends", h.GetFriends)
	g.GET("/friends/requests", h.GetFriendRequests)
	g.POST("/friends/request/:id", h.SendFriendRequest)
	g.POST("/friends/accept/:id", h.AcceptFriendRequest)
	g.POST("/friends/reject/:id", h.RejectFriendRequest)
}

// GetFriends retrieves the list of accepted friends for the authenticated user
func (h *FriendshipHandler) GetFriends(c echo.Context) error {
	claims := c.Get("user").(*models.SessionClaims)

	friends, err := h.friendshipRepository.GetFriends(claims.UserID)
	if err != nil {
		c.Logger().Errorf("Error fetching friends: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch friends")
	}
	return c.JSON(http.StatusOK, friends)
}

// GetFriendRequests retrieves pending incoming requests for the authenticated user
func (h *FriendshipHandler) GetFriendRequests(c echo.Context) error {
	claims := c.Get("user").(*models.SessionClaims)

	requests, err := h.friendshipRepository.GetFriendRequests(claims.UserID)
	if err != nil {
		c.Logger().Errorf("Error fetching friend requests: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch friend requests")
	}
	return c.JSON(http.StatusOK, requests)
}

// SendFriendRequest sends a friend request to the user named in the path
func (h *FriendshipHandler) SendFriendRequest(c echo.Context) error {
	claims := c.Get("user").(*models.SessionClaims)

	friendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if uint(friendID) == claims.UserID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot send friend request to yourself")
	}

	// Check the target exists
	if _, err := h.userRepository.GetUserByID(uint(friendID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		c.Logger().Errorf("Error fetching friend request target: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send friend request")
	}

	if err := h.friendshipRepository.SendFriendRequest(claims.UserID, uint(friendID)); err != nil {
		if errors.Is(err, repositories.ErrFriendRequestExists) || errors.Is(err, repositories.ErrAlreadyFriends) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		c.Logger().Errorf("Error sending friend request: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send friend request")
	}
	return c.NoContent(http.StatusOK)
}

// AcceptFriendRequest accepts a pending request sent by the user in the path
func (h *FriendshipHandler) AcceptFriendRequest(c echo.Context) error {
	claims := c.Get("user").(*models.SessionClaims)

	friendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.friendshipRepository.AcceptFriendRequest(claims.UserID, uint(friendID)); err != nil {
		c.Logger().Errorf("Error accepting friend request: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to accept friend request")
	}
	return c.NoContent(http.StatusOK)
}

// RejectFriendRequest rejects a pending request sent by the user in the path
func (h *FriendshipHandler) RejectFriendRequest(c echo.Context) error {
	claims := c.Get("user").(*models.SessionClaims)

	friendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.friendshipRepository.RejectFriendRequest(claims.UserID, uint(friendID)); err != nil {
		c.Logger().Errorf("Error rejecting friend request: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to reject friend request")
	}
	return c.NoContent(http.StatusOK)
}
