package handlers

import (
	"net/http"
	"strconv"

	"github.com/habitpal/backend/internal/models"
	"github.com/habitpal/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to user profiles and search
type UserHandler struct {
	userRepository       repositories.UserRepository
	habitRepository      repositories.HabitRepository
	friendshipRepository repositories.FriendshipRepository // To exclude friends from search results
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, habitRepo repositories.HabitRepository, friendshipRepo repositories.FriendshipRepository) *UserHandler {
	return &UserHandler{
		userRepository:       userRepo,
		habitRepository:      habitRepo,
		friendshipRepository: friendshipRepo,
	}
}

// RegisterUserRoutes registers user profile and search routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users", h.SearchUsersLegacy)
	g.GET("/users/:id", h.GetUser)
	g.GET("/users/:id/habits", h.GetUserHabits)
	g.GET("/search/users", h.SearchUsers)
}

// GetUser retrieves a user's profile by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userRepository.GetUserByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		c.Logger().Errorf("Error fetching user: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch user")
	}
	return c.JSON(http.StatusOK, user)
}

// GetUserHabits retrieves the habits of the user named in the path
func (h *UserHandler) GetUserHabits(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	// First check the user exists
	if _, err := h.userRepository.GetUserByID(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		c.Logger().Errorf("Error fetching user: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch habits")
	}

	habits, err := h.habitRepository.GetHabitsByUser(uint(id))
	if err != nil {
		c.Logger().Errorf("Error fetching user habits: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch habits")
	}
	return c.JSON(http.StatusOK, habits)
}

// SearchUsers searches users by username via the q query parameter
func (h *UserHandler) SearchUsers(c echo.Context) error {
	return h.searchAvailableUsers(c, c.QueryParam("q"))
}

// SearchUsersLegacy is the older variant of user search, driven by the
// search query parameter
func (h *UserHandler) SearchUsersLegacy(c echo.Context) error {
	return h.searchAvailableUsers(c, c.QueryParam("search"))
}

// searchAvailableUsers returns users matching the term, excluding the
// caller, their accepted friends and the senders of pending requests
func (h *UserHandler) searchAvailableUsers(c echo.Context, term string) error {
	claims := c.Get("user").(*models.SessionClaims)

	if term == "" {
		return c.JSON(http.StatusOK, []models.User{})
	}

	users, err := h.userRepository.SearchUsers(term)
	if err != nil {
		c.Logger().Errorf("Error searching users: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to search users")
	}

	friends, err := h.friendshipRepository.GetFriends(claims.UserID)
	if err != nil {
		c.Logger().Errorf("Error fetching friends for search: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to search users")
	}

	requests, err := h.friendshipRepository.GetFriendRequests(claims.UserID)
	if err != nil {
		c.Logger().Errorf("Error fetching friend requests for search: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to search users")
	}

	excluded := map[uint]bool{claims.UserID: true}
	for _, friend := range friends {
		excluded[friend.ID] = true
	}
	for _, request := range requests {
		excluded[request.User.ID] = true
	}

	available := []models.User{}
	for _, user := range users {
		if !excluded[user.ID] {
			available = append(available, user)
		}
	}
	return c.JSON(http.StatusOK, available)
}
