package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/habitpal/backend/internal/models"
	"github.com/habitpal/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HabitHandler handles HTTP requests related to habits and completions
type HabitHandler struct {
	habitRepository repositories.HabitRepository
}

// NewHabitHandler creates a new HabitHandler
func NewHabitHandler(habitRepo repositories.HabitRepository) *HabitHandler {
	return &HabitHandler{habitRepository: habitRepo}
}

// RegisterHabitRoutes registers habit-related routes
func (h *HabitHandler) RegisterHabitRoutes(g *echo.Group) {
	g.POST("/habits", h.CreateHabit)
	g.GET("/habits", h.GetHabits)
	g.GET("/habits/:id/completions", h.GetHabitCompletions)
	g.POST("/habits/:id/complete", h.CompleteHabit)
	g.DELETE("/habits/:id", h.DeleteHabit)
}

// CreateHabit creates a habit owned by the authenticated user
func (h *HabitHandler) CreateHabit(c echo.Context) error {
	claims := c.Get("user").(*models.SessionClaims)

	var req models.CreateHabitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	habit := &models.Habit{
		UserID:      claims.UserID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := h.habitRepository.CreateHabit(habit); err != nil {
		c.Logger().Errorf("Error creating habit: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create habit")
	}

	return c.JSON(http.StatusOK, habit)
}

// GetHabits lists the authenticated user's habits
func (h *HabitHandler) GetHabits(c echo.Context) error {
	claims := c.Get("user").(*models.SessionClaims)

	habits, err := h.habitRepository.GetHabitsByUser(claims.UserID)
	if err != nil {
		c.Logger().Errorf("Error fetching habits: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch habits")
	}
	return c.JSON(http.StatusOK, habits)
}

// GetHabitCompletions lists every completion logged for a habit
func (h *HabitHandler) GetHabitCompletions(c echo.Context) error {
	habitID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid habit ID")
	}

	completions, err := h.habitRepository.GetCompletions(uint(habitID))
	if err != nil {
		c.Logger().Errorf("Error fetching habit completions: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch habit completions")
	}
	return c.JSON(http.StatusOK, completions)
}

// CompleteHabit logs one completion for a habit
func (h *HabitHandler) CompleteHabit(c echo.Context) error {
	claims := c.Get("user").(*models.SessionClaims)

	habitID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid habit ID")
	}

	completion := &models.HabitCompletion{
		HabitID: uint(habitID),
		UserID:  claims.UserID,
	}
	if err := h.habitRepository.CompleteHabit(completion); err != nil {
		c.Logger().Errorf("Error completing habit: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to complete habit")
	}
	return c.NoContent(http.StatusOK)
}

// DeleteHabit deletes a habit and its completions after verifying ownership
func (h *HabitHandler) DeleteHabit(c echo.Context) error {
	claims := c.Get("user").(*models.SessionClaims)

	habitID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid habit ID")
	}

	habit, err := h.habitRepository.GetHabitByID(uint(habitID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Habit not found")
		}
		c.Logger().Errorf("Error fetching habit: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete habit")
	}

	// Only the habit's owner may delete it
	if habit.UserID != claims.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "Not authorized to delete this habit")
	}

	if err := h.habitRepository.DeleteHabit(uint(habitID)); err != nil {
		c.Logger().Errorf("Error deleting habit: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete habit")
	}
	return c.NoContent(http.StatusOK)
}
