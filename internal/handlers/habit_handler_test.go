package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/habitpal/backend/internal/models"
	"github.com/stretchr/testify/require"
)

func TestHabitHandler_CreateHabit(t *testing.T) {
	env := newTestEnv(t)
	h := NewHabitHandler(env.habitRepo)
	alice := env.createUser(t, "alice")

	c, rec := env.newRequest(http.MethodPost, "/api/habits", `{"title":"Exercise","description":"30 minutes"}`)
	asUser(c, alice)
	require.NoError(t, h.CreateHabit(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Habit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotZero(t, got.ID)
	require.Equal(t, alice.ID, got.UserID)
	require.Equal(t, "Exercise", got.Title)
	require.NotNil(t, got.Description)
	require.Equal(t, "30 minutes", *got.Description)
	require.False(t, got.CreatedAt.IsZero())
}

func TestHabitHandler_CreateHabit_InvalidBody(t *testing.T) {
	env := newTestEnv(t)
	h := NewHabitHandler(env.habitRepo)
	alice := env.createUser(t, "alice")

	c, _ := env.newRequest(http.MethodPost, "/api/habits", `{"description":"no title"}`)
	asUser(c, alice)
	requireHTTPError(t, h.CreateHabit(c), http.StatusBadRequest)
}

func TestHabitHandler_GetHabits_OnlyOwn(t *testing.T) {
	env := newTestEnv(t)
	h := NewHabitHandler(env.habitRepo)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	env.createHabit(t, alice.ID, "Exercise")
	env.createHabit(t, bob.ID, "Meditate")

	c, rec := env.newRequest(http.MethodGet, "/api/habits", "")
	asUser(c, alice)
	require.NoError(t, h.GetHabits(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var habits []models.Habit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &habits))
	require.Len(t, habits, 1)
	require.Equal(t, "Exercise", habits[0].Title)
}

func TestHabitHandler_CompleteAndListCompletions(t *testing.T) {
	env := newTestEnv(t)
	h := NewHabitHandler(env.habitRepo)
	alice := env.createUser(t, "alice")
	habit := env.createHabit(t, alice.ID, "Exercise")

	for i := 0; i < 2; i++ {
		c, rec := env.newRequest(http.MethodPost, "/api/habits/1/complete", "")
		asUser(c, alice)
		c.SetParamNames("id")
		c.SetParamValues("1")
		require.NoError(t, h.CompleteHabit(c))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	c, rec := env.newRequest(http.MethodGet, "/api/habits/1/completions", "")
	asUser(c, alice)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.GetHabitCompletions(c))

	var completions []models.HabitCompletion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &completions))
	require.Len(t, completions, 2)
	for _, completion := range completions {
		require.Equal(t, habit.ID, completion.HabitID)
		require.Equal(t, alice.ID, completion.UserID)
	}
}

func TestHabitHandler_Completions_InvalidID(t *testing.T) {
	env := newTestEnv(t)
	h := NewHabitHandler(env.habitRepo)
	alice := env.createUser(t, "alice")

	c, _ := env.newRequest(http.MethodGet, "/api/habits/abc/completions", "")
	asUser(c, alice)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	requireHTTPError(t, h.GetHabitCompletions(c), http.StatusBadRequest)
}

func TestHabitHandler_DeleteHabit(t *testing.T) {
	env := newTestEnv(t)
	h := NewHabitHandler(env.habitRepo)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	habit := env.createHabit(t, alice.ID, "Exercise")
	require.NoError(t, env.habitRepo.CompleteHabit(&models.HabitCompletion{HabitID: habit.ID, UserID: alice.ID}))

	deleteReq := func(user *models.User, id string) error {
		c, _ := env.newRequest(http.MethodDelete, "/api/habits/"+id, "")
		asUser(c, user)
		c.SetParamNames("id")
		c.SetParamValues(id)
		return h.DeleteHabit(c)
	}

	// Malformed ID
	requireHTTPError(t, deleteReq(alice, "abc"), http.StatusBadRequest)

	// Unknown habit
	requireHTTPError(t, deleteReq(alice, "999"), http.StatusNotFound)

	// Only the owner may delete
	requireHTTPError(t, deleteReq(bob, "1"), http.StatusForbidden)

	// Owner delete removes the habit and its completions
	require.NoError(t, deleteReq(alice, "1"))

	habits, err := env.habitRepo.GetHabitsByUser(alice.ID)
	require.NoError(t, err)
	require.Empty(t, habits)

	completions, err := env.habitRepo.GetCompletions(habit.ID)
	require.NoError(t, err)
	require.Empty(t, completions)
}
