package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/habitpal/backend/internal/models"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardHandler_GetLeaderboard(t *testing.T) {
	env := newTestEnv(t)
	h := NewLeaderboardHandler(env.habitRepo, env.friendshipRepo)

	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	carol := env.createUser(t, "carol")
	env.createUser(t, "dave")

	// bob is an accepted friend, carol's request is still pending, dave is
	// unrelated
	require.NoError(t, env.friendshipRepo.SendFriendRequest(alice.ID, bob.ID))
	require.NoError(t, env.friendshipRepo.AcceptFriendRequest(bob.ID, alice.ID))
	require.NoError(t, env.friendshipRepo.SendFriendRequest(carol.ID, alice.ID))

	habit := env.createHabit(t, bob.ID, "Exercise")
	require.NoError(t, env.habitRepo.CompleteHabit(&models.HabitCompletion{HabitID: habit.ID, UserID: bob.ID}))
	require.NoError(t, env.habitRepo.CompleteHabit(&models.HabitCompletion{HabitID: habit.ID, UserID: bob.ID}))

	c, rec := env.newRequest(http.MethodGet, "/api/leaderboard", "")
	asUser(c, alice)
	require.NoError(t, h.GetLeaderboard(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)

	counts := map[string]int{}
	for _, entry := range entries {
		counts[entry.Username] = entry.CompletionCount
	}
	require.Equal(t, map[string]int{"alice": 0, "bob": 2}, counts)
}

func TestLeaderboardHandler_NoFriends(t *testing.T) {
	env := newTestEnv(t)
	h := NewLeaderboardHandler(env.habitRepo, env.friendshipRepo)
	alice := env.createUser(t, "alice")

	c, rec := env.newRequest(http.MethodGet, "/api/leaderboard", "")
	asUser(c, alice)
	require.NoError(t, h.GetLeaderboard(c))

	var entries []models.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	require.Equal(t, "alice", entries[0].Username)
	require.Equal(t, 0, entries[0].CompletionCount)
}
