package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/habitpal/backend/internal/models"
	"github.com/habitpal/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	echo           *echo.Echo
	db             *gorm.DB
	userRepo       *repositories.PostgresUserRepository
	habitRepo      *repositories.PostgresHabitRepository
	friendshipRepo *repositories.PostgresFriendshipRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Habit{},
		&models.HabitCompletion{},
		&models.Friend{},
	))
	return &testEnv{
		echo:           echo.New(),
		db:             db,
		userRepo:       repositories.NewPostgresUserRepository(db),
		habitRepo:      repositories.NewPostgresHabitRepository(db),
		friendshipRepo: repositories.NewPostgresFriendshipRepository(db),
	}
}

func (env *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "not-a-real-hash"}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) createHabit(t *testing.T, userID uint, title string) *models.Habit {
	t.Helper()
	habit := &models.Habit{UserID: userID, Title: title}
	require.NoError(t, env.db.Create(habit).Error)
	return habit
}

// newRequest builds an echo context backed by a recorder. A JSON body may
// be passed as a raw string.
func (env *testEnv) newRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	return c, rec
}

// asUser stores session claims in the context the way the auth middleware
// would for a logged-in user
func asUser(c echo.Context, user *models.User) {
	c.Set("user", &models.SessionClaims{UserID: user.ID, Username: user.Username})
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	require.Equal(t, code, he.Code)
}
