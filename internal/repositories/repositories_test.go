package repositories

import (
	"testing"

	"github.com/habitpal/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "not-a-real-hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestHabit(t *testing.T, db *gorm.DB, userID uint, title string) *models.Habit {
	t.Helper()
	habit := &models.Habit{UserID: userID, Title: title}
	require.NoError(t, db.Create(habit).Error)
	return habit
}
