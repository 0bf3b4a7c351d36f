package repositories

import (
	"github.com/habitpal/backend/internal/models"
	"gorm.io/gorm"
)

// HabitRepository defines the interface for habit and completion data operations
type HabitRepository interface {
	CreateHabit(habit *models.Habit) error
	GetHabitByID(id uint) (*models.Habit, error)
	GetHabitsByUser(userID uint) ([]models.Habit, error)
	DeleteHabit(id uint) error
	CompleteHabit(completion *models.HabitCompletion) error
	GetCompletions(habitID uint) ([]models.HabitCompletion, error)
	GetCompletionCounts(userIDs []uint) ([]models.LeaderboardEntry, error)
}

// PostgresHabitRepository implements HabitRepository for PostgreSQL
type PostgresHabitRepository struct {
	db *gorm.DB
}

// NewPostgresHabitRepository creates a new PostgresHabitRepository
func NewPostgresHabitRepository(db *gorm.DB) *PostgresHabitRepository {
	return &PostgresHabitRepository{db: db}
}

// CreateHabit inserts a new habit owned by habit.UserID; the store stamps
// CreatedAt and assigns the ID
func (r *PostgresHabitRepository) CreateHabit(habit *models.Habit) error {
	return r.db.Create(habit).Error
}

// GetHabitByID retrieves a habit by its primary key
func (r *PostgresHabitRepository) GetHabitByID(id uint) (*models.Habit, error) {
	var habit models.Habit
	if err := r.db.First(&habit, id).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

// GetHabitsByUser retrieves all habits owned by a user, oldest first
func (r *PostgresHabitRepository) GetHabitsByUser(userID uint) ([]models.Habit, error) {
	var habits []models.Habit
	if err := r.db.Where("user_id = ?", userID).Order("created_at, id").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

// DeleteHabit deletes a habit and all of its completions in one transaction
func (r *PostgresHabitRepository) DeleteHabit(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", id).Delete(&models.HabitCompletion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Habit{}, id).Error
	})
}

// CompleteHabit appends one completion row. No existence check is made on
// the habit; the caller vouches for it.
func (r *PostgresHabitRepository) CompleteHabit(completion *models.HabitCompletion) error {
	return r.db.Create(completion).Error
}

// GetCompletions retrieves every completion for a habit, oldest first
func (r *PostgresHabitRepository) GetCompletions(habitID uint) ([]models.HabitCompletion, error) {
	var completions []models.HabitCompletion
	if err := r.db.Where("habit_id = ?", habitID).Order("completed_at, id").Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

// GetCompletionCounts returns one entry per requested user with the total
// number of completions across all of that user's habits. Users with no
// habits or completions appear with a count of 0.
func (r *PostgresHabitRepository) GetCompletionCounts(userIDs []uint) ([]models.LeaderboardEntry, error) {
	entries := []models.LeaderboardEntry{}
	if len(userIDs) == 0 {
		return entries, nil
	}
	err := r.db.Table("users").
		Select("users.id AS id, users.username AS username, COUNT(habit_completions.id) AS completion_count").
		Joins("LEFT JOIN habits ON habits.user_id = users.id").
		Joins("LEFT JOIN habit_completions ON habit_completions.habit_id = habits.id").
		Where("users.id IN ?", userIDs).
		Group("users.id, users.username").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
