package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"daily-diet/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserStore implements UserStore on gorm.
type GormUserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{DB: db}
}

func (s *GormUserStore) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *GormUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// GormMealStore implements MealStore on gorm.
type GormMealStore struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewMealStore(db *gorm.DB) *GormMealStore {
	return &GormMealStore{
		DB:  db,
		Now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *GormMealStore) Create(ctx context.Context, m *models.Meal) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.Now()
	}
	// postgres keeps microseconds; store the same on every driver
	m.CreatedAt = m.CreatedAt.Truncate(time.Microsecond)
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = m.CreatedAt
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create meal: %w", err)
	}
	return nil
}

func (s *GormMealStore) ListByOwner(ctx context.Context, userID string) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

func (s *GormMealStore) FindByOwner(ctx context.Context, userID, mealID string) ([]models.Meal, error) {
	meals := make([]models.Meal, 0, 1)
	if err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("find meal: %w", err)
	}
	return meals, nil
}

func (s *GormMealStore) UpdateByOwner(ctx context.Context, userID, mealID string, upd MealUpdate) (int64, error) {
	// a map so that false / empty values are written too
	res := s.DB.WithContext(ctx).
		Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Updates(map[string]interface{}{
			"name":        upd.Name,
			"description": upd.Description,
			"in_diet":     upd.InDiet,
			"updated_at":  s.Now(),
		})
	if res.Error != nil {
		return 0, fmt.Errorf("update meal: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormMealStore) DeleteByOwner(ctx context.Context, userID, mealID string) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete meal: %w", res.Error)
	}
	return res.RowsAffected, nil
}
