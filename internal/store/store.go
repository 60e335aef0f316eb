// Package store persists users and meals.
//
// Every meal operation takes the owner's user id and filters on it, so a
// caller can never reach another user's rows even with a known meal id.
package store

import (
	"context"
	"errors"

	"daily-diet/internal/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already in use")
)

// UserStore persists accounts.
type UserStore interface {
	// Create assigns an id and inserts u. It returns ErrEmailTaken when the
	// email already exists.
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// MealUpdate carries the mutable fields of a meal.
type MealUpdate struct {
	Name        string
	Description string
	InDiet      bool
}

// MealStore persists meals scoped by owner.
type MealStore interface {
	Create(ctx context.Context, m *models.Meal) error

	// ListByOwner returns all meals of userID ordered by creation time
	// (created_at ASC, then id ASC). Streak metrics rely on this order.
	// created_at has microsecond precision; meals created within the same
	// microsecond are ordered by id, not by insertion.
	ListByOwner(ctx context.Context, userID string) ([]models.Meal, error)

	// FindByOwner returns the meals matching both ids: zero or one element.
	FindByOwner(ctx context.Context, userID, mealID string) ([]models.Meal, error)

	// UpdateByOwner and DeleteByOwner report the number of affected rows.
	// Zero is not an error.
	UpdateByOwner(ctx context.Context, userID, mealID string, upd MealUpdate) (int64, error)
	DeleteByOwner(ctx context.Context, userID, mealID string) (int64, error)
}
