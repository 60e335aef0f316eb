package models

import "time"

// Meal is a single meal logged by its owner.
type Meal struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;index;not null" json:"userId"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	InDiet      bool      `gorm:"not null;default:false" json:"inDiet"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InDietFlag renders InDiet the way clients send it ("T" / "F").
func (m Meal) InDietFlag() string {
	if m.InDiet {
		return "T"
	}
	return "F"
}
