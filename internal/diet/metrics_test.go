package diet

import (
	"testing"
	"time"

	"daily-diet/internal/models"

	"github.com/stretchr/testify/assert"
)

// mealsFromFlags builds meals one minute apart in the given order.
func mealsFromFlags(flags ...bool) []models.Meal {
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	meals := make([]models.Meal, len(flags))
	for i, f := range flags {
		meals[i] = models.Meal{
			ID:        string(rune('a' + i)),
			InDiet:    f,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return meals
}

func TestComputeMetrics(t *testing.T) {
	const T, F = true, false

	tests := []struct {
		name  string
		flags []bool
		want  Metrics
	}{
		{"empty", nil, Metrics{}},
		{"single in diet", []bool{T}, Metrics{Total: 1, InsideDiet: 1, InsideDietSequence: 1}},
		{"single off diet", []bool{F}, Metrics{Total: 1, OffDiet: 1}},
		{"mixed", []bool{T, T, F, T, T, T, F}, Metrics{Total: 7, InsideDiet: 5, OffDiet: 2, InsideDietSequence: 3}},
		{"all in diet", []bool{T, T, T, T}, Metrics{Total: 4, InsideDiet: 4, InsideDietSequence: 4}},
		{"all off diet", []bool{F, F, F}, Metrics{Total: 3, OffDiet: 3}},
		{"longest run first", []bool{T, T, T, F, T}, Metrics{Total: 5, InsideDiet: 4, OffDiet: 1, InsideDietSequence: 3}},
		{"longest run last", []bool{F, T, F, T, T}, Metrics{Total: 5, InsideDiet: 3, OffDiet: 2, InsideDietSequence: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMetrics(mealsFromFlags(tt.flags...))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Total, got.InsideDiet+got.OffDiet)
		})
	}
}

func TestComputeMetrics_UsesCreationOrder(t *testing.T) {
	// creation order is T,T,F,T,T,T,F
	meals := mealsFromFlags(true, true, false, true, true, true, false)

	// reverse the slice; the streak must not change
	shuffled := make([]models.Meal, len(meals))
	for i := range meals {
		shuffled[len(meals)-1-i] = meals[i]
	}
	shuffled[0], shuffled[4] = shuffled[4], shuffled[0]

	got := ComputeMetrics(shuffled)
	assert.Equal(t, Metrics{Total: 7, InsideDiet: 5, OffDiet: 2, InsideDietSequence: 3}, got)
}

func TestComputeMetrics_DoesNotMutateInput(t *testing.T) {
	meals := mealsFromFlags(true, false, true)
	meals[0], meals[2] = meals[2], meals[0]
	before := append([]models.Meal(nil), meals...)

	ComputeMetrics(meals)

	assert.Equal(t, before, meals)
}

func TestComputeMetrics_EqualTimestampsKeepInputOrder(t *testing.T) {
	at := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	meals := []models.Meal{
		{InDiet: true, CreatedAt: at},
		{InDiet: false, CreatedAt: at},
		{InDiet: true, CreatedAt: at},
		{InDiet: true, CreatedAt: at},
	}

	got := ComputeMetrics(meals)
	assert.Equal(t, 2, got.InsideDietSequence)
}
