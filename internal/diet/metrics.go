// Package diet computes aggregate metrics over a user's meals.
package diet

import (
	"sort"

	"daily-diet/internal/models"
)

// Metrics is the summary returned by the metric endpoint.
type Metrics struct {
	Total              int `json:"TOTAL"`
	InsideDiet         int `json:"INSIDE_DIET"`
	OffDiet            int `json:"OFF_DIET"`
	InsideDietSequence int `json:"INSIDE_DIET_SEQUENCE"`
}

// ComputeMetrics counts meals on and off the diet and finds the longest run
// of consecutive in-diet meals.
//
// Runs are measured in creation order. The input is not modified; meals with
// equal CreatedAt keep their relative input order, which for store results
// is id order.
func ComputeMetrics(meals []models.Meal) Metrics {
	ordered := make([]models.Meal, len(meals))
	copy(ordered, meals)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	var m Metrics
	current := 0
	for _, meal := range ordered {
		m.Total++
		if meal.InDiet {
			m.InsideDiet++
			current++
			if current > m.InsideDietSequence {
				m.InsideDietSequence = current
			}
		} else {
			m.OffDiet++
			current = 0
		}
	}
	return m
}
