// internal/inventory/filter.go
package inventory

import "strings"

// FilterCriteria is the triple derived from the questionnaire answers. It is
// built once per run and immutable afterwards.
type FilterCriteria struct {
	MinPassengers  int
	MaxBudget      float64
	TypePreference string
}

// Filter returns the cars that satisfy the criteria, preserving the input
// order. An empty result is a normal outcome, not an error; the rental flow
// informs the user and aborts without relaxing the criteria.
//
// TypePreference is a case-insensitive substring match against the category,
// so a preference of "hatch" also matches a compound "Sedan/Hatch" category.
func Filter(cars []Car, criteria FilterCriteria) []Car {
	var out []Car
	pref := strings.ToLower(strings.TrimSpace(criteria.TypePreference))
	for _, car := range cars {
		if !car.Available {
			continue
		}
		if car.Seats < criteria.MinPassengers {
			continue
		}
		if car.DailyRate > criteria.MaxBudget {
			continue
		}
		if pref != "" && !strings.Contains(strings.ToLower(car.Category), pref) {
			continue
		}
		out = append(out, car)
	}
	return out
}
