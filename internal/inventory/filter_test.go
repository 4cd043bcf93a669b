// internal/inventory/filter_test.go
package inventory

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func testFleet() []Car {
	return []Car{
		{ID: 1, Brand: "Toyota", Model: "Corolla", Category: "Sedan", DailyRate: 100.0, Seats: 5, FuelType: "Gasolina", Available: true},
		{ID: 2, Brand: "Honda", Model: "Civic", Category: "Sedan", DailyRate: 120.0, Seats: 5, FuelType: "Gasolina", Available: true},
		{ID: 3, Brand: "Chevrolet", Model: "Onix", Category: "Hatch", DailyRate: 90.0, Seats: 5, FuelType: "Gasolina", Available: true},
		{ID: 4, Brand: "Jeep", Model: "Wrangler", Category: "SUV", DailyRate: 150.0, Seats: 5, FuelType: "Diesel", Available: true},
		{ID: 5, Brand: "Ford", Model: "EcoSport", Category: "SUV", DailyRate: 130.0, Seats: 5, FuelType: "Gasolina", Available: true},
		{ID: 6, Brand: "Fiat", Model: "Mobi", Category: "Hatch", DailyRate: 80.0, Seats: 4, FuelType: "Gasolina", Available: true},
	}
}

func modelsOf(cars []Car) []string {
	out := make([]string, 0, len(cars))
	for _, c := range cars {
		out = append(out, c.Model)
	}
	return out
}

// ==========================
// Filter Tests
// ==========================

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria FilterCriteria
		want     []string
	}{
		{
			name:     "defaults keep every available car within budget",
			criteria: FilterCriteria{MinPassengers: 4, MaxBudget: 150.0},
			want:     []string{"Corolla", "Civic", "Onix", "Wrangler", "EcoSport", "Mobi"},
		},
		{
			name:     "five passengers excludes the four-seater",
			criteria: FilterCriteria{MinPassengers: 5, MaxBudget: 150.0},
			want:     []string{"Corolla", "Civic", "Onix", "Wrangler", "EcoSport"},
		},
		{
			name:     "budget bound is inclusive",
			criteria: FilterCriteria{MinPassengers: 4, MaxBudget: 120.0},
			want:     []string{"Corolla", "Civic", "Onix", "Mobi"},
		},
		{
			name:     "type preference narrows to the category",
			criteria: FilterCriteria{MinPassengers: 4, MaxBudget: 150.0, TypePreference: "suv"},
			want:     []string{"Wrangler", "EcoSport"},
		},
		{
			name:     "type preference is case-insensitive",
			criteria: FilterCriteria{MinPassengers: 4, MaxBudget: 150.0, TypePreference: "SUV"},
			want:     []string{"Wrangler", "EcoSport"},
		},
		{
			name:     "all conditions combined",
			criteria: FilterCriteria{MinPassengers: 5, MaxBudget: 100.0, TypePreference: "hatch"},
			want:     []string{"Onix"},
		},
		{
			name:     "no car satisfies the seat requirement",
			criteria: FilterCriteria{MinPassengers: 9, MaxBudget: 150.0},
			want:     nil,
		},
		{
			name:     "unknown type matches nothing",
			criteria: FilterCriteria{MinPassengers: 4, MaxBudget: 150.0, TypePreference: "picape"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testFleet(), tt.criteria)
			assert.Equal(t, tt.want, modelsOf(got))
		})
	}
}

func TestFilter_CompoundCategorySubstringMatch(t *testing.T) {
	cars := []Car{
		{ID: 1, Model: "Golf", Category: "Sedan/Hatch", DailyRate: 100.0, Seats: 5, Available: true},
	}

	got := Filter(cars, FilterCriteria{MinPassengers: 4, MaxBudget: 150.0, TypePreference: "hatch"})
	require.Len(t, got, 1)
	assert.Equal(t, "Golf", got[0].Model)
}

func TestFilter_ExcludesUnavailableCars(t *testing.T) {
	cars := testFleet()
	cars[1].Available = false

	got := Filter(cars, FilterCriteria{MinPassengers: 4, MaxBudget: 150.0})
	assert.NotContains(t, modelsOf(got), "Civic")
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	cars := testFleet()
	// Reverse the slice; the result must follow the reversed order.
	for i, j := 0, len(cars)-1; i < j; i, j = i+1, j-1 {
		cars[i], cars[j] = cars[j], cars[i]
	}

	got := Filter(cars, FilterCriteria{MinPassengers: 4, MaxBudget: 150.0})
	assert.Equal(t, []string{"Mobi", "EcoSport", "Wrangler", "Onix", "Civic", "Corolla"}, modelsOf(got))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	cars := testFleet()
	Filter(cars, FilterCriteria{MinPassengers: 5, MaxBudget: 100.0, TypePreference: "sedan"})
	assert.Equal(t, testFleet(), cars)
}

// Randomized fleets: no returned car may violate a bound, and every
// excluded available car must violate at least one.
func TestFilter_RandomizedBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	categories := []string{"Sedan", "Hatch", "SUV"}

	for run := 0; run < 50; run++ {
		fleet := make([]Car, rng.Intn(20))
		for i := range fleet {
			fleet[i] = Car{
				ID:        i + 1,
				Model:     fmt.Sprintf("M%d", i+1),
				Category:  categories[rng.Intn(len(categories))],
				DailyRate: 50.0 + float64(rng.Intn(200)),
				Seats:     2 + rng.Intn(6),
				Available: rng.Intn(4) > 0,
			}
		}
		criteria := FilterCriteria{
			MinPassengers:  2 + rng.Intn(6),
			MaxBudget:      50.0 + float64(rng.Intn(200)),
			TypePreference: categories[rng.Intn(len(categories))],
		}

		kept := make(map[int]bool)
		for _, car := range Filter(fleet, criteria) {
			kept[car.ID] = true
			assert.True(t, car.Available)
			assert.GreaterOrEqual(t, car.Seats, criteria.MinPassengers)
			assert.LessOrEqual(t, car.DailyRate, criteria.MaxBudget)
			assert.True(t, strings.EqualFold(car.Category, criteria.TypePreference))
		}
		for _, car := range fleet {
			if kept[car.ID] {
				continue
			}
			violates := !car.Available ||
				car.Seats < criteria.MinPassengers ||
				car.DailyRate > criteria.MaxBudget ||
				!strings.EqualFold(car.Category, criteria.TypePreference)
			assert.True(t, violates)
		}
	}
}
