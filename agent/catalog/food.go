package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	contractx "github.com/voyplan/voyplan/agent/contract"
)

// StaticFoodCatalog serves restaurants from the built-in dataset.
type StaticFoodCatalog struct{}

func NewStaticFoodCatalog() *StaticFoodCatalog {
	return &StaticFoodCatalog{}
}

// Query returns up to topK restaurants in the city, best rated first.
// A priceMax of zero or below means no per-person cap.
func (c *StaticFoodCatalog) Query(ctx context.Context, city string, preferences []string, priceMax float64, topK int) ([]contractx.Restaurant, error) {
	if topK <= 0 {
		topK = 5
	}

	pool := hangzhouRestaurants
	if !strings.EqualFold(strings.TrimSpace(city), "Hangzhou") {
		pool = genericRestaurants(city)
	}

	filtered := make([]contractx.Restaurant, 0, len(pool))
	for _, rest := range pool {
		if priceMax > 0 && rest.AvgPrice > priceMax {
			continue
		}
		if len(preferences) > 0 && !matchesCuisine(rest, preferences) {
			continue
		}
		filtered = append(filtered, rest)
	}
	if len(filtered) == 0 {
		for _, rest := range pool {
			if priceMax > 0 && rest.AvgPrice > priceMax {
				continue
			}
			filtered = append(filtered, rest)
		}
	}
	// A budget tight enough to exclude everything still gets the cheapest
	// places rather than an empty plate.
	if len(filtered) == 0 {
		filtered = append(filtered, pool...)
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].AvgPrice < filtered[j].AvgPrice
		})
		if len(filtered) > topK {
			filtered = filtered[:topK]
		}
		return filtered, nil
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Rating > filtered[j].Rating
	})
	if len(filtered) > topK {
		filtered = filtered[:topK]
	}
	return filtered, nil
}

func matchesCuisine(rest contractx.Restaurant, preferences []string) bool {
	cuisine := strings.ToLower(rest.CuisineType)
	for _, pref := range preferences {
		p := strings.ToLower(strings.TrimSpace(pref))
		if p == "" {
			continue
		}
		if strings.Contains(cuisine, p) {
			return true
		}
		for _, tag := range rest.Tags {
			if strings.Contains(strings.ToLower(tag), p) {
				return true
			}
		}
	}
	return false
}

func genericRestaurants(city string) []contractx.Restaurant {
	city = strings.TrimSpace(city)
	return []contractx.Restaurant{
		{
			ID:          "food_generic_1",
			Name:        fmt.Sprintf("%s Local Kitchen", city),
			City:        city,
			CuisineType: "local cuisine",
			Rating:      4.4,
			AvgPrice:    70,
			Description: fmt.Sprintf("Well-regarded spot for the regional dishes of %s.", city),
			Tags:        []string{"local-pick"},
		},
		{
			ID:          "food_generic_2",
			Name:        fmt.Sprintf("%s Night Market Stalls", city),
			City:        city,
			CuisineType: "snacks",
			Rating:      4.2,
			AvgPrice:    35,
			Description: fmt.Sprintf("Street food rows of %s, cheap and varied.", city),
			Tags:        []string{"street-food", "cheap"},
		},
	}
}
