package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	contractx "github.com/voyplan/voyplan/agent/contract"
)

// StaticAttractionCatalog serves sights from the built-in dataset.
type StaticAttractionCatalog struct{}

func NewStaticAttractionCatalog() *StaticAttractionCatalog {
	return &StaticAttractionCatalog{}
}

// Query returns up to topK attractions in the city, best rated first.
// Preferences narrow by category when any of them match; a budgetMax of
// zero or below means no ticket-price cap.
func (c *StaticAttractionCatalog) Query(ctx context.Context, city string, preferences []string, topK int, budgetMax float64) ([]contractx.Attraction, error) {
	if topK <= 0 {
		topK = 10
	}

	pool := hangzhouAttractions
	if !strings.EqualFold(strings.TrimSpace(city), "Hangzhou") {
		pool = genericAttractions(city)
	}

	filtered := make([]contractx.Attraction, 0, len(pool))
	for _, attr := range pool {
		if budgetMax > 0 && attr.TicketPrice > budgetMax {
			continue
		}
		if len(preferences) > 0 && !matchesAny(attr.Category, preferences) {
			continue
		}
		filtered = append(filtered, attr)
	}
	// Preferences the dataset cannot satisfy should widen, not empty, the
	// result.
	if len(filtered) == 0 {
		for _, attr := range pool {
			if budgetMax > 0 && attr.TicketPrice > budgetMax {
				continue
			}
			filtered = append(filtered, attr)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Rating > filtered[j].Rating
	})
	if len(filtered) > topK {
		filtered = filtered[:topK]
	}
	return filtered, nil
}

func matchesAny(categories, preferences []string) bool {
	for _, pref := range preferences {
		p := strings.ToLower(strings.TrimSpace(pref))
		if p == "" {
			continue
		}
		for _, cat := range categories {
			c := strings.ToLower(cat)
			if strings.Contains(c, p) || strings.Contains(p, c) {
				return true
			}
		}
	}
	return false
}

func genericAttractions(city string) []contractx.Attraction {
	city = strings.TrimSpace(city)
	return []contractx.Attraction{
		{
			ID:            "attr_generic_1",
			Name:          fmt.Sprintf("%s Old Town", city),
			City:          city,
			Category:      []string{"culture", "history"},
			Rating:        4.4,
			TicketPrice:   0,
			DurationHours: 3,
			Description:   fmt.Sprintf("The historic quarter of %s, free to wander.", city),
			Tags:          []string{"free", "walkable"},
		},
		{
			ID:            "attr_generic_2",
			Name:          fmt.Sprintf("%s City Park", city),
			City:          city,
			Category:      []string{"nature"},
			Rating:        4.2,
			TicketPrice:   20,
			DurationHours: 2,
			Description:   fmt.Sprintf("The main green space of %s.", city),
			Tags:          []string{"relaxing"},
		},
		{
			ID:            "attr_generic_3",
			Name:          fmt.Sprintf("%s Museum", city),
			City:          city,
			Category:      []string{"culture", "history"},
			Rating:        4.3,
			TicketPrice:   30,
			DurationHours: 2,
			Description:   fmt.Sprintf("Local history and art of %s under one roof.", city),
			Tags:          []string{"rainy-day"},
		},
	}
}
