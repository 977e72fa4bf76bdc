package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	contractx "github.com/voyplan/voyplan/agent/contract"
)

// StaticAccommodationCatalog serves hotels from the built-in dataset.
type StaticAccommodationCatalog struct{}

func NewStaticAccommodationCatalog() *StaticAccommodationCatalog {
	return &StaticAccommodationCatalog{}
}

// Query returns up to topK hotels in the city within budgetPerNight, best
// rated first, with per-stay totals attached. When the budget excludes every
// hotel the cheapest one is returned anyway so the stage can still recommend
// something. The middle option of the returned slice is flagged recommended.
func (c *StaticAccommodationCatalog) Query(ctx context.Context, city string, attractions []contractx.Attraction, budgetPerNight float64, nights, partySize, topK int) ([]contractx.Hotel, error) {
	if topK <= 0 {
		topK = 5
	}
	if nights < 1 {
		nights = 1
	}
	if partySize < 1 {
		partySize = 1
	}

	pool := hangzhouHotels
	if !strings.EqualFold(strings.TrimSpace(city), "Hangzhou") {
		pool = genericHotels(city)
	}

	filtered := make([]contractx.Hotel, 0, len(pool))
	for _, hotel := range pool {
		if budgetPerNight > 0 && hotel.PricePerNight > budgetPerNight {
			continue
		}
		filtered = append(filtered, hotel)
	}
	if len(filtered) == 0 {
		cheapest := pool[0]
		for _, hotel := range pool[1:] {
			if hotel.PricePerNight < cheapest.PricePerNight {
				cheapest = hotel
			}
		}
		filtered = append(filtered, cheapest)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Rating != filtered[j].Rating {
			return filtered[i].Rating > filtered[j].Rating
		}
		return filtered[i].PricePerNight < filtered[j].PricePerNight
	})
	if len(filtered) > topK {
		filtered = filtered[:topK]
	}

	rooms := (partySize + 1) / 2
	for i := range filtered {
		filtered[i].Nights = nights
		filtered[i].TotalCost = filtered[i].PricePerNight * float64(nights) * float64(rooms)
	}
	filtered[len(filtered)/2].Recommended = true
	return filtered, nil
}

func genericHotels(city string) []contractx.Hotel {
	city = strings.TrimSpace(city)
	return []contractx.Hotel{
		{
			ID:            "hotel_generic_1",
			Name:          fmt.Sprintf("%s Grand Hotel", city),
			City:          city,
			HotelType:     "comfort",
			Rating:        4.5,
			PricePerNight: 400,
			RoomType:      "queen room",
			Description:   fmt.Sprintf("Reliable mid-range hotel in central %s.", city),
			Tags:          []string{"central"},
		},
		{
			ID:            "hotel_generic_2",
			Name:          fmt.Sprintf("%s Express Inn", city),
			City:          city,
			HotelType:     "budget",
			Rating:        4.2,
			PricePerNight: 200,
			RoomType:      "standard twin",
			Description:   fmt.Sprintf("Budget chain near the %s railway station.", city),
			Tags:          []string{"budget", "near-station"},
		},
		{
			ID:            "hotel_generic_3",
			Name:          fmt.Sprintf("%s Lakeside Resort", city),
			City:          city,
			HotelType:     "luxury",
			Rating:        4.7,
			PricePerNight: 800,
			RoomType:      "deluxe king",
			Description:   fmt.Sprintf("Upscale resort on the edge of %s.", city),
			Tags:          []string{"upscale"},
		},
	}
}
