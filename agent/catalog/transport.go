// Package catalog provides the static travel-supply catalogs the planner
// recommends from. The data covers Hangzhou in depth and degrades to a
// generic entry for every other city, so a session never dead-ends on an
// unknown destination.
package catalog

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/voyplan/voyplan/agent/contract"
)

// Cities with direct flights to the catalog destinations.
var flightHubs = map[string]struct{}{
	"beijing":   {},
	"guangzhou": {},
	"shenzhen":  {},
}

// StaticTransportCatalog serves intercity options from a fixed fare table.
type StaticTransportCatalog struct{}

func NewStaticTransportCatalog() *StaticTransportCatalog {
	return &StaticTransportCatalog{}
}

// Options returns the candidate ways of travelling one way from the
// departure city to the destination. Cost is per person; TotalCost covers
// the whole party.
func (c *StaticTransportCatalog) Options(ctx context.Context, departureCity, destinationCity, travelDate string, partySize int) ([]contractx.TransportOption, error) {
	if partySize < 1 {
		partySize = 1
	}
	from := strings.TrimSpace(departureCity)
	if from == "" {
		from = "Beijing"
	}
	to := strings.TrimSpace(destinationCity)

	options := []contractx.TransportOption{
		{
			ID:            "trans_rail",
			Method:        "high-speed rail",
			Cost:          300,
			Duration:      "4h",
			DepartureTime: "08:30",
			ArrivalTime:   "12:30",
			Description:   fmt.Sprintf("High-speed rail from %s to %s, comfortable and punctual.", from, to),
			Recommended:   true,
		},
		{
			ID:            "trans_train",
			Method:        "train",
			Cost:          200,
			Duration:      "7h",
			DepartureTime: "07:00",
			ArrivalTime:   "14:00",
			Description:   fmt.Sprintf("Regular train from %s to %s, the budget option.", from, to),
		},
		{
			ID:            "trans_drive",
			Method:        "self-drive",
			Cost:          500,
			Duration:      "6h",
			DepartureTime: "flexible",
			ArrivalTime:   "flexible",
			Description:   fmt.Sprintf("Drive from %s to %s at your own pace, fuel and tolls included.", from, to),
		},
	}

	if _, hub := flightHubs[strings.ToLower(from)]; hub {
		flight := contractx.TransportOption{
			ID:            "trans_plane",
			Method:        "plane",
			Cost:          800,
			Duration:      "2h",
			DepartureTime: "09:00",
			ArrivalTime:   "11:00",
			Description:   fmt.Sprintf("Direct flight from %s to %s, the fastest choice.", from, to),
		}
		options = append([]contractx.TransportOption{flight}, options...)
	}

	for i := range options {
		options[i].TotalCost = options[i].Cost * float64(partySize)
	}
	return options, nil
}
