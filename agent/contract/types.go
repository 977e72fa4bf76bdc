package contract

import "time"

// DialogueMessage is one entry of a session's append-only history.
type DialogueMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// RequirementsPatch is the extractor's partial view of the user's trip
// parameters. Absent fields stay zero/nil; numeric fields are kept loose
// because models sometimes return them as strings.
type RequirementsPatch struct {
	Destination    string   `json:"destination,omitempty"`
	DepartureCity  string   `json:"departure_city,omitempty"`
	Days           any      `json:"days,omitempty"`
	Budget         any      `json:"budget,omitempty"`
	TravelDates    string   `json:"travel_dates,omitempty"`
	Preferences    []string `json:"preferences,omitempty"`
	CompanionType  string   `json:"companion_type,omitempty"`
	CompanionCount any      `json:"companion_count,omitempty"`
	SpecialNeeds   string   `json:"special_needs,omitempty"`
}

// IsEmpty reports whether the patch carries no extracted field at all.
func (p RequirementsPatch) IsEmpty() bool {
	return p.Destination == "" && p.DepartureCity == "" && p.Days == nil &&
		p.Budget == nil && p.TravelDates == "" && len(p.Preferences) == 0 &&
		p.CompanionType == "" && p.CompanionCount == nil && p.SpecialNeeds == ""
}

// TransportLeg is one direction of a chosen transport option.
type TransportLeg struct {
	Method   string  `json:"method"`
	Cost     float64 `json:"cost"`
	Duration string  `json:"duration,omitempty"`
	Reason   string  `json:"reason,omitempty"`
}

// TransportOption is one candidate returned by the transport catalog.
// Cost is per person; TotalCost covers the whole party one way.
type TransportOption struct {
	ID            string  `json:"id"`
	Method        string  `json:"method"`
	Cost          float64 `json:"cost"`
	Duration      string  `json:"duration,omitempty"`
	DepartureTime string  `json:"departure_time,omitempty"`
	ArrivalTime   string  `json:"arrival_time,omitempty"`
	Description   string  `json:"description,omitempty"`
	TotalCost     float64 `json:"total_cost"`
	Recommended   bool    `json:"recommended,omitempty"`
}

type Attraction struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city,omitempty"`
	Category      []string `json:"category,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	TicketPrice   float64  `json:"ticket_price"`
	DurationHours float64  `json:"duration_hours,omitempty"`
	Address       string   `json:"address,omitempty"`
	Description   string   `json:"description,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Reason        string   `json:"reason,omitempty"`
}

type Restaurant struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	City            string   `json:"city,omitempty"`
	CuisineType     string   `json:"cuisine_type,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
	AvgPrice        float64  `json:"avg_price"`
	MealType        string   `json:"meal_type,omitempty"`
	SignatureDishes []string `json:"signature_dishes,omitempty"`
	Description     string   `json:"description,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Reason          string   `json:"reason,omitempty"`
}

type Hotel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city,omitempty"`
	HotelType     string   `json:"hotel_type,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	PricePerNight float64  `json:"price_per_night"`
	RoomType      string   `json:"room_type,omitempty"`
	Address       string   `json:"address,omitempty"`
	Facilities    []string `json:"facilities,omitempty"`
	Description   string   `json:"description,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Nights        int      `json:"nights,omitempty"`
	TotalCost     float64  `json:"total_cost,omitempty"`
	Recommended   bool     `json:"recommended,omitempty"`
	Reason        string   `json:"reason,omitempty"`
}

// RecommendationKind tags which stage produced a recommendation payload.
type RecommendationKind string

const (
	RecommendTransport     RecommendationKind = "transport"
	RecommendAttractions   RecommendationKind = "attractions"
	RecommendFood          RecommendationKind = "food"
	RecommendAccommodation RecommendationKind = "accommodation"
)

// Recommendation is the default/candidate proposal a stage hands to the
// user. It is kept on the session so a bare confirmation on the next turn
// can reuse it without re-deriving.
type Recommendation struct {
	ID               string                 `json:"id"`
	Kind             RecommendationKind     `json:"kind"`
	Prompt           string                 `json:"prompt"`
	TransportOptions []TransportOption      `json:"transport_options,omitempty"`
	AttractionsByDay map[int][]Attraction   `json:"attractions_by_day,omitempty"`
	FoodByDay        map[int][]Restaurant   `json:"food_by_day,omitempty"`
	HotelOptions     []Hotel                `json:"hotel_options,omitempty"`
}

// Warning is a non-fatal degrade surfaced on a turn result. The behavioral
// contract stays "never crash the turn"; warnings make the degrade paths
// observable to callers and tests.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	WarnExtractionDegraded  = "extraction_degraded"
	WarnClassifierFallback  = "classifier_fallback"
	WarnAggregationFallback = "aggregation_fallback"
	WarnStageFailure        = "stage_failed"
)
