// Package itinerary merges the per-stage selections of a finished session
// into one itinerary document with a reconciled budget breakdown. Build is a
// pure function of (requirements, selections); it never fails, degrading to
// a placeholder document instead.
package itinerary

import (
	"fmt"
	"sort"
	"strings"

	contractx "github.com/voyplan/voyplan/agent/contract"
	statex "github.com/voyplan/voyplan/agent/state"
)

// Per-person one-way fares used when a transport choice arrives without a
// usable cost.
var defaultTransportCosts = map[string]float64{
	"plane":           800,
	"high-speed rail": 300,
	"train":           200,
	"self-drive":      500,
}

const (
	defaultTransportMethod = "high-speed rail"
	defaultMiscBudget      = 500
)

type ScheduleItem struct {
	Time   string  `json:"time"`
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	Cost   float64 `json:"cost"`
	Reason string  `json:"reason,omitempty"`
}

type DailyPlan struct {
	Day       int            `json:"day"`
	Theme     string         `json:"theme,omitempty"`
	Schedule  []ScheduleItem `json:"schedule"`
	DailyCost float64        `json:"daily_cost"`
}

type BudgetBreakdown struct {
	Transport     float64 `json:"transport"`
	Attractions   float64 `json:"attractions"`
	Food          float64 `json:"food"`
	Accommodation float64 `json:"accommodation"`
	Misc          float64 `json:"misc"`
	Total         float64 `json:"total"`
}

// Itinerary is the final plan document handed to the user.
type Itinerary struct {
	Destination     string                     `json:"destination"`
	DepartureCity   string                     `json:"departure_city,omitempty"`
	Days            int                        `json:"days"`
	TotalBudget     float64                    `json:"total_budget"`
	CompanionType   string                     `json:"companion_type,omitempty"`
	CompanionCount  int                        `json:"companion_count,omitempty"`
	Transport       *statex.TransportChoice    `json:"transport,omitempty"`
	DailyPlans      []DailyPlan                `json:"daily_plans"`
	Hotel           *statex.AccommodationChoice `json:"hotel,omitempty"`
	BudgetBreakdown BudgetBreakdown            `json:"budget_breakdown"`
	Tips            []string                   `json:"tips"`
}

// Build assembles the itinerary from a frozen requirements record and the
// four selection slots. It never returns an error: any panic during
// assembly yields the placeholder document plus a warning.
func Build(req statex.Requirements, sel statex.Selections) (doc Itinerary, warnings []contractx.Warning) {
	defer func() {
		if r := recover(); r != nil {
			doc = fallbackItinerary(req)
			warnings = append(warnings, contractx.Warning{
				Code:    contractx.WarnAggregationFallback,
				Message: fmt.Sprintf("itinerary assembly failed: %v", r),
			})
		}
	}()

	transport := NormalizeTransport(sel.Transport)

	doc = Itinerary{
		Destination:     req.Destination,
		DepartureCity:   req.DepartureCity,
		Days:            req.Days,
		TotalBudget:     req.Budget,
		CompanionType:   req.CompanionType,
		CompanionCount:  req.CompanionCount,
		Transport:       transport,
		DailyPlans:      buildDailyPlans(sel.AttractionsByDay, sel.FoodByDay),
		Hotel:           sel.Accommodation,
		BudgetBreakdown: buildBreakdown(req, transport, sel),
		Tips:            buildTips(req.Preferences, req.CompanionType),
	}
	return doc, nil
}

// NormalizeTransport fills in the outbound/return legs of a transport
// choice. A missing or zero cost falls back to the per-method default fare;
// outbound and return mirror each other. Nil stays nil.
func NormalizeTransport(choice *statex.TransportChoice) *statex.TransportChoice {
	if choice == nil {
		return nil
	}
	normalized := *choice

	method := strings.ToLower(strings.TrimSpace(normalized.Method))
	if method == "" {
		method = defaultTransportMethod
	}
	normalized.Method = method

	cost := normalized.Cost
	if cost <= 0 {
		cost = defaultTransportCosts[method]
	}
	normalized.Cost = cost

	if normalized.Outbound == nil {
		normalized.Outbound = &contractx.TransportLeg{Method: method, Cost: cost}
	} else if normalized.Outbound.Cost <= 0 {
		leg := *normalized.Outbound
		leg.Cost = cost
		normalized.Outbound = &leg
	}
	if normalized.Return == nil {
		mirror := *normalized.Outbound
		normalized.Return = &mirror
	} else if normalized.Return.Cost <= 0 {
		leg := *normalized.Return
		leg.Cost = cost
		normalized.Return = &leg
	}
	return &normalized
}

func buildDailyPlans(attractions map[int][]contractx.Attraction, food map[int][]contractx.Restaurant) []DailyPlan {
	daySet := make(map[int]struct{}, len(attractions)+len(food))
	for day := range attractions {
		daySet[day] = struct{}{}
	}
	for day := range food {
		daySet[day] = struct{}{}
	}
	days := make([]int, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Ints(days)

	plans := make([]DailyPlan, 0, len(days))
	for _, day := range days {
		plan := DailyPlan{Day: day}
		for _, attr := range attractions[day] {
			plan.Schedule = append(plan.Schedule, ScheduleItem{
				Time:   "09:00-12:00",
				Type:   "attraction",
				Name:   attr.Name,
				Cost:   attr.TicketPrice,
				Reason: attr.Reason,
			})
		}
		for _, rest := range food[day] {
			mealType := rest.MealType
			if mealType == "" {
				mealType = "lunch"
			}
			plan.Schedule = append(plan.Schedule, ScheduleItem{
				Time:   "12:00-13:30",
				Type:   mealType,
				Name:   rest.Name,
				Cost:   rest.AvgPrice,
				Reason: rest.Reason,
			})
		}
		for _, item := range plan.Schedule {
			plan.DailyCost += item.Cost
		}
		plans = append(plans, plan)
	}
	return plans
}

func buildBreakdown(req statex.Requirements, transport *statex.TransportChoice, sel statex.Selections) BudgetBreakdown {
	var breakdown BudgetBreakdown

	breakdown.Transport = transportTotal(transport)
	if sel.Accommodation != nil {
		breakdown.Accommodation = sel.Accommodation.TotalCost
	}
	for _, items := range sel.AttractionsByDay {
		for _, attr := range items {
			breakdown.Attractions += attr.TicketPrice
		}
	}
	for _, items := range sel.FoodByDay {
		for _, rest := range items {
			breakdown.Food += rest.AvgPrice
		}
	}
	if req.Budget > 0 {
		breakdown.Misc = req.Budget * 0.10
	} else {
		breakdown.Misc = defaultMiscBudget
	}
	breakdown.Total = breakdown.Transport + breakdown.Attractions +
		breakdown.Food + breakdown.Accommodation + breakdown.Misc
	return breakdown
}

// transportTotal resolves the round-trip cost: the first non-zero source
// wins, in the order stated total, leg sum, flat fare doubled.
func transportTotal(transport *statex.TransportChoice) float64 {
	if transport == nil {
		return 0
	}
	if transport.TotalCost > 0 {
		return transport.TotalCost
	}
	if transport.Outbound != nil && transport.Return != nil {
		if sum := transport.Outbound.Cost + transport.Return.Cost; sum > 0 {
			return sum
		}
	}
	if transport.Cost > 0 {
		return transport.Cost * 2
	}
	return 0
}

func buildTips(preferences []string, companionType string) []string {
	tips := []string{
		"Book attraction tickets ahead of time for better prices.",
		"Public transport is the cheap and easy way to get around town.",
		"Carry your ID and any documents you may need.",
		"Check the weather forecast and pack for it.",
	}

	prefs := make(map[string]struct{}, len(preferences))
	for _, p := range preferences {
		prefs[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	if _, ok := prefs["food"]; ok {
		tips = append(tips, "Ask hotel staff where the locals actually eat.")
	}
	if _, ok := prefs["nature"]; ok {
		tips = append(tips, "Wear comfortable shoes for the scenic areas.")
	}
	if _, ok := prefs["culture"]; ok {
		tips = append(tips, "A guided tour adds a lot at the historic sites.")
	}

	switch strings.ToLower(strings.TrimSpace(companionType)) {
	case "family":
		tips = append(tips,
			"Pack basic medicine and snacks for the kids.",
			"Keep the daily schedule loose so nobody burns out.",
		)
	case "couple":
		tips = append(tips,
			"Leave an evening free for a proper dinner for two.",
			"Look into the local night-time activities.",
		)
	case "friends":
		tips = append(tips,
			"Groups often qualify for discounted tickets.",
			"Split the photo duty so everyone ends up in the shots.",
		)
	case "solo":
		tips = append(tips,
			"Share your day plan with someone back home.",
			"Hostel common rooms are the easy way to meet other travellers.",
		)
	}
	return tips
}

func fallbackItinerary(req statex.Requirements) Itinerary {
	return Itinerary{
		Destination:    req.Destination,
		DepartureCity:  req.DepartureCity,
		Days:           req.Days,
		TotalBudget:    req.Budget,
		CompanionType:  req.CompanionType,
		CompanionCount: req.CompanionCount,
		DailyPlans:     []DailyPlan{},
		BudgetBreakdown: BudgetBreakdown{
			Transport:     0,
			Attractions:   500,
			Food:          1000,
			Accommodation: 0,
			Misc:          500,
			Total:         2000,
		},
		Tips: []string{
			"This is a simplified plan; adjust it to your situation.",
			"Booking ahead usually gets you better prices.",
		},
	}
}
