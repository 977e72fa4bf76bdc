package dialogue

import (
	"fmt"
	"strings"

	contractx "github.com/voyplan/voyplan/agent/contract"
	"github.com/voyplan/voyplan/agent/itinerary"
	statex "github.com/voyplan/voyplan/agent/state"
)

func greetingReply(req *statex.Requirements) string {
	var b strings.Builder
	b.WriteString("Hello! I'm your travel planning assistant. ")
	b.WriteString("I can plan trips across Guangdong, Jiangsu and Zhejiang, with Hangzhou covered in the most detail.\n")
	appendCollected(&b, req)
	appendQuestions(&b, req)
	return b.String()
}

func followUpReply(req *statex.Requirements) string {
	var b strings.Builder
	appendCollected(&b, req)
	appendQuestions(&b, req)
	return strings.TrimSpace(b.String())
}

// appendCollected echoes back what is already known, so the user can see
// the plan taking shape.
func appendCollected(b *strings.Builder, req *statex.Requirements) {
	var lines []string
	if req.Destination != "" {
		dest := req.Destination
		if req.Province != "" {
			dest += " (" + req.Province + ")"
		}
		lines = append(lines, "destination: "+dest)
	}
	if req.Days > 0 {
		lines = append(lines, fmt.Sprintf("days: %d", req.Days))
	}
	if req.Budget > 0 {
		lines = append(lines, fmt.Sprintf("budget: %.0f yuan", req.Budget))
	}
	if len(req.Preferences) > 0 {
		lines = append(lines, "interests: "+strings.Join(req.Preferences, ", "))
	}
	if req.DepartureCity != "" {
		lines = append(lines, "departing from: "+req.DepartureCity)
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString("So far I have:\n")
	for _, line := range lines {
		b.WriteString("  - " + line + "\n")
	}
}

var fieldQuestions = map[string]string{
	statex.FieldDestination:    "Where would you like to go?",
	statex.FieldDays:           "How many days will the trip be?",
	statex.FieldBudget:         "What's your total budget?",
	statex.FieldPreferences:    "What are you interested in? (nature, culture, food...)",
	statex.FieldDepartureCity:  "Which city are you departing from?",
	statex.FieldCompanionType:  "Who is travelling with you? (solo, couple, family, friends)",
	statex.FieldCompanionCount: "How many people are travelling in total?",
}

func appendQuestions(b *strings.Builder, req *statex.Requirements) {
	missing := req.MissingFields()
	if len(missing) == 0 {
		missing = req.SoftMissingFields()
	}
	for _, field := range missing {
		if q, ok := fieldQuestions[field]; ok {
			b.WriteString(q + "\n")
		}
	}
}

func confirmationSummary(req *statex.Requirements) string {
	var b strings.Builder
	b.WriteString("Here's what I have for your trip:\n")
	dest := req.Destination
	if req.Province != "" {
		dest += " (" + req.Province + ")"
	}
	b.WriteString(fmt.Sprintf("  - destination: %s\n", dest))
	b.WriteString(fmt.Sprintf("  - days: %d\n", req.Days))
	b.WriteString(fmt.Sprintf("  - budget: %.0f yuan\n", req.Budget))
	b.WriteString(fmt.Sprintf("  - interests: %s\n", strings.Join(req.Preferences, ", ")))
	if req.DepartureCity != "" {
		b.WriteString(fmt.Sprintf("  - departing from: %s\n", req.DepartureCity))
	}
	if req.CompanionType != "" {
		b.WriteString(fmt.Sprintf("  - travelling as: %s", req.CompanionType))
		if req.CompanionCount > 1 {
			b.WriteString(fmt.Sprintf(" (%d people)", req.CompanionCount))
		}
		b.WriteString("\n")
	}
	b.WriteString("Shall I start planning? (yes / tell me what to change)")
	return b.String()
}

func rejectionReply() string {
	return "No problem. Tell me what you'd like to change and I'll update the plan."
}

func transportPrompt(options []contractx.TransportOption) string {
	var b strings.Builder
	b.WriteString("Great! Here are the ways to get there:\n")
	for i, opt := range options {
		marker := " "
		if opt.Recommended {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s - %.0f yuan per person, %s\n", marker, i+1, opt.Method, opt.Cost, opt.Duration))
	}
	b.WriteString("Which one would you like? (* is my pick)")
	return b.String()
}

func attractionsPrompt(byDay map[int][]contractx.Attraction) string {
	var b strings.Builder
	b.WriteString("Transport noted. Here's a sightseeing plan:\n")
	for _, day := range sortedDays(byDay) {
		b.WriteString(fmt.Sprintf("Day %d:\n", day))
		for _, attr := range byDay[day] {
			price := "free"
			if attr.TicketPrice > 0 {
				price = fmt.Sprintf("%.0f yuan", attr.TicketPrice)
			}
			b.WriteString(fmt.Sprintf("  - %s (%s)\n", attr.Name, price))
		}
	}
	b.WriteString("Happy with this, or would you like changes?")
	return b.String()
}

func foodPrompt(byDay map[int][]contractx.Restaurant) string {
	var b strings.Builder
	b.WriteString("Attractions locked in. Here's where to eat:\n")
	for _, day := range sortedDays(byDay) {
		b.WriteString(fmt.Sprintf("Day %d:\n", day))
		for _, rest := range byDay[day] {
			b.WriteString(fmt.Sprintf("  - %s: %s (~%.0f yuan per person)\n", rest.MealType, rest.Name, rest.AvgPrice))
		}
	}
	b.WriteString("Happy with this, or would you like changes?")
	return b.String()
}

func hotelsPrompt(hotels []contractx.Hotel) string {
	var b strings.Builder
	b.WriteString("Meals sorted. Finally, a place to stay:\n")
	for i, hotel := range hotels {
		marker := " "
		if hotel.Recommended {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s - %.0f yuan/night, %.0f total for %d night(s)\n",
			marker, i+1, hotel.Name, hotel.PricePerNight, hotel.TotalCost, hotel.Nights))
	}
	b.WriteString("Which one would you like? (* is my pick)")
	return b.String()
}

func itineraryReply(doc *itinerary.Itinerary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Your %d-day trip to %s is ready!\n\n", doc.Days, doc.Destination))

	for _, plan := range doc.DailyPlans {
		b.WriteString(fmt.Sprintf("Day %d (%.0f yuan):\n", plan.Day, plan.DailyCost))
		for _, item := range plan.Schedule {
			b.WriteString(fmt.Sprintf("  %s  %s: %s\n", item.Time, item.Type, item.Name))
		}
	}

	if doc.Hotel != nil && doc.Hotel.Name != "" {
		b.WriteString(fmt.Sprintf("\nStay: %s, %.0f yuan total\n", doc.Hotel.Name, doc.Hotel.TotalCost))
	}

	bd := doc.BudgetBreakdown
	b.WriteString("\nBudget breakdown:\n")
	b.WriteString(fmt.Sprintf("  transport: %.0f\n", bd.Transport))
	b.WriteString(fmt.Sprintf("  attractions: %.0f\n", bd.Attractions))
	b.WriteString(fmt.Sprintf("  food: %.0f\n", bd.Food))
	b.WriteString(fmt.Sprintf("  accommodation: %.0f\n", bd.Accommodation))
	b.WriteString(fmt.Sprintf("  misc: %.0f\n", bd.Misc))
	b.WriteString(fmt.Sprintf("  total: %.0f yuan\n", bd.Total))

	if len(doc.Tips) > 0 {
		b.WriteString("\nTips:\n")
		for _, tip := range doc.Tips {
			b.WriteString("  - " + tip + "\n")
		}
	}
	b.WriteString("\nHave a wonderful trip!")
	return b.String()
}

func completedReply() string {
	return "Your trip is already planned. Start a new session if you'd like to plan another one."
}

func apologyReply() string {
	return "Sorry, something went wrong on my side. Could you try that again?"
}
