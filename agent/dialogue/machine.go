// Package dialogue implements the conversation stage machine: one linear
// pipeline from greeting through requirement collection, confirmation and
// the four selection stages to the finished itinerary. Step is the single
// entry point; it mutates the session in place and always produces a
// user-displayable reply. A failed side effect never advances the stage and
// never leaves a partial selection behind: every handler computes its full
// result first and commits session writes last.
package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	contractx "github.com/voyplan/voyplan/agent/contract"
	"github.com/voyplan/voyplan/agent/itinerary"
	"github.com/voyplan/voyplan/agent/nlu"
	statex "github.com/voyplan/voyplan/agent/state"
)

// Input is one user turn: free text plus an optional structured selection
// payload from a richer client.
type Input struct {
	Text      string
	Selection map[string]any
}

// Result is what one turn produced. Warnings carry the non-fatal degrades
// that happened along the way, so callers and tests can observe them.
type Result struct {
	Reply          string
	Recommendation *contractx.Recommendation
	Itinerary      *itinerary.Itinerary
	Warnings       []contractx.Warning
}

type Machine struct {
	extractor   contractx.RequirementExtractor
	classifier  contractx.ConfirmationClassifier
	transport   contractx.TransportCatalog
	attractions contractx.AttractionCatalog
	food        contractx.FoodCatalog
	hotels      contractx.AccommodationCatalog
}

func NewMachine(
	extractor contractx.RequirementExtractor,
	classifier contractx.ConfirmationClassifier,
	transport contractx.TransportCatalog,
	attractions contractx.AttractionCatalog,
	food contractx.FoodCatalog,
	hotels contractx.AccommodationCatalog,
) (*Machine, error) {
	if extractor == nil {
		return nil, errors.New("requirement extractor is required")
	}
	if classifier == nil {
		return nil, errors.New("confirmation classifier is required")
	}
	if transport == nil || attractions == nil || food == nil || hotels == nil {
		return nil, errors.New("all four catalogs are required")
	}
	return &Machine{
		extractor:   extractor,
		classifier:  classifier,
		transport:   transport,
		attractions: attractions,
		food:        food,
		hotels:      hotels,
	}, nil
}

// Step advances the session by one turn. It never returns an error: every
// failure path degrades to a reply with the stage unchanged.
func (m *Machine) Step(ctx context.Context, session *statex.Session, in Input) Result {
	switch session.CurrentStage {
	case statex.StageGreeting:
		return m.handleGreeting(ctx, session, in)
	case statex.StageCollecting:
		return m.handleCollecting(ctx, session, in)
	case statex.StageConfirming:
		return m.handleConfirming(ctx, session, in)
	case statex.StageWaitingTransport:
		return m.handleTransportSelection(ctx, session, in)
	case statex.StageWaitingAttractions:
		return m.handleAttractionsSelection(ctx, session, in)
	case statex.StageWaitingFood:
		return m.handleFoodSelection(ctx, session, in)
	case statex.StageWaitingAccommodation:
		return m.handleAccommodationSelection(ctx, session, in)
	case statex.StageCompleted:
		return Result{Reply: completedReply()}
	default:
		log.Error().Str("stage", string(session.CurrentStage)).Msg("unknown dialogue stage")
		return Result{Reply: apologyReply()}
	}
}

func (m *Machine) handleGreeting(ctx context.Context, session *statex.Session, in Input) Result {
	warnings := m.extractAndMerge(ctx, session, in.Text)

	if session.Requirements.IsComplete() {
		session.CurrentStage = statex.StageConfirming
		return Result{Reply: confirmationSummary(&session.Requirements), Warnings: warnings}
	}
	session.CurrentStage = statex.StageCollecting
	return Result{Reply: greetingReply(&session.Requirements), Warnings: warnings}
}

func (m *Machine) handleCollecting(ctx context.Context, session *statex.Session, in Input) Result {
	warnings := m.extractAndMerge(ctx, session, in.Text)

	if session.Requirements.IsComplete() {
		session.CurrentStage = statex.StageConfirming
		return Result{Reply: confirmationSummary(&session.Requirements), Warnings: warnings}
	}
	return Result{Reply: followUpReply(&session.Requirements), Warnings: warnings}
}

func (m *Machine) handleConfirming(ctx context.Context, session *statex.Session, in Input) Result {
	confirmed, warnings := m.classify(ctx, in.Text)
	if !confirmed {
		session.CurrentStage = statex.StageCollecting
		return Result{Reply: rejectionReply(), Warnings: warnings}
	}

	req := &session.Requirements
	departure := req.DepartureCity
	if departure == "" {
		departure = "Beijing"
	}
	partySize := req.CompanionCount
	if partySize < 1 {
		partySize = 1
	}

	options, err := m.transport.Options(ctx, departure, req.Destination, req.TravelDates, partySize)
	if err != nil || len(options) == 0 {
		return m.stageFailure(session, "transport catalog", err, warnings)
	}

	rec := &contractx.Recommendation{
		ID:               uuid.NewString(),
		Kind:             contractx.RecommendTransport,
		Prompt:           transportPrompt(options),
		TransportOptions: options,
	}
	session.LastRecommendation = rec
	session.CurrentStage = statex.StageWaitingTransport
	return Result{Reply: rec.Prompt, Recommendation: rec, Warnings: warnings}
}

func (m *Machine) handleTransportSelection(ctx context.Context, session *statex.Session, in Input) Result {
	var warnings []contractx.Warning

	choice, err := m.resolveTransportChoice(session, in)
	if err != nil {
		return m.stageFailure(session, "transport selection", err, warnings)
	}

	req := &session.Requirements
	days := req.Days
	if days < 1 {
		days = 1
	}
	candidates, err := m.attractions.Query(ctx, req.Destination, req.Preferences, days*3, req.Budget)
	if err != nil || len(candidates) == 0 {
		return m.stageFailure(session, "attraction catalog", err, warnings)
	}
	byDay := partitionAcrossDays(candidates, days)

	rec := &contractx.Recommendation{
		ID:               uuid.NewString(),
		Kind:             contractx.RecommendAttractions,
		Prompt:           attractionsPrompt(byDay),
		AttractionsByDay: byDay,
	}

	// Commit only after every side effect has succeeded.
	session.Selections.Transport = choice
	session.LastRecommendation = rec
	session.CurrentStage = statex.StageWaitingAttractions
	return Result{Reply: rec.Prompt, Recommendation: rec, Warnings: warnings}
}

func (m *Machine) handleAttractionsSelection(ctx context.Context, session *statex.Session, in Input) Result {
	var warnings []contractx.Warning

	byDay, err := m.resolveAttractionsChoice(session, in)
	if err != nil {
		return m.stageFailure(session, "attractions selection", err, warnings)
	}

	req := &session.Requirements
	days := req.Days
	if days < 1 {
		days = 1
	}
	restaurants, err := m.food.Query(ctx, req.Destination, req.Preferences, 0, days*2)
	if err != nil || len(restaurants) == 0 {
		return m.stageFailure(session, "food catalog", err, warnings)
	}
	foodByDay := assignMealsPerDay(restaurants, days)

	rec := &contractx.Recommendation{
		ID:        uuid.NewString(),
		Kind:      contractx.RecommendFood,
		Prompt:    foodPrompt(foodByDay),
		FoodByDay: foodByDay,
	}

	session.Selections.AttractionsByDay = byDay
	session.LastRecommendation = rec
	session.CurrentStage = statex.StageWaitingFood
	return Result{Reply: rec.Prompt, Recommendation: rec, Warnings: warnings}
}

func (m *Machine) handleFoodSelection(ctx context.Context, session *statex.Session, in Input) Result {
	var warnings []contractx.Warning

	foodByDay, err := m.resolveFoodChoice(session, in)
	if err != nil {
		return m.stageFailure(session, "food selection", err, warnings)
	}

	req := &session.Requirements
	days := req.Days
	if days < 1 {
		days = 1
	}
	nights := days - 1
	if nights < 1 {
		nights = 1
	}
	partySize := req.CompanionCount
	if partySize < 1 {
		partySize = 1
	}
	var nightlyBudget float64
	if req.Budget > 0 {
		nightlyBudget = req.Budget / float64(days) / 3
	}

	var anchors []contractx.Attraction
	for _, items := range session.Selections.AttractionsByDay {
		anchors = append(anchors, items...)
	}

	hotels, err := m.hotels.Query(ctx, req.Destination, anchors, nightlyBudget, nights, partySize, 5)
	if err != nil || len(hotels) == 0 {
		return m.stageFailure(session, "accommodation catalog", err, warnings)
	}

	rec := &contractx.Recommendation{
		ID:           uuid.NewString(),
		Kind:         contractx.RecommendAccommodation,
		Prompt:       hotelsPrompt(hotels),
		HotelOptions: hotels,
	}

	session.Selections.FoodByDay = foodByDay
	session.LastRecommendation = rec
	session.CurrentStage = statex.StageWaitingAccommodation
	return Result{Reply: rec.Prompt, Recommendation: rec, Warnings: warnings}
}

func (m *Machine) handleAccommodationSelection(ctx context.Context, session *statex.Session, in Input) Result {
	var warnings []contractx.Warning

	choice, err := resolveAccommodationChoice(in)
	if err != nil {
		return m.stageFailure(session, "accommodation selection", err, warnings)
	}

	// The aggregator reads the final selections snapshot, so stage the
	// accommodation write on a copy first.
	selections := session.Selections
	selections.Accommodation = choice

	doc, aggWarnings := itinerary.Build(session.Requirements, selections)
	warnings = append(warnings, aggWarnings...)

	session.Selections.Accommodation = choice
	session.LastRecommendation = nil
	session.CurrentStage = statex.StageCompleted
	return Result{
		Reply:     itineraryReply(&doc),
		Itinerary: &doc,
		Warnings:  warnings,
	}
}

// extractAndMerge runs the extractor and folds the patch into the
// requirements. Extractor failure degrades silently: the turn proceeds as
// if nothing new was said.
func (m *Machine) extractAndMerge(ctx context.Context, session *statex.Session, text string) []contractx.Warning {
	patch, err := m.extractor.Extract(ctx, session.RecentHistory(5), text)
	if err != nil {
		log.Warn().Err(err).Str("session_id", session.SessionID).Msg("requirement extraction failed")
		return []contractx.Warning{{
			Code:    contractx.WarnExtractionDegraded,
			Message: "could not extract trip details from the last message",
		}}
	}
	session.Requirements.Apply(patch)
	return nil
}

func (m *Machine) classify(ctx context.Context, text string) (bool, []contractx.Warning) {
	confirmed, err := m.classifier.Classify(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("confirmation classifier failed, using keyword fallback")
		return nlu.KeywordConfirmation(text), []contractx.Warning{{
			Code:    contractx.WarnClassifierFallback,
			Message: "confirmation intent resolved by keyword matching",
		}}
	}
	return confirmed, nil
}

func (m *Machine) stageFailure(session *statex.Session, operation string, err error, warnings []contractx.Warning) Result {
	log.Error().Err(err).
		Str("session_id", session.SessionID).
		Str("stage", string(session.CurrentStage)).
		Str("operation", operation).
		Msg("stage side effect failed, holding stage")
	warnings = append(warnings, contractx.Warning{
		Code:    contractx.WarnStageFailure,
		Message: fmt.Sprintf("%s failed, please try again", operation),
	})
	return Result{Reply: apologyReply(), Warnings: warnings}
}

// resolveTransportChoice prefers a structured selection; free text is
// keyword-matched against the known methods, defaulting to high-speed rail.
func (m *Machine) resolveTransportChoice(session *statex.Session, in Input) (*statex.TransportChoice, error) {
	if len(in.Selection) > 0 {
		return decodeTransportSelection(in.Selection)
	}

	method := matchTransportMethod(in.Text)
	choice := &statex.TransportChoice{Method: method}
	if rec := session.LastRecommendation; rec != nil && rec.Kind == contractx.RecommendTransport {
		for _, opt := range rec.TransportOptions {
			if opt.Method == method {
				choice.Cost = opt.Cost
				choice.TotalCost = opt.TotalCost * 2
				break
			}
		}
	}
	return choice, nil
}

func (m *Machine) resolveAttractionsChoice(session *statex.Session, in Input) (map[int][]contractx.Attraction, error) {
	if choice, ok := in.Selection["choice"]; ok {
		return decodeDayLists[contractx.Attraction](choice)
	}
	rec := session.LastRecommendation
	if rec == nil || rec.Kind != contractx.RecommendAttractions || len(rec.AttractionsByDay) == 0 {
		return nil, fmt.Errorf("%w: no attraction recommendation to confirm", contractx.ErrValidation)
	}
	return rec.AttractionsByDay, nil
}

func (m *Machine) resolveFoodChoice(session *statex.Session, in Input) (map[int][]contractx.Restaurant, error) {
	if choice, ok := in.Selection["choice"]; ok {
		return decodeDayLists[contractx.Restaurant](choice)
	}
	rec := session.LastRecommendation
	if rec == nil || rec.Kind != contractx.RecommendFood || len(rec.FoodByDay) == 0 {
		return nil, fmt.Errorf("%w: no food recommendation to confirm", contractx.ErrValidation)
	}
	return rec.FoodByDay, nil
}

func resolveAccommodationChoice(in Input) (*statex.AccommodationChoice, error) {
	if len(in.Selection) == 0 {
		return &statex.AccommodationChoice{}, nil
	}
	return decodeHotelSelection(in.Selection)
}

var transportKeywords = []struct {
	method string
	tokens []string
}{
	{"plane", []string{"plane", "flight", "fly", "air"}},
	{"high-speed rail", []string{"high-speed", "high speed", "rail", "bullet"}},
	{"self-drive", []string{"self-drive", "self drive", "drive", "driving", "car"}},
	{"train", []string{"train"}},
}

func matchTransportMethod(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range transportKeywords {
		for _, token := range entry.tokens {
			if strings.Contains(lower, token) {
				return entry.method
			}
		}
	}
	return "high-speed rail"
}

// partitionAcrossDays spreads candidates evenly over the trip days, at most
// three per day.
func partitionAcrossDays(candidates []contractx.Attraction, days int) map[int][]contractx.Attraction {
	perDay := (len(candidates) + days - 1) / days
	if perDay > 3 {
		perDay = 3
	}
	if perDay < 1 {
		perDay = 1
	}

	byDay := make(map[int][]contractx.Attraction, days)
	idx := 0
	for day := 1; day <= days && idx < len(candidates); day++ {
		end := idx + perDay
		if end > len(candidates) {
			end = len(candidates)
		}
		byDay[day] = append([]contractx.Attraction(nil), candidates[idx:end]...)
		idx = end
	}
	return byDay
}

// assignMealsPerDay gives every day a lunch and a dinner, cycling through
// the candidates when there are fewer restaurants than meal slots.
func assignMealsPerDay(restaurants []contractx.Restaurant, days int) map[int][]contractx.Restaurant {
	byDay := make(map[int][]contractx.Restaurant, days)
	idx := 0
	for day := 1; day <= days; day++ {
		lunch := restaurants[idx%len(restaurants)]
		lunch.MealType = "lunch"
		idx++
		dinner := restaurants[idx%len(restaurants)]
		dinner.MealType = "dinner"
		idx++
		byDay[day] = []contractx.Restaurant{lunch, dinner}
	}
	return byDay
}
