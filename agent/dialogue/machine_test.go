package dialogue

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	contractx "github.com/voyplan/voyplan/agent/contract"
	statex "github.com/voyplan/voyplan/agent/state"
)

type fakeExtractor struct {
	patch contractx.RequirementsPatch
	err   error
	calls int
}

func (f *fakeExtractor) Extract(ctx context.Context, history []contractx.DialogueMessage, utterance string) (contractx.RequirementsPatch, error) {
	f.calls++
	if f.err != nil {
		return contractx.RequirementsPatch{}, f.err
	}
	return f.patch, nil
}

type fakeClassifier struct {
	confirmed bool
	err       error
}

func (f *fakeClassifier) Classify(ctx context.Context, utterance string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.confirmed, nil
}

type fakeTransportCatalog struct {
	options []contractx.TransportOption
	err     error

	gotDeparture string
	gotPartySize int
}

func (f *fakeTransportCatalog) Options(ctx context.Context, departureCity, destinationCity, travelDate string, partySize int) ([]contractx.TransportOption, error) {
	f.gotDeparture = departureCity
	f.gotPartySize = partySize
	if f.err != nil {
		return nil, f.err
	}
	return f.options, nil
}

type fakeAttractionCatalog struct {
	attractions []contractx.Attraction
	err         error
}

func (f *fakeAttractionCatalog) Query(ctx context.Context, city string, preferences []string, topK int, budgetMax float64) ([]contractx.Attraction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.attractions, nil
}

type fakeFoodCatalog struct {
	restaurants []contractx.Restaurant
	err         error
}

func (f *fakeFoodCatalog) Query(ctx context.Context, city string, preferences []string, priceMax float64, topK int) ([]contractx.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.restaurants, nil
}

type fakeHotelCatalog struct {
	hotels []contractx.Hotel
	err    error

	gotBudgetPerNight float64
	gotNights         int
}

func (f *fakeHotelCatalog) Query(ctx context.Context, city string, attractions []contractx.Attraction, budgetPerNight float64, nights, partySize, topK int) ([]contractx.Hotel, error) {
	f.gotBudgetPerNight = budgetPerNight
	f.gotNights = nights
	if f.err != nil {
		return nil, f.err
	}
	return f.hotels, nil
}

type fixture struct {
	machine    *Machine
	extractor  *fakeExtractor
	classifier *fakeClassifier
	transport  *fakeTransportCatalog
	attraction *fakeAttractionCatalog
	food       *fakeFoodCatalog
	hotels     *fakeHotelCatalog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		extractor:  &fakeExtractor{},
		classifier: &fakeClassifier{confirmed: true},
		transport: &fakeTransportCatalog{
			options: []contractx.TransportOption{
				{ID: "t1", Method: "plane", Cost: 800, TotalCost: 800},
				{ID: "t2", Method: "high-speed rail", Cost: 300, TotalCost: 300, Recommended: true},
			},
		},
		attraction: &fakeAttractionCatalog{
			attractions: []contractx.Attraction{
				{Name: "West Lake", TicketPrice: 0},
				{Name: "Lingyin Temple", TicketPrice: 75},
				{Name: "Leifeng Pagoda", TicketPrice: 40},
				{Name: "Xixi Wetland", TicketPrice: 80},
				{Name: "Hefang Street", TicketPrice: 0},
				{Name: "Longjing Village", TicketPrice: 0},
			},
		},
		food: &fakeFoodCatalog{
			restaurants: []contractx.Restaurant{
				{Name: "Grandma's Home", AvgPrice: 80},
				{Name: "Lou Wai Lou", AvgPrice: 150},
			},
		},
		hotels: &fakeHotelCatalog{
			hotels: []contractx.Hotel{
				{Name: "Home Inn", PricePerNight: 220, Nights: 2, TotalCost: 440},
				{Name: "Atour", PricePerNight: 420, Nights: 2, TotalCost: 840, Recommended: true},
				{Name: "Ji Hotel", PricePerNight: 350, Nights: 2, TotalCost: 700},
			},
		},
	}
	machine, err := NewMachine(f.extractor, f.classifier, f.transport, f.attraction, f.food, f.hotels)
	if err != nil {
		t.Fatalf("NewMachine() error = %v", err)
	}
	f.machine = machine
	return f
}

func sessionAt(stage statex.Stage) *statex.Session {
	s := statex.NewSession("s-1", time.Now())
	s.CurrentStage = stage
	return s
}

func completeSession(stage statex.Stage) *statex.Session {
	s := sessionAt(stage)
	s.Requirements.Apply(contractx.RequirementsPatch{
		Destination: "Hangzhou",
		Days:        3,
		Budget:      3000,
		Preferences: []string{"culture", "food"},
	})
	return s
}

func TestGreetingWithFullRequirementsGoesToConfirming(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.extractor.patch = contractx.RequirementsPatch{
		Destination: "Hangzhou",
		Days:        3,
		Budget:      3000,
		Preferences: []string{"culture", "food"},
	}

	session := sessionAt(statex.StageGreeting)
	result := f.machine.Step(context.Background(), session, Input{Text: "I want to go to Hangzhou for 3 days, budget 3000, I like culture and food"})

	if session.CurrentStage != statex.StageConfirming {
		t.Fatalf("stage = %q, want confirming", session.CurrentStage)
	}
	req := session.Requirements
	if req.Destination != "Hangzhou" || req.Days != 3 || req.Budget != 3000 {
		t.Fatalf("requirements not merged: %+v", req)
	}
	if !req.IsComplete() {
		t.Fatal("requirements should be complete")
	}
	if !strings.Contains(result.Reply, "Hangzhou") {
		t.Fatalf("summary should mention the destination, got %q", result.Reply)
	}
}

func TestGreetingPartialAsksForMissing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.extractor.patch = contractx.RequirementsPatch{Destination: "Hangzhou"}

	session := sessionAt(statex.StageGreeting)
	result := f.machine.Step(context.Background(), session, Input{Text: "I want to visit Hangzhou"})

	if session.CurrentStage != statex.StageCollecting {
		t.Fatalf("stage = %q, want collecting", session.CurrentStage)
	}
	if !strings.Contains(result.Reply, "How many days") {
		t.Fatalf("reply should ask for days, got %q", result.Reply)
	}
	if strings.Contains(result.Reply, "Where would you like to go?") {
		t.Fatal("reply should not re-ask for a collected field")
	}
}

func TestExtractorFailureDegradesSilently(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.extractor.err = errors.New("model down")

	session := sessionAt(statex.StageGreeting)
	result := f.machine.Step(context.Background(), session, Input{Text: "hello"})

	if session.CurrentStage != statex.StageCollecting {
		t.Fatalf("stage = %q, want collecting despite extractor failure", session.CurrentStage)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Code != contractx.WarnExtractionDegraded {
		t.Fatalf("warnings = %#v, want one extraction_degraded", result.Warnings)
	}
	if result.Reply == "" {
		t.Fatal("reply must not be empty")
	}
}

func TestConfirmYesQueriesTransportWithDefaults(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	session := completeSession(statex.StageConfirming)

	result := f.machine.Step(context.Background(), session, Input{Text: "yes"})

	if session.CurrentStage != statex.StageWaitingTransport {
		t.Fatalf("stage = %q, want waiting_transport_selection", session.CurrentStage)
	}
	if f.transport.gotDeparture != "Beijing" {
		t.Fatalf("departure = %q, want defaulted Beijing", f.transport.gotDeparture)
	}
	if f.transport.gotPartySize != 1 {
		t.Fatalf("party size = %d, want defaulted 1", f.transport.gotPartySize)
	}
	if result.Recommendation == nil || result.Recommendation.Kind != contractx.RecommendTransport {
		t.Fatalf("recommendation = %#v, want transport kind", result.Recommendation)
	}
	if session.LastRecommendation == nil {
		t.Fatal("recommendation should be stored on the session")
	}
}

func TestConfirmNoReturnsToCollecting(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.classifier.confirmed = false
	session := completeSession(statex.StageConfirming)

	result := f.machine.Step(context.Background(), session, Input{Text: "no, change the budget"})

	if session.CurrentStage != statex.StageCollecting {
		t.Fatalf("stage = %q, want collecting", session.CurrentStage)
	}
	if !strings.Contains(result.Reply, "change") {
		t.Fatalf("reply = %q, want change invitation", result.Reply)
	}
}

func TestClassifierFailureFallsBackToKeywords(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.classifier.err = errors.New("model down")
	session := completeSession(statex.StageConfirming)

	result := f.machine.Step(context.Background(), session, Input{Text: "yes"})

	if session.CurrentStage != statex.StageWaitingTransport {
		t.Fatalf("stage = %q, want waiting_transport_selection via keyword fallback", session.CurrentStage)
	}
	found := false
	for _, w := range result.Warnings {
		if w.Code == contractx.WarnClassifierFallback {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings = %#v, want classifier_fallback", result.Warnings)
	}
}

func TestTransportCatalogFailureHoldsStage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.transport.err = errors.New("catalog down")
	session := completeSession(statex.StageConfirming)

	result := f.machine.Step(context.Background(), session, Input{Text: "yes"})

	if session.CurrentStage != statex.StageConfirming {
		t.Fatalf("stage = %q, want unchanged confirming", session.CurrentStage)
	}
	if result.Reply == "" {
		t.Fatal("apology reply must not be empty")
	}
	if session.LastRecommendation != nil {
		t.Fatal("failed transition must not store a recommendation")
	}
}

func TestTransportFreeTextKeywordMatch(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	session := completeSession(statex.StageWaitingTransport)
	session.LastRecommendation = &contractx.Recommendation{
		Kind: contractx.RecommendTransport,
		TransportOptions: []contractx.TransportOption{
			{Method: "plane", Cost: 800, TotalCost: 800},
			{Method: "high-speed rail", Cost: 300, TotalCost: 300},
		},
	}

	f.machine.Step(context.Background(), session, Input{Text: "I'd like to fly there"})

	if session.CurrentStage != statex.StageWaitingAttractions {
		t.Fatalf("stage = %q, want waiting_attractions_selection", session.CurrentStage)
	}
	choice := session.Selections.Transport
	if choice == nil || choice.Method != "plane" {
		t.Fatalf("transport choice = %#v, want plane", choice)
	}
	if choice.Cost != 800 {
		t.Fatalf("cost = %v, want 800 from the recommendation", choice.Cost)
	}
}

func TestTransportFreeTextDefaultsToRail(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	session := completeSession(statex.StageWaitingTransport)

	f.machine.Step(context.Background(), session, Input{Text: "whatever you think is best"})

	choice := session.Selections.Transport
	if choice == nil || choice.Method != "high-speed rail" {
		t.Fatalf("transport choice = %#v, want high-speed rail default", choice)
	}
}

func TestTransportStagePartitionsAttractions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	session := completeSession(statex.StageWaitingTransport)

	result := f.machine.Step(context.Background(), session, Input{Text: "train"})

	rec := result.Recommendation
	if rec == nil || rec.Kind != contractx.RecommendAttractions {
		t.Fatalf("recommendation = %#v, want attractions", rec)
	}
	total := 0
	for day, items := range rec.AttractionsByDay {
		if len(items) > 3 {
			t.Fatalf("day %d has %d attractions, want at most 3", day, len(items))
		}
		total += len(items)
	}
	if total != 6 {
		t.Fatalf("partition kept %d attractions, want all 6", total)
	}
}

func TestAttractionCatalogFailureKeepsTransportUnwritten(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.attraction.err = errors.New("catalog down")
	session := completeSession(statex.StageWaitingTransport)

	result := f.machine.Step(context.Background(), session, Input{Text: "train"})

	if session.CurrentStage != statex.StageWaitingTransport {
		t.Fatalf("stage = %q, want unchanged", session.CurrentStage)
	}
	if session.Selections.Transport != nil {
		t.Fatal("transport choice must not be committed when the follow-up catalog call fails")
	}
	found := false
	for _, w := range result.Warnings {
		if w.Code == contractx.WarnStageFailure {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings = %#v, want stage_failed", result.Warnings)
	}
}

func TestAttractionsBareConfirmReusesRecommendation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	session := completeSession(statex.StageWaitingAttractions)
	recommended := map[int][]contractx.Attraction{
		1: {{Name: "West Lake"}},
		2: {{Name: "Lingyin Temple", TicketPrice: 75}},
	}
	session.LastRecommendation = &contractx.Recommendation{
		Kind:             contractx.RecommendAttractions,
		AttractionsByDay: recommended,
	}

	f.machine.Step(context.Background(), session, Input{Text: "looks good"})

	if session.CurrentStage != statex.StageWaitingFood {
		t.Fatalf("stage = %q, want waiting_food_selection", session.CurrentStage)
	}
	got := session.Selections.AttractionsByDay
	if len(got) != 2 || got[2][0].Name != "Lingyin Temple" {
		t.Fatalf("attractions = %#v, want reused recommendation", got)
	}
}

func TestAttractionsStructuredChoiceMixedDayKeys(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	session := completeSession(statex.StageWaitingAttractions)

	f.machine.Step(context.Background(), session, Input{
		Selection: map[string]any{
			"choice": map[any]any{
				"1": []any{map[string]any{"name": "West Lake", "ticket_price": 0}},
				2:   []any{map[string]any{"name": "Leifeng Pagoda", "ticket_price": 40.0}},
			},
		},
	})

	got := session.Selections.AttractionsByDay
	if len(got) != 2 {
		t.Fatalf("day count = %d, want both string and int keys found", len(got))
	}
	if got[1][0].Name != "West Lake" || got[2][0].Name != "Leifeng Pagoda" {
		t.Fatalf("attractions = %#v", got)
	}
	if got[2][0].TicketPrice != 40 {
		t.Fatalf("ticket price = %v, want 40", got[2][0].TicketPrice)
	}
}

func TestFoodStageDerivesHotelQuery(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	session := completeSession(statex.StageWaitingFood)
	session.LastRecommendation = &contractx.Recommendation{
		Kind: contractx.RecommendFood,
		FoodByDay: map[int][]contractx.Restaurant{
			1: {{Name: "Grandma's Home", AvgPrice: 80, MealType: "lunch"}},
		},
	}

	result := f.machine.Step(context.Background(), session, Input{Text: "ok"})

	if session.CurrentStage != statex.StageWaitingAccommodation {
		t.Fatalf("stage = %q, want waiting_accommodation_selection", session.CurrentStage)
	}
	// budget 3000 / 3 days / 3 per the derived nightly budget rule
	if f.hotels.gotBudgetPerNight != 3000.0/3/3 {
		t.Fatalf("nightly budget = %v, want %v", f.hotels.gotBudgetPerNight, 3000.0/3/3)
	}
	if f.hotels.gotNights != 2 {
		t.Fatalf("nights = %d, want days-1 = 2", f.hotels.gotNights)
	}
	if result.Recommendation == nil || result.Recommendation.Kind != contractx.RecommendAccommodation {
		t.Fatalf("recommendation = %#v, want accommodation", result.Recommendation)
	}
	if session.Selections.FoodByDay == nil {
		t.Fatal("food selection should be committed")
	}
}

func TestAccommodationSelectionCompletesWithItinerary(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	session := completeSession(statex.StageWaitingAccommodation)
	session.Selections.Transport = &statex.TransportChoice{Method: "high-speed rail", Cost: 300, TotalCost: 600}
	session.Selections.AttractionsByDay = map[int][]contractx.Attraction{
		1: {{Name: "West Lake", TicketPrice: 0}},
	}
	session.Selections.FoodByDay = map[int][]contractx.Restaurant{
		1: {{Name: "Grandma's Home", AvgPrice: 80, MealType: "lunch"}},
	}

	result := f.machine.Step(context.Background(), session, Input{
		Selection: map[string]any{"name": "Hotel X", "total_cost": 700},
	})

	if session.CurrentStage != statex.StageCompleted {
		t.Fatalf("stage = %q, want completed", session.CurrentStage)
	}
	if result.Itinerary == nil {
		t.Fatal("result should carry the itinerary")
	}
	if result.Itinerary.Hotel == nil || result.Itinerary.Hotel.TotalCost != 700 {
		t.Fatalf("hotel = %#v, want total cost 700", result.Itinerary.Hotel)
	}
	if result.Itinerary.BudgetBreakdown.Accommodation != 700 {
		t.Fatalf("breakdown accommodation = %v, want 700", result.Itinerary.BudgetBreakdown.Accommodation)
	}
	if session.Selections.Accommodation == nil || session.Selections.Accommodation.Name != "Hotel X" {
		t.Fatalf("accommodation selection = %#v", session.Selections.Accommodation)
	}
}

func TestAccommodationWithoutSelectionUsesEmptyChoice(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	session := completeSession(statex.StageWaitingAccommodation)

	result := f.machine.Step(context.Background(), session, Input{Text: "skip the hotel"})

	if session.CurrentStage != statex.StageCompleted {
		t.Fatalf("stage = %q, want completed", session.CurrentStage)
	}
	if session.Selections.Accommodation == nil {
		t.Fatal("an empty accommodation choice should still be recorded")
	}
	if result.Itinerary.BudgetBreakdown.Accommodation != 0 {
		t.Fatalf("breakdown accommodation = %v, want 0", result.Itinerary.BudgetBreakdown.Accommodation)
	}
}

func TestCompletedStageIsIdempotent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	session := completeSession(statex.StageCompleted)

	result := f.machine.Step(context.Background(), session, Input{Text: "plan another day"})

	if session.CurrentStage != statex.StageCompleted {
		t.Fatalf("stage = %q, want completed unchanged", session.CurrentStage)
	}
	if !strings.Contains(result.Reply, "new session") {
		t.Fatalf("reply = %q, want replan hint", result.Reply)
	}
}

func TestMalformedTransportSelectionHoldsStage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	session := completeSession(statex.StageWaitingTransport)

	result := f.machine.Step(context.Background(), session, Input{
		Selection: map[string]any{"cost": 300},
	})

	if session.CurrentStage != statex.StageWaitingTransport {
		t.Fatalf("stage = %q, want unchanged on malformed selection", session.CurrentStage)
	}
	if session.Selections.Transport != nil {
		t.Fatal("malformed selection must not be committed")
	}
	if result.Reply == "" {
		t.Fatal("apology reply must not be empty")
	}
}
