package contract

import "context"

// RequirementExtractor turns free-form user text into a partial requirements
// patch. Failures degrade silently at the call site; the turn proceeds as if
// nothing new was extracted.
type RequirementExtractor interface {
	Extract(ctx context.Context, history []DialogueMessage, utterance string) (RequirementsPatch, error)
}

// ConfirmationClassifier maps free text to an affirm/reject boolean.
type ConfirmationClassifier interface {
	Classify(ctx context.Context, utterance string) (bool, error)
}

type TransportCatalog interface {
	Options(ctx context.Context, departureCity, destinationCity, travelDate string, partySize int) ([]TransportOption, error)
}

type AttractionCatalog interface {
	Query(ctx context.Context, city string, preferences []string, topK int, budgetMax float64) ([]Attraction, error)
}

type FoodCatalog interface {
	Query(ctx context.Context, city string, preferences []string, priceMax float64, topK int) ([]Restaurant, error)
}

// AccommodationCatalog ranks hotels near the selected attractions.
type AccommodationCatalog interface {
	Query(ctx context.Context, city string, attractions []Attraction, budgetPerNight float64, nights, partySize, topK int) ([]Hotel, error)
}
