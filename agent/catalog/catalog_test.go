package catalog

import (
	"context"
	"testing"
)

func TestTransportOptionsFromHub(t *testing.T) {
	t.Parallel()

	options, err := NewStaticTransportCatalog().Options(context.Background(), "Beijing", "Hangzhou", "2026-10-01", 2)
	if err != nil {
		t.Fatalf("options: %v", err)
	}

	methods := make(map[string]float64, len(options))
	for _, opt := range options {
		methods[opt.Method] = opt.Cost
		if opt.TotalCost != opt.Cost*2 {
			t.Fatalf("%s total = %v, want cost x party size", opt.Method, opt.TotalCost)
		}
	}
	if methods["plane"] != 800 {
		t.Fatalf("plane cost = %v, want 800", methods["plane"])
	}
	if methods["high-speed rail"] != 300 {
		t.Fatalf("rail cost = %v, want 300", methods["high-speed rail"])
	}
	if methods["train"] != 200 {
		t.Fatalf("train cost = %v, want 200", methods["train"])
	}
	if methods["self-drive"] != 500 {
		t.Fatalf("self-drive cost = %v, want 500", methods["self-drive"])
	}
}

func TestTransportOptionsNoFlightOffHub(t *testing.T) {
	t.Parallel()

	options, err := NewStaticTransportCatalog().Options(context.Background(), "Suzhou", "Hangzhou", "", 0)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	for _, opt := range options {
		if opt.Method == "plane" {
			t.Fatal("flight offered from a city without direct flights")
		}
		if opt.TotalCost != opt.Cost {
			t.Fatalf("party size should default to 1, total = %v cost = %v", opt.TotalCost, opt.Cost)
		}
	}
}

func TestAttractionQueryFiltersAndRanks(t *testing.T) {
	t.Parallel()

	attractions, err := NewStaticAttractionCatalog().Query(context.Background(), "Hangzhou", []string{"nature"}, 3, 100)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(attractions) != 3 {
		t.Fatalf("got %d attractions, want 3", len(attractions))
	}
	if attractions[0].Name != "West Lake" {
		t.Fatalf("top attraction = %q, want West Lake", attractions[0].Name)
	}
	for i, attr := range attractions {
		if attr.TicketPrice > 100 {
			t.Fatalf("attraction %q exceeds price cap", attr.Name)
		}
		if i > 0 && attr.Rating > attractions[i-1].Rating {
			t.Fatal("attractions not sorted by rating")
		}
	}
}

func TestAttractionQueryUnmatchedPreferenceWidens(t *testing.T) {
	t.Parallel()

	attractions, err := NewStaticAttractionCatalog().Query(context.Background(), "Hangzhou", []string{"skiing"}, 5, 0)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(attractions) == 0 {
		t.Fatal("unmatched preference emptied the result instead of widening")
	}
}

func TestAttractionQueryUnknownCityFallsBack(t *testing.T) {
	t.Parallel()

	attractions, err := NewStaticAttractionCatalog().Query(context.Background(), "Chengdu", nil, 5, 0)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(attractions) == 0 {
		t.Fatal("unknown city returned nothing")
	}
	for _, attr := range attractions {
		if attr.City != "Chengdu" {
			t.Fatalf("fallback attraction city = %q, want Chengdu", attr.City)
		}
	}
}

func TestFoodQueryPriceCap(t *testing.T) {
	t.Parallel()

	restaurants, err := NewStaticFoodCatalog().Query(context.Background(), "Hangzhou", nil, 70, 5)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(restaurants) == 0 {
		t.Fatal("no restaurants within budget")
	}
	for _, rest := range restaurants {
		if rest.AvgPrice > 70 {
			t.Fatalf("restaurant %q exceeds price cap", rest.Name)
		}
	}
}

func TestFoodQueryImpossibleBudgetReturnsCheapest(t *testing.T) {
	t.Parallel()

	restaurants, err := NewStaticFoodCatalog().Query(context.Background(), "Hangzhou", nil, 1, 3)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(restaurants) == 0 {
		t.Fatal("impossible budget should still return the cheapest options")
	}
	for i := 1; i < len(restaurants); i++ {
		if restaurants[i].AvgPrice < restaurants[i-1].AvgPrice {
			t.Fatal("cheapest-first fallback not sorted by price")
		}
	}
}

func TestAccommodationQueryAttachesStayTotals(t *testing.T) {
	t.Parallel()

	hotels, err := NewStaticAccommodationCatalog().Query(context.Background(), "Hangzhou", nil, 500, 2, 2, 4)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(hotels) == 0 {
		t.Fatal("no hotels returned")
	}

	recommended := 0
	for _, hotel := range hotels {
		if hotel.PricePerNight > 500 {
			t.Fatalf("hotel %q exceeds nightly budget", hotel.Name)
		}
		if hotel.Nights != 2 {
			t.Fatalf("hotel %q nights = %d, want 2", hotel.Name, hotel.Nights)
		}
		if hotel.TotalCost != hotel.PricePerNight*2 {
			t.Fatalf("hotel %q total = %v, want price x nights for one room", hotel.Name, hotel.TotalCost)
		}
		if hotel.Recommended {
			recommended++
		}
	}
	if recommended != 1 {
		t.Fatalf("recommended count = %d, want exactly 1", recommended)
	}
}

func TestAccommodationQueryImpossibleBudgetKeepsCheapest(t *testing.T) {
	t.Parallel()

	hotels, err := NewStaticAccommodationCatalog().Query(context.Background(), "Hangzhou", nil, 50, 1, 1, 5)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("got %d hotels, want only the cheapest one", len(hotels))
	}
	if hotels[0].PricePerNight != 180 {
		t.Fatalf("cheapest hotel price = %v, want 180", hotels[0].PricePerNight)
	}
}
