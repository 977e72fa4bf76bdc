package dialogue

import (
	"errors"
	"testing"

	contractx "github.com/voyplan/voyplan/agent/contract"
)

func TestDecodeTransportSelectionWithLegs(t *testing.T) {
	t.Parallel()

	choice, err := decodeTransportSelection(map[string]any{
		"method":     "Plane",
		"cost":       "800",
		"total_cost": 1600,
		"outbound":   map[string]any{"method": "plane", "cost": 800.0, "duration": "2h"},
		"return":     map[string]any{"method": "plane", "cost": 800.0},
		"seat":       "window",
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if choice.Method != "plane" {
		t.Fatalf("method = %q, want normalized plane", choice.Method)
	}
	if choice.Cost != 800 || choice.TotalCost != 1600 {
		t.Fatalf("cost = %v total = %v", choice.Cost, choice.TotalCost)
	}
	if choice.Outbound == nil || choice.Outbound.Duration != "2h" {
		t.Fatalf("outbound = %#v", choice.Outbound)
	}
	if choice.Raw["seat"] != "window" {
		t.Fatal("extra fields should survive in Raw")
	}
}

func TestDecodeTransportSelectionMissingMethod(t *testing.T) {
	t.Parallel()

	_, err := decodeTransportSelection(map[string]any{"cost": 300})
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestDecodeHotelSelectionLenient(t *testing.T) {
	t.Parallel()

	choice, err := decodeHotelSelection(map[string]any{
		"name":            "  Hotel X ",
		"price_per_night": "350",
		"total_cost":      700.0,
		"nights":          2.0,
		"view":            "lake",
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if choice.Name != "Hotel X" || choice.PricePerNight != 350 || choice.TotalCost != 700 || choice.Nights != 2 {
		t.Fatalf("choice = %#v", choice)
	}
	if choice.Raw["view"] != "lake" {
		t.Fatal("extra fields should survive in Raw")
	}
}

func TestDecodeDayListsRejectsBadKeys(t *testing.T) {
	t.Parallel()

	_, err := decodeDayLists[contractx.Attraction](map[string]any{
		"first": []any{},
	})
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	_, err = decodeDayLists[contractx.Attraction]("not a map")
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}
