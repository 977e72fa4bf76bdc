package dialogue

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	contractx "github.com/voyplan/voyplan/agent/contract"
	statex "github.com/voyplan/voyplan/agent/state"
)

// decodeTransportSelection validates a structured transport payload into a
// typed choice. Method is required; cost fields are coerced leniently; the
// full payload is kept in Raw for display.
func decodeTransportSelection(payload map[string]any) (*statex.TransportChoice, error) {
	method, _ := payload["method"].(string)
	method = strings.ToLower(strings.TrimSpace(method))
	if method == "" {
		return nil, fmt.Errorf("%w: transport selection needs a method", contractx.ErrValidation)
	}

	choice := &statex.TransportChoice{
		Method: method,
		Raw:    payload,
	}
	if cost, ok := coerceNumber(payload["cost"]); ok {
		choice.Cost = cost
	}
	if total, ok := coerceNumber(payload["total_cost"]); ok {
		choice.TotalCost = total
	}

	if leg, err := decodeLeg(payload["outbound"]); err != nil {
		return nil, err
	} else if leg != nil {
		choice.Outbound = leg
	}
	if leg, err := decodeLeg(payload["return"]); err != nil {
		return nil, err
	} else if leg != nil {
		choice.Return = leg
	}
	return choice, nil
}

func decodeLeg(v any) (*contractx.TransportLeg, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed transport leg: %v", contractx.ErrValidation, err)
	}
	var leg contractx.TransportLeg
	if err := json.Unmarshal(raw, &leg); err != nil {
		return nil, fmt.Errorf("%w: malformed transport leg: %v", contractx.ErrValidation, err)
	}
	return &leg, nil
}

// decodeHotelSelection accepts a hotel payload verbatim. Every field is
// optional; unknown fields survive in Raw.
func decodeHotelSelection(payload map[string]any) (*statex.AccommodationChoice, error) {
	choice := &statex.AccommodationChoice{Raw: payload}
	if name, ok := payload["name"].(string); ok {
		choice.Name = strings.TrimSpace(name)
	}
	if price, ok := coerceNumber(payload["price_per_night"]); ok {
		choice.PricePerNight = price
	}
	if total, ok := coerceNumber(payload["total_cost"]); ok {
		choice.TotalCost = total
	}
	if nights, ok := coerceNumber(payload["nights"]); ok && nights == float64(int(nights)) {
		choice.Nights = int(nights)
	}
	return choice, nil
}

// decodeDayLists turns a loosely-keyed day map (string, int or float keys,
// JSON-shaped item lists) into the canonical 1-based integer-keyed form.
func decodeDayLists[T any](v any) (map[int][]T, error) {
	entries, err := dayEntries(v)
	if err != nil {
		return nil, err
	}

	out := make(map[int][]T, len(entries))
	for day, items := range entries {
		raw, err := json.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed day %d items: %v", contractx.ErrValidation, day, err)
		}
		var list []T
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("%w: malformed day %d items: %v", contractx.ErrValidation, day, err)
		}
		out[day] = list
	}
	return out, nil
}

func dayEntries(v any) (map[int]any, error) {
	out := make(map[int]any)
	switch m := v.(type) {
	case map[string]any:
		for key, items := range m {
			day, err := parseDayKey(key)
			if err != nil {
				return nil, err
			}
			out[day] = items
		}
	case map[int]any:
		for day, items := range m {
			out[day] = items
		}
	case map[any]any:
		for key, items := range m {
			day, err := anyDayKey(key)
			if err != nil {
				return nil, err
			}
			out[day] = items
		}
	default:
		return nil, fmt.Errorf("%w: day-keyed selection must be a map, got %T", contractx.ErrValidation, v)
	}
	return out, nil
}

func anyDayKey(key any) (int, error) {
	switch k := key.(type) {
	case string:
		return parseDayKey(k)
	case int:
		return k, nil
	case int64:
		return int(k), nil
	case float64:
		if k != float64(int(k)) {
			return 0, fmt.Errorf("%w: fractional day key %v", contractx.ErrValidation, k)
		}
		return int(k), nil
	default:
		return 0, fmt.Errorf("%w: unsupported day key type %T", contractx.ErrValidation, key)
	}
}

func parseDayKey(key string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, fmt.Errorf("%w: day key %q is not a number", contractx.ErrValidation, key)
	}
	return day, nil
}

func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func sortedDays[T any](byDay map[int][]T) []int {
	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}
