package state

import (
	"strconv"
	"strings"

	contractx "github.com/voyplan/voyplan/agent/contract"
)

// Missing-field names, in the fixed priority order follow-up questions use.
const (
	FieldDestination    = "destination"
	FieldDays           = "days"
	FieldBudget         = "budget"
	FieldPreferences    = "preferences"
	FieldDepartureCity  = "departure_city"
	FieldCompanionType  = "companion_type"
	FieldCompanionCount = "companion_count"
)

// Requirements is the structured, partially-filled record of what the user
// wants. It is mutated incrementally while the stage is still collecting and
// frozen afterwards.
type Requirements struct {
	Destination    string   `json:"destination,omitempty"`
	Province       string   `json:"province,omitempty"`
	DepartureCity  string   `json:"departure_city,omitempty"`
	Days           int      `json:"days,omitempty"`
	Budget         float64  `json:"budget,omitempty"`
	TravelDates    string   `json:"travel_dates,omitempty"`
	Preferences    []string `json:"preferences,omitempty"`
	CompanionType  string   `json:"companion_type,omitempty"`
	CompanionCount int      `json:"companion_count,omitempty"`
	SpecialNeeds   string   `json:"special_needs,omitempty"`
}

var cityProvinces = map[string]string{
	"guangzhou": "Guangdong",
	"shenzhen":  "Guangdong",
	"zhuhai":    "Guangdong",
	"foshan":    "Guangdong",
	"nanjing":   "Jiangsu",
	"suzhou":    "Jiangsu",
	"wuxi":      "Jiangsu",
	"yangzhou":  "Jiangsu",
	"hangzhou":  "Zhejiang",
	"ningbo":    "Zhejiang",
	"shaoxing":  "Zhejiang",
	"wenzhou":   "Zhejiang",
}

// ProvinceOf returns the province of a known city, or "" for unknown ones.
func ProvinceOf(city string) string {
	return cityProvinces[strings.ToLower(strings.TrimSpace(city))]
}

// IsComplete reports whether the hard-required fields are all present.
func (r *Requirements) IsComplete() bool {
	return len(r.MissingFields()) == 0
}

// MissingFields returns the hard-required fields that are still unset, in
// priority order: destination, days, budget, preferences.
func (r *Requirements) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.Destination) == "" {
		missing = append(missing, FieldDestination)
	}
	if r.Days <= 0 {
		missing = append(missing, FieldDays)
	}
	if r.Budget <= 0 {
		missing = append(missing, FieldBudget)
	}
	if len(r.Preferences) == 0 {
		missing = append(missing, FieldPreferences)
	}
	return missing
}

// SoftMissingFields returns the optional fields worth asking about. They
// feed follow-up prompts but never block completeness.
func (r *Requirements) SoftMissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.DepartureCity) == "" {
		missing = append(missing, FieldDepartureCity)
	}
	if strings.TrimSpace(r.CompanionType) == "" {
		missing = append(missing, FieldCompanionType)
	}
	if r.CompanionCount <= 0 {
		missing = append(missing, FieldCompanionCount)
	}
	return missing
}

// Apply merges an extractor patch into the requirements. Non-empty scalar
// values overwrite unconditionally (last write wins, no conflict detection);
// preferences are unioned with set semantics; numeric fields that do not
// coerce to a positive number are dropped for that field only.
func (r *Requirements) Apply(patch contractx.RequirementsPatch) {
	if dest := strings.TrimSpace(patch.Destination); dest != "" {
		r.Destination = dest
		r.Province = ProvinceOf(dest)
	}
	if city := strings.TrimSpace(patch.DepartureCity); city != "" {
		r.DepartureCity = city
	}
	if days, ok := coerceInt(patch.Days); ok && days > 0 {
		r.Days = days
	}
	if budget, ok := coerceFloat(patch.Budget); ok && budget > 0 {
		r.Budget = budget
	}
	if dates := strings.TrimSpace(patch.TravelDates); dates != "" {
		r.TravelDates = dates
	}
	if len(patch.Preferences) > 0 {
		r.Preferences = unionPreferences(r.Preferences, patch.Preferences)
	}
	if companion := strings.TrimSpace(patch.CompanionType); companion != "" {
		r.CompanionType = strings.ToLower(companion)
	}
	if count, ok := coerceInt(patch.CompanionCount); ok && count >= 1 {
		r.CompanionCount = count
	}
	if needs := strings.TrimSpace(patch.SpecialNeeds); needs != "" {
		r.SpecialNeeds = needs
	}
}

func unionPreferences(current, incoming []string) []string {
	seen := make(map[string]struct{}, len(current)+len(incoming))
	merged := make([]string, 0, len(current)+len(incoming))
	for _, lists := range [][]string{current, incoming} {
		for _, pref := range lists {
			key := strings.ToLower(strings.TrimSpace(pref))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, key)
		}
	}
	return merged
}

// coerceInt accepts the numeric shapes a JSON-speaking model may produce.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
