package state

import "strings"

// Stage is a named point in the conversation pipeline. It controls which
// inputs are accepted and which side effects fire on the next turn.
type Stage string

const (
	StageGreeting             Stage = "greeting"
	StageCollecting           Stage = "collecting_requirements"
	StageConfirming           Stage = "confirming_requirements"
	StageWaitingTransport     Stage = "waiting_transport_selection"
	StageWaitingAttractions   Stage = "waiting_attractions_selection"
	StageWaitingFood          Stage = "waiting_food_selection"
	StageWaitingAccommodation Stage = "waiting_accommodation_selection"
	StageCompleted            Stage = "completed"
)

// legacy short names that older clients persisted.
var stageAliases = map[string]Stage{
	"collecting": StageCollecting,
	"confirming": StageConfirming,
}

// ParseStage resolves s to a canonical Stage, accepting legacy aliases.
func ParseStage(s string) (Stage, bool) {
	normalized := Stage(strings.ToLower(strings.TrimSpace(s)))
	if normalized.Valid() {
		return normalized, true
	}
	if alias, ok := stageAliases[string(normalized)]; ok {
		return alias, true
	}
	return "", false
}

func (s Stage) Valid() bool {
	switch s {
	case StageGreeting, StageCollecting, StageConfirming,
		StageWaitingTransport, StageWaitingAttractions,
		StageWaitingFood, StageWaitingAccommodation, StageCompleted:
		return true
	}
	return false
}

// Terminal reports whether the stage accepts no further planning input.
func (s Stage) Terminal() bool {
	return s == StageCompleted
}

// Collecting reports whether requirements are still user-editable.
// Once the stage leaves the collection phase they are frozen.
func (s Stage) Collecting() bool {
	return s == StageGreeting || s == StageCollecting
}
