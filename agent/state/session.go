package state

import (
	"errors"
	"fmt"
	"strings"
	"time"

	contractx "github.com/voyplan/voyplan/agent/contract"
)

var (
	ErrInvalidSession = errors.New("session id is empty")
	ErrInvalidStage   = errors.New("invalid stage")
)

// TransportChoice is the user's chosen way of getting there and back.
// Method and Cost are the validated required fields; Raw keeps whatever
// display-only extras arrived with a structured selection.
type TransportChoice struct {
	Method    string                 `json:"method"`
	Cost      float64                `json:"cost"`
	TotalCost float64                `json:"total_cost,omitempty"`
	Outbound  *contractx.TransportLeg `json:"outbound,omitempty"`
	Return    *contractx.TransportLeg `json:"return,omitempty"`
	Raw       map[string]any         `json:"raw,omitempty"`
}

// AccommodationChoice is the user's chosen hotel.
type AccommodationChoice struct {
	Name          string         `json:"name,omitempty"`
	PricePerNight float64        `json:"price_per_night,omitempty"`
	Nights        int            `json:"nights,omitempty"`
	TotalCost     float64        `json:"total_cost,omitempty"`
	Raw           map[string]any `json:"raw,omitempty"`
}

// Selections holds the per-stage choices. Each slot is written exactly once
// by its stage handler and read exactly once by the aggregator.
type Selections struct {
	Transport        *TransportChoice                 `json:"transport,omitempty"`
	AttractionsByDay map[int][]contractx.Attraction   `json:"attractions_by_day,omitempty"`
	FoodByDay        map[int][]contractx.Restaurant   `json:"food_by_day,omitempty"`
	Accommodation    *AccommodationChoice             `json:"accommodation,omitempty"`
}

// Complete reports whether all four slots have been written.
func (s *Selections) Complete() bool {
	return s.Transport != nil && s.AttractionsByDay != nil &&
		s.FoodByDay != nil && s.Accommodation != nil
}

// Session is the unit of conversation identity: one requirements record,
// one selections record, the dialogue history and the current stage.
type Session struct {
	SessionID          string                      `json:"session_id"`
	Requirements       Requirements                `json:"requirements"`
	Selections         Selections                  `json:"selections"`
	History            []contractx.DialogueMessage `json:"history,omitempty"`
	CurrentStage       Stage                       `json:"current_stage"`
	LastRecommendation *contractx.Recommendation   `json:"last_recommendation,omitempty"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

func NewSession(sessionID string, now time.Time) *Session {
	return &Session{
		SessionID:    strings.TrimSpace(sessionID),
		CurrentStage: StageGreeting,
		CreatedAt:    now.UTC(),
		UpdatedAt:    now.UTC(),
	}
}

func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}

// AddMessage appends one entry to the dialogue history.
func (s *Session) AddMessage(role, content string, now time.Time) {
	s.History = append(s.History, contractx.DialogueMessage{
		Role:      role,
		Content:   content,
		Timestamp: now.UTC(),
	})
}

// RecentHistory returns the last n exchanges (2n messages).
func (s *Session) RecentHistory(n int) []contractx.DialogueMessage {
	if n <= 0 || len(s.History) == 0 {
		return nil
	}
	limit := n * 2
	if len(s.History) <= limit {
		return s.History
	}
	return s.History[len(s.History)-limit:]
}

func (s *Session) Validate() error {
	if strings.TrimSpace(s.SessionID) == "" {
		return ErrInvalidSession
	}
	if !s.CurrentStage.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStage, s.CurrentStage)
	}
	return nil
}

// Clone returns a deep copy. Stores hand out clones so registry entries are
// only ever mutated through Save.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s

	if s.History != nil {
		c.History = append([]contractx.DialogueMessage(nil), s.History...)
	}
	if s.Requirements.Preferences != nil {
		c.Requirements.Preferences = append([]string(nil), s.Requirements.Preferences...)
	}
	if s.Selections.Transport != nil {
		t := *s.Selections.Transport
		if s.Selections.Transport.Outbound != nil {
			out := *s.Selections.Transport.Outbound
			t.Outbound = &out
		}
		if s.Selections.Transport.Return != nil {
			ret := *s.Selections.Transport.Return
			t.Return = &ret
		}
		t.Raw = cloneRawMap(s.Selections.Transport.Raw)
		c.Selections.Transport = &t
	}
	if s.Selections.AttractionsByDay != nil {
		byDay := make(map[int][]contractx.Attraction, len(s.Selections.AttractionsByDay))
		for day, items := range s.Selections.AttractionsByDay {
			byDay[day] = append([]contractx.Attraction(nil), items...)
		}
		c.Selections.AttractionsByDay = byDay
	}
	if s.Selections.FoodByDay != nil {
		byDay := make(map[int][]contractx.Restaurant, len(s.Selections.FoodByDay))
		for day, items := range s.Selections.FoodByDay {
			byDay[day] = append([]contractx.Restaurant(nil), items...)
		}
		c.Selections.FoodByDay = byDay
	}
	if s.Selections.Accommodation != nil {
		a := *s.Selections.Accommodation
		a.Raw = cloneRawMap(s.Selections.Accommodation.Raw)
		c.Selections.Accommodation = &a
	}
	if s.LastRecommendation != nil {
		rec := *s.LastRecommendation
		c.LastRecommendation = &rec
	}
	return &c
}

func cloneRawMap(raw map[string]any) map[string]any {
	if raw == nil {
		return nil
	}
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	return out
}
