package orchestratornode

import (
	"errors"
	"strings"
	"time"

	contractx "github.com/voyplan/voyplan/agent/contract"
	"github.com/voyplan/voyplan/agent/dialogue"
	"github.com/voyplan/voyplan/agent/itinerary"
	statex "github.com/voyplan/voyplan/agent/state"
)

var (
	ErrInvalidMessage = errors.New("message and selection are both empty")
	ErrInvalidSession = errors.New("session id is empty")
)

type GraphInput struct {
	SessionID string
	Text      string
	Selection map[string]any
}

// GraphOutput is the full turn result handed back to the caller.
type GraphOutput struct {
	Reply          string
	Stage          statex.Stage
	Requirements   statex.Requirements
	Recommendation *contractx.Recommendation
	Itinerary      *itinerary.Itinerary
	Warnings       []contractx.Warning
}

type GraphState struct {
	SessionID string
	Text      string
	Selection map[string]any
	Now       time.Time

	Session    *statex.Session
	StepResult dialogue.Result
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	text := strings.TrimSpace(in.Text)
	if text == "" && len(in.Selection) == 0 {
		return nil, ErrInvalidMessage
	}

	return &GraphState{
		SessionID: sessionID,
		Text:      text,
		Selection: in.Selection,
		Now:       nowFn().UTC(),
	}, nil
}
