// Package orchestrator wires the session store and the dialogue machine
// into one turn pipeline behind a compiled graph.
package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"

	"github.com/voyplan/voyplan/agent/dialogue"
	nodex "github.com/voyplan/voyplan/agent/nodes/orchestrator"
	statex "github.com/voyplan/voyplan/agent/state"
)

var (
	ErrInvalidMessage = nodex.ErrInvalidMessage
	ErrInvalidSession = nodex.ErrInvalidSession
)

// TurnResult is what one processed turn returns to the caller.
type TurnResult = nodex.GraphOutput

type Orchestrator struct {
	store   statex.Store
	machine *dialogue.Machine

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	now func() time.Time
}

func New(store statex.Store, machine *dialogue.Machine) (*Orchestrator, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if machine == nil {
		return nil, errors.New("dialogue machine is required")
	}

	o := &Orchestrator{
		store:   store,
		machine: machine,
		now:     time.Now,
	}

	graphRunner, err := o.compileHandleMessageGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner
	return o, nil
}

// HandleMessage processes one user turn for a session. Selection carries an
// optional structured payload from a richer client; either text or
// selection must be present.
func (o *Orchestrator) HandleMessage(ctx context.Context, sessionID, text string, selection map[string]any) (TurnResult, error) {
	out, err := o.graphRunner.Invoke(ctx, nodex.GraphInput{
		SessionID: sessionID,
		Text:      text,
		Selection: selection,
	})
	if err != nil {
		return TurnResult{}, err
	}
	return out, nil
}

// ResetSession drops the stored session so the next message starts a fresh
// conversation.
func (o *Orchestrator) ResetSession(ctx context.Context, sessionID string) error {
	return o.store.Delete(ctx, sessionID)
}

// WelcomeMessage is shown before the first turn of a session.
func WelcomeMessage() string {
	return "Hi! I'm your travel planning assistant. Tell me where you'd like to go, " +
		"for how long, your budget, and what you enjoy, and I'll plan the whole trip."
}
