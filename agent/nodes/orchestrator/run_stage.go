package orchestratornode

import (
	"context"
	"errors"

	"github.com/voyplan/voyplan/agent/dialogue"
)

// RunStage advances the dialogue by one turn and records both sides of the
// exchange in the session history.
func RunStage(ctx context.Context, in *GraphState, machine *dialogue.Machine) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, errors.New("graph session is nil")
	}

	if in.Text != "" {
		in.Session.AddMessage("user", in.Text, in.Now)
	}

	in.StepResult = machine.Step(ctx, in.Session, dialogue.Input{
		Text:      in.Text,
		Selection: in.Selection,
	})

	in.Session.AddMessage("assistant", in.StepResult.Reply, in.Now)
	in.Session.Touch(in.Now)
	return in, nil
}
