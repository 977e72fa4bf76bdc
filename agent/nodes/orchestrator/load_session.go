package orchestratornode

import (
	"context"
	"errors"
	"fmt"

	statex "github.com/voyplan/voyplan/agent/state"
)

func LoadOrCreateSession(ctx context.Context, in *GraphState, store statex.Store) (*GraphState, error) {
	if in == nil {
		return nil, errors.New("graph state is nil")
	}

	session, err := store.Load(ctx, in.SessionID)
	switch {
	case err == nil:
		in.Session = session
	case errors.Is(err, statex.ErrSessionNotFound):
		in.Session = statex.NewSession(in.SessionID, in.Now)
	default:
		return nil, fmt.Errorf("load session %s: %w", in.SessionID, err)
	}
	return in, nil
}
