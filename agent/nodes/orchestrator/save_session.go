package orchestratornode

import (
	"context"
	"errors"
	"fmt"

	statex "github.com/voyplan/voyplan/agent/state"
)

func SaveSession(ctx context.Context, in *GraphState, store statex.Store) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, errors.New("graph session is nil")
	}
	if err := store.Save(ctx, in.Session); err != nil {
		return nil, fmt.Errorf("save session %s: %w", in.SessionID, err)
	}
	return in, nil
}
