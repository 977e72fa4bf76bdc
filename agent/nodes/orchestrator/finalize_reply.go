package orchestratornode

import "errors"

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil || in.Session == nil {
		return GraphOutput{}, errors.New("graph session is nil")
	}
	return GraphOutput{
		Reply:          in.StepResult.Reply,
		Stage:          in.Session.CurrentStage,
		Requirements:   in.Session.Requirements,
		Recommendation: in.StepResult.Recommendation,
		Itinerary:      in.StepResult.Itinerary,
		Warnings:       in.StepResult.Warnings,
	}, nil
}
