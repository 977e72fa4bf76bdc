package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"

	contractx "github.com/voyplan/voyplan/agent/contract"
)

type extractorImpl struct {
	runner compose.Runnable[map[string]any, contractx.RequirementsPatch]
}

// NewExtractor builds a model-backed requirement extractor.
func NewExtractor(ctx context.Context, chatModel einomodel.BaseChatModel, systemPrompt string) (contractx.RequirementExtractor, error) {
	runner, err := compileStructuredLLMGraph[contractx.RequirementsPatch](ctx, chatModel, systemPrompt, "nlu.extractor_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile extractor graph: %v", contractx.ErrModelInvoke, err)
	}
	return &extractorImpl{runner: runner}, nil
}

func (e *extractorImpl) Extract(ctx context.Context, history []contractx.DialogueMessage, utterance string) (contractx.RequirementsPatch, error) {
	if strings.TrimSpace(utterance) == "" {
		return contractx.RequirementsPatch{}, nil
	}

	payload := map[string]any{
		"history": compactHistory(history),
		"message": utterance,
	}
	inputBytes, err := json.Marshal(payload)
	if err != nil {
		return contractx.RequirementsPatch{}, fmt.Errorf("%w: marshal extractor payload: %v", contractx.ErrValidation, err)
	}

	patch, err := e.runner.Invoke(ctx, map[string]any{
		"input": string(inputBytes),
	})
	if err != nil {
		return contractx.RequirementsPatch{}, fmt.Errorf("%w: extractor invoke: %v", contractx.ErrModelInvoke, err)
	}
	return patch, nil
}

func compactHistory(history []contractx.DialogueMessage) []map[string]string {
	out := make([]map[string]string, 0, len(history))
	for _, msg := range history {
		out = append(out, map[string]string{
			"role":    msg.Role,
			"content": msg.Content,
		})
	}
	return out
}
