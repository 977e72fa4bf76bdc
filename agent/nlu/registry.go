package nlu

import (
	"context"
	"fmt"

	contractx "github.com/voyplan/voyplan/agent/contract"
	llmx "github.com/voyplan/voyplan/agent/llm"
	promptx "github.com/voyplan/voyplan/agent/prompt"
)

// Registry bundles the language understanding components built from one
// LLM config.
type Registry struct {
	Extractor  contractx.RequirementExtractor
	Classifier contractx.ConfirmationClassifier
}

func NewRegistry(ctx context.Context, cfg llmx.Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prompts := promptx.LoadPromptSet()

	extractorModelCfg := cfg.OpenRouterFor(llmx.RoleExtractor)
	extractorModel, err := extractorModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create extractor model: %v", contractx.ErrModelInvoke, err)
	}
	classifierModelCfg := cfg.OpenRouterFor(llmx.RoleClassifier)
	classifierModel, err := classifierModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create classifier model: %v", contractx.ErrModelInvoke, err)
	}

	extractor, err := NewExtractor(ctx, extractorModel, prompts.Extractor)
	if err != nil {
		return nil, err
	}
	classifier, err := NewClassifier(ctx, classifierModel, prompts.Confirmation)
	if err != nil {
		return nil, err
	}

	return &Registry{
		Extractor:  extractor,
		Classifier: classifier,
	}, nil
}
