package nlu

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"

	contractx "github.com/voyplan/voyplan/agent/contract"
)

type confirmationOutput struct {
	Confirmed bool `json:"confirmed"`
}

type classifierImpl struct {
	runner compose.Runnable[map[string]any, confirmationOutput]
}

// NewClassifier builds a model-backed confirmation classifier.
func NewClassifier(ctx context.Context, chatModel einomodel.BaseChatModel, systemPrompt string) (contractx.ConfirmationClassifier, error) {
	runner, err := compileStructuredLLMGraph[confirmationOutput](ctx, chatModel, systemPrompt, "nlu.classifier_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile classifier graph: %v", contractx.ErrModelInvoke, err)
	}
	return &classifierImpl{runner: runner}, nil
}

func (c *classifierImpl) Classify(ctx context.Context, utterance string) (bool, error) {
	if strings.TrimSpace(utterance) == "" {
		return false, nil
	}
	out, err := c.runner.Invoke(ctx, map[string]any{
		"input": utterance,
	})
	if err != nil {
		return false, fmt.Errorf("%w: classifier invoke: %v", contractx.ErrModelInvoke, err)
	}
	return out.Confirmed, nil
}

var affirmativeWords = map[string]struct{}{
	"yes": {}, "y": {}, "yeah": {}, "yep": {}, "ok": {}, "okay": {},
	"sure": {}, "confirm": {}, "confirmed": {}, "agreed": {}, "fine": {},
	"good": {}, "great": {}, "perfect": {},
}

var affirmativePhrases = []string{
	"sounds good", "looks good", "go ahead", "that works", "why not",
	"let's do it", "lets do it", "all right", "alright",
}

var negationTokens = []string{
	"no", "not", "don't", "dont", "change", "wrong", "instead",
	"rather", "cancel", "wait", "actually",
}

// KeywordConfirmation is the deterministic fallback used when the model
// classifier is unavailable or fails. It is deliberately conservative:
// anything it cannot read as a clear yes counts as a no.
func KeywordConfirmation(utterance string) bool {
	text := strings.ToLower(strings.TrimSpace(utterance))
	text = strings.Trim(text, ".!?,")
	if text == "" {
		return false
	}

	if _, ok := affirmativeWords[text]; ok {
		return true
	}

	for _, token := range negationTokens {
		if containsWord(text, token) {
			return false
		}
	}
	for _, phrase := range affirmativePhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	for word := range affirmativeWords {
		if containsWord(text, word) {
			return true
		}
	}
	return false
}

func containsWord(text, word string) bool {
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?'
	}) {
		if field == word {
			return true
		}
	}
	return false
}
