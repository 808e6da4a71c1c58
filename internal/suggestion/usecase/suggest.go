package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"mcal/internal/suggestion"
	"mcal/pkg/llmprovider"
)

// Suggest builds one user message from the prompt template, the text and the
// optional image, and parses the fenced json block of the reply.
func (uc *implUseCase) Suggest(ctx context.Context, input suggestion.Input) (suggestion.SuggestOutput, error) {
	text := strings.TrimSpace(input.Text)
	image := stripDataURL(strings.TrimSpace(input.ImageB64))
	if text == "" && image == "" {
		return suggestion.SuggestOutput{}, suggestion.ErrEmptyInput
	}
	if image != "" {
		if _, err := base64.StdEncoding.DecodeString(image); err != nil {
			return suggestion.SuggestOutput{}, suggestion.ErrInvalidImage
		}
	}

	if uc.gen == nil || !uc.gen.Available() {
		return suggestion.SuggestOutput{}, suggestion.ErrSuggestionUnavailable
	}

	parts := []llmprovider.Part{{Text: renderPrompt(uc.prompt, uc.now(), text)}}
	if image != "" {
		parts = append(parts, llmprovider.Part{InlineData: &llmprovider.Blob{MimeType: imageMime, Data: image}})
	}

	resp, err := uc.gen.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Parts: parts}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		return suggestion.SuggestOutput{}, suggestion.ErrSuggestionUnavailable
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Suggest GenerateContent: %v", err)
		return suggestion.SuggestOutput{}, suggestion.ErrProviderFailed
	}

	proposals, err := parseProposals(resp.Content.Text())
	if err != nil {
		uc.l.Warnf(ctx, "uc.Suggest parseProposals (%s/%s): %v", resp.ProviderName, resp.ModelName, err)
		return suggestion.SuggestOutput{}, err
	}

	return suggestion.SuggestOutput{
		Proposals: proposals,
		Provider:  resp.ProviderName,
		Model:     resp.ModelName,
	}, nil
}

// stripDataURL removes a "data:image/png;base64," style header.
func stripDataURL(s string) string {
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			return s[i+1:]
		}
	}
	return s
}
