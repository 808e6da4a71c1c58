package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"mcal/internal/suggestion"
)

const (
	fence     = "```"
	jsonFence = "```json"
)

// parseProposals extracts the single ```json block of reply. The block may
// hold one object or an array of objects.
func parseProposals(reply string) ([]suggestion.Proposal, error) {
	if strings.Count(reply, jsonFence) != 1 || strings.Count(reply, fence) != 2 {
		return nil, suggestion.ErrMalformedSuggestion
	}

	body := reply[strings.Index(reply, jsonFence)+len(jsonFence):]
	body = strings.TrimSpace(body[:strings.Index(body, fence)])

	raw := []byte(body)
	if !bytes.HasPrefix(raw, []byte("[")) {
		raw = append(append([]byte("["), raw...), ']')
	}

	var proposals []suggestion.Proposal
	if err := json.Unmarshal(raw, &proposals); err != nil {
		return nil, fmt.Errorf("%w: %v", suggestion.ErrMalformedSuggestion, err)
	}
	return proposals, nil
}
