package usecase

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"mcal/pkg/datemath"
)

const (
	placeholderDate = "[[REPLACE_CURRENT_DATE]]"
	placeholderInfo = "[[REPLACE_EVENT_INFO]]"
)

//go:embed prompt.md
var defaultPrompt string

// LoadPrompt reads the prompt template at path. An empty path selects the
// built-in template.
func LoadPrompt(path string) (string, error) {
	if path == "" {
		return defaultPrompt, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt %s: %w", path, err)
	}
	if !strings.Contains(string(raw), placeholderInfo) {
		return "", fmt.Errorf("prompt %s: missing %s placeholder", path, placeholderInfo)
	}
	return string(raw), nil
}

func renderPrompt(template string, today time.Time, info string) string {
	return strings.NewReplacer(
		placeholderDate, datemath.FormatDate(today),
		placeholderInfo, info,
	).Replace(template)
}
