package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mcal/internal/suggestion"
	"mcal/pkg/llmprovider"
	"mcal/pkg/log"
)

type fakeGenerator struct {
	available bool
	reply     string
	err       error
	got       *llmprovider.Request
}

func (g *fakeGenerator) Available() bool { return g.available }

func (g *fakeGenerator) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	g.got = req
	if g.err != nil {
		return nil, g.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: g.reply}}},
		ProviderName: "fake",
		ModelName:    "fake-1",
	}, nil
}

func newTestUseCase(gen suggestion.Generator) *implUseCase {
	uc := New(gen, defaultPrompt, log.NewNop())
	uc.now = func() time.Time { return time.Date(2024, 5, 17, 15, 0, 0, 0, time.UTC) }
	return uc
}

func TestSuggest(t *testing.T) {
	const single = "Sure!\n```json\n{\"title\":\"Lunch\",\"start_time\":\"2024-05-18T12:00:00\",\"end_time\":\"2024-05-18T13:00:00\",\"repeat_frequency\":\"none\"}\n```\n"
	const list = "```json\n[{\"title\":\"A\"},{\"title\":\"B\",\"calendar_name\":\"Work\"}]\n```"

	tests := []struct {
		name      string
		gen       *fakeGenerator
		input     suggestion.Input
		wantErr   error
		wantTitle []string
	}{
		{name: "single object", gen: &fakeGenerator{available: true, reply: single}, input: suggestion.Input{Text: "lunch tomorrow at noon"}, wantTitle: []string{"Lunch"}},
		{name: "array", gen: &fakeGenerator{available: true, reply: list}, input: suggestion.Input{Text: "two things"}, wantTitle: []string{"A", "B"}},
		{name: "empty input", gen: &fakeGenerator{available: true}, input: suggestion.Input{Text: "  "}, wantErr: suggestion.ErrEmptyInput},
		{name: "bad image", gen: &fakeGenerator{available: true}, input: suggestion.Input{ImageB64: "%%%"}, wantErr: suggestion.ErrInvalidImage},
		{name: "no provider", gen: &fakeGenerator{}, input: suggestion.Input{Text: "x"}, wantErr: suggestion.ErrSuggestionUnavailable},
		{name: "provider failure", gen: &fakeGenerator{available: true, err: llmprovider.ErrAllProvidersFailed}, input: suggestion.Input{Text: "x"}, wantErr: suggestion.ErrProviderFailed},
		{name: "no json block", gen: &fakeGenerator{available: true, reply: "I could not find any event."}, input: suggestion.Input{Text: "x"}, wantErr: suggestion.ErrMalformedSuggestion},
		{name: "two json blocks", gen: &fakeGenerator{available: true, reply: "```json\n{}\n```\n```json\n{}\n```"}, input: suggestion.Input{Text: "x"}, wantErr: suggestion.ErrMalformedSuggestion},
		{name: "invalid json", gen: &fakeGenerator{available: true, reply: "```json\n{title:}\n```"}, input: suggestion.Input{Text: "x"}, wantErr: suggestion.ErrMalformedSuggestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newTestUseCase(tt.gen).Suggest(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Suggest() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(out.Proposals) != len(tt.wantTitle) {
				t.Fatalf("got %d proposals, want %d", len(out.Proposals), len(tt.wantTitle))
			}
			for i, p := range out.Proposals {
				if p.Title != tt.wantTitle[i] {
					t.Errorf("proposal %d title = %q, want %q", i, p.Title, tt.wantTitle[i])
				}
			}
			if out.Provider != "fake" || out.Model != "fake-1" {
				t.Errorf("unexpected provider info: %+v", out)
			}
		})
	}
}

func TestSuggest_BuildsRequest(t *testing.T) {
	gen := &fakeGenerator{available: true, reply: "```json\n[]\n```"}
	_, err := newTestUseCase(gen).Suggest(context.Background(), suggestion.Input{
		Text:     "dentist next friday",
		ImageB64: "data:image/png;base64,iVBORw0KGgo=",
	})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	req := gen.got
	if req.Temperature != 1 || req.MaxTokens != 4096 {
		t.Errorf("unexpected generation settings: %+v", req)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != "user" || len(req.Messages[0].Parts) != 2 {
		t.Fatalf("unexpected messages: %+v", req.Messages)
	}
	prompt := req.Messages[0].Parts[0].Text
	if !strings.Contains(prompt, "2024-05-17") || !strings.Contains(prompt, "dentist next friday") {
		t.Errorf("placeholders not replaced:\n%s", prompt)
	}
	if strings.Contains(prompt, "[[") {
		t.Errorf("leftover placeholder:\n%s", prompt)
	}
	img := req.Messages[0].Parts[1].InlineData
	if img == nil || img.MimeType != "image/png" || img.Data != "iVBORw0KGgo=" {
		t.Errorf("unexpected image part: %+v", img)
	}
}

func TestSuggest_NilManager(t *testing.T) {
	var m *llmprovider.Manager
	_, err := newTestUseCase(m).Suggest(context.Background(), suggestion.Input{Text: "x"})
	if !errors.Is(err, suggestion.ErrSuggestionUnavailable) {
		t.Errorf("expected ErrSuggestionUnavailable, got %v", err)
	}
}

func TestLoadPrompt(t *testing.T) {
	got, err := LoadPrompt("")
	if err != nil || got != defaultPrompt {
		t.Fatalf("LoadPrompt(\"\") = %q, %v", got, err)
	}

	dir := t.TempDir()
	good := filepath.Join(dir, "good.md")
	if err := os.WriteFile(good, []byte("Today [[REPLACE_CURRENT_DATE]]: [[REPLACE_EVENT_INFO]]"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got, err := LoadPrompt(good); err != nil || !strings.HasPrefix(got, "Today") {
		t.Errorf("LoadPrompt(good) = %q, %v", got, err)
	}

	bad := filepath.Join(dir, "bad.md")
	if err := os.WriteFile(bad, []byte("no placeholders"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPrompt(bad); err == nil {
		t.Error("expected an error for a prompt without the info placeholder")
	}

	if _, err := LoadPrompt(filepath.Join(dir, "missing.md")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
