package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mcal/pkg/gemini"
	"mcal/pkg/groq"
)

func imageRequest() *Request {
	return &Request{
		Messages: []Message{{
			Role: "user",
			Parts: []Part{
				{Text: "describe"},
				{InlineData: &Blob{MimeType: "image/png", Data: "AA=="}},
			},
		}},
		Temperature: 1,
		MaxTokens:   4096,
	}
}

func TestGroqAdapter_GenerateContent(t *testing.T) {
	var body map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"reply"}}],
			"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`))
	}))
	defer ts.Close()

	client, err := groq.New(groq.Config{APIKey: "k", Model: "m", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	adapter := NewGroqAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), imageRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content.Text() != "reply" || resp.ProviderName != "groq" || resp.Usage.TotalTokens != 5 {
		t.Errorf("unexpected response: %+v", resp)
	}

	msgs := body["messages"].([]interface{})
	content := msgs[0].(map[string]interface{})["content"].([]interface{})
	if len(content) != 2 {
		t.Fatalf("expected 2 content parts, got %d", len(content))
	}
	image := content[1].(map[string]interface{})["image_url"].(map[string]interface{})
	if image["url"] != "data:image/png;base64,AA==" {
		t.Errorf("unexpected image url: %v", image["url"])
	}
	if body["max_completion_tokens"].(float64) != 4096 {
		t.Errorf("unexpected max tokens: %v", body["max_completion_tokens"])
	}
}

func TestGeminiAdapter_WrapsProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "k", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = NewGeminiAdapter(client).GenerateContent(context.Background(), imageRequest())
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "gemini" {
		t.Fatalf("expected gemini ProviderError, got %v", err)
	}
}
