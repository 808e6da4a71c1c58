package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"mcal/internal/suggestion"
	"mcal/pkg/log"
)

type fakeUseCase struct {
	out suggestion.SuggestOutput
	err error
	got suggestion.Input
}

func (f *fakeUseCase) Suggest(_ context.Context, in suggestion.Input) (suggestion.SuggestOutput, error) {
	f.got = in
	return f.out, f.err
}

func newTestRouter(uc suggestion.UseCase, mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/events"), New(log.NewNop(), uc), mw...)
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/ai-suggest", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSuggest_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		body       string
		wantStatus int
	}{
		{name: "ok", body: `{"text":"lunch"}`, wantStatus: http.StatusOK},
		{name: "bad json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "empty", err: suggestion.ErrEmptyInput, body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "unavailable", err: suggestion.ErrSuggestionUnavailable, body: `{"text":"x"}`, wantStatus: http.StatusServiceUnavailable},
		{name: "malformed", err: suggestion.ErrMalformedSuggestion, body: `{"text":"x"}`, wantStatus: http.StatusBadGateway},
		{name: "provider failed", err: suggestion.ErrProviderFailed, body: `{"text":"x"}`, wantStatus: http.StatusBadGateway},
		{name: "unknown", err: errors.New("boom"), body: `{"text":"x"}`, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(newTestRouter(&fakeUseCase{err: tt.err}), tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestSuggest_ResponseBody(t *testing.T) {
	uc := &fakeUseCase{out: suggestion.SuggestOutput{
		Proposals: []suggestion.Proposal{{Title: "Lunch", StartTime: "2024-05-18T12:00:00"}},
		Provider:  "groq",
	}}
	w := post(newTestRouter(uc), `{"text":"lunch","image_b64":"abc="}`)

	var body struct {
		Data suggestResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Proposals) != 1 || body.Data.Proposals[0].Title != "Lunch" || body.Data.Provider != "groq" {
		t.Errorf("unexpected data: %+v", body.Data)
	}
	if uc.got.Text != "lunch" || uc.got.ImageB64 != "abc=" {
		t.Errorf("use case got %+v", uc.got)
	}
}

func TestSuggest_MiddlewareRunsFirst(t *testing.T) {
	uc := &fakeUseCase{}
	block := func(c *gin.Context) { c.AbortWithStatus(http.StatusTooManyRequests) }

	w := post(newTestRouter(uc, block), `{"text":"x"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", w.Code)
	}
	if uc.got.Text != "" {
		t.Error("handler should not run")
	}
}
