package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"mcal/internal/middleware"
	suggestionHTTP "mcal/internal/suggestion/delivery/http"
	suggestionUC "mcal/internal/suggestion/usecase"
)

// setupSuggestionDomain registers POST /events/ai-suggest behind the rate
// limiter. The route exists even without a provider and then answers 503.
func (srv HTTPServer) setupSuggestionDomain(ctx context.Context, events *gin.RouterGroup, mw middleware.Middleware) error {
	uc := suggestionUC.New(srv.llm, srv.prompt, srv.l)
	h := suggestionHTTP.New(srv.l, uc)
	suggestionHTTP.RegisterRoutes(events, h, mw.RateLimit())

	if srv.llm.Available() {
		srv.l.Infof(ctx, "Suggestion domain registered")
	} else {
		srv.l.Warnf(ctx, "Suggestion domain registered without AI provider, requests will fail with 503")
	}
	return nil
}
