package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mcal/pkg/cache"
	"mcal/pkg/llmprovider"
	"mcal/pkg/log"
	"mcal/pkg/recurrence"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	staticDir   string

	// Storage
	postgresDB *gorm.DB
	expanded   *cache.Namespace

	// Calendar domain
	expander recurrence.Expander

	// Suggestion domain
	llm             *llmprovider.Manager
	prompt          string
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	StaticDir   string

	// Storage
	PostgresDB *gorm.DB
	// ExpandedCache caches range queries; nil disables caching.
	ExpandedCache *cache.Namespace

	// Calendar domain
	Expander recurrence.Expander

	// Suggestion domain. A nil LLM makes the suggestion endpoint answer 503.
	LLM             *llmprovider.Manager
	Prompt          string
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		staticDir:       cfg.StaticDir,
		postgresDB:      cfg.PostgresDB,
		expanded:        cfg.ExpandedCache,
		expander:        cfg.Expander,
		llm:             cfg.LLM,
		prompt:          cfg.Prompt,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.prompt == "" {
		return errors.New("suggestion prompt is required")
	}
	return nil
}
