package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"mcal/config"
	"mcal/internal/httpserver"
	"mcal/internal/migration"
	suggestionUC "mcal/internal/suggestion/usecase"
	"mcal/pkg/cache"
	"mcal/pkg/llmprovider"
	"mcal/pkg/log"
	"mcal/pkg/postgres"
	"mcal/pkg/recurrence"
)

const (
	expandedNamespace = "expanded"
	memoryCacheSize   = 256
)

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Listen on this port instead of http_server.port."},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP API (default).",
		Flags:  serveFlags(),
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	// 1. Configuration & logger
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	if c.IsSet("port") {
		cfg.HTTPServer.Port = c.Int("port")
	}

	ctx, stop := signalContext(c.Context)
	defer stop()

	logger.Info(ctx, "Starting mcal...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 2. PostgreSQL
	db, err := postgres.Connect(ctx, postgresConfig(cfg))
	if err != nil {
		return err
	}
	defer postgres.Close(db)

	if cfg.Postgres.AutoMigrate {
		if err := migration.Up(ctx, db, logger); err != nil {
			return err
		}
	}

	// 3. Expanded-range cache
	expanded := cache.NewNamespace(newCache(ctx, cfg, logger), expandedNamespace, cfg.Redis.TTL)

	// 4. Recurrence expander
	clamp, err := recurrence.ParseClampMode(cfg.Recurrence.ClampMode)
	if err != nil {
		return fmt.Errorf("recurrence.clamp_mode: %w", err)
	}
	if clamp == recurrence.ClampAnchored {
		logger.Warn(ctx, "Recurrence clamp mode: anchored (monthly/yearly steps keep the series' original day)")
	}
	expander := recurrence.NewExpander(
		recurrence.WithMaxOccurrences(cfg.Recurrence.MaxOccurrences),
		recurrence.WithClampMode(clamp),
	)

	// 5. AI providers (optional)
	llm := newLLMManager(ctx, cfg, logger)
	prompt, err := suggestionUC.LoadPrompt(cfg.Suggestion.PromptPath)
	if err != nil {
		return err
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		StaticDir:       cfg.Static.Dir,
		PostgresDB:      db,
		ExpandedCache:   expanded,
		Expander:        expander,
		LLM:             llm,
		Prompt:          prompt,
		RateLimitPerMin: cfg.Suggestion.RateLimitPerMin,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		return err
	}

	logger.Info(context.Background(), "Server stopped gracefully")
	return nil
}

func postgresConfig(cfg *config.Config) postgres.Config {
	return postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		Debug:           cfg.Postgres.Debug,
	}
}

// newCache prefers Redis and falls back to an in-process cache when Redis is
// not configured or unreachable.
func newCache(ctx context.Context, cfg *config.Config, logger log.Logger) cache.Cache {
	if cfg.Redis.Addr == "" {
		logger.Info(ctx, "Redis not configured, using in-process cache")
		return cache.NewMemory(memoryCacheSize, cfg.Redis.TTL)
	}

	client, err := cache.Connect(ctx, cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Warnf(ctx, "Redis unavailable, using in-process cache: %v", err)
		return cache.NewMemory(memoryCacheSize, cfg.Redis.TTL)
	}

	logger.Infof(ctx, "Redis cache connected at %s", cfg.Redis.Addr)
	return cache.NewRedis(client)
}

// newLLMManager returns nil when no provider can be initialized.
func newLLMManager(ctx context.Context, cfg *config.Config, logger log.Logger) *llmprovider.Manager {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Warnf(ctx, "AI suggestions disabled: %v", err)
		return nil
	}

	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelayDuration(),
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeoutDuration(),
	}, logger)
}
