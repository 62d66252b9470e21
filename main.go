package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/config"
	"familaw-engine/internal/handler"
	"familaw-engine/internal/logger"
	"familaw-engine/internal/metrics"
	"familaw-engine/internal/rulesource"
)

const (
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// defaults -> optional file -> env
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogFormat); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Named("main")
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	rules, err := rulesource.Load(ctx, rulesource.Options{
		URL:     cfg.RulesURL,
		Path:    cfg.RulesPath,
		File:    cfg.RulesFile,
		Timeout: cfg.RulesTimeout(),
	})
	if err != nil {
		log.Error(ctx, "failed to load rules", logger.Error(err))
		os.Exit(1)
	}
	if rules.Fallback != nil {
		log.Warn(ctx, "remote rules unavailable; using built-in table",
			logger.String("rules_url", cfg.RulesURL), logger.Error(rules.Fallback))
	}
	log.Info(ctx, "rules loaded",
		logger.String("version", rules.Table.Version),
		logger.String("source", string(rules.Source)),
	)

	m := metrics.NewManager()
	m.SetRulesInfo(rules.Table.Version, string(rules.Source))

	api := handler.New(calc.New(rules.Table), string(rules.Source), m, logger.Named("http"))

	srv := &fasthttp.Server{
		Name:               "familaw-engine",
		Handler:            api.Handler(),
		ReadTimeout:        cfg.ReadTimeout(),
		WriteTimeout:       cfg.WriteTimeout(),
		IdleTimeout:        idleTimeout,
		MaxRequestBodySize: cfg.MaxBodyBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error(ctx, "HTTP server failed", logger.Error(err))
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "server stopped")
}
