// File: cmd/app/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voucher-pass/internal/config"
	"voucher-pass/internal/infra/adapters/nav"
	"voucher-pass/internal/infra/adapters/qr"
	"voucher-pass/internal/infra/links"
	"voucher-pass/internal/infra/logging"
	"voucher-pass/internal/infra/metrics"
	"voucher-pass/internal/infra/ratelimit"
	red "voucher-pass/internal/infra/redis"
	"voucher-pass/internal/infra/sched"
	"voucher-pass/internal/infra/security"
	"voucher-pass/internal/infra/web"
	"voucher-pass/internal/usecase"
)

// Overridden at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, debug output)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Runtime.Dev {
		log.Printf("[DEV MODE] Enabled")
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)

	// ---- Metrics ----
	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	// ---- Rate limiter (Redis when configured, in-process otherwise) ----
	var limiter web.Limiter
	limiterBackend := "none"
	if cfg.RateLimit.Enabled {
		if cfg.Redis.URL != "" {
			redisClient, err := red.NewClient(ctx, &cfg.Redis)
			if err != nil {
				log.Fatalf("redis: %v", err)
			}
			defer redisClient.Close()
			limiter = red.NewRateLimiter(redisClient)
			limiterBackend = "redis"
		} else {
			local := ratelimit.NewLocal()
			limiter = local
			limiterBackend = "local"

			sweeper := sched.NewSweepWorker(10*time.Minute, local, logger)
			go func() { _ = sweeper.Run(ctx) }()
		}
		logger.Info().
			Str("backend", limiterBackend).
			Int("limit", cfg.RateLimit.Limit).
			Dur("window", cfg.RateLimit.Window).
			Msg("rate limiting enabled")
	}

	// ---- Signed deep links ----
	var codec *links.Codec
	if cfg.Links.SigningKey != "" {
		var sealer *security.Sealer
		if cfg.Links.EncryptKey != "" {
			sealer, err = security.NewSealer(cfg.Links.EncryptKey)
			if err != nil {
				log.Fatalf("sealer: %v", err)
			}
		}
		codec = links.NewCodec(cfg.Links.SigningKey, cfg.Links.MaxAge, sealer)
		logger.Info().Bool("required", cfg.Links.Required).Bool("sealed", sealer != nil).Msg("signed links enabled")
	}

	// ---- Collaborators and use case ----
	qrRenderer := qr.NewCodeRenderer(cfg.QR.Level)
	backResolver := nav.NewBackResolver(cfg.Render.BackURL)
	viewUC := usecase.NewViewUseCase(logger)

	// ---- HTTP server ----
	srv := web.NewServer(viewUC, qrRenderer, backResolver, codec, limiter, limiterBackend, cfg, logger)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Str("version", version).Msg("voucher screen listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown")
	}
}
