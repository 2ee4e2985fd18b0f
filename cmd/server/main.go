package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	jwttoken "dsa-onboarding/internal/jwt_token"
	onboardingHandler "dsa-onboarding/internal/onboarding/handler"
	onboardingMetrics "dsa-onboarding/internal/onboarding/metrics"
	"dsa-onboarding/internal/onboarding/service"
	"dsa-onboarding/internal/onboarding/workflow"
	"dsa-onboarding/internal/platform/config"
	"dsa-onboarding/internal/platform/httpserver"
	"dsa-onboarding/internal/platform/logger"
	"dsa-onboarding/internal/platform/metrics"
	"dsa-onboarding/internal/platform/middleware"
	"dsa-onboarding/internal/verification/decision"
	"dsa-onboarding/internal/verification/otp"
	"dsa-onboarding/pkg/platform/circuit"
)

const (
	shutdownTimeout = 15 * time.Second
	// requestTimeout covers the provider budget plus persistence.
	requestTimeout = 55 * time.Second
)

// main wires dependencies and runs the HTTP server until a signal arrives.
// Business logic lives in the internal service packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Server.Environment, cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	res, err := buildInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer res.Close()

	svc := service.New(
		res.store,
		res.provider.ids,
		res.provider.banks,
		res.provider.companies,
		otp.NewGuard(res.otpStore, cfg.OTP.ReferenceTTL),
		service.WithLogger(log),
		service.WithAuditPublisher(res.publisher),
		service.WithMetrics(onboardingMetrics.New(prometheus.DefaultRegisterer)),
		service.WithThresholds(decision.Thresholds{
			Block:   cfg.Policy.BlockThreshold,
			Approve: cfg.Policy.ApproveThreshold,
		}),
		service.WithLimits(workflow.Limits{
			MinReferences: cfg.Policy.MinReferences,
			MinPartners:   cfg.Policy.MinPartners,
			MaxPartners:   cfg.Policy.MaxPartners,
		}),
		service.WithProviderTimeout(cfg.Provider.Timeout),
		service.WithProviderBreaker(circuit.New(res.provider.kind,
			circuit.WithFailureThreshold(cfg.Provider.BreakerFailures),
			circuit.WithCooldown(cfg.Provider.BreakerCooldown),
		)),
	)

	router := newRouter(cfg, log, onboardingHandler.New(svc, log), res.health)
	srv := httpserver.New(cfg.Server.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting dsa-onboarding",
			"addr", cfg.Server.Addr,
			"environment", cfg.Server.Environment,
			"store", res.storeKind,
			"provider", res.provider.kind,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newRouter(cfg *config.Config, log *slog.Logger, h *onboardingHandler.Handler, health http.HandlerFunc) chi.Router {
	httpMetrics := metrics.New(prometheus.DefaultRegisterer)
	jwtService := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, cfg.Server.JWTAudience)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.LatencyMiddleware(httpMetrics))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(jwttoken.NewJWTServiceAdapter(jwtService), log))
		h.Register(r)
	})
	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAdminToken(cfg.Server.AdminAPIToken, log))
		h.RegisterAdmin(r)
	})
	return r
}
