package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"dsa-onboarding/internal/audit"
	auditKafka "dsa-onboarding/internal/audit/kafka"
	"dsa-onboarding/internal/onboarding/service"
	"dsa-onboarding/internal/onboarding/store"
	"dsa-onboarding/internal/platform/config"
	"dsa-onboarding/internal/platform/postgres"
	"dsa-onboarding/internal/platform/redis"
	"dsa-onboarding/internal/verification/otp"
	"dsa-onboarding/internal/verification/ports"
	"dsa-onboarding/internal/verification/providers/fake"
	"dsa-onboarding/internal/verification/providers/kycapi"
	"dsa-onboarding/pkg/platform/httputil"
)

const auditBuffer = 1024

type providerSet struct {
	kind      string
	ids       ports.IDRegistry
	banks     ports.BankRegistry
	companies ports.CompanyRegistry
}

// infra holds the process-wide resources. Each backing service is optional
// and falls back to an in-process implementation when unconfigured.
type infra struct {
	storeKind string
	store     service.Store
	otpStore  otp.Store
	publisher *audit.Publisher
	provider  providerSet

	db    *sql.DB
	redis *redis.Client
	sink  *auditKafka.Sink
}

func buildInfra(ctx context.Context, cfg *config.Config, log *slog.Logger) (*infra, error) {
	in := &infra{}
	ok := false
	defer func() {
		if !ok {
			in.Close()
		}
	}()

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if db != nil {
		pg := store.NewPostgres(db)
		if err := pg.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		in.db, in.store, in.storeKind = db, pg, "postgres"
	} else {
		log.Warn("DATABASE_URL not set, applications are kept in memory")
		in.store, in.storeKind = store.NewInMemory(), "memory"
	}

	rc, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rc != nil {
		in.redis = rc
		in.otpStore = otp.NewRedisStore(rc.Client)
	} else {
		log.Warn("REDIS_URL not set, OTP references are kept in memory")
		in.otpStore = otp.NewMemoryStore()
	}

	var auditStore audit.Store
	if len(cfg.Kafka.Brokers) > 0 {
		sink, err := auditKafka.NewSink(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		in.sink = sink
		if err := sink.EnsureTopic(ctx, cfg.Kafka.Partitions, cfg.Kafka.Replicas); err != nil {
			return nil, err
		}
		auditStore = sink
	} else {
		log.Warn("KAFKA_BROKERS not set, audit events are kept in memory")
		auditStore = audit.NewMemoryStore()
	}
	in.publisher = audit.NewPublisher(auditStore, audit.WithAsyncBuffer(auditBuffer), audit.WithLogger(log))

	if cfg.Provider.Fake {
		p := fake.New()
		in.provider = providerSet{kind: "fake", ids: p, banks: p, companies: p}
	} else {
		c := kycapi.New(cfg.Provider, kycapi.WithLogger(log))
		in.provider = providerSet{kind: "kycapi", ids: c, banks: c, companies: c}
	}

	ok = true
	return in, nil
}

// Close flushes audit events before the connections they depend on go away.
func (in *infra) Close() {
	if in.publisher != nil {
		in.publisher.Close()
	}
	if in.sink != nil {
		in.sink.Close()
	}
	if in.redis != nil {
		_ = in.redis.Close()
	}
	if in.db != nil {
		_ = in.db.Close()
	}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// health reports every configured backing service.
func (in *infra) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]func(context.Context) error{}
	if in.db != nil {
		checks["postgres"] = in.db.PingContext
	}
	if in.redis != nil {
		checks["redis"] = in.redis.Health
	}
	if in.sink != nil {
		checks["kafka"] = in.sink.Ping
	}

	resp := healthResponse{Status: "ok", Checks: map[string]string{}}
	status := http.StatusOK
	for name, check := range checks {
		if err := check(ctx); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}
	httputil.WriteJSON(w, status, resp)
}
