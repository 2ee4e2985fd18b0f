// Package service orchestrates onboarding: it loads an application, calls the
// verification providers, runs the decision tables and advances the state
// machine, then persists the result in one versioned write.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"dsa-onboarding/internal/audit"
	"dsa-onboarding/internal/onboarding/metrics"
	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/onboarding/workflow"
	"dsa-onboarding/internal/platform/device"
	"dsa-onboarding/internal/platform/middleware"
	"dsa-onboarding/internal/verification/decision"
	"dsa-onboarding/internal/verification/otp"
	"dsa-onboarding/internal/verification/ports"
	"dsa-onboarding/pkg/attrs"
	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/platform/circuit"
	"dsa-onboarding/pkg/platform/sentinel"
	"dsa-onboarding/pkg/requestcontext"
)

const defaultProviderTimeout = 45 * time.Second

type Store interface {
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, appID id.ApplicationID) (*models.Application, error)
	FindByOwner(ctx context.Context, owner id.UserID) ([]*models.Application, error)
	Update(ctx context.Context, app *models.Application) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service is the onboarding orchestrator. Provider ports are required; the
// rest is optional and configured through options.
type Service struct {
	store     Store
	ids       ports.IDRegistry
	banks     ports.BankRegistry
	companies ports.CompanyRegistry
	otp       *otp.Guard

	logger          *slog.Logger
	auditPublisher  AuditPublisher
	metrics         *metrics.Metrics
	tracer          trace.Tracer
	thresholds      decision.Thresholds
	limits          workflow.Limits
	providerTimeout time.Duration
	breaker         *circuit.Breaker
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

func WithThresholds(th decision.Thresholds) Option {
	return func(s *Service) {
		s.thresholds = th
	}
}

func WithLimits(l workflow.Limits) Option {
	return func(s *Service) {
		s.limits = l
	}
}

// WithProviderTimeout bounds every provider call. Zero disables the bound.
func WithProviderTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.providerTimeout = d
	}
}

// WithProviderBreaker fails provider calls fast while the breaker is open.
func WithProviderBreaker(b *circuit.Breaker) Option {
	return func(s *Service) {
		s.breaker = b
	}
}

// New constructs a Service.
func New(store Store, ids ports.IDRegistry, banks ports.BankRegistry, companies ports.CompanyRegistry, guard *otp.Guard, opts ...Option) *Service {
	s := &Service{
		store:           store,
		ids:             ids,
		banks:           banks,
		companies:       companies,
		otp:             guard,
		logger:          slog.Default(),
		tracer:          otel.Tracer("dsa-onboarding/onboarding"),
		thresholds:      decision.DefaultThresholds(),
		limits:          workflow.DefaultLimits(),
		providerTimeout: defaultProviderTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// load fetches an application the caller owns. Applications of other users
// are reported as not found.
func (s *Service) load(ctx context.Context, appID id.ApplicationID, owner id.UserID) (*models.Application, error) {
	app, err := s.store.FindByID(ctx, appID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application")
	}
	if !app.IsOwnedBy(owner) {
		return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
	}
	return app, nil
}

// save writes app with a version check. A lost race is a conflict the
// caller resolves by reloading.
func (s *Service) save(ctx context.Context, app *models.Application) error {
	if err := s.store.Update(ctx, app); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrConflict):
			return dErrors.New(dErrors.CodeConflict, "application was modified concurrently, reload and retry")
		case errors.Is(err, sentinel.ErrNotFound):
			return dErrors.New(dErrors.CodeNotFound, "application not found")
		default:
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save application")
		}
	}
	return nil
}

// mutate loads an open application, applies fn and saves it.
func (s *Service) mutate(ctx context.Context, appID id.ApplicationID, owner id.UserID, fn func(app *models.Application, now time.Time) error) (*models.Application, error) {
	app, err := s.load(ctx, appID, owner)
	if err != nil {
		return nil, err
	}
	if err := workflow.EnsureOpen(app); err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	if err := fn(app, now); err != nil {
		return nil, err
	}
	app.UpdatedAt = now
	if err := s.save(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// callProvider runs one provider round trip inside a span and the provider
// timeout. Uncoded failures become external service errors.
func (s *Service) callProvider(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "provider."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("provider.operation", operation)),
	)
	defer span.End()

	if s.breaker != nil && !s.breaker.Allow() {
		span.SetStatus(codes.Error, string(dErrors.CodeExternalService))
		return dErrors.New(dErrors.CodeExternalService, "verification provider unavailable")
	}

	if s.providerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.providerTimeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)
	s.metrics.ObserveProviderCall(operation, err, time.Since(start))
	if err == nil {
		s.recordProviderResult(ctx, false)
		return nil
	}

	var coded *dErrors.Error
	if !errors.As(err, &coded) {
		if errors.Is(err, context.DeadlineExceeded) {
			err = dErrors.Wrap(err, dErrors.CodeTimeout, "verification provider timed out")
		} else {
			err = dErrors.Wrap(err, dErrors.CodeExternalService, "verification provider unavailable")
		}
	}
	code := dErrors.CodeOf(err)
	s.recordProviderResult(ctx, code == dErrors.CodeExternalService || code == dErrors.CodeTimeout)
	span.RecordError(err)
	span.SetStatus(codes.Error, string(code))
	s.logger.WarnContext(ctx, "verification provider call failed",
		"operation", operation,
		"code", code,
		"error", err,
	)
	return err
}

// recordProviderResult feeds the breaker. Rejections such as an unknown PAN
// mean the provider answered and count as successes.
func (s *Service) recordProviderResult(ctx context.Context, failed bool) {
	if s.breaker == nil {
		return
	}
	if failed {
		if _, change := s.breaker.RecordFailure(); change.Opened {
			s.logger.ErrorContext(ctx, "verification provider circuit opened", "breaker", s.breaker.Name())
		}
		return
	}
	if _, change := s.breaker.RecordSuccess(); change.Closed {
		s.logger.InfoContext(ctx, "verification provider circuit closed", "breaker", s.breaker.Name())
	}
}

// decide runs a rule table. A missing upstream fact is a defect and is
// logged loudly; it never turns into an approval.
func (s *Service) decide(ctx context.Context, app *models.Application, check models.CheckContext, table func() (decision.Outcome, error)) (decision.Outcome, error) {
	out, err := table()
	if err != nil {
		if dErrors.Is(err, dErrors.CodeMissingUpstreamFact) {
			s.logger.ErrorContext(ctx, "decision table invoked without required fact",
				"application_id", app.ID.String(),
				"context", string(check),
				"error", err,
			)
		}
		return decision.Outcome{}, err
	}
	s.metrics.IncrementDecision(string(check), string(out.Decision))
	return out, nil
}

// complete marks step done and counts it. Blocks surface as
// CodeBlockedTransition.
func (s *Service) complete(ctx context.Context, app *models.Application, step models.StepID, out decision.Outcome, now time.Time) error {
	if err := workflow.MarkComplete(app, step, out, now); err != nil {
		return err
	}
	s.metrics.IncrementStepCompleted(string(app.EntityType), string(step))
	return nil
}

// afterStep emits the audit trail of a completed step.
func (s *Service) afterStep(ctx context.Context, app *models.Application, owner id.UserID, step models.StepID) {
	s.logAudit(ctx, string(audit.EventStepCompleted),
		"user_id", owner.String(),
		"application_id", app.ID.String(),
		"step", string(step),
		"status", string(app.Status),
	)
	if app.Status == models.StatusCompleted {
		s.logAudit(ctx, string(audit.EventApplicationCompleted),
			"user_id", owner.String(),
			"application_id", app.ID.String(),
		)
	}
}

// auditDecision records a rule-table outcome, including blocks that are
// never persisted on the application.
func (s *Service) auditDecision(ctx context.Context, app *models.Application, owner id.UserID, subject string, check models.CheckContext, out decision.Outcome) {
	s.logger.InfoContext(ctx, "verification decided",
		"event", string(audit.EventVerificationDecided),
		"log_type", "audit",
		"request_id", middleware.GetRequestID(ctx),
		"application_id", app.ID.String(),
		"context", string(check),
		"decision", string(out.Decision),
		"warnings", out.Warnings,
	)
	s.emit(ctx, audit.Event{
		Action:        string(audit.EventVerificationDecided),
		UserID:        owner.String(),
		ApplicationID: app.ID.String(),
		Subject:       subject,
		Step:          string(check),
		Decision:      string(out.Decision),
		Score:         out.Score,
		Warnings:      out.Warnings,
	})
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	if requestID := middleware.GetRequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	if s.logger != nil {
		s.logger.InfoContext(ctx, event, args...)
	}
	s.emit(ctx, audit.Event{
		Action:        event,
		UserID:        attrs.ExtractString(attributes, "user_id"),
		ApplicationID: attrs.ExtractString(attributes, "application_id"),
		Subject:       attrs.ExtractString(attributes, "subject"),
		Step:          attrs.ExtractString(attributes, "step"),
		Reason:        attrs.ExtractString(attributes, "reason"),
		ActorID:       attrs.ExtractString(attributes, "actor_id"),
	})
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}
	event.Timestamp = requestcontext.Now(ctx)
	event.RequestID = middleware.GetRequestID(ctx)
	if event.Device == "" {
		event.Device = device.ParseUserAgent(requestcontext.UserAgent(ctx))
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event", "action", event.Action, "error", err)
	}
}
