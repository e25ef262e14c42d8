// Package saga runs multi-resource flows as ordered steps with compensations.
package saga

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/account-service/internal/metrics"
)

const defaultCompensationTimeout = 10 * time.Second

// Step is one forward action of a flow. Compensate undoes Do and may be nil
// when there is nothing to undo (e.g. the last step).
type Step struct {
	Name       string
	Do         func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Runner executes flows.
type Runner struct {
	log     *slog.Logger
	tracer  trace.Tracer
	timeout time.Duration
}

// NewRunner creates a Runner. compensationTimeout bounds every compensation.
func NewRunner(logger *slog.Logger, compensationTimeout time.Duration) *Runner {
	if compensationTimeout <= 0 {
		compensationTimeout = defaultCompensationTimeout
	}
	return &Runner{
		log:     logger.With("component", "saga"),
		tracer:  otel.Tracer("github.com/heartmarshall/account-service/internal/saga"),
		timeout: compensationTimeout,
	}
}

// Run executes steps in order. When step k fails, the compensations of steps
// k-1..1 run in reverse order and step k's error is returned unchanged.
// Compensation failures are logged and counted; they never replace that error.
func (r *Runner) Run(ctx context.Context, flow string, steps ...Step) error {
	ctx, span := r.tracer.Start(ctx, "saga."+flow)
	defer span.End()

	for i, step := range steps {
		if err := r.do(ctx, flow, step); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, step.Name)
			r.compensate(ctx, flow, steps[:i])
			return err
		}
	}
	return nil
}

func (r *Runner) do(ctx context.Context, flow string, step Step) error {
	ctx, span := r.tracer.Start(ctx, step.Name, trace.WithAttributes(attribute.String("saga.flow", flow)))
	defer span.End()

	err := ctx.Err()
	if err == nil {
		err = step.Do(ctx)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.SagaStepsTotal.WithLabelValues(flow, step.Name, metrics.ResultFailed).Inc()
		return err
	}

	metrics.SagaStepsTotal.WithLabelValues(flow, step.Name, metrics.ResultOK).Inc()
	return nil
}

// compensate undoes done in reverse order on a context detached from the
// request's cancellation.
func (r *Runner) compensate(ctx context.Context, flow string, done []Step) {
	base := context.WithoutCancel(ctx)

	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Compensate == nil {
			continue
		}

		cctx, cancel := context.WithTimeout(base, r.timeout)
		cctx, span := r.tracer.Start(cctx, step.Name+".compensate",
			trace.WithAttributes(attribute.String("saga.flow", flow)))

		err := step.Compensate(cctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.SagaCompensationsTotal.WithLabelValues(flow, step.Name, metrics.ResultFailed).Inc()
			r.log.ErrorContext(cctx, "compensation failed",
				slog.String("flow", flow),
				slog.String("step", step.Name),
				slog.String("error", err.Error()),
			)
		} else {
			metrics.SagaCompensationsTotal.WithLabelValues(flow, step.Name, metrics.ResultOK).Inc()
		}

		span.End()
		cancel()
	}
}
