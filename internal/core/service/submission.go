package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/api/metrics"
	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

// Operations guarded by the submission lock.
const (
	OpCreateAlert  = "alert.create"
	OpSubmitReport = "report.submit"
	OpContact      = "contact.submit"
	OpScan         = "scan"
)

// withSubmissionLock runs fn while holding the submission lock for
// clientID+operation. A concurrent second submission fails fast with
// domain.ErrSubmissionPending; the lock is released once fn settles.
func withSubmissionLock(ctx context.Context, lock ports.SubmissionLock, log zerolog.Logger, clientID, operation string, fn func(context.Context) error) error {
	token, err := lock.Acquire(ctx, clientID, operation)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionPending) {
			metrics.SubmissionLockTotal.WithLabelValues(operation, "rejected").Inc()
			return err
		}
		// Lock store down: proceed unguarded.
		log.Warn().Err(err).Str("operation", operation).Msg("submission lock unavailable, proceeding unguarded")
		return fn(ctx)
	}
	metrics.SubmissionLockTotal.WithLabelValues(operation, "acquired").Inc()

	defer func() {
		// The request context may already be cancelled; release on a fresh one.
		if err := lock.Release(context.WithoutCancel(ctx), clientID, operation, token); err != nil {
			log.Warn().Err(err).Str("operation", operation).Msg("failed to release submission lock")
		}
	}()
	return fn(ctx)
}
