package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

func TestWithSubmissionLock_ReleasesOnError(t *testing.T) {
	lock := &stubLock{}
	boom := errors.New("boom")

	err := withSubmissionLock(context.Background(), lock, zerolog.Nop(), "c", OpContact, func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if len(lock.held) != 0 || lock.released != 1 {
		t.Fatalf("lock must be released after a failed submission: %+v", lock)
	}
}

func TestWithSubmissionLock_RejectsWhileHeld(t *testing.T) {
	lock := &stubLock{}
	ran := 0

	err := withSubmissionLock(context.Background(), lock, zerolog.Nop(), "c", OpContact, func(ctx context.Context) error {
		ran++
		return withSubmissionLock(ctx, lock, zerolog.Nop(), "c", OpContact, func(context.Context) error {
			ran++
			return nil
		})
	})
	if !errors.Is(err, domain.ErrSubmissionPending) || ran != 1 {
		t.Fatalf("expected nested submission to be rejected, got %v (ran %d)", err, ran)
	}
}

func TestWithSubmissionLock_StoreDownProceeds(t *testing.T) {
	lock := &stubLock{acquireErr: errors.New("redis down")}
	ran := false

	err := withSubmissionLock(context.Background(), lock, zerolog.Nop(), "c", OpSubmitReport, func(context.Context) error {
		ran = true
		return nil
	})
	if err != nil || !ran {
		t.Fatalf("expected unguarded run, got %v (ran %v)", err, ran)
	}
	if lock.released != 0 {
		t.Fatalf("nothing acquired, nothing to release")
	}
}

func TestWithSubmissionLock_CancelledContextStillReleases(t *testing.T) {
	lock := &stubLock{}
	ctx, cancel := context.WithCancel(context.Background())

	_ = withSubmissionLock(ctx, lock, zerolog.Nop(), "c", OpScan, func(context.Context) error {
		cancel()
		return context.Canceled
	})
	if len(lock.held) != 0 {
		t.Fatalf("lock leaked after cancellation")
	}
}

func TestWithSubmissionLock_ReleasesWithOwnToken(t *testing.T) {
	lock := &stubLock{}

	err := withSubmissionLock(context.Background(), lock, zerolog.Nop(), "c", OpScan, func(context.Context) error {
		// Another holder takes over after this one's lease ran out.
		lock.mu.Lock()
		lock.held["c:"+OpScan] = "successor"
		lock.mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lock.held["c:"+OpScan] != "successor" {
		t.Fatalf("release must not drop a lock held by another token: %+v", lock.held)
	}
}
