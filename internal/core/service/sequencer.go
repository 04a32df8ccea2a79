package service

import (
	"context"
	"sync"
	"time"
)

// Sequencer orders requests that share a key (typically client id + view).
// Starting a new request cancels the one still in flight for the same key,
// and a result whose generation is no longer the latest must be discarded.
type Sequencer struct {
	mu      sync.Mutex
	entries map[string]*sequenceEntry
	now     func() time.Time
}

type sequenceEntry struct {
	gen      uint64
	cancel   context.CancelFunc
	lastUsed time.Time
}

// Ticket identifies one request issued through a Sequencer.
type Ticket struct {
	seq *Sequencer
	key string
	gen uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{entries: make(map[string]*sequenceEntry), now: time.Now}
}

// Begin issues the next generation for key and returns a context that is
// cancelled when a newer request for key begins. Callers must call Done.
func (s *Sequencer) Begin(ctx context.Context, key string) (context.Context, Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		e = &sequenceEntry{}
		s.entries[key] = e
	}
	if e.cancel != nil {
		e.cancel()
	}
	e.gen++
	e.lastUsed = s.now()

	reqCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	return reqCtx, Ticket{seq: s, key: key, gen: e.gen}
}

// Latest reports whether t is still the newest request for its key.
func (t Ticket) Latest() bool {
	t.seq.mu.Lock()
	defer t.seq.mu.Unlock()
	e, ok := t.seq.entries[t.key]
	return ok && e.gen == t.gen
}

// Generation returns the sequence number issued to t.
func (t Ticket) Generation() uint64 { return t.gen }

// Done releases the request's context. Generations are kept so that late
// tickets still compare correctly.
func (t Ticket) Done() {
	t.seq.mu.Lock()
	defer t.seq.mu.Unlock()
	e, ok := t.seq.entries[t.key]
	if !ok || e.gen != t.gen {
		return
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// Prune forgets keys idle for longer than maxIdle with nothing in flight and
// returns how many were dropped.
func (s *Sequencer) Prune(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-maxIdle)
	dropped := 0
	for key, e := range s.entries {
		if e.cancel == nil && e.lastUsed.Before(cutoff) {
			delete(s.entries, key)
			dropped++
		}
	}
	return dropped
}
