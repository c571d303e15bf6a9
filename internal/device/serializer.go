package device

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// Serializer guarantees at most one device command is in flight.
//
// Each scheduled command first cancels the previous one with
// ErrInterrupted, waits for it to settle, then runs. Interruption
// errors from superseded commands are swallowed; any other failure is
// logged and otherwise ignored so the engine's optimistic state stands.
// Commands run in issue order.
type Serializer struct {
	mu   sync.Mutex
	last *inflight
	log  zerolog.Logger
}

type inflight struct {
	done   chan struct{}
	cancel context.CancelCauseFunc
	err    error
}

// NewSerializer creates a serializer logging command failures to log.
func NewSerializer(log zerolog.Logger) *Serializer {
	return &Serializer{log: log}
}

// Do schedules op as the sole in-flight device command and returns
// immediately. A prior unsettled command is interrupted and awaited
// before op runs.
func (s *Serializer) Do(name string, op func(ctx context.Context) error) {
	ctx, cancel := context.WithCancelCause(context.Background())
	cur := &inflight{done: make(chan struct{}), cancel: cancel}

	s.mu.Lock()
	prev := s.last
	s.last = cur
	s.mu.Unlock()

	if prev != nil {
		prev.cancel(ErrInterrupted)
	}

	go func() {
		defer close(cur.done)
		if prev != nil {
			<-prev.done
		}
		cur.err = op(ctx)
		cancel(nil)
		if cur.err != nil && !errors.Is(cur.err, ErrInterrupted) {
			s.log.Warn().Err(cur.err).Str("command", name).Msg("device command failed")
		}
	}()
}

// Wait blocks until the most recently scheduled command has settled.
// Used at teardown and in tests; new commands may still be scheduled
// while waiting.
func (s *Serializer) Wait() {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last != nil {
		<-last.done
	}
}
