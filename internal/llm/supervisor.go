package llm

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Pinger is implemented by clients that can cheaply check reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Supervisor probes the inference service at startup with bounded
// exponential backoff. There is no timer-based resurrection afterwards:
// once the retry budget is spent the supervisor records the failure and
// surfaces it through Available, leaving recovery to operator action.
type Supervisor struct {
	pinger     Pinger
	maxRetries uint64
	interval   time.Duration

	mu        sync.Mutex
	available bool
	lastErr   error
}

func NewSupervisor(pinger Pinger, maxRetries uint64, interval time.Duration) *Supervisor {
	if interval <= 0 {
		interval = time.Second
	}
	return &Supervisor{pinger: pinger, maxRetries: maxRetries, interval: interval}
}

// Probe blocks until the service answers a ping or the retry budget runs
// out. Returns the final error on give-up.
func (s *Supervisor) Probe(ctx context.Context) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.interval

	err := backoff.Retry(func() error {
		if err := s.pinger.Ping(ctx); err != nil {
			slog.Warn("inference service not reachable yet", "error", err)
			return err
		}
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(policy, s.maxRetries), ctx))

	s.mu.Lock()
	s.available = err == nil
	s.lastErr = err
	s.mu.Unlock()

	return err
}

// Available reports the outcome of the last probe.
func (s *Supervisor) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

// Err returns the give-up error from the last probe, or nil.
func (s *Supervisor) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
