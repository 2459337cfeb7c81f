package permissions

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// DefaultPollInterval is how often the gate re-checks trust when no
// notification arrives.
const DefaultPollInterval = time.Second

// GateOptions configures a Gate. Zero values select the platform behaviour.
type GateOptions struct {
	// Trusted reports whether the process is trusted. The first call passes
	// prompt=true so the system dialog is shown once.
	Trusted func(prompt bool) bool
	// Observe subscribes notify to trust-change notifications and returns a
	// function that unsubscribes.
	Observe      func(notify func()) (stop func())
	PollInterval time.Duration
	Logger       *slog.Logger
}

// Gate blocks startup until the process holds accessibility trust.
type Gate struct {
	trusted  func(prompt bool) bool
	observe  func(notify func()) (stop func())
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	granted bool
	signal  chan struct{}
}

// NewGate constructs a gate.
func NewGate(opts GateOptions) *Gate {
	g := &Gate{
		trusted:  opts.Trusted,
		observe:  opts.Observe,
		interval: opts.PollInterval,
		logger:   opts.Logger,
		signal:   make(chan struct{}, 1),
	}
	if g.trusted == nil {
		g.trusted = platformTrusted
	}
	if g.observe == nil {
		g.observe = observeAccessibility
	}
	if g.interval <= 0 {
		g.interval = DefaultPollInterval
	}
	return g
}

// Notify wakes a waiting gate so it re-checks trust.
func (g *Gate) Notify() {
	select {
	case g.signal <- struct{}{}:
	default:
	}
}

// Granted reports whether a previous Wait observed trust.
func (g *Gate) Granted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.granted
}

// Wait blocks until trust is granted or ctx is done. Missing trust is not an
// error; the user resolves it in System Settings.
func (g *Gate) Wait(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context must not be nil")
	}
	if g.check(true) {
		return nil
	}

	if g.logger != nil {
		g.logger.Info("waiting for accessibility permission")
	}
	stop := g.observe(g.Notify)
	defer stop()

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.signal:
		case <-ticker.C:
		}
		if g.check(false) {
			if g.logger != nil {
				g.logger.Info("accessibility permission granted")
			}
			return nil
		}
	}
}

func (g *Gate) check(prompt bool) bool {
	if !g.trusted(prompt) {
		return false
	}
	g.mu.Lock()
	g.granted = true
	g.mu.Unlock()
	return true
}
