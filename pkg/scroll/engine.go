package scroll

import (
	"errors"
	"io"
	"log/slog"
)

// Options configures an Engine.
type Options struct {
	Config Config
	Cursor Cursor
	Logger *slog.Logger
}

// Engine is the activation state machine behind the event tap callback.
type Engine struct {
	cfg    Config
	state  State
	pin    pinner
	logger *slog.Logger
}

// NewEngine validates options and returns an inactive engine.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Cursor == nil {
		return nil, errors.New("cursor must be provided")
	}
	if !ValidButton(opts.Config.Button) {
		return nil, errors.New("button must be 0 or between 3 and 32")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		cfg:    opts.Config,
		pin:    pinner{cursor: opts.Cursor},
		logger: logger,
	}, nil
}

// Config returns the activation parameters the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns a snapshot of the activation state.
func (e *Engine) State() State {
	return e.state
}

// Handle processes one intercepted event and reports what the tap should do
// with it.
func (e *Engine) Handle(ev Event) Result {
	if e.isTrigger(ev, EventOtherMouseDown) {
		if e.cfg.Legacy {
			e.setButton(!e.state.ButtonActive, ev.Location)
			return Result{Action: Swallow}
		}
		e.setButton(true, ev.Location)
		return Result{Action: Propagate}
	}
	if !e.cfg.Legacy && e.isTrigger(ev, EventOtherMouseUp) {
		e.setButton(false, ev.Location)
		return Result{Action: Propagate}
	}

	switch ev.Type {
	case EventMouseMoved, EventOtherMouseDragged:
		if !e.state.Active() {
			return Result{Action: Propagate}
		}
		return Result{Action: Replace, Scroll: e.translate(ev)}
	case EventFlagsChanged:
		if e.cfg.Keys != 0 {
			e.setKey(ev.Flags&e.cfg.Keys == e.cfg.Keys, ev.Location)
		}
	}
	return Result{Action: Propagate}
}

// Hold warps the cursor back to the pinned point. The tap calls it after
// posting the scroll event of a Replace result.
func (e *Engine) Hold() {
	if !e.state.Active() {
		return
	}
	e.pin.hold(e.state.Pinned)
}

// Close releases an active pin so the suppression interval does not stay at
// its engaged value after the tap stops.
func (e *Engine) Close() {
	if !e.state.Active() {
		return
	}
	e.state.ButtonActive = false
	e.state.KeyActive = false
	e.pin.release(e.state.Pinned)
	e.logger.Debug("drag-to-scroll released on shutdown")
}

func (e *Engine) isTrigger(ev Event, want EventType) bool {
	return e.cfg.HasButton() && ev.Type == want && ev.Button == e.cfg.RawButton()
}

func (e *Engine) setButton(active bool, at Point) {
	if e.state.ButtonActive == active {
		return
	}
	e.state.ButtonActive = active
	e.repin(active, e.state.KeyActive, at, "button")
}

func (e *Engine) setKey(active bool, at Point) {
	if e.state.KeyActive == active {
		return
	}
	e.state.KeyActive = active
	e.repin(active, e.state.ButtonActive, at, "keys")
}

// repin applies the first-trigger-wins rule: only a trigger acting alone may
// move or release the pin.
func (e *Engine) repin(active, otherActive bool, at Point, trigger string) {
	if otherActive {
		e.logger.Debug("trigger changed while other trigger holds pin", "trigger", trigger, "active", active)
		return
	}
	e.state.Pinned = at
	if active {
		e.pin.engage(at)
	} else {
		e.pin.release(at)
	}
	e.logger.Debug("drag-to-scroll toggled", "trigger", trigger, "active", active, "x", at.X, "y", at.Y)
}
