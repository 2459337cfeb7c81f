package tap

import (
	"errors"
	"log/slog"

	"github.com/offlinefirst/dragscroll/pkg/logging"
	"github.com/offlinefirst/dragscroll/pkg/scroll"
)

var (
	// ErrCreateTap reports that the OS refused to create the event tap.
	ErrCreateTap = errors.New("could not create an event tap")
	// ErrCreateSource reports that the tap's run loop source could not be created.
	ErrCreateSource = errors.New("could not create a run loop source")
	// ErrUnsupported reports that this platform has no event tap backend.
	ErrUnsupported = errors.New("event tap unsupported on this platform")
)

// Options controls tap behaviour.
type Options struct {
	Config scroll.Config
	Logger *slog.Logger

	// Cursor overrides the platform cursor; tests use it to observe warps.
	Cursor scroll.Cursor
}

// Tap owns the engine and the OS interception handle.
type Tap struct {
	cfg    scroll.Config
	engine *scroll.Engine
	logger *slog.Logger
}

// New validates options and builds the engine the tap will drive.
func New(opts Options) (*Tap, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	cursor := opts.Cursor
	if cursor == nil {
		cursor = platformCursor{}
	}
	engine, err := scroll.NewEngine(scroll.Options{
		Config: opts.Config,
		Cursor: cursor,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}
	return &Tap{cfg: opts.Config, engine: engine, logger: logger}, nil
}

// Engine exposes the state machine driven by the tap.
func (t *Tap) Engine() *scroll.Engine {
	return t.engine
}

// IsFatal reports whether err must end the process with a user-visible
// notice.
func IsFatal(err error) bool {
	return errors.Is(err, ErrCreateTap) || errors.Is(err, ErrCreateSource)
}

// NoticeFor returns the alert header shown for a fatal error.
func NoticeFor(err error) string {
	switch {
	case errors.Is(err, ErrCreateTap):
		return "dragscroll could not create an event tap."
	case errors.Is(err, ErrCreateSource):
		return "dragscroll could not create a run loop source."
	case err != nil:
		return "dragscroll stopped: " + err.Error()
	default:
		return ""
	}
}
