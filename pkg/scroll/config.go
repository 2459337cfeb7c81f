package scroll

import (
	"fmt"
	"strings"
)

const (
	DefaultButton = 3
	DefaultSpeed  = 2

	MinButton = 3
	MaxButton = 32
)

// Config holds the validated activation parameters. It is immutable once the
// tap is installed.
type Config struct {
	// Button is the user-facing trigger button number; 0 disables the
	// button trigger.
	Button int
	Keys   Flags
	Speed  int
	Legacy bool
}

// DefaultConfig returns the activation parameters used when nothing is
// configured.
func DefaultConfig() Config {
	return Config{Button: DefaultButton, Speed: DefaultSpeed}
}

// ValidButton reports whether b is an accepted trigger button value.
func ValidButton(b int) bool {
	return b == 0 || (b >= MinButton && b <= MaxButton)
}

// HasButton reports whether a trigger button is configured.
func (c Config) HasButton() bool {
	return c.Button != 0
}

// RawButton returns the hardware button number reported by Quartz for the
// configured button, which counts from zero.
func (c Config) RawButton() int64 {
	if !c.HasButton() {
		return -1
	}
	return int64(c.Button - 1)
}

// Subscriptions lists the event categories the tap must deliver.
func (c Config) Subscriptions() []EventType {
	types := []EventType{EventMouseMoved}
	if c.HasButton() {
		types = append(types,
			EventOtherMouseDown, EventOtherMouseUp, EventOtherMouseDragged,
			EventLeftMouseDown, EventLeftMouseUp, EventLeftMouseDragged,
			EventRightMouseDown, EventRightMouseUp, EventRightMouseDragged,
		)
	}
	if c.Keys != 0 {
		types = append(types, EventFlagsChanged)
	}
	return types
}

var modifierNames = []struct {
	name string
	flag Flags
}{
	{"capslock", FlagCapsLock},
	{"shift", FlagShift},
	{"control", FlagControl},
	{"option", FlagOption},
	{"command", FlagCommand},
}

// ParseModifier maps a modifier name to its flag, ignoring case.
func ParseModifier(name string) (Flags, error) {
	trimmed := strings.TrimSpace(name)
	for _, m := range modifierNames {
		if strings.EqualFold(trimmed, m.name) {
			return m.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown modifier %q", name)
}

// Names returns the modifier names set in f in canonical order.
func (f Flags) Names() []string {
	var names []string
	for _, m := range modifierNames {
		if f&m.flag != 0 {
			names = append(names, m.name)
		}
	}
	return names
}
