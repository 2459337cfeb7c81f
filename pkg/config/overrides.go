package config

import (
	"fmt"

	"github.com/offlinefirst/dragscroll/pkg/scroll"
)

// overrides holds the activation values one source supplied. Invalid values
// are stored as their defaults so they shadow earlier sources the same way a
// valid value would.
type overrides struct {
	button   *int
	keys     *scroll.Flags
	speed    *int
	legacy   *bool
	warnings []string
}

func (o *overrides) warn(format string, args ...any) {
	o.warnings = append(o.warnings, fmt.Sprintf(format, args...))
}

func (o *overrides) setButton(b int) {
	if !scroll.ValidButton(b) {
		o.warn("button %d out of range (0 or %d-%d); using %d", b, scroll.MinButton, scroll.MaxButton, scroll.DefaultButton)
		b = scroll.DefaultButton
	}
	o.button = &b
}

func (o *overrides) invalidButton(raw string) {
	o.warn("button %q is not an integer; using %d", raw, scroll.DefaultButton)
	b := scroll.DefaultButton
	o.button = &b
}

func (o *overrides) setKeys(names []string) {
	var flags scroll.Flags
	if len(names) > maxKeyCount {
		o.invalidKeys(fmt.Sprintf("keys lists %d entries, at most %d allowed", len(names), maxKeyCount))
		return
	}
	for _, name := range names {
		flag, err := scroll.ParseModifier(name)
		if err != nil {
			o.invalidKeys(err.Error())
			return
		}
		flags |= flag
	}
	o.keys = &flags
}

func (o *overrides) invalidKeys(reason string) {
	o.warn("%s; key activation disabled", reason)
	var none scroll.Flags
	o.keys = &none
}

func (o *overrides) setSpeed(s int) {
	o.speed = &s
}

func (o *overrides) invalidSpeed(raw string) {
	o.warn("speed %q is not an integer; using %d", raw, scroll.DefaultSpeed)
	s := scroll.DefaultSpeed
	o.speed = &s
}

func (o *overrides) setLegacy(l bool) {
	o.legacy = &l
}

func (o *overrides) invalidLegacy(raw string) {
	o.warn("legacy_button_hold_behaviour %q is not a boolean; using false", raw)
	l := false
	o.legacy = &l
}

func (o overrides) empty() bool {
	return o.button == nil && o.keys == nil && o.speed == nil && o.legacy == nil && len(o.warnings) == 0
}

func (o overrides) apply(cfg *scroll.Config) {
	if o.button != nil {
		cfg.Button = *o.button
	}
	if o.keys != nil {
		cfg.Keys = *o.keys
	}
	if o.speed != nil {
		cfg.Speed = *o.speed
	}
	if o.legacy != nil {
		cfg.Legacy = *o.legacy
	}
}
