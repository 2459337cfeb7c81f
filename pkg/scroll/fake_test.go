package scroll

import "time"

type cursorCall struct {
	warp     *Point
	interval *time.Duration
}

type fakeCursor struct {
	pos   Point
	calls []cursorCall
}

func (c *fakeCursor) Warp(p Point) {
	c.pos = p
	c.calls = append(c.calls, cursorCall{warp: &p})
}

func (c *fakeCursor) SetSuppressionInterval(d time.Duration) {
	c.calls = append(c.calls, cursorCall{interval: &d})
}

func (c *fakeCursor) intervals() []time.Duration {
	var out []time.Duration
	for _, call := range c.calls {
		if call.interval != nil {
			out = append(out, *call.interval)
		}
	}
	return out
}

func (c *fakeCursor) warps() []Point {
	var out []Point
	for _, call := range c.calls {
		if call.warp != nil {
			out = append(out, *call.warp)
		}
	}
	return out
}

func (c *fakeCursor) reset() {
	c.calls = nil
}

func otherDown(raw int64, x, y float64) Event {
	return Event{Type: EventOtherMouseDown, Button: raw, Location: Point{X: x, Y: y}}
}

func otherUp(raw int64, x, y float64) Event {
	return Event{Type: EventOtherMouseUp, Button: raw, Location: Point{X: x, Y: y}}
}

func moved(dx, dy int64, x, y float64) Event {
	return Event{Type: EventMouseMoved, DeltaX: dx, DeltaY: dy, Location: Point{X: x, Y: y}}
}

func flagsChanged(flags Flags, x, y float64) Event {
	return Event{Type: EventFlagsChanged, Flags: flags, Location: Point{X: x, Y: y}}
}
