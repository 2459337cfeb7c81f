package scroll

import "time"

const (
	// engageSuppression hides the activation warp and the per-movement
	// re-pins from the event system for as long as scrolling is held.
	engageSuppression = 10 * time.Second
	// releaseSuppression is the interval left behind once scrolling ends.
	releaseSuppression = 250 * time.Millisecond
)

// pinner performs every cursor warp the engine needs. The pinned point
// itself lives in State.
type pinner struct {
	cursor Cursor
}

// engage pins the cursor at p when scrolling starts.
func (p pinner) engage(at Point) {
	p.cursor.SetSuppressionInterval(engageSuppression)
	p.cursor.Warp(at)
}

// release lets go of the pin at p. The interval must end small and non-zero
// so regular pointer movement stays responsive.
func (p pinner) release(at Point) {
	p.cursor.SetSuppressionInterval(0)
	p.cursor.Warp(at)
	p.cursor.SetSuppressionInterval(releaseSuppression)
}

// hold puts the cursor back on the pinned point after a movement event.
func (p pinner) hold(at Point) {
	p.cursor.Warp(at)
}
