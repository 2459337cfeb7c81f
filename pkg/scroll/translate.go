package scroll

// translate converts a movement event into a scroll event posted at the
// pinned point. Positive deltas scroll content the same way the pointer moved.
func (e *Engine) translate(ev Event) ScrollEvent {
	e.state.LastDeltaX = ev.DeltaX
	e.state.LastDeltaY = ev.DeltaY

	speed := int64(e.cfg.Speed)
	out := ScrollEvent{
		Vertical:   clampInt32(speed * ev.DeltaY),
		Horizontal: clampInt32(speed * ev.DeltaX),
		Location:   e.state.Pinned,
	}

	// A scroll still carrying the activation modifiers would be read as
	// zoom or a shortcut by the receiving application.
	if e.state.KeyActive && e.cfg.Keys != 0 {
		out.StripFlags = true
		out.Flags = ev.Flags &^ e.cfg.Keys
	}
	return out
}

func clampInt32(v int64) int32 {
	const (
		maxInt32 = int64(^uint32(0) >> 1)
		minInt32 = -maxInt32 - 1
	)
	switch {
	case v > maxInt32:
		return int32(maxInt32)
	case v < minInt32:
		return int32(minInt32)
	default:
		return int32(v)
	}
}
