package tap

import "github.com/offlinefirst/dragscroll/pkg/scroll"

// dispatch runs ev through the engine and carries out the result. A
// replacement scroll is posted before the cursor is pinned again. It reports
// whether the original event should continue down the event stream.
func dispatch(engine *scroll.Engine, ev scroll.Event, post func(scroll.ScrollEvent)) bool {
	res := engine.Handle(ev)
	switch res.Action {
	case scroll.Swallow:
		return false
	case scroll.Replace:
		post(res.Scroll)
		engine.Hold()
		return false
	default:
		return true
	}
}
