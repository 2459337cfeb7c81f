// Package scroll implements the drag-to-scroll state machine: it classifies
// decoded input events, tracks button and key activation, translates pointer
// deltas into pixel scroll events and keeps the cursor pinned while active.
//
// The engine is not safe for concurrent use. It is driven from the event tap's
// run loop thread, which delivers one event at a time.
package scroll
