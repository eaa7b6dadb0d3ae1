package session

import "github.com/plus3/termtris/tetris"

// Renderer draws one snapshot per tick.
type Renderer interface {
	Render(snap tetris.Snapshot) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(snap tetris.Snapshot) error

func (f RendererFunc) Render(snap tetris.Snapshot) error {
	return f(snap)
}

// InputSource yields at most one pending action per call without blocking.
type InputSource interface {
	Poll() (tetris.Action, bool)
}

// ActionQueue is a bounded InputSource fed from another goroutine, typically
// a terminal event pump.
type ActionQueue struct {
	ch chan tetris.Action
}

// NewActionQueue creates a queue buffering up to size actions.
func NewActionQueue(size int) *ActionQueue {
	return &ActionQueue{ch: make(chan tetris.Action, size)}
}

// Push enqueues a without blocking. It returns false and drops the action when
// the queue is full. ActionNone is ignored.
func (q *ActionQueue) Push(a tetris.Action) bool {
	if a == tetris.ActionNone {
		return false
	}
	select {
	case q.ch <- a:
		return true
	default:
		return false
	}
}

// Poll returns the oldest queued action, if any.
func (q *ActionQueue) Poll() (tetris.Action, bool) {
	select {
	case a := <-q.ch:
		return a, true
	default:
		return tetris.ActionNone, false
	}
}

// Len returns the number of queued actions.
func (q *ActionQueue) Len() int {
	return len(q.ch)
}

// Reset drops every queued action.
func (q *ActionQueue) Reset() {
	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}
