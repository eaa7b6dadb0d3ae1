package loop

// Commands buffers work that must run after every system of a frame has
// executed, so systems never observe a half-applied frame.
type Commands struct {
	defers []deferCommand
	stop   bool
	reason string
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues fn to run when the frame is flushed, in queue order.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Stop asks the Scheduler to stop after this frame. The remaining systems of
// the frame still run. The first reason given wins.
func (c *Commands) Stop(reason string) {
	if c.stop {
		return
	}
	c.stop = true
	c.reason = reason
}

// Stopping reports whether a stop was requested during this frame.
func (c *Commands) Stopping() bool {
	return c.stop
}

// Flush runs all deferred functions and resets the buffer. It reports whether
// a stop was requested, and why.
func (c *Commands) Flush() (stop bool, reason string) {
	for _, df := range c.defers {
		df.fn()
	}
	stop, reason = c.stop, c.reason

	c.defers = c.defers[:0]
	c.stop = false
	c.reason = ""
	return stop, reason
}
