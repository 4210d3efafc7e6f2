package scheduler

// Commands buffers work that must run after every system has seen the frame.
type Commands struct {
	defers []func()
	stop   bool
}

// Defer queues fn to run once the frame completes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Stop asks the scheduler to end Run after this frame.
func (c *Commands) Stop() {
	c.stop = true
}

// flush runs deferred work in order and resets the buffer.
func (c *Commands) flush() (stop bool) {
	for _, fn := range c.defers {
		fn()
	}
	stop = c.stop

	clear(c.defers)
	c.defers = c.defers[:0]
	c.stop = false

	return stop
}
