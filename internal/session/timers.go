package session

import "time"

// Scheduler arms a delayed callback and returns a cancel function. The
// default implementation uses time.AfterFunc; hosts with their own event
// loop substitute one that marshals the callback onto it, and tests
// substitute a synchronous fake.
type Scheduler func(d time.Duration, fn func()) (cancel func())

func defaultScheduler(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// delayedTasks tracks the session's outstanding fire-and-forget timers (the
// copied-toast dismissal and the post-submit capture close). Cancelling is
// an explicit operation: any transition that makes a pending timer
// meaningless calls cancelAll.
type delayedTasks struct {
	schedule Scheduler
	pending  []func()
}

func (d *delayedTasks) after(delay time.Duration, fn func()) {
	cancel := d.schedule(delay, fn)
	d.pending = append(d.pending, cancel)
}

func (d *delayedTasks) cancelAll() {
	for _, cancel := range d.pending {
		cancel()
	}
	d.pending = nil
}
