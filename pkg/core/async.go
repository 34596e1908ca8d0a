package core

// AsyncUpdater coalesces update requests into one deferred call. Any number
// of Trigger calls before the dispatcher runs the pending task result in a
// single call of the handler.
type AsyncUpdater struct {
	dispatcher Dispatcher
	handle     func()
	pending    bool
	generation uint64
}

// NewAsyncUpdater creates an updater that runs handle through dispatcher.
func NewAsyncUpdater(dispatcher Dispatcher, handle func()) *AsyncUpdater {
	return &AsyncUpdater{dispatcher: dispatcher, handle: handle}
}

// Trigger schedules the handler unless a call is already pending.
func (u *AsyncUpdater) Trigger() {
	if u.pending {
		return
	}
	u.pending = true
	gen := u.generation
	if !u.dispatcher.Dispatch(func() { u.run(gen) }) {
		u.pending = false
	}
}

func (u *AsyncUpdater) run(gen uint64) {
	if !u.pending || gen != u.generation {
		return
	}
	u.pending = false
	u.handle()
}

// IsPending reports whether a call is scheduled.
func (u *AsyncUpdater) IsPending() bool {
	return u.pending
}

// HandleUpdateNowIfNeeded runs a pending call synchronously. The task
// already queued on the dispatcher becomes a no-op.
func (u *AsyncUpdater) HandleUpdateNowIfNeeded() {
	if !u.pending {
		return
	}
	u.Cancel()
	u.handle()
}

// Cancel drops the pending call, if any.
func (u *AsyncUpdater) Cancel() {
	u.pending = false
	u.generation++
}
