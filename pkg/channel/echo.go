package channel

import "sync"

// Echo enforces the platform echo policy: an editing state is only sent to
// the platform if it differs from the last state the platform is known to
// hold. The last-sent marker is updated before the send happens, so a
// platform that acknowledges synchronously cannot start a feedback loop.
type Echo struct {
	mu   sync.Mutex
	last EditingState
	seen bool
	send func(EditingState)
}

// NewEcho creates an Echo that delivers via send.
func NewEcho(send func(EditingState)) *Echo {
	return &Echo{send: send}
}

// Note records a state the platform already holds, without sending anything.
// It is called for every state arriving from the platform, so that the
// reconciled result is only echoed back if reconciliation changed it.
func (e *Echo) Note(state EditingState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.last = state
	e.seen = true
}

// Publish sends the state to the platform unless it matches the last known
// platform state. It reports whether a send happened.
func (e *Echo) Publish(state EditingState) bool {
	e.mu.Lock()
	if e.seen && state == e.last {
		e.mu.Unlock()
		return false
	}
	e.last = state
	e.seen = true
	// Unlock before sending: the send callback may re-enter Note or Publish.
	e.mu.Unlock()
	e.send(state)
	return true
}
