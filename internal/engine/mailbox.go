package engine

import "sync"

// Mailbox is the inbound command channel from the UI into the simulation
// goroutine. It holds at most one pending script and one reset flag;
// newer writes silently replace unconsumed ones. Sends never block.
type Mailbox struct {
	mu        sync.Mutex
	script    string
	hasScript bool
	reset     bool
}

// SubmitScript queues script source for the next tick, replacing any
// unconsumed submission.
func (m *Mailbox) SubmitScript(source string) {
	m.mu.Lock()
	m.script = source
	m.hasScript = true
	m.mu.Unlock()
}

// RequestReset queues a reset. Idempotent.
func (m *Mailbox) RequestReset() {
	m.mu.Lock()
	m.reset = true
	m.mu.Unlock()
}

// TakeScript consumes the pending script submission, if any.
func (m *Mailbox) TakeScript() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasScript {
		return "", false
	}
	source := m.script
	m.script = ""
	m.hasScript = false
	return source, true
}

// TakeReset consumes the pending reset flag.
func (m *Mailbox) TakeReset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	reset := m.reset
	m.reset = false
	return reset
}
