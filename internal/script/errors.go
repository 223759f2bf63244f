package script

import "sync"

// ErrorSurface holds the most recent script failure for an external
// observer to poll. Writes overwrite, reads consume. Safe for one producer
// (the simulation goroutine) and one consumer (the UI) running concurrently.
type ErrorSurface struct {
	mu  sync.Mutex
	msg string
	set bool
}

// Publish records a failure message, replacing any unread one.
func (e *ErrorSurface) Publish(msg string) {
	e.mu.Lock()
	e.msg = msg
	e.set = true
	e.mu.Unlock()
}

// Take atomically reads and clears the pending message.
func (e *ErrorSurface) Take() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.set {
		return "", false
	}
	msg := e.msg
	e.msg = ""
	e.set = false
	return msg, true
}

// Clear drops any pending message without reading it.
func (e *ErrorSurface) Clear() {
	e.mu.Lock()
	e.msg = ""
	e.set = false
	e.mu.Unlock()
}
