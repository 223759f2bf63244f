package engine

import "testing"

func TestMailboxScriptLastWriteWins(t *testing.T) {
	var m Mailbox

	m.SubmitScript("old")
	m.SubmitScript("new")

	source, ok := m.TakeScript()
	if !ok || source != "new" {
		t.Errorf("TakeScript = (%q, %v), want the latest submission", source, ok)
	}
	if _, ok := m.TakeScript(); ok {
		t.Error("TakeScript should consume the pending value")
	}
}

func TestMailboxReset(t *testing.T) {
	var m Mailbox

	if m.TakeReset() {
		t.Error("fresh mailbox should have no reset pending")
	}

	m.RequestReset()
	m.RequestReset() // idempotent

	if !m.TakeReset() {
		t.Error("reset flag lost")
	}
	if m.TakeReset() {
		t.Error("TakeReset should consume the flag")
	}
}

func TestMailboxIndependentSlots(t *testing.T) {
	var m Mailbox

	m.SubmitScript("code")
	m.RequestReset()

	if !m.TakeReset() {
		t.Error("reset flag lost when a script is also pending")
	}
	if source, ok := m.TakeScript(); !ok || source != "code" {
		t.Errorf("TakeScript = (%q, %v) after TakeReset", source, ok)
	}
}
