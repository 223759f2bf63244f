package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndGetAgent(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveAgent("greedy", "function think(state) return 'north' end")
	if err != nil {
		t.Fatalf("SaveAgent failed: %v", err)
	}
	if saved.Name != "greedy" {
		t.Errorf("saved name = %q", saved.Name)
	}

	got, err := store.AgentByName("greedy")
	if err != nil {
		t.Fatalf("AgentByName failed: %v", err)
	}
	if got == nil || got.Code != saved.Code {
		t.Errorf("AgentByName = %+v, want the saved agent", got)
	}
}

func TestSaveAgentUpserts(t *testing.T) {
	store := openTestStore(t)

	store.SaveAgent("bot", "old code")
	updated, err := store.SaveAgent("bot", "new code")
	if err != nil {
		t.Fatalf("SaveAgent failed: %v", err)
	}
	if updated.Code != "new code" {
		t.Errorf("code = %q after upsert, want %q", updated.Code, "new code")
	}

	agents, err := store.ListAgents()
	if err != nil {
		t.Fatalf("ListAgents failed: %v", err)
	}
	if len(agents) != 1 {
		t.Errorf("agent count = %d after upsert, want 1", len(agents))
	}
}

func TestAgentByNameMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.AgentByName("absent")
	if err != nil {
		t.Fatalf("AgentByName failed: %v", err)
	}
	if got != nil {
		t.Errorf("AgentByName = %+v for missing agent, want nil", got)
	}
}

func TestListAgentsOrdered(t *testing.T) {
	store := openTestStore(t)

	store.SaveAgent("zeta", "z")
	store.SaveAgent("alpha", "a")

	agents, err := store.ListAgents()
	if err != nil {
		t.Fatalf("ListAgents failed: %v", err)
	}
	if len(agents) != 2 || agents[0].Name != "alpha" || agents[1].Name != "zeta" {
		t.Errorf("ListAgents order wrong: %+v", agents)
	}
}

func TestDeleteAgent(t *testing.T) {
	store := openTestStore(t)

	store.SaveAgent("doomed", "code")
	deleted, err := store.DeleteAgent("doomed")
	if err != nil || !deleted {
		t.Fatalf("DeleteAgent = (%v, %v), want (true, nil)", deleted, err)
	}
	deleted, err = store.DeleteAgent("doomed")
	if err != nil || deleted {
		t.Errorf("second DeleteAgent = (%v, %v), want (false, nil)", deleted, err)
	}
}

func TestScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("greedy", 3)
	store.SaveScore("greedy", 9)
	store.SaveScore("wanderer", 5)

	top, err := store.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 9 || top[1].Score != 5 {
		t.Errorf("TopScores = %+v", top)
	}

	high, err := store.HighScore("greedy")
	if err != nil || high != 9 {
		t.Errorf("HighScore = (%d, %v), want (9, nil)", high, err)
	}
	high, err = store.HighScore("absent")
	if err != nil || high != 0 {
		t.Errorf("HighScore for unknown agent = (%d, %v), want (0, nil)", high, err)
	}
}

func TestValidateAgentName(t *testing.T) {
	valid := []string{"My Agent", "agent-1_v2", "A", "абв"}
	for _, name := range valid {
		if err := ValidateAgentName(name); err != nil {
			t.Errorf("ValidateAgentName(%q) = %v, want nil", name, err)
		}
	}

	invalid := map[string]error{
		"":      ErrNameEmpty,
		"   ":   ErrNameEmpty,
		"bot!":  ErrNameInvalid,
		"a\nb":  ErrNameInvalid,
		"bot🤖": ErrNameInvalid,
	}
	for name, want := range invalid {
		if err := ValidateAgentName(name); err != want {
			t.Errorf("ValidateAgentName(%q) = %v, want %v", name, err, want)
		}
	}

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidateAgentName(string(long)); err != ErrNameTooLong {
		t.Errorf("51-char name: %v, want ErrNameTooLong", err)
	}
}

func TestValidateAgentCode(t *testing.T) {
	if err := ValidateAgentCode("-- comment"); err != nil {
		t.Errorf("non-empty code rejected: %v", err)
	}
	if err := ValidateAgentCode(" \n\t "); err != ErrCodeEmpty {
		t.Errorf("blank code: %v, want ErrCodeEmpty", err)
	}
}
