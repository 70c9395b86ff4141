package notify

import "testing"

// TestMemoryNotifier_Drain returns messages in arrival order and clears.
func TestMemoryNotifier_Drain(t *testing.T) {
	n := NewMemoryNotifier()
	n.Success("Session created successfully")
	n.Error("Session not found")

	got := n.Drain()
	if len(got) != 2 {
		t.Fatalf("messages=%d, want 2", len(got))
	}
	if got[0].Level != LevelSuccess || got[0].Text != "Session created successfully" {
		t.Fatalf("first message: %+v", got[0])
	}
	if got[1].Level != LevelError || got[1].Text != "Session not found" {
		t.Fatalf("second message: %+v", got[1])
	}

	if again := n.Drain(); len(again) != 0 {
		t.Fatalf("drain should clear, got %d messages", len(again))
	}
}
