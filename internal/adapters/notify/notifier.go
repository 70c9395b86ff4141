package notify

import (
	"log/slog"
	"sync"
)

// Level classifies a notification message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message is one user-facing notification. The scheduling core supplies
// the text only; display and dismissal timing belong to the UI layer.
type Message struct {
	Level Level
	Text  string
}

// SlogNotifier logs notifications; used where no interactive UI is attached.
type SlogNotifier struct{}

// NewSlogNotifier creates a new SlogNotifier.
func NewSlogNotifier() *SlogNotifier {
	return &SlogNotifier{}
}

// Success logs a success notification.
func (n *SlogNotifier) Success(message string) {
	slog.Info("notify", "level", LevelSuccess, "message", message)
}

// Error logs an error notification.
func (n *SlogNotifier) Error(message string) {
	slog.Warn("notify", "level", LevelError, "message", message)
}

// MemoryNotifier collects notifications in memory for tests and for UIs
// that poll a message queue.
type MemoryNotifier struct {
	mu       sync.Mutex
	messages []Message
}

// NewMemoryNotifier creates an empty MemoryNotifier.
func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

// Success records a success notification.
func (n *MemoryNotifier) Success(message string) {
	n.record(Message{Level: LevelSuccess, Text: message})
}

// Error records an error notification.
func (n *MemoryNotifier) Error(message string) {
	n.record(Message{Level: LevelError, Text: message})
}

// Drain returns and clears all recorded messages in arrival order.
func (n *MemoryNotifier) Drain() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.messages
	n.messages = nil
	return out
}

func (n *MemoryNotifier) record(m Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, m)
}
