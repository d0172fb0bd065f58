package orchestration

import (
	"sync"

	"github.com/google/uuid"
)

// Message is one entry of the conversation log. Messages are immutable
// once created; the ordinal is the insertion position and never changes.
type Message struct {
	ID      string
	Text    string
	IsUser  bool
	Ordinal int
}

// conversationLog is the append-only message log. The orchestrator is its
// only writer; appends are observed in issue order. There is no removal.
type conversationLog struct {
	mu sync.RWMutex

	messages []Message
}

// Append adds a message to the end of the log and assigns its id and
// ordinal.
func (l *conversationLog) Append(text string, isUser bool) Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := Message{
		ID:      uuid.NewString(),
		Text:    text,
		IsUser:  isUser,
		Ordinal: len(l.messages),
	}
	l.messages = append(l.messages, message)
	return message
}

// Messages returns a point-in-time copy of the log in insertion order.
func (l *conversationLog) Messages() []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	messages := make([]Message, len(l.messages))
	copy(messages, l.messages)
	return messages
}

func (l *conversationLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.messages)
}
