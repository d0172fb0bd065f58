package orchestration

import "sync"

// inputBuffer holds the pending user input. Voice transcripts are joined
// into it with a single space; they are never submitted as a turn
// directly.
type inputBuffer struct {
	mu sync.Mutex

	text string
}

func (b *inputBuffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.text
}

func (b *inputBuffer) Set(text string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.text = text
	return b.text
}

func (b *inputBuffer) AppendTranscript(transcript string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.text == "" {
		b.text = transcript
	} else {
		b.text += " " + transcript
	}
	return b.text
}

func (b *inputBuffer) Clear() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	text := b.text
	b.text = ""
	return text
}
