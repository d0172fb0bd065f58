package events

// KindInputBufferUpdated identifies edits of the pending input buffer.
const KindInputBufferUpdated Kind = "input.buffer_updated"

// InputBufferUpdated carries a snapshot of the pending input buffer.
type InputBufferUpdated struct {
	Base
	Text string
}

// NewInputBufferUpdated creates an input buffer updated event.
func NewInputBufferUpdated(text string) InputBufferUpdated {
	return InputBufferUpdated{Base: NewBase(KindInputBufferUpdated), Text: text}
}
