package events

const (
	// KindCaptureStarted identifies start of speech capture.
	KindCaptureStarted Kind = "voice_capture.started"
	// KindCaptureEnded identifies return of speech capture to idle.
	KindCaptureEnded Kind = "voice_capture.ended"
	// KindTranscriptReceived identifies a final transcript.
	KindTranscriptReceived Kind = "voice_capture.transcript"
	// KindCaptureFailed identifies a recognizer error.
	KindCaptureFailed Kind = "voice_capture.failed"
)

// CaptureStarted marks when speech capture begins.
type CaptureStarted struct {
	Base
	Locale string
}

// NewCaptureStarted creates a capture started event.
func NewCaptureStarted(locale string) CaptureStarted {
	return CaptureStarted{Base: NewBase(KindCaptureStarted), Locale: locale}
}

// CaptureEnded marks when speech capture returns to idle.
type CaptureEnded struct{ Base }

// NewCaptureEnded creates a capture ended event.
func NewCaptureEnded() CaptureEnded {
	return CaptureEnded{Base: NewBase(KindCaptureEnded)}
}

// TranscriptReceived carries a final transcript produced by one capture
// session. Transcripts are appended to the pending input buffer, never
// submitted as a turn.
type TranscriptReceived struct {
	Base
	Transcript string
}

// NewTranscriptReceived creates a transcript received event.
func NewTranscriptReceived(transcript string) TranscriptReceived {
	return TranscriptReceived{Base: NewBase(KindTranscriptReceived), Transcript: transcript}
}

// CaptureFailed marks a recognizer error; capture has returned to idle.
type CaptureFailed struct {
	Base
	Err error
}

// NewCaptureFailed creates a capture failed event.
func NewCaptureFailed(err error) CaptureFailed {
	return CaptureFailed{Base: NewBase(KindCaptureFailed), Err: err}
}
