package orchestration

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/travixa/concierge-core/core/events"
	"github.com/travixa/concierge-core/core/speechtotext"
)

// CaptureState is the voice capture state machine position.
type CaptureState string

const (
	// CaptureStateIdle means no recognition session is active.
	CaptureStateIdle CaptureState = "idle"
	// CaptureStateListening means one recognition session is running.
	CaptureStateListening CaptureState = "listening"
	// CaptureStateDisabled means no recognizer is configured; the adapter
	// stays in this state permanently until one is.
	CaptureStateDisabled CaptureState = "disabled"
)

var (
	// ErrCaptureUnavailable is returned by Start when no recognizer is
	// configured.
	ErrCaptureUnavailable = errors.New("speech capture is not available")
	// ErrAlreadyListening is returned by Start while a recognition session
	// is active. Only one session may run at a time.
	ErrAlreadyListening = errors.New("speech capture already in progress")
)

// voiceCapture wraps the platform recognizer into an explicit
// Idle/Listening/Disabled state machine. A session produces at most one
// final transcript, emitted as an event for the orchestrator to append to
// the pending input buffer; recognition never submits a turn itself.
type voiceCapture struct {
	mu sync.Mutex

	state  CaptureState
	client Recognizer
	cancel context.CancelFunc

	audioInput *audioInput
	emitEvent  eventEmitter
}

func newVoiceCapture(client Recognizer, audioInput *audioInput) *voiceCapture {
	capture := &voiceCapture{
		state:      CaptureStateDisabled,
		audioInput: audioInput,
		emitEvent:  noopEventEmitter,
	}
	capture.set(client)
	return capture
}

func (v *voiceCapture) set(client Recognizer) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.client = client
	if client == nil {
		v.state = CaptureStateDisabled
	} else if v.state == CaptureStateDisabled {
		v.state = CaptureStateIdle
	}
}

func (v *voiceCapture) SetEventEmitter(emitEvent eventEmitter) {
	if v != nil {
		if emitEvent != nil {
			v.emitEvent = emitEvent
		} else {
			v.emitEvent = noopEventEmitter
		}
	}
}

func (v *voiceCapture) State() CaptureState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

func (v *voiceCapture) IsListening() bool { return v.State() == CaptureStateListening }

// Start begins one recognition session in the given locale. Valid only
// from Idle: a disabled adapter rejects with ErrCaptureUnavailable, an
// active session with ErrAlreadyListening.
func (v *voiceCapture) Start(ctx context.Context, locale string) error {
	if locale == "" {
		locale = speechtotext.DefaultLocale
	}
	if !speechtotext.IsSupportedLocale(locale) {
		return fmt.Errorf("cannot capture speech in %q: %w", locale, speechtotext.ErrUnsupportedLocale)
	}

	v.mu.Lock()
	switch v.state {
	case CaptureStateDisabled:
		v.mu.Unlock()
		return ErrCaptureUnavailable
	case CaptureStateListening:
		v.mu.Unlock()
		return ErrAlreadyListening
	}

	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.state = CaptureStateListening
	client := v.client
	v.mu.Unlock()

	if err := client.Recognize(ctx,
		speechtotext.WithLocale(locale),
		speechtotext.WithEncodingInfo(v.audioInput.EncodingInfo()),
		speechtotext.WithTranscriptCallback(v.invokeTranscript),
		speechtotext.WithErrorCallback(v.invokeError),
		speechtotext.WithListeningEndedCallback(v.invokeListeningEnded),
	); err != nil {
		cancel()
		v.mu.Lock()
		v.state = CaptureStateIdle
		v.cancel = nil
		v.mu.Unlock()
		return fmt.Errorf("failed to start speech recognition: %w", err)
	}

	v.audioInput.StartCapture(ctx, func(audio []byte) {
		if err := client.SendAudio(audio); err != nil {
			logger.Warn("failed to forward captured audio", "error", err)
		}
	})

	v.emitEvent(events.NewCaptureStarted(locale))
	return nil
}

// Stop cancels the active recognition session without emitting a
// transcript. Stopping an idle or disabled adapter is a no-op.
func (v *voiceCapture) Stop() {
	cancel, stopped := v.leaveListening()
	if !stopped {
		return
	}

	v.audioInput.StopCapture()
	if cancel != nil {
		cancel()
	}
	v.emitEvent(events.NewCaptureEnded())
}

// leaveListening transitions Listening to Idle and reports whether this
// call performed the transition. Recognizer callbacks and Stop race for
// it; only the winner emits follow-up events.
func (v *voiceCapture) leaveListening() (context.CancelFunc, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != CaptureStateListening {
		return nil, false
	}

	v.state = CaptureStateIdle
	cancel := v.cancel
	v.cancel = nil
	return cancel, true
}

func (v *voiceCapture) invokeTranscript(transcript string) {
	cancel, stopped := v.leaveListening()
	if !stopped {
		return
	}

	v.audioInput.StopCapture()
	v.emitEvent(events.NewTranscriptReceived(transcript))
	v.emitEvent(events.NewCaptureEnded())
	if cancel != nil {
		cancel()
	}
}

func (v *voiceCapture) invokeError(err error) {
	cancel, stopped := v.leaveListening()
	if !stopped {
		return
	}

	v.audioInput.StopCapture()
	v.emitEvent(events.NewCaptureFailed(err))
	v.emitEvent(events.NewCaptureEnded())
	if cancel != nil {
		cancel()
	}
}

// invokeListeningEnded covers sessions the recognizer ends on its own,
// without a transcript or an error (remote close, context cancellation).
func (v *voiceCapture) invokeListeningEnded() {
	cancel, stopped := v.leaveListening()
	if !stopped {
		return
	}

	v.audioInput.StopCapture()
	v.emitEvent(events.NewCaptureEnded())
	if cancel != nil {
		cancel()
	}
}
