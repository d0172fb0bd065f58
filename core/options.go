package orchestration

import (
	"context"
	"time"

	"github.com/travixa/concierge-core/core/assistant"
	"github.com/travixa/concierge-core/core/audio"
	"github.com/travixa/concierge-core/core/events"
	"github.com/travixa/concierge-core/core/speechtotext"
)

type OrchestratorOption func(*Orchestrator)

// WithAssistantClient configures the remote concierge service client.
// Without one, every turn takes the failure path.
func WithAssistantClient(client assistant.Client) OrchestratorOption {
	return func(o *Orchestrator) {
		o.assistantClient = client
	}
}

// Recognizer is a speech-to-text backend running one recognition session
// per Recognize call.
type Recognizer interface {
	Recognize(ctx context.Context, opts ...speechtotext.RecognitionOption) error
	SendAudio(audio []byte) error
}

// WithSpeechToTextClient configures the recognizer backing voice capture.
// Without one, the capture adapter stays disabled.
func WithSpeechToTextClient(client Recognizer) OrchestratorOption {
	return func(o *Orchestrator) {
		o.voiceCapture.set(client)
	}
}

// AudioInput is a microphone capture backend.
type AudioInput interface {
	EncodingInfo() audio.EncodingInfo
	StartCapture(ctx context.Context, onAudio func(audio []byte)) error
	StopCapture() error
}

func WithAudioInput(client AudioInput) OrchestratorOption {
	return func(o *Orchestrator) { o.audioInput.Set(client) }
}

// WithTurnTimeout bounds how long one turn request may take before it is
// converted to the failure path.
func WithTurnTimeout(timeout time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		if timeout > 0 {
			o.turnTimeout = timeout
		}
	}
}

// WithWelcomeMessage overrides the assistant message seeded into a fresh
// conversation. An empty string disables seeding.
func WithWelcomeMessage(text string) OrchestratorOption {
	return func(o *Orchestrator) {
		o.welcomeMessage = text
	}
}

// WithQuickActions replaces the default quick-action catalog.
func WithQuickActions(actions ...QuickAction) OrchestratorOption {
	return func(o *Orchestrator) {
		o.quickActions = actions
	}
}

// WithEventListener registers a listener for every orchestration event,
// in addition to any per-kind callbacks.
func WithEventListener(listener func(events.Event)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.eventListener = listener
	}
}

type callbackOptions struct {
	onMessage            func(message Message)
	onLoadingChanged     func(isLoading bool)
	onSessionEstablished func(sessionID string)
	onBookingRecorded    func(booking assistant.Booking)
	onRouteUpdated       func(route *assistant.MapDirective)
	onPlacesUpdated      func(places []assistant.PlaceSuggestion)
	onTranscription      func(transcript string)
	onListeningChanged   func(isListening bool)
	onCaptureError       func(err error)
	onInputChanged       func(text string)
	onViewChanged        func(view View)
	onTurnRejected       func(text string)
}

// WithMessageCallback registers a callback for every message appended to
// the conversation log, user and assistant alike.
func WithMessageCallback(callback func(message Message)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.callbacks.onMessage = callback
	}
}

// WithLoadingCallback registers a callback for loading-state changes, so
// a pending indicator can be rendered while a turn is in flight.
func WithLoadingCallback(callback func(isLoading bool)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.callbacks.onLoadingChanged = callback
	}
}

func WithSessionEstablishedCallback(callback func(sessionID string)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.callbacks.onSessionEstablished = callback
	}
}

func WithBookingRecordedCallback(callback func(booking assistant.Booking)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.callbacks.onBookingRecorded = callback
	}
}

// WithRouteUpdatedCallback registers a callback for the turn-scoped map
// directive; it receives nil when a turn clears the previous route.
func WithRouteUpdatedCallback(callback func(route *assistant.MapDirective)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.callbacks.onRouteUpdated = callback
	}
}

// WithPlacesUpdatedCallback registers a callback for the turn-scoped
// place suggestions; it receives nil when a turn clears them.
func WithPlacesUpdatedCallback(callback func(places []assistant.PlaceSuggestion)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.callbacks.onPlacesUpdated = callback
	}
}

// WithTranscriptionCallback registers a callback for final voice
// transcripts. Transcripts also land in the pending input buffer.
func WithTranscriptionCallback(callback func(transcript string)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.callbacks.onTranscription = callback
	}
}

func WithListeningStateChangedCallback(callback func(isListening bool)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.callbacks.onListeningChanged = callback
	}
}

func WithCaptureErrorCallback(callback func(err error)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.callbacks.onCaptureError = callback
	}
}

func WithInputChangedCallback(callback func(text string)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.callbacks.onInputChanged = callback
	}
}

func WithViewChangedCallback(callback func(view View)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.callbacks.onViewChanged = callback
	}
}

// WithTurnRejectedCallback registers a callback for turns refused by the
// one-turn-at-a-time admission policy.
func WithTurnRejectedCallback(callback func(text string)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.callbacks.onTurnRejected = callback
	}
}
