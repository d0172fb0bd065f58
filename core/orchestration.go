// Package orchestration implements the conversation turn controller of
// the Travixa concierge client: it owns the message log, session
// correlation, side-channel artifacts, voice capture, and the
// one-turn-at-a-time dispatch to the remote assistant service.
package orchestration

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/travixa/concierge-core/core/assistant"
	"github.com/travixa/concierge-core/core/events"
)

// View identifies which workspace view is active.
type View string

const (
	ViewChat     View = "chat"
	ViewBookings View = "bookings"
)

const defaultTurnTimeout = 30 * time.Second

type Orchestrator struct {
	conversation conversationLog
	session      sessionCorrelator
	artifacts    artifactChannel
	input        inputBuffer

	voiceCapture *voiceCapture
	audioInput   *audioInput
	dispatch     dispatchState

	assistantClient assistant.Client
	turnTimeout     time.Duration
	welcomeMessage  string
	quickActions    []QuickAction

	viewMu     sync.Mutex
	activeView View

	emitEvent     eventEmitter
	callbacks     callbackOptions
	eventListener func(events.Event)
}

func NewOrchestrator(opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		turnTimeout:    defaultTurnTimeout,
		welcomeMessage: WelcomeMessage,
		quickActions:   DefaultQuickActions(),
		activeView:     ViewChat,
		emitEvent:      noopEventEmitter,
	}

	o.audioInput = newAudioInput(nil)
	o.voiceCapture = newVoiceCapture(nil, o.audioInput)

	for _, opt := range opts {
		opt(o)
	}

	o.emitEvent = newCallbackEventEmitter(o.callbacks, o.eventListener)
	o.voiceCapture.SetEventEmitter(o.dispatchEvent)

	if o.welcomeMessage != "" {
		o.appendMessage(o.welcomeMessage, false)
	}

	return o
}

// dispatchEvent forwards voice capture events and routes final
// transcripts into the pending input buffer. Transcripts never reach
// turn submission directly.
func (o *Orchestrator) dispatchEvent(event events.Event) {
	o.emitEvent(event)

	if typedEvent, ok := event.(events.TranscriptReceived); ok {
		text := o.input.AppendTranscript(typedEvent.Transcript)
		o.emitEvent(events.NewInputBufferUpdated(text))
	}
}

func (o *Orchestrator) appendMessage(text string, isUser bool) Message {
	message := o.conversation.Append(text, isUser)
	o.emitEvent(events.NewMessageAppended(message.ID, message.Text, message.IsUser, message.Ordinal))
	return message
}

// Messages returns a point-in-time copy of the conversation log.
func (o *Orchestrator) Messages() []Message { return o.conversation.Messages() }

// SessionID returns the server-assigned session id, or nil before the
// first response that carries one.
func (o *Orchestrator) SessionID() *string { return o.session.ID() }

// Bookings returns the accumulated booking history in arrival order.
func (o *Orchestrator) Bookings() []assistant.Booking { return o.artifacts.Bookings() }

// Route returns the turn-scoped map directive of the latest turn, or nil.
func (o *Orchestrator) Route() *assistant.MapDirective { return o.artifacts.Route() }

// Places returns the turn-scoped place suggestions of the latest turn, or
// nil.
func (o *Orchestrator) Places() []assistant.PlaceSuggestion { return o.artifacts.Places() }

// QuickActions returns the configured shortcut catalog.
func (o *Orchestrator) QuickActions() []QuickAction { return slices.Clone(o.quickActions) }

// InputText returns the pending input buffer.
func (o *Orchestrator) InputText() string { return o.input.Text() }

// SetInputText replaces the pending input buffer.
func (o *Orchestrator) SetInputText(text string) {
	o.emitEvent(events.NewInputBufferUpdated(o.input.Set(text)))
}

// SubmitPendingInput submits the pending input buffer as a turn and
// clears it. A rejected turn leaves the buffer untouched so the user can
// retry.
func (o *Orchestrator) SubmitPendingInput(ctx context.Context) error {
	if err := o.SubmitTurn(ctx, o.input.Text()); err != nil {
		return err
	}

	o.input.Clear()
	o.emitEvent(events.NewInputBufferUpdated(""))
	return nil
}

// TriggerQuickAction submits the action's prompt verbatim.
func (o *Orchestrator) TriggerQuickAction(ctx context.Context, action QuickAction) error {
	return o.SubmitTurn(ctx, action.Prompt)
}

// TriggerEmergency forces the active view back to the conversation and
// submits the fixed emergency prompt.
func (o *Orchestrator) TriggerEmergency(ctx context.Context) error {
	o.SetActiveView(ViewChat)
	return o.SubmitTurn(ctx, EmergencyPrompt)
}

// ActiveView returns the currently active workspace view.
func (o *Orchestrator) ActiveView() View {
	o.viewMu.Lock()
	defer o.viewMu.Unlock()

	return o.activeView
}

// SetActiveView switches the active workspace view.
func (o *Orchestrator) SetActiveView(view View) {
	o.viewMu.Lock()
	changed := o.activeView != view
	o.activeView = view
	o.viewMu.Unlock()

	if changed {
		o.emitEvent(events.NewViewChanged(string(view)))
	}
}

// StartListening begins one voice capture session in the given locale.
// The transcript, if any, is appended to the pending input buffer.
func (o *Orchestrator) StartListening(ctx context.Context, locale string) error {
	return o.voiceCapture.Start(ctx, locale)
}

// StopListening cancels the active voice capture session without
// emitting a transcript.
func (o *Orchestrator) StopListening() { o.voiceCapture.Stop() }

// IsListening reports whether a voice capture session is active.
func (o *Orchestrator) IsListening() bool { return o.voiceCapture.IsListening() }

// CaptureState returns the voice capture state machine position.
func (o *Orchestrator) CaptureState() CaptureState { return o.voiceCapture.State() }
