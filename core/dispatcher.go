package orchestration

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/travixa/concierge-core/core/assistant"
	"github.com/travixa/concierge-core/core/events"
	"go.opentelemetry.io/otel/codes"
)

// ErrTurnInFlight is returned when a turn is submitted while another one
// is still awaiting the assistant's reply.
var ErrTurnInFlight = errors.New("a turn is already in flight")

var errNoAssistantClient = errors.New("no assistant client configured")

// dispatchState guards turn admission and exposes the loading flag.
type dispatchState struct {
	inFlight atomic.Bool
}

// IsLoading reports whether a turn is awaiting the assistant's reply.
func (o *Orchestrator) IsLoading() bool { return o.dispatch.inFlight.Load() }

// SubmitTurn runs one conversational turn end to end: optimistic append
// of the user message, request to the assistant service, and merge of the
// reply plus side-channel artifacts.
//
// Input that is empty after trimming is a no-op. A turn submitted while
// another is in flight is rejected with ErrTurnInFlight and leaves all
// state untouched. Transport failures are absorbed: the fixed fallback
// reply is appended, session and artifacts stay exactly as they were,
// and SubmitTurn returns nil.
func (o *Orchestrator) SubmitTurn(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if !o.dispatch.inFlight.CompareAndSwap(false, true) {
		o.emitEvent(events.NewTurnRejected(text))
		return ErrTurnInFlight
	}
	defer o.dispatch.inFlight.Store(false)

	ctx, span := tracer.Start(ctx, "submit concierge turn")
	defer span.End()

	turnID := uuid.NewString()
	o.appendMessage(text, true)
	o.emitEvent(events.NewTurnStarted(turnID, text))

	response, err := o.requestTurn(ctx, text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		o.appendMessage(FallbackReply, false)
		o.emitEvent(events.NewTurnFailed(turnID, err))
		return nil
	}

	o.mergeTurnResponse(*response)
	o.emitEvent(events.NewTurnCompleted(turnID, response.Reply))
	return nil
}

func (o *Orchestrator) requestTurn(ctx context.Context, text string) (*assistant.TurnResponse, error) {
	if o.assistantClient == nil {
		return nil, errNoAssistantClient
	}

	request := assistant.TurnRequest{Message: text}
	o.session.Attach(&request)

	ctx, cancel := context.WithTimeout(ctx, o.turnTimeout)
	defer cancel()

	return o.assistantClient.SendTurn(ctx, request)
}

// mergeTurnResponse applies a successful reply: session id (set once),
// booking history, both turn-scoped artifact slots, then the assistant
// message. Failure paths never reach this point, so a failed turn can
// not partially merge.
func (o *Orchestrator) mergeTurnResponse(response assistant.TurnResponse) {
	if established := o.session.Observe(response); established {
		o.emitEvent(events.NewSessionEstablished(response.SessionID))
	}

	if response.Booking != nil {
		o.artifacts.RecordBooking(*response.Booking)
		o.emitEvent(events.NewBookingRecorded(*response.Booking))
	}

	o.artifacts.SetTurnArtifacts(response.MapData, response.PlacesData)
	o.emitEvent(events.NewRouteUpdated(o.artifacts.Route()))
	o.emitEvent(events.NewPlacesUpdated(o.artifacts.Places()))

	o.appendMessage(response.Reply, false)
}
