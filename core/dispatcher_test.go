package orchestration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/travixa/concierge-core/core/assistant"
)

type assistantClientStub struct {
	sendTurn func(ctx context.Context, request assistant.TurnRequest) (*assistant.TurnResponse, error)
}

func (stub *assistantClientStub) SendTurn(
	ctx context.Context, request assistant.TurnRequest,
) (*assistant.TurnResponse, error) {
	if stub.sendTurn != nil {
		return stub.sendTurn(ctx, request)
	}
	return &assistant.TurnResponse{Reply: "ok"}, nil
}

func TestSubmitTurnMergesBookingReply(t *testing.T) {
	client := &assistantClientStub{
		sendTurn: func(_ context.Context, request assistant.TurnRequest) (*assistant.TurnResponse, error) {
			if request.SessionID != nil {
				t.Fatalf("expected nil session id on the first turn, got %q", *request.SessionID)
			}
			return &assistant.TurnResponse{
				Reply:     "Done, your table is booked.",
				SessionID: "s1",
				Booking:   &assistant.Booking{BookingID: "B100", Service: "Dining Reservation"},
			}, nil
		},
	}
	o := NewOrchestrator(WithAssistantClient(client), WithWelcomeMessage(""))

	if err := o.SubmitTurn(context.Background(), "Book a table for 2"); err != nil {
		t.Fatalf("expected turn to succeed, got %v", err)
	}

	messages := o.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected user message and reply, got %d messages", len(messages))
	}
	if !messages[0].IsUser || messages[0].Text != "Book a table for 2" {
		t.Fatalf("expected optimistic user message first, got %+v", messages[0])
	}
	if messages[1].IsUser || messages[1].Text != "Done, your table is booked." {
		t.Fatalf("expected assistant reply second, got %+v", messages[1])
	}

	if id := o.SessionID(); id == nil || *id != "s1" {
		t.Fatalf("expected session id \"s1\", got %v", id)
	}
	if bookings := o.Bookings(); len(bookings) != 1 || bookings[0].BookingID != "B100" {
		t.Fatalf("expected booking B100 recorded, got %+v", bookings)
	}
	if o.Route() != nil || o.Places() != nil {
		t.Fatalf("expected no turn artifacts from a booking-only reply")
	}
	if o.IsLoading() {
		t.Fatalf("expected loading to end with the turn")
	}
}

func TestSubmitTurnEmptyInputIsANoOp(t *testing.T) {
	called := false
	client := &assistantClientStub{
		sendTurn: func(context.Context, assistant.TurnRequest) (*assistant.TurnResponse, error) {
			called = true
			return &assistant.TurnResponse{}, nil
		},
	}
	o := NewOrchestrator(WithAssistantClient(client), WithWelcomeMessage(""))

	for _, text := range []string{"", "   ", "\n\t"} {
		if err := o.SubmitTurn(context.Background(), text); err != nil {
			t.Fatalf("expected blank input %q to be a silent no-op, got %v", text, err)
		}
	}

	if called {
		t.Fatalf("expected no request for blank input")
	}
	if messages := o.Messages(); len(messages) != 0 {
		t.Fatalf("expected no messages appended, got %d", len(messages))
	}
}

func TestSubmitTurnReplacesTurnScopedArtifacts(t *testing.T) {
	responses := []*assistant.TurnResponse{
		{
			Reply:      "Here are some places.",
			PlacesData: []assistant.PlaceSuggestion{{Name: "Cafe Azul"}, {Name: "Harbour View"}},
		},
		{
			Reply:   "Here is your route.",
			MapData: &assistant.MapDirective{Destination: "Central Station"},
		},
	}
	client := &assistantClientStub{
		sendTurn: func(context.Context, assistant.TurnRequest) (*assistant.TurnResponse, error) {
			response := responses[0]
			responses = responses[1:]
			return response, nil
		},
	}
	o := NewOrchestrator(WithAssistantClient(client), WithWelcomeMessage(""))

	if err := o.SubmitTurn(context.Background(), "find cafes"); err != nil {
		t.Fatalf("expected first turn to succeed, got %v", err)
	}
	if places := o.Places(); len(places) != 2 {
		t.Fatalf("expected two place suggestions after the first turn, got %+v", places)
	}

	if err := o.SubmitTurn(context.Background(), "route to the station"); err != nil {
		t.Fatalf("expected second turn to succeed, got %v", err)
	}
	if route := o.Route(); route == nil || route.Destination != "Central Station" {
		t.Fatalf("expected route to Central Station, got %+v", route)
	}
	if places := o.Places(); places != nil {
		t.Fatalf("expected a route-only turn to clear the places panel, got %+v", places)
	}
}

func TestSubmitTurnAbsorbsTransportFailure(t *testing.T) {
	var fail bool
	client := &assistantClientStub{
		sendTurn: func(context.Context, assistant.TurnRequest) (*assistant.TurnResponse, error) {
			if fail {
				return nil, errors.New("connection refused")
			}
			return &assistant.TurnResponse{
				Reply:     "Booked!",
				SessionID: "s1",
				Booking:   &assistant.Booking{BookingID: "B100"},
				MapData:   &assistant.MapDirective{Destination: "Central Station"},
			}, nil
		},
	}
	o := NewOrchestrator(WithAssistantClient(client), WithWelcomeMessage(""))

	if err := o.SubmitTurn(context.Background(), "book a cab"); err != nil {
		t.Fatalf("expected seeding turn to succeed, got %v", err)
	}

	fail = true
	if err := o.SubmitTurn(context.Background(), "and a hotel"); err != nil {
		t.Fatalf("expected transport failure to be absorbed, got %v", err)
	}

	messages := o.Messages()
	if len(messages) != 4 {
		t.Fatalf("expected exactly one fallback reply after the failed turn, got %d messages", len(messages))
	}
	if last := messages[3]; last.IsUser || last.Text != FallbackReply {
		t.Fatalf("expected the fallback reply, got %+v", last)
	}

	// Everything merged by the earlier turn survives untouched.
	if id := o.SessionID(); id == nil || *id != "s1" {
		t.Fatalf("expected session id to survive the failed turn, got %v", id)
	}
	if bookings := o.Bookings(); len(bookings) != 1 {
		t.Fatalf("expected booking history to survive the failed turn, got %+v", bookings)
	}
	if route := o.Route(); route == nil || route.Destination != "Central Station" {
		t.Fatalf("expected route to survive the failed turn, got %+v", route)
	}
	if o.IsLoading() {
		t.Fatalf("expected loading to end with the failed turn")
	}
}

func TestSubmitTurnWithoutClientFallsBack(t *testing.T) {
	o := NewOrchestrator(WithWelcomeMessage(""))

	if err := o.SubmitTurn(context.Background(), "hello"); err != nil {
		t.Fatalf("expected missing client to be absorbed like a transport failure, got %v", err)
	}

	messages := o.Messages()
	if len(messages) != 2 || messages[1].Text != FallbackReply {
		t.Fatalf("expected user message plus fallback reply, got %+v", messages)
	}
}

func TestSubmitTurnRejectsWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	client := &assistantClientStub{
		sendTurn: func(context.Context, assistant.TurnRequest) (*assistant.TurnResponse, error) {
			close(entered)
			<-release
			return &assistant.TurnResponse{Reply: "done"}, nil
		},
	}

	var rejected string
	o := NewOrchestrator(
		WithAssistantClient(client),
		WithWelcomeMessage(""),
		WithTurnRejectedCallback(func(text string) { rejected = text }),
	)

	firstDone := make(chan error, 1)
	go func() { firstDone <- o.SubmitTurn(context.Background(), "first") }()
	<-entered

	if !o.IsLoading() {
		t.Fatalf("expected loading while the first turn is in flight")
	}
	if err := o.SubmitTurn(context.Background(), "second"); !errors.Is(err, ErrTurnInFlight) {
		t.Fatalf("expected ErrTurnInFlight, got %v", err)
	}
	if rejected != "second" {
		t.Fatalf("expected rejection callback with the rejected text, got %q", rejected)
	}

	close(release)
	if err := <-firstDone; err != nil {
		t.Fatalf("expected the first turn to complete, got %v", err)
	}

	for _, message := range o.Messages() {
		if message.Text == "second" {
			t.Fatalf("expected the rejected turn to leave the conversation untouched")
		}
	}
	if o.IsLoading() {
		t.Fatalf("expected the in-flight flag released after the first turn")
	}
}

func TestSubmitTurnAttachesEstablishedSessionID(t *testing.T) {
	var sessionIDs []*string
	client := &assistantClientStub{
		sendTurn: func(_ context.Context, request assistant.TurnRequest) (*assistant.TurnResponse, error) {
			sessionIDs = append(sessionIDs, request.SessionID)
			return &assistant.TurnResponse{Reply: "ok", SessionID: "s1"}, nil
		},
	}
	o := NewOrchestrator(WithAssistantClient(client), WithWelcomeMessage(""))

	o.SubmitTurn(context.Background(), "first")
	o.SubmitTurn(context.Background(), "second")

	if len(sessionIDs) != 2 {
		t.Fatalf("expected two requests, got %d", len(sessionIDs))
	}
	if sessionIDs[0] != nil {
		t.Fatalf("expected the first request without a session id, got %q", *sessionIDs[0])
	}
	if sessionIDs[1] == nil || *sessionIDs[1] != "s1" {
		t.Fatalf("expected the second request to carry \"s1\", got %v", sessionIDs[1])
	}
}

func TestSubmitTurnHonorsTurnTimeout(t *testing.T) {
	var deadlineSet bool
	client := &assistantClientStub{
		sendTurn: func(ctx context.Context, _ assistant.TurnRequest) (*assistant.TurnResponse, error) {
			_, deadlineSet = ctx.Deadline()
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	o := NewOrchestrator(
		WithAssistantClient(client),
		WithWelcomeMessage(""),
		WithTurnTimeout(5*time.Millisecond),
	)

	if err := o.SubmitTurn(context.Background(), "slow request"); err != nil {
		t.Fatalf("expected the timed-out turn to fall back, got %v", err)
	}
	if !deadlineSet {
		t.Fatalf("expected the request context to carry a deadline")
	}

	messages := o.Messages()
	if len(messages) != 2 || messages[1].Text != FallbackReply {
		t.Fatalf("expected fallback reply after timeout, got %+v", messages)
	}
}

func TestSubmitTurnReportsLoadingTransitions(t *testing.T) {
	var transitions []bool
	o := NewOrchestrator(
		WithAssistantClient(&assistantClientStub{}),
		WithWelcomeMessage(""),
		WithLoadingCallback(func(loading bool) { transitions = append(transitions, loading) }),
	)

	o.SubmitTurn(context.Background(), "hello")

	if len(transitions) != 2 || !transitions[0] || transitions[1] {
		t.Fatalf("expected loading transitions [true false], got %v", transitions)
	}
}
