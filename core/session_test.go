package orchestration

import (
	"testing"

	"github.com/travixa/concierge-core/core/assistant"
)

func TestSessionCorrelatorAttachBeforeEstablishmentSendsNil(t *testing.T) {
	correlator := sessionCorrelator{}

	request := assistant.TurnRequest{Message: "hello"}
	correlator.Attach(&request)

	if request.SessionID != nil {
		t.Fatalf("expected nil session id before establishment, got %q", *request.SessionID)
	}
}

func TestSessionCorrelatorObserveSetsIDOnce(t *testing.T) {
	correlator := sessionCorrelator{}

	if established := correlator.Observe(assistant.TurnResponse{SessionID: "s1"}); !established {
		t.Fatalf("expected first observed id to establish the session")
	}
	if established := correlator.Observe(assistant.TurnResponse{SessionID: "s2"}); established {
		t.Fatalf("expected later ids to be ignored")
	}
	if established := correlator.Observe(assistant.TurnResponse{SessionID: "s1"}); established {
		t.Fatalf("expected repeated id to not re-establish the session")
	}

	if id := correlator.ID(); id == nil || *id != "s1" {
		t.Fatalf("expected session id to stay \"s1\", got %v", id)
	}
}

func TestSessionCorrelatorObserveIgnoresEmptyID(t *testing.T) {
	correlator := sessionCorrelator{}

	if established := correlator.Observe(assistant.TurnResponse{Reply: "hi"}); established {
		t.Fatalf("expected response without session id to leave the session unset")
	}
	if id := correlator.ID(); id != nil {
		t.Fatalf("expected session id to stay unset, got %q", *id)
	}
}

func TestSessionCorrelatorAttachCopiesEstablishedID(t *testing.T) {
	correlator := sessionCorrelator{}
	correlator.Observe(assistant.TurnResponse{SessionID: "s1"})

	request := assistant.TurnRequest{Message: "next"}
	correlator.Attach(&request)

	if request.SessionID == nil || *request.SessionID != "s1" {
		t.Fatalf("expected attached session id \"s1\", got %v", request.SessionID)
	}

	*request.SessionID = "tampered"
	if id := correlator.ID(); id == nil || *id != "s1" {
		t.Fatalf("expected correlator to be unaffected by request mutation, got %v", id)
	}
}
