package orchestration

import (
	"sync"

	"github.com/travixa/concierge-core/core/assistant"
)

// sessionCorrelator owns the opaque session id the remote service assigns
// to the dialogue. The id is set exactly once, from the first response
// that carries one, and is never changed or cleared afterwards: the
// service establishes continuity and the client must not fabricate or
// drop it.
type sessionCorrelator struct {
	mu sync.RWMutex

	id *string
}

// Attach copies the current session id (or nil) into the outgoing
// request.
func (s *sessionCorrelator) Attach(request *assistant.TurnRequest) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.id == nil {
		request.SessionID = nil
		return
	}

	id := *s.id
	request.SessionID = &id
}

// Observe records the response's session id when none is set yet. It
// reports whether the id was newly established.
func (s *sessionCorrelator) Observe(response assistant.TurnResponse) bool {
	if response.SessionID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.id != nil {
		return false
	}

	id := response.SessionID
	s.id = &id
	return true
}

// ID returns a copy of the session id, or nil before the service assigns
// one.
func (s *sessionCorrelator) ID() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.id == nil {
		return nil
	}

	id := *s.id
	return &id
}
