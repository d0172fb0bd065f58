package events

// KindSessionEstablished identifies assignment of the dialogue session id.
const KindSessionEstablished Kind = "session.established"

// SessionEstablished marks assignment of the server-side session id.
//
// The id is stable for the lifetime of the dialogue, so this event is
// emitted at most once.
type SessionEstablished struct {
	Base
	ID string
}

// NewSessionEstablished creates a session established event.
func NewSessionEstablished(id string) SessionEstablished {
	return SessionEstablished{Base: NewBase(KindSessionEstablished), ID: id}
}
