package events

const (
	// KindTurnStarted identifies admission of a new turn.
	KindTurnStarted Kind = "turn_state.started"
	// KindTurnCompleted identifies successful completion of a turn.
	KindTurnCompleted Kind = "turn_state.completed"
	// KindTurnFailed identifies transport failure of a turn.
	KindTurnFailed Kind = "turn_state.failed"
	// KindTurnRejected identifies refusal of a turn while one is in flight.
	KindTurnRejected Kind = "turn_state.rejected"
)

// TurnStarted marks admission of a new turn.
type TurnStarted struct {
	Base
	TurnID string
	Text   string
}

// NewTurnStarted creates a turn started event.
func NewTurnStarted(turnID, text string) TurnStarted {
	return TurnStarted{Base: NewBase(KindTurnStarted), TurnID: turnID, Text: text}
}

// TurnCompleted marks successful completion of the current turn.
type TurnCompleted struct {
	Base
	TurnID string
	Reply  string
}

// NewTurnCompleted creates a turn completed event.
func NewTurnCompleted(turnID, reply string) TurnCompleted {
	return TurnCompleted{Base: NewBase(KindTurnCompleted), TurnID: turnID, Reply: reply}
}

// TurnFailed marks transport failure of the current turn.
type TurnFailed struct {
	Base
	TurnID string
	Err    error
}

// NewTurnFailed creates a turn failed event.
func NewTurnFailed(turnID string, err error) TurnFailed {
	return TurnFailed{Base: NewBase(KindTurnFailed), TurnID: turnID, Err: err}
}

// TurnRejected marks refusal of a turn submitted while another is in flight.
type TurnRejected struct {
	Base
	Text string
}

// NewTurnRejected creates a turn rejected event.
func NewTurnRejected(text string) TurnRejected {
	return TurnRejected{Base: NewBase(KindTurnRejected), Text: text}
}
