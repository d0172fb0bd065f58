package events

// KindMessageAppended identifies appends to the conversation log.
const KindMessageAppended Kind = "conversation.message_appended"

// MessageAppended carries a message appended to the conversation log.
type MessageAppended struct {
	Base
	MessageID string
	Text      string
	IsUser    bool
	Ordinal   int
}

// NewMessageAppended creates a message appended event.
func NewMessageAppended(messageID, text string, isUser bool, ordinal int) MessageAppended {
	return MessageAppended{
		Base:      NewBase(KindMessageAppended),
		MessageID: messageID,
		Text:      text,
		IsUser:    isUser,
		Ordinal:   ordinal,
	}
}
