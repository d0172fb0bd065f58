package orchestration

import "time"

// QuickAction is a canned prompt rendered as a shortcut card. Its Prompt
// is fed verbatim into turn submission.
type QuickAction struct {
	Title    string
	Subtitle string
	Icon     string
	Prompt   string
}

// DefaultQuickActions returns the built-in shortcut catalog.
func DefaultQuickActions() []QuickAction {
	return []QuickAction{
		{
			Title:    "Airport Transfer",
			Subtitle: "Book a luxury car",
			Icon:     "🚕",
			Prompt:   "I need to book an airport transfer for my flight tomorrow.",
		},
		{
			Title:    "Dining Reservation",
			Subtitle: "Find local cuisine",
			Icon:     "🍽️",
			Prompt:   "Can you recommend and book a high-end local restaurant?",
		},
		{
			Title:    "City Tour",
			Subtitle: "Explore the highlights",
			Icon:     "🗺️",
			Prompt:   "What are the best guided city tours available today?",
		},
	}
}

// EmergencyPrompt is the fixed high-priority prompt submitted by the
// emergency shortcut.
const EmergencyPrompt = "EMERGENCY: I need help right now. Please ask for my location so you can provide the nearest police station immediately."

// WelcomeMessage is the assistant message seeded into a fresh
// conversation.
const WelcomeMessage = "Welcome to Travixa! I'm your multilingual assistant. I can help you book transport, reserve a table at top restaurants, or arrange exclusive city tours. How can I assist you today?"

// FallbackReply is appended as the assistant's message whenever a turn
// fails in transport.
const FallbackReply = "Sorry, the concierge service is currently offline. Please check your connection to the server."

// Greeting returns the salutation for the given local time.
func Greeting(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
