// Package assistant defines the boundary to the remote concierge service:
// the turn request/response contract and the side-channel artifact types it
// produces alongside each reply.
package assistant

import "context"

// Client is a remote concierge service accepting one turn at a time.
type Client interface {
	// SendTurn submits a user message together with the current session id
	// (nil before the service assigns one) and returns the assistant's
	// reply plus any artifacts. Transport failures and non-2xx statuses
	// are returned uniformly as errors.
	SendTurn(ctx context.Context, request TurnRequest) (*TurnResponse, error)
}

// TurnRequest is one outgoing conversational turn.
type TurnRequest struct {
	Message   string
	SessionID *string
}

// TurnResponse is the assistant's reply to a turn, plus optional
// side-channel artifacts.
type TurnResponse struct {
	Reply     string
	SessionID string

	// Booking is set when this turn confirmed a booking.
	Booking *Booking
	// MapData is set when this turn produced a route to display. It is
	// scoped to this turn only.
	MapData *MapDirective
	// PlacesData is set when this turn produced place suggestions. It is
	// scoped to this turn only.
	PlacesData []PlaceSuggestion
}

// Booking is a confirmed booking. All fields except BookingID are opaque
// display strings; BookingID is treated as opaque too and is not assumed
// to be unique.
type Booking struct {
	Service   string
	BookingID string
	Name      string
	Date      string
	Price     string
}

// MapDirective describes a route from the user's location to a
// destination. Coordinates are kept as the opaque decimal strings the
// service sends.
type MapDirective struct {
	Origin      string
	OriginLat   string
	OriginLon   string
	Destination string
	DestLat     string
	DestLon     string
	TravelMode  string
}

// PlaceSuggestion is one recommended nearby place.
type PlaceSuggestion struct {
	Name        string
	Rating      string
	Type        string
	Description string
	Address     string
}
