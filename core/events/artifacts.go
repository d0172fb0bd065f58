package events

import "github.com/travixa/concierge-core/core/assistant"

const (
	// KindBookingRecorded identifies appends to the booking history.
	KindBookingRecorded Kind = "artifacts.booking_recorded"
	// KindRouteUpdated identifies replacement of the turn-scoped map directive.
	KindRouteUpdated Kind = "artifacts.route_updated"
	// KindPlacesUpdated identifies replacement of the turn-scoped place suggestions.
	KindPlacesUpdated Kind = "artifacts.places_updated"
)

// BookingRecorded carries a booking appended to the booking history.
type BookingRecorded struct {
	Base
	Booking assistant.Booking
}

// NewBookingRecorded creates a booking recorded event.
func NewBookingRecorded(booking assistant.Booking) BookingRecorded {
	return BookingRecorded{Base: NewBase(KindBookingRecorded), Booking: booking}
}

// RouteUpdated carries the new turn-scoped map directive; nil means the
// previous directive was cleared.
type RouteUpdated struct {
	Base
	Route *assistant.MapDirective
}

// NewRouteUpdated creates a route updated event.
func NewRouteUpdated(route *assistant.MapDirective) RouteUpdated {
	return RouteUpdated{Base: NewBase(KindRouteUpdated), Route: route}
}

// PlacesUpdated carries the new turn-scoped place suggestions; nil means
// the previous suggestions were cleared.
type PlacesUpdated struct {
	Base
	Places []assistant.PlaceSuggestion
}

// NewPlacesUpdated creates a places updated event.
func NewPlacesUpdated(places []assistant.PlaceSuggestion) PlacesUpdated {
	return PlacesUpdated{Base: NewBase(KindPlacesUpdated), Places: places}
}
