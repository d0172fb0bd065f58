package orchestration

import (
	"sync"

	"github.com/travixa/concierge-core/core/assistant"
)

// artifactChannel owns the side-channel artifacts the assistant produces
// alongside its replies. Bookings accumulate for the whole dialogue; the
// map directive and place suggestions are scoped to the latest turn and
// are rewritten together, atomically, on every turn.
type artifactChannel struct {
	mu sync.RWMutex

	bookings []assistant.Booking

	route  *assistant.MapDirective
	places []assistant.PlaceSuggestion
}

// RecordBooking appends a booking to the history. Duplicates are accepted
// as distinct events; booking ids are opaque and not deduplicated.
func (a *artifactChannel) RecordBooking(booking assistant.Booking) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.bookings = append(a.bookings, booking)
}

// SetTurnArtifacts replaces both turn-scoped slots in one update. A nil
// route or an empty place list clears the corresponding slot: absence in
// the incoming turn drops whatever the previous turn produced. The two
// slots are independent of each other and of the booking history.
func (a *artifactChannel) SetTurnArtifacts(route *assistant.MapDirective, places []assistant.PlaceSuggestion) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if route == nil {
		a.route = nil
	} else {
		routeCopy := *route
		a.route = &routeCopy
	}

	if len(places) == 0 {
		a.places = nil
	} else {
		a.places = make([]assistant.PlaceSuggestion, len(places))
		copy(a.places, places)
	}
}

// Bookings returns a copy of the booking history in arrival order.
func (a *artifactChannel) Bookings() []assistant.Booking {
	a.mu.RLock()
	defer a.mu.RUnlock()

	bookings := make([]assistant.Booking, len(a.bookings))
	copy(bookings, a.bookings)
	return bookings
}

// Route returns a copy of the current map directive, or nil when the
// latest turn produced none.
func (a *artifactChannel) Route() *assistant.MapDirective {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.route == nil {
		return nil
	}

	route := *a.route
	return &route
}

// Places returns a copy of the current place suggestions, or nil when the
// latest turn produced none.
func (a *artifactChannel) Places() []assistant.PlaceSuggestion {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.places == nil {
		return nil
	}

	places := make([]assistant.PlaceSuggestion, len(a.places))
	copy(places, a.places)
	return places
}
