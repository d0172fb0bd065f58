package travixa

import (
	"github.com/jinzhu/copier"
	"github.com/travixa/concierge-core/core/assistant"
)

// Wire types mirror the concierge service JSON contract field for field.

type turnRequestBody struct {
	Message   string  `json:"message"`
	SessionID *string `json:"session_id"`
}

type turnResponseBody struct {
	Reply      string      `json:"reply"`
	SessionID  string      `json:"session_id,omitempty"`
	Booking    *booking    `json:"booking,omitempty"`
	MapData    *mapData    `json:"map_data,omitempty"`
	PlacesData []placeData `json:"places_data,omitempty"`
}

type booking struct {
	Service   string `json:"service"`
	BookingID string `json:"booking_id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Price     string `json:"price"`
}

type mapData struct {
	Origin      string `json:"origin"`
	OriginLat   string `json:"origin_lat"`
	OriginLon   string `json:"origin_lon"`
	Destination string `json:"destination"`
	DestLat     string `json:"dest_lat"`
	DestLon     string `json:"dest_lon"`
	TravelMode  string `json:"travelMode"`
}

type placeData struct {
	Name        string `json:"name"`
	Rating      string `json:"rating"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

func toTurnRequestBody(request assistant.TurnRequest) turnRequestBody {
	return turnRequestBody{Message: request.Message, SessionID: request.SessionID}
}

func toTurnResponse(body turnResponseBody) *assistant.TurnResponse {
	response := assistant.TurnResponse{
		Reply:     body.Reply,
		SessionID: body.SessionID,
	}

	if body.Booking != nil {
		responseBooking := assistant.Booking{}
		copier.Copy(&responseBooking, body.Booking)
		response.Booking = &responseBooking
	}

	if body.MapData != nil {
		route := assistant.MapDirective{}
		copier.Copy(&route, body.MapData)
		response.MapData = &route
	}

	// The service reports "no suggestions" either as null or as an empty
	// list; both collapse to nil so turn scoping treats them as absence.
	if len(body.PlacesData) > 0 {
		places := []assistant.PlaceSuggestion{}
		copier.Copy(&places, body.PlacesData)
		response.PlacesData = places
	}

	return &response
}
