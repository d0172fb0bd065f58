package orchestration

import "github.com/travixa/concierge-core/core/events"

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

func newCallbackEventEmitter(opts callbackOptions, listener func(events.Event)) eventEmitter {
	return func(event events.Event) {
		if listener != nil {
			listener(event)
		}

		switch typedEvent := event.(type) {
		case events.MessageAppended:
			if opts.onMessage != nil {
				opts.onMessage(Message{
					ID:      typedEvent.MessageID,
					Text:    typedEvent.Text,
					IsUser:  typedEvent.IsUser,
					Ordinal: typedEvent.Ordinal,
				})
			}
		case events.TurnStarted:
			if opts.onLoadingChanged != nil {
				opts.onLoadingChanged(true)
			}
		case events.TurnCompleted:
			if opts.onLoadingChanged != nil {
				opts.onLoadingChanged(false)
			}
		case events.TurnFailed:
			if opts.onLoadingChanged != nil {
				opts.onLoadingChanged(false)
			}
		case events.TurnRejected:
			if opts.onTurnRejected != nil {
				opts.onTurnRejected(typedEvent.Text)
			}
		case events.SessionEstablished:
			if opts.onSessionEstablished != nil {
				opts.onSessionEstablished(typedEvent.ID)
			}
		case events.BookingRecorded:
			if opts.onBookingRecorded != nil {
				opts.onBookingRecorded(typedEvent.Booking)
			}
		case events.RouteUpdated:
			if opts.onRouteUpdated != nil {
				opts.onRouteUpdated(typedEvent.Route)
			}
		case events.PlacesUpdated:
			if opts.onPlacesUpdated != nil {
				opts.onPlacesUpdated(typedEvent.Places)
			}
		case events.TranscriptReceived:
			if opts.onTranscription != nil {
				opts.onTranscription(typedEvent.Transcript)
			}
		case events.CaptureStarted:
			if opts.onListeningChanged != nil {
				opts.onListeningChanged(true)
			}
		case events.CaptureEnded:
			if opts.onListeningChanged != nil {
				opts.onListeningChanged(false)
			}
		case events.CaptureFailed:
			if opts.onCaptureError != nil {
				opts.onCaptureError(typedEvent.Err)
			}
		case events.InputBufferUpdated:
			if opts.onInputChanged != nil {
				opts.onInputChanged(typedEvent.Text)
			}
		case events.ViewChanged:
			if opts.onViewChanged != nil {
				opts.onViewChanged(View(typedEvent.View))
			}
		}
	}
}
