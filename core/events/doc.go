// Package events defines the typed concierge orchestration event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - conversation.*
//   - turn_state.*
//   - session.*
//   - artifacts.*
//   - voice_capture.*
//   - input.*
//   - view.*
//
// conversation events
//
//   - MessageAppended (conversation.message_appended): a message was added
//     to the end of the conversation log. Messages are never reordered or
//     removed, so ordinals observed through this event are final.
//
// turn_state events
//
//   - TurnStarted (turn_state.started): a turn was admitted and its user
//     message appended.
//   - TurnCompleted (turn_state.completed): the assistant replied and all
//     side-channel artifacts were merged.
//   - TurnFailed (turn_state.failed): the turn failed in transport; a
//     fallback message was appended instead of a reply.
//   - TurnRejected (turn_state.rejected): a turn was refused because
//     another turn is still in flight. Nothing was appended.
//
// session events
//
//   - SessionEstablished (session.established): the service assigned a
//     session id. Emitted at most once per dialogue.
//
// artifacts events
//
//   - BookingRecorded (artifacts.booking_recorded): a booking was appended
//     to the booking history.
//   - RouteUpdated (artifacts.route_updated): the turn-scoped map directive
//     was replaced; nil means cleared.
//   - PlacesUpdated (artifacts.places_updated): the turn-scoped place
//     suggestions were replaced; nil means cleared.
//
// voice_capture events
//
//   - CaptureStarted (voice_capture.started): speech capture began.
//   - CaptureEnded (voice_capture.ended): speech capture returned to idle,
//     with or without a transcript.
//   - TranscriptReceived (voice_capture.transcript): a final transcript was
//     produced. Transcripts feed the pending input buffer, never a turn.
//   - CaptureFailed (voice_capture.failed): the platform recognizer
//     reported an error; capture returned to idle.
//
// input events
//
//   - InputBufferUpdated (input.buffer_updated): snapshot of the pending
//     input buffer after an edit or transcript append.
//
// view events
//
//   - ViewChanged (view.changed): the active view switched.
package events
