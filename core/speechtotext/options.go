// Package speechtotext defines the recognizer contract used by voice
// capture: one recognition session per start, producing at most one final
// transcript or an error.
package speechtotext

import "github.com/travixa/concierge-core/core/audio"

type RecognitionOptions struct {
	// Locale is the recognition language tag; it must come from
	// SupportedLocales.
	Locale string

	TranscriptCallback func(transcript string)
	ErrorCallback      func(err error)

	ListeningStartedCallback func()
	ListeningEndedCallback   func()

	EncodingInfo audio.EncodingInfo
}

type RecognitionOption func(*RecognitionOptions)

func WithLocale(locale string) RecognitionOption {
	return func(o *RecognitionOptions) {
		o.Locale = locale
	}
}

func WithTranscriptCallback(callback func(transcript string)) RecognitionOption {
	return func(o *RecognitionOptions) {
		o.TranscriptCallback = callback
	}
}

func WithErrorCallback(callback func(err error)) RecognitionOption {
	return func(o *RecognitionOptions) {
		o.ErrorCallback = callback
	}
}

func WithListeningStartedCallback(callback func()) RecognitionOption {
	return func(o *RecognitionOptions) {
		o.ListeningStartedCallback = callback
	}
}

func WithListeningEndedCallback(callback func()) RecognitionOption {
	return func(o *RecognitionOptions) {
		o.ListeningEndedCallback = callback
	}
}

func WithEncodingInfo(encodingInfo audio.EncodingInfo) RecognitionOption {
	return func(o *RecognitionOptions) {
		o.EncodingInfo = encodingInfo
	}
}
