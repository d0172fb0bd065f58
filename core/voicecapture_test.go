package orchestration

import (
	"context"
	"errors"
	"testing"

	"github.com/travixa/concierge-core/core/speechtotext"
)

type recognizerStub struct {
	options      speechtotext.RecognitionOptions
	recognizeErr error
}

func (stub *recognizerStub) Recognize(_ context.Context, opts ...speechtotext.RecognitionOption) error {
	for _, opt := range opts {
		opt(&stub.options)
	}
	return stub.recognizeErr
}

func (stub *recognizerStub) SendAudio([]byte) error { return nil }

func TestStartListeningWithoutRecognizerIsUnavailable(t *testing.T) {
	o := NewOrchestrator(WithWelcomeMessage(""))

	if got := o.CaptureState(); got != CaptureStateDisabled {
		t.Fatalf("expected capture to start disabled, got %q", got)
	}
	if err := o.StartListening(context.Background(), "en-US"); !errors.Is(err, ErrCaptureUnavailable) {
		t.Fatalf("expected ErrCaptureUnavailable, got %v", err)
	}
}

func TestStartListeningRejectsUnsupportedLocale(t *testing.T) {
	stub := &recognizerStub{}
	o := NewOrchestrator(WithWelcomeMessage(""), WithSpeechToTextClient(stub))

	err := o.StartListening(context.Background(), "xx-XX")
	if !errors.Is(err, speechtotext.ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
	if got := o.CaptureState(); got != CaptureStateIdle {
		t.Fatalf("expected capture to stay idle, got %q", got)
	}
}

func TestStartListeningDefaultsTheLocale(t *testing.T) {
	stub := &recognizerStub{}
	o := NewOrchestrator(WithWelcomeMessage(""), WithSpeechToTextClient(stub))

	if err := o.StartListening(context.Background(), ""); err != nil {
		t.Fatalf("expected capture to start, got %v", err)
	}
	defer o.StopListening()

	if stub.options.Locale != speechtotext.DefaultLocale {
		t.Fatalf("expected default locale %q, got %q", speechtotext.DefaultLocale, stub.options.Locale)
	}
}

func TestStartListeningWhileListeningIsRejected(t *testing.T) {
	stub := &recognizerStub{}
	o := NewOrchestrator(WithWelcomeMessage(""), WithSpeechToTextClient(stub))

	if err := o.StartListening(context.Background(), "en-US"); err != nil {
		t.Fatalf("expected first capture to start, got %v", err)
	}
	defer o.StopListening()

	if err := o.StartListening(context.Background(), "en-US"); !errors.Is(err, ErrAlreadyListening) {
		t.Fatalf("expected ErrAlreadyListening, got %v", err)
	}
	if !o.IsListening() {
		t.Fatalf("expected the first session to survive the rejected start")
	}
}

func TestStartListeningSurfacesRecognizerFailure(t *testing.T) {
	stub := &recognizerStub{recognizeErr: errors.New("no api key")}
	o := NewOrchestrator(WithWelcomeMessage(""), WithSpeechToTextClient(stub))

	if err := o.StartListening(context.Background(), "en-US"); err == nil {
		t.Fatalf("expected start to fail when the recognizer does")
	}
	if got := o.CaptureState(); got != CaptureStateIdle {
		t.Fatalf("expected capture back in idle after the failed start, got %q", got)
	}
}

func TestTranscriptLandsInThePendingInputBuffer(t *testing.T) {
	stub := &recognizerStub{}
	var transcripts []string
	var listening []bool
	o := NewOrchestrator(
		WithWelcomeMessage(""),
		WithSpeechToTextClient(stub),
		WithTranscriptionCallback(func(transcript string) { transcripts = append(transcripts, transcript) }),
		WithListeningStateChangedCallback(func(isListening bool) { listening = append(listening, isListening) }),
	)
	o.SetInputText("Book a table")

	if err := o.StartListening(context.Background(), "es-ES"); err != nil {
		t.Fatalf("expected capture to start, got %v", err)
	}
	stub.options.TranscriptCallback("for two people")

	if got := o.InputText(); got != "Book a table for two people" {
		t.Fatalf("expected transcript appended with a space, got %q", got)
	}
	if len(transcripts) != 1 || transcripts[0] != "for two people" {
		t.Fatalf("expected one transcription callback, got %v", transcripts)
	}
	if len(listening) != 2 || !listening[0] || listening[1] {
		t.Fatalf("expected listening transitions [true false], got %v", listening)
	}
	if got := o.CaptureState(); got != CaptureStateIdle {
		t.Fatalf("expected capture back in idle, got %q", got)
	}
	if messages := o.Messages(); len(messages) != 0 {
		t.Fatalf("expected the transcript to stay out of the conversation, got %+v", messages)
	}
}

func TestStopListeningDiscardsTheSession(t *testing.T) {
	stub := &recognizerStub{}
	o := NewOrchestrator(WithWelcomeMessage(""), WithSpeechToTextClient(stub))
	o.SetInputText("unchanged")

	if err := o.StartListening(context.Background(), "en-US"); err != nil {
		t.Fatalf("expected capture to start, got %v", err)
	}
	o.StopListening()

	if got := o.CaptureState(); got != CaptureStateIdle {
		t.Fatalf("expected capture back in idle after stop, got %q", got)
	}
	if got := o.InputText(); got != "unchanged" {
		t.Fatalf("expected the input buffer untouched by a manual stop, got %q", got)
	}

	// A straggling transcript after the stop is dropped.
	stub.options.TranscriptCallback("late transcript")
	if got := o.InputText(); got != "unchanged" {
		t.Fatalf("expected the late transcript dropped, got %q", got)
	}
}

func TestCaptureErrorReturnsToIdleWithoutAMessage(t *testing.T) {
	stub := &recognizerStub{}
	var captureErr error
	o := NewOrchestrator(
		WithWelcomeMessage(""),
		WithSpeechToTextClient(stub),
		WithCaptureErrorCallback(func(err error) { captureErr = err }),
	)

	if err := o.StartListening(context.Background(), "en-US"); err != nil {
		t.Fatalf("expected capture to start, got %v", err)
	}
	stub.options.ErrorCallback(errors.New("websocket closed"))

	if captureErr == nil {
		t.Fatalf("expected the capture error to reach the callback")
	}
	if got := o.CaptureState(); got != CaptureStateIdle {
		t.Fatalf("expected capture back in idle after the error, got %q", got)
	}
	if messages := o.Messages(); len(messages) != 0 {
		t.Fatalf("expected no conversation fallout from a capture error, got %+v", messages)
	}
}

func TestRecognizerEndingOnItsOwnReturnsToIdle(t *testing.T) {
	stub := &recognizerStub{}
	o := NewOrchestrator(WithWelcomeMessage(""), WithSpeechToTextClient(stub))

	if err := o.StartListening(context.Background(), "en-US"); err != nil {
		t.Fatalf("expected capture to start, got %v", err)
	}
	stub.options.ListeningEndedCallback()

	if got := o.CaptureState(); got != CaptureStateIdle {
		t.Fatalf("expected capture back in idle after a remote close, got %q", got)
	}
}
