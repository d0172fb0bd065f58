package orchestration

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/travixa/concierge-core/core/audio"
)

// audioInput is the microphone facade used to normalize capture behavior
// across backends. It tolerates being unconfigured: voice capture then
// relies on audio pushed through the recognizer directly.
type audioInput struct {
	// client stores the configured capture backend.
	client AudioInput

	// isCapturing reports whether the backend is currently capturing audio.
	isCapturing atomic.Bool
}

func newAudioInput(client AudioInput) *audioInput {
	input := &audioInput{}
	input.Set(client)
	return input
}

func (a *audioInput) Set(client AudioInput) {
	if a == nil {
		return
	}

	a.client = client
	a.isCapturing.Store(false)
}

func (a *audioInput) IsConfigured() bool { return a != nil && a.client != nil }
func (a *audioInput) IsCapturing() bool  { return a != nil && a.isCapturing.Load() }

// StartCapture begins streaming microphone frames into onAudio. Blocking
// backends run on their own goroutine; start failures are logged, not
// propagated, because capture is best-effort alongside recognition.
func (a *audioInput) StartCapture(ctx context.Context, onAudio func(audio []byte)) {
	if !a.IsConfigured() {
		return
	}

	if !a.isCapturing.CompareAndSwap(false, true) {
		return
	}

	go func() {
		if err := a.client.StartCapture(ctx, onAudio); err != nil {
			a.isCapturing.Store(false)
			log.Printf("Failed to start audio input: %v", err)
		}
	}()
}

func (a *audioInput) StopCapture() {
	if !a.IsConfigured() {
		return
	}

	if !a.isCapturing.CompareAndSwap(true, false) {
		return
	}

	if err := a.client.StopCapture(); err != nil {
		log.Printf("Failed to stop audio input: %v", err)
	}
}

func (a *audioInput) EncodingInfo() audio.EncodingInfo {
	if a == nil || a.client == nil {
		return audio.GetDefaultEncodingInfo()
	}

	return a.client.EncodingInfo()
}
