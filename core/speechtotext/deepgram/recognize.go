// Package deepgram implements one-shot speech recognition over Deepgram's
// live-listen websocket endpoint.
package deepgram

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"

	api "github.com/deepgram/deepgram-go-sdk/pkg/api/listen/v1/websocket/interfaces"
	"github.com/gorilla/websocket"
	"github.com/travixa/concierge-core/core/audio"
	"github.com/travixa/concierge-core/core/speechtotext"
)

// RecognitionClient holds one live-listen connection at a time. A session
// ends after the first finalized utterance, after Close, or on a
// websocket failure.
type RecognitionClient struct {
	conn   *websocket.Conn
	connMu sync.Mutex

	accumulatedTranscript string
	finished              bool
}

func NewRecognitionClient() *RecognitionClient {
	return &RecognitionClient{}
}

// Recognize opens the websocket for the configured locale and processes
// messages until one final transcript is produced. The transcript (or an
// error) is delivered through the configured callbacks.
func (s *RecognitionClient) Recognize(ctx context.Context, opts ...speechtotext.RecognitionOption) error {
	options := &speechtotext.RecognitionOptions{
		Locale:       speechtotext.DefaultLocale,
		EncodingInfo: audio.GetDefaultEncodingInfo(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if !speechtotext.IsSupportedLocale(options.Locale) {
		return fmt.Errorf("cannot recognize %q: %w", options.Locale, speechtotext.ErrUnsupportedLocale)
	}

	encoding, err := convertEncoding(options.EncodingInfo)
	if err != nil {
		return fmt.Errorf("invalid encoding: %w", err)
	}

	conn, err := connectWebsocket(connectionOptions{
		locale:     options.Locale,
		sampleRate: encoding.SampleRate,
		encoding:   encoding.Format.Name(),
	})
	if err != nil {
		return fmt.Errorf("failed to open websocket: %w", err)
	}

	s.connMu.Lock()
	s.conn = conn
	s.accumulatedTranscript = ""
	s.finished = false
	s.connMu.Unlock()

	if options.ListeningStartedCallback != nil {
		options.ListeningStartedCallback()
	}

	go s.readAndProcessMessages(ctx, conn, *options)

	return nil
}

type connectionOptions struct {
	locale     string
	sampleRate int
	encoding   string
}

func connectWebsocket(options connectionOptions) (*websocket.Conn, error) {
	apiKey, ok := os.LookupEnv("DEEPGRAM_API_KEY")
	if !ok {
		return nil, fmt.Errorf("deepgram api key not found")
	}

	listenUrl, _ := url.Parse("wss://api.deepgram.com/v1/listen")
	queryParams := listenUrl.Query()
	queryParams.Set("encoding", options.encoding)
	queryParams.Set("sample_rate", strconv.Itoa(options.sampleRate))
	queryParams.Set("channels", strconv.Itoa(audio.DefaultChannels))
	queryParams.Set("model", "nova-2")
	queryParams.Set("language", options.locale)
	queryParams.Set("smart_format", "true")
	queryParams.Set("interim_results", "true")
	queryParams.Set("utterance_end_ms", "1000")
	queryParams.Set("endpointing", "300")
	queryParams.Set("vad_events", "true")

	listenUrl.RawQuery = queryParams.Encode()
	conn, _, err := websocket.DefaultDialer.Dial(listenUrl.String(),
		http.Header{"Authorization": {"Token " + apiKey}})
	if err != nil {
		return nil, fmt.Errorf("failed to open socket connection to deepgram: %w", err)
	}

	return conn, err
}

func (s *RecognitionClient) SendAudio(audio []byte) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.conn == nil {
		return nil
	}

	if err := s.conn.WriteMessage(websocket.BinaryMessage, audio); err != nil {
		return fmt.Errorf("failed to write to deepgram client: %w", err)
	}
	return nil
}

// Close ends the recognition session without waiting for a transcript.
func (s *RecognitionClient) Close(context.Context) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	s.finished = true
	if s.conn != nil {
		if err := s.conn.WriteJSON(struct {
			Type string `json:"type"`
		}{Type: string(api.TypeCloseStreamResponse)}); err != nil {
			return fmt.Errorf("failed to close deepgram stream through websocket: %w", err)
		}
	}
	return nil
}

func (s *RecognitionClient) readAndProcessMessages(ctx context.Context, conn *websocket.Conn, options speechtotext.RecognitionOptions) {
	defer func() {
		s.connMu.Lock()
		s.conn = nil
		s.connMu.Unlock()
		conn.Close()

		if options.ListeningEndedCallback != nil {
			options.ListeningEndedCallback()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return
			}

			s.connMu.Lock()
			alreadyFinished := s.finished
			s.connMu.Unlock()
			if !alreadyFinished && options.ErrorCallback != nil {
				options.ErrorCallback(fmt.Errorf("failed to read deepgram websocket message: %w", err))
			}
			return
		}
		if msgType == websocket.BinaryMessage {
			continue
		}

		if done := s.processMessage(msg, options); done {
			return
		}
	}
}

// processMessage handles one websocket control message and reports
// whether the session produced its final transcript.
func (s *RecognitionClient) processMessage(msg []byte, options speechtotext.RecognitionOptions) bool {
	var parsedMsg struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(msg, &parsedMsg); err != nil {
		log.Println("Failed to unmarshal deepgram message", "error", err)
		return false
	}

	switch api.TypeResponse(parsedMsg.Type) {
	case api.TypeMessageResponse:
		var msgResp api.MessageResponse
		if err := json.Unmarshal(msg, &msgResp); err != nil {
			log.Println("Failed to unmarshal deepgram message", err)
			return false
		}

		if !msgResp.IsFinal {
			return false
		}
		if len(msgResp.Channel.Alternatives) > 0 {
			transcript := strings.TrimSpace(msgResp.Channel.Alternatives[0].Transcript)
			if len(transcript) > 0 {
				s.accumulatedTranscript += " " + transcript
			}
		}
		if msgResp.SpeechFinal {
			return s.finishUtterance(options)
		}

	case api.TypeUtteranceEndResponse:
		var msgResp api.UtteranceEndResponse
		if err := json.Unmarshal(msg, &msgResp); err != nil {
			log.Println("Failed to unmarshal deepgram message", err)
			return false
		}

		return s.finishUtterance(options)
	}

	return false
}

func (s *RecognitionClient) finishUtterance(options speechtotext.RecognitionOptions) bool {
	fullTranscript := strings.TrimSpace(s.accumulatedTranscript)
	s.accumulatedTranscript = ""
	if len(fullTranscript) == 0 {
		return false
	}

	s.connMu.Lock()
	s.finished = true
	if s.conn != nil {
		if err := s.conn.WriteJSON(struct {
			Type string `json:"type"`
		}{Type: string(api.TypeCloseStreamResponse)}); err != nil {
			log.Println("Failed to close deepgram stream", "error", err)
		}
	}
	s.connMu.Unlock()

	if options.TranscriptCallback != nil {
		options.TranscriptCallback(fullTranscript)
	}
	return true
}
