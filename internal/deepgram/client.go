// Package deepgram - минимальный клиент потокового распознавания Deepgram
package deepgram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/responder_ai/internal/config"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrClosed - поток уже закрыт
var ErrClosed = errors.New("deepgram: stream closed")

// сколько ждем финальных результатов после CloseStream
const drainTimeout = 2 * time.Second

// Client открывает live-сессии распознавания
type Client struct {
	endpoint string
	apiKey   string
	model    string
	language string
	dialer   *websocket.Dialer
	logger   *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		endpoint: cfg.DeepgramURL,
		apiKey:   cfg.DeepgramAPIKey,
		model:    cfg.DeepgramModel,
		language: cfg.DeepgramLanguage,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// listenURL собирает адрес с параметрами распознавания: linear16, 16 кГц, моно
func (c *Client) listenURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("deepgram: invalid url %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("model", c.model)
	q.Set("language", c.language)
	q.Set("smart_format", "true")
	q.Set("encoding", "linear16")
	q.Set("sample_rate", "16000")
	q.Set("channels", "1")
	q.Set("interim_results", "true")
	q.Set("endpointing", "300")
	q.Set("vad_events", "true")
	q.Set("utterance_end_ms", "1000")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Open подключается к Deepgram; onResult вызывается из горутины чтения
func (c *Client) Open(ctx context.Context, onResult func(models.TranscriptResult)) (*Stream, error) {
	target, err := c.listenURL()
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", "Token "+c.apiKey)

	conn, resp, err := c.dialer.DialContext(ctx, target, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("deepgram: dial failed with status %d: %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("deepgram: dial failed: %w", err)
	}

	s := &Stream{
		conn:     conn,
		onResult: onResult,
		done:     make(chan struct{}),
		logger:   c.logger,
	}
	go s.readLoop()

	c.logger.Debug("Deepgram stream opened")
	return s, nil
}

// Stream - одно websocket соединение с Deepgram
type Stream struct {
	conn     *websocket.Conn
	onResult func(models.TranscriptResult)
	logger   *logrus.Logger

	writeMu   sync.Mutex
	closed    bool
	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

type message struct {
	Type    string `json:"type"`
	IsFinal bool   `json:"is_final"`
	Channel struct {
		Alternatives []struct {
			Transcript string `json:"transcript"`
		} `json:"alternatives"`
	} `json:"channel"`
}

func (s *Stream) readLoop() {
	defer func() {
		s.writeMu.Lock()
		s.closed = true
		s.writeMu.Unlock()
		close(s.done)
	}()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				s.logger.WithError(err).Debug("Deepgram read loop finished")
			}
			return
		}

		var msg message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.WithError(err).Warn("Failed to decode Deepgram message")
			continue
		}
		if msg.Type != "Results" {
			s.logger.WithField("type", msg.Type).Debug("Deepgram event")
			continue
		}
		if len(msg.Channel.Alternatives) == 0 || msg.Channel.Alternatives[0].Transcript == "" {
			continue
		}
		s.onResult(models.TranscriptResult{
			Text:    msg.Channel.Alternatives[0].Transcript,
			IsFinal: msg.IsFinal,
		})
	}
}

// Send отправляет бинарный фрейм с PCM аудио
func (s *Stream) Send(audio []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.conn.WriteMessage(websocket.BinaryMessage, audio)
}

// Done закрывается, когда цикл чтения завершился: после Finish или при закрытии соединения сервером
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Finish просит Deepgram дослать результаты и закрывает соединение; повторный вызов ничего не делает
func (s *Stream) Finish() error {
	s.closeOnce.Do(func() {
		s.writeMu.Lock()
		alreadyClosed := s.closed
		s.closed = true
		var err error
		if !alreadyClosed {
			err = s.conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"CloseStream"}`))
		}
		s.writeMu.Unlock()
		if err != nil {
			s.closeErr = fmt.Errorf("deepgram: close stream: %w", err)
		}

		timer := time.NewTimer(drainTimeout)
		select {
		case <-s.done:
		case <-timer.C:
		}
		timer.Stop()

		if err := s.conn.Close(); err != nil && s.closeErr == nil && !errors.Is(err, net.ErrClosed) {
			s.closeErr = fmt.Errorf("deepgram: close: %w", err)
		}
	})
	return s.closeErr
}
