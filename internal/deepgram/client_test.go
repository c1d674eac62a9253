package deepgram

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/responder_ai/internal/config"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		DeepgramURL:      "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/listen",
		DeepgramAPIKey:   "secret",
		DeepgramModel:    "nova-2",
		DeepgramLanguage: "en-US",
	}
	return NewClient(cfg, logger)
}

func TestStream_RoundTrip(t *testing.T) {
	upgrader := websocket.Upgrader{}
	received := make(chan []byte, 1)
	closeRequested := make(chan string, 1)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token secret", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "nova-2", q.Get("model"))
		assert.Equal(t, "linear16", q.Get("encoding"))
		assert.Equal(t, "16000", q.Get("sample_rate"))
		assert.Equal(t, "1", q.Get("channels"))
		assert.Equal(t, "true", q.Get("interim_results"))
		assert.Equal(t, "300", q.Get("endpointing"))
		assert.Equal(t, "1000", q.Get("utterance_end_ms"))

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		kind, data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, websocket.BinaryMessage, kind)
		received <- data

		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"SpeechStarted"}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"Results","is_final":false,"channel":{"alternatives":[{"transcript":"there is"}]}}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"Results","is_final":true,"channel":{"alternatives":[{"transcript":"there is a fire"}]}}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"Results","is_final":true,"channel":{"alternatives":[{"transcript":""}]}}`))

		_, data, err = conn.ReadMessage()
		if err == nil {
			closeRequested <- string(data)
		}
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	})

	var mu sync.Mutex
	var results []models.TranscriptResult
	gotFinal := make(chan struct{})

	stream, err := client.Open(t.Context(), func(r models.TranscriptResult) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, r)
		if r.IsFinal {
			close(gotFinal)
		}
	})
	require.NoError(t, err)

	require.NoError(t, stream.Send([]byte{0x01, 0x02}))
	assert.Equal(t, []byte{0x01, 0x02}, <-received)

	select {
	case <-gotFinal:
	case <-time.After(2 * time.Second):
		t.Fatal("final transcript was not delivered")
	}

	require.NoError(t, stream.Finish())
	assert.Equal(t, `{"type":"CloseStream"}`, <-closeRequested)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []models.TranscriptResult{
		{Text: "there is", IsFinal: false},
		{Text: "there is a fire", IsFinal: true},
	}, results)
}

func TestStream_FinishIsIdempotent(t *testing.T) {
	upgrader := websocket.Upgrader{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		}
	})

	stream, err := client.Open(t.Context(), func(models.TranscriptResult) {})
	require.NoError(t, err)

	require.NoError(t, stream.Finish())
	require.NoError(t, stream.Finish())
	assert.ErrorIs(t, stream.Send([]byte{0x00}), ErrClosed)
}

func TestStream_ClosedByServer(t *testing.T) {
	upgrader := websocket.Upgrader{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		// Deepgram закрывает соединение после таймаута тишины
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "NET-0001"))
	})

	stream, err := client.Open(t.Context(), func(models.TranscriptResult) {})
	require.NoError(t, err)

	select {
	case <-stream.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not report server close")
	}

	assert.ErrorIs(t, stream.Send([]byte{0x01}), ErrClosed)
	require.NoError(t, stream.Finish())
}

func TestOpen_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Open(t.Context(), func(models.TranscriptResult) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
