package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/responder_ai/internal/config"
	"github.com/shenikar/responder_ai/internal/metrics"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, url string) *WebhookWorker {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	// Redis воркеру для доставки не нужен
	return NewWebhookWorker(nil, logger, cfg, metrics.New())
}

func TestDeliver_SignsPayload(t *testing.T) {
	payload := `{"incident_id":"INC-1"}`
	var gotSignature string
	var gotBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(t, srv.URL)
	err := w.deliver(context.Background(), w.logger.WithField("test", true), payload)

	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "secret"), gotSignature)
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(t, srv.URL)
	err := w.deliver(context.Background(), w.logger.WithField("test", true), "{}")

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(t, srv.URL)
	err := w.deliver(context.Background(), w.logger.WithField("test", true), "{}")

	require.Error(t, err)
	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_StopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(t, srv.URL)
	w.cfg.WebhookBaseDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := w.deliver(ctx, w.logger.WithField("test", true), "{}")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewDispatchEvent(t *testing.T) {
	incident := &models.Incident{
		ID:       "INC-0001ABCD",
		Type:     "Structure Fire",
		Severity: models.SeverityCritical,
		Status:   models.IncidentStatusConfirmed,
		Location: models.Location{Lat: 37.77, Lng: -122.41, Address: "Market St"},
	}

	event := NewDispatchEvent(incident, ReasonIncidentConfirmed, []string{"Engine 5"})

	assert.Equal(t, incident.ID, event.IncidentID)
	assert.Equal(t, -122.41, event.Longitude)
	assert.Equal(t, ReasonIncidentConfirmed, event.Reason)
	assert.Equal(t, []string{"Engine 5"}, event.RecommendedUnits)
	assert.False(t, event.Timestamp.IsZero())
}
