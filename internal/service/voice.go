package service

//go:generate mockgen -source=voice.go -destination=mocks/mock_voice.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shenikar/responder_ai/internal/metrics"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/sirupsen/logrus"
)

// TranscriptBroker раздает фрагменты расшифровки всем подписчикам
type TranscriptBroker interface {
	Publish(ctx context.Context, event models.TranscriptEvent) error
	Subscribe(ctx context.Context) (<-chan models.TranscriptEvent, error)
}

// VoiceService определяет контракт для голосовых сессий
type VoiceService interface {
	Enabled() bool
	StartSession(ctx context.Context, sessionID string) (*models.VoiceSession, error)
	SendAudio(ctx context.Context, sessionID string, audio []byte) error
	HasSession(sessionID string) bool
	GetTranscript(sessionID string) (*models.TranscriptSnapshot, error)
	StopSession(ctx context.Context, sessionID string) (*models.TranscriptSnapshot, error)
	SubscribeTranscripts(ctx context.Context) (<-chan models.TranscriptEvent, error)
	ActiveSessions() int
	Shutdown(ctx context.Context) error
}

// публикация фрагмента не должна держать поток распознавания
const publishTimeout = 2 * time.Second

var errStreamNotReady = errors.New("transcription stream is not ready")

type voiceSession struct {
	state  models.VoiceSession
	stream TranscriptStream
	// остановка уже идет, поток дописывает последние результаты
	stopping bool
}

type voiceService struct {
	transcriber Transcriber
	broker      TranscriptBroker
	metrics     *metrics.Metrics
	logger      *logrus.Logger
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*voiceSession
}

// NewVoiceService создает сервис голосовых сессий; без transcriber голос выключен
func NewVoiceService(transcriber Transcriber, broker TranscriptBroker, logger *logrus.Logger, m *metrics.Metrics) VoiceService {
	return &voiceService{
		transcriber: transcriber,
		broker:      broker,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
		sessions:    make(map[string]*voiceSession),
	}
}

// NewSessionID генерирует id вида session_1700000000000_k3j9x0a1b
func NewSessionID(now time.Time) string {
	// 36^9 - ровно девять символов base36
	const space = 101559956668416
	suffix := strconv.FormatInt(rand.Int64N(space), 36)
	suffix = strings.Repeat("0", 9-len(suffix)) + suffix
	return fmt.Sprintf("session_%d_%s", now.UnixMilli(), suffix)
}

// ApplyTranscript добавляет результат распознавания к состоянию сессии:
// финальный текст дописывается, промежуточный заменяет предыдущий
func ApplyTranscript(state *models.VoiceSession, result models.TranscriptResult) {
	if result.IsFinal {
		state.Transcript += result.Text + " "
		state.InterimTranscript = ""
		return
	}
	state.InterimTranscript = result.Text
}

func (s *voiceService) Enabled() bool {
	return s.transcriber != nil
}

// StartSession открывает поток распознавания для новой сессии
func (s *voiceService) StartSession(ctx context.Context, sessionID string) (*models.VoiceSession, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("service: %w", models.ErrVoiceDisabled)
	}

	if sessionID == "" {
		sessionID = NewSessionID(s.now())
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":    "voice",
		"method":     "StartSession",
		"session_id": sessionID,
	})

	s.mu.Lock()
	if _, ok := s.sessions[sessionID]; ok {
		s.mu.Unlock()
		log.Warn("Rejected duplicate voice session")
		return nil, fmt.Errorf("service: session %s: %w", sessionID, models.ErrSessionExists)
	}
	// Резервируем id до открытия потока
	session := &voiceSession{state: models.VoiceSession{ID: sessionID, CreatedAt: s.now().UTC()}}
	s.sessions[sessionID] = session
	s.mu.Unlock()

	stream, err := s.transcriber.Open(ctx, func(result models.TranscriptResult) {
		s.handleResult(sessionID, result)
	})
	if err != nil {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		log.WithError(err).Error("Failed to open transcription stream")
		return nil, fmt.Errorf("service: could not start voice session: %w", err)
	}

	s.mu.Lock()
	if s.sessions[sessionID] != session || session.stopping {
		// сессию остановили, пока открывался поток
		s.mu.Unlock()
		_ = stream.Finish()
		return nil, fmt.Errorf("service: session %s: %w", sessionID, models.ErrSessionNotFound)
	}
	session.stream = stream
	session.state.IsListening = true
	state := session.state
	count := len(s.sessions)
	s.mu.Unlock()

	go s.watchStream(sessionID, session, stream)

	s.metrics.SetVoiceSessions(count)
	log.Info("Voice session started")
	return &state, nil
}

// watchStream снимает флаг прослушивания, если Deepgram закрыл поток сам
func (s *voiceService) watchStream(sessionID string, session *voiceSession, stream TranscriptStream) {
	<-stream.Done()

	s.mu.Lock()
	closedRemotely := s.sessions[sessionID] == session && !session.stopping && session.state.IsListening
	if closedRemotely {
		session.state.IsListening = false
	}
	s.mu.Unlock()

	if closedRemotely {
		s.logger.WithField("session_id", sessionID).Warn("Transcription stream closed by provider")
	}
}

func (s *voiceService) handleResult(sessionID string, result models.TranscriptResult) {
	if strings.TrimSpace(result.Text) == "" {
		return
	}

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if ok {
		ApplyTranscript(&session.state, result)
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	event := models.TranscriptEvent{
		SessionID:  sessionID,
		Transcript: result.Text,
		IsFinal:    result.IsFinal,
		Timestamp:  float64(s.now().UnixMicro()) / 1e6,
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := s.broker.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Warn("Failed to publish transcript event")
	}
}

// SendAudio передает фрагмент PCM аудио в поток распознавания
func (s *voiceService) SendAudio(ctx context.Context, sessionID string, audio []byte) error {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	var stream TranscriptStream
	listening := false
	if ok {
		stream = session.stream
		listening = session.state.IsListening
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("service: session %s: %w", sessionID, models.ErrSessionNotFound)
	}
	if stream == nil {
		return fmt.Errorf("service: session %s: %w", sessionID, errStreamNotReady)
	}
	if !listening {
		return fmt.Errorf("service: session %s: %w", sessionID, models.ErrSessionClosed)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := stream.Send(audio); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Error("Failed to send audio")
		return fmt.Errorf("service: could not send audio: %w", err)
	}
	return nil
}

func (s *voiceService) HasSession(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[sessionID]
	return ok
}

func (s *voiceService) GetTranscript(sessionID string) (*models.TranscriptSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("service: session %s: %w", sessionID, models.ErrSessionNotFound)
	}
	return &models.TranscriptSnapshot{
		Transcript:        session.state.Transcript,
		InterimTranscript: session.state.InterimTranscript,
		IsListening:       session.state.IsListening,
	}, nil
}

// StopSession закрывает поток и возвращает итоговую расшифровку
func (s *voiceService) StopSession(ctx context.Context, sessionID string) (*models.TranscriptSnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "voice",
		"method":     "StopSession",
		"session_id": sessionID,
	})

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if ok && session.stopping {
		ok = false
	}
	var stream TranscriptStream
	if ok {
		session.stopping = true
		session.state.IsListening = false
		stream = session.stream
	}
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("service: session %s: %w", sessionID, models.ErrSessionNotFound)
	}

	// Пока поток дочищается, сессия остается в реестре и принимает последние результаты
	if stream != nil {
		if err := stream.Finish(); err != nil {
			log.WithError(err).Warn("Failed to finish transcription stream")
		}
	}

	s.mu.Lock()
	if s.sessions[sessionID] == session {
		delete(s.sessions, sessionID)
	}
	snapshot := &models.TranscriptSnapshot{
		Transcript:        strings.TrimSpace(session.state.Transcript),
		InterimTranscript: session.state.InterimTranscript,
		IsListening:       false,
	}
	count := len(s.sessions)
	s.mu.Unlock()
	s.metrics.SetVoiceSessions(count)

	log.Info("Voice session stopped")
	return snapshot, nil
}

func (s *voiceService) SubscribeTranscripts(ctx context.Context) (<-chan models.TranscriptEvent, error) {
	events, err := s.broker.Subscribe(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "SubscribeTranscripts").Error("Failed to subscribe to transcripts")
		return nil, fmt.Errorf("service: could not subscribe to transcripts: %w", err)
	}
	return events, nil
}

func (s *voiceService) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Shutdown закрывает все открытые потоки
func (s *voiceService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*voiceSession)
	s.mu.Unlock()
	s.metrics.SetVoiceSessions(0)

	var errs []error
	for id, session := range sessions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if session.stream == nil {
			continue
		}
		if err := session.stream.Finish(); err != nil {
			errs = append(errs, fmt.Errorf("session %s: %w", id, err))
		}
	}
	if len(sessions) > 0 {
		s.logger.WithField("sessions", len(sessions)).Info("Voice sessions closed")
	}
	return errors.Join(errs...)
}
