package service

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeStream struct {
	mu       sync.Mutex
	audio    [][]byte
	finished int
	// onFinish имитирует результаты, которые приходят после CloseStream
	onFinish  func()
	done      chan struct{}
	closeOnce sync.Once
}

func newFakeStream() *fakeStream {
	return &fakeStream{done: make(chan struct{})}
}

func (f *fakeStream) Send(audio []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.audio = append(f.audio, audio)
	return nil
}

func (f *fakeStream) Finish() error {
	f.mu.Lock()
	f.finished++
	onFinish := f.onFinish
	f.mu.Unlock()

	if onFinish != nil {
		onFinish()
	}
	f.closeRemote()
	return nil
}

func (f *fakeStream) Done() <-chan struct{} {
	return f.done
}

// closeRemote закрывает поток так, как это делает провайдер по таймауту
func (f *fakeStream) closeRemote() {
	f.closeOnce.Do(func() { close(f.done) })
}

type fakeTranscriber struct {
	mu       sync.Mutex
	handlers []TranscriptHandler
	streams  []*fakeStream
	err      error
}

func (f *fakeTranscriber) Open(ctx context.Context, onResult TranscriptHandler) (TranscriptStream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	stream := newFakeStream()
	f.handlers = append(f.handlers, onResult)
	f.streams = append(f.streams, stream)
	return stream, nil
}

type fakeBroker struct {
	mu     sync.Mutex
	events []models.TranscriptEvent
}

func (f *fakeBroker) Publish(ctx context.Context, event models.TranscriptEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeBroker) Subscribe(ctx context.Context) (<-chan models.TranscriptEvent, error) {
	ch := make(chan models.TranscriptEvent)
	close(ch)
	return ch, nil
}

func newTestVoiceService(t *testing.T) (*voiceService, *fakeTranscriber, *fakeBroker) {
	transcriber := &fakeTranscriber{}
	broker := &fakeBroker{}
	service := NewVoiceService(transcriber, broker, newTestLogger(), nil)
	return service.(*voiceService), transcriber, broker
}

func TestApplyTranscript(t *testing.T) {
	state := &models.VoiceSession{}

	ApplyTranscript(state, models.TranscriptResult{Text: "there is"})
	assert.Equal(t, "there is", state.InterimTranscript)
	assert.Empty(t, state.Transcript)

	ApplyTranscript(state, models.TranscriptResult{Text: "there is a"})
	assert.Equal(t, "there is a", state.InterimTranscript)

	ApplyTranscript(state, models.TranscriptResult{Text: "There is a fire.", IsFinal: true})
	assert.Equal(t, "There is a fire. ", state.Transcript)
	assert.Empty(t, state.InterimTranscript)

	ApplyTranscript(state, models.TranscriptResult{Text: "Send help", IsFinal: true})
	assert.Equal(t, "There is a fire. Send help ", state.Transcript)
}

func TestNewSessionID(t *testing.T) {
	pattern := regexp.MustCompile(`^session_\d+_[0-9a-z]{9}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewSessionID(logBase)
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 90)
}

func TestStartSession_Lifecycle(t *testing.T) {
	service, transcriber, broker := newTestVoiceService(t)
	ctx := context.Background()

	session, err := service.StartSession(ctx, "")
	require.NoError(t, err)
	assert.True(t, session.IsListening)
	assert.Regexp(t, `^session_`, session.ID)
	assert.Equal(t, 1, service.ActiveSessions())

	require.NoError(t, service.SendAudio(ctx, session.ID, []byte{1, 2, 3}))
	assert.Equal(t, [][]byte{{1, 2, 3}}, transcriber.streams[0].audio)

	handler := transcriber.handlers[0]
	handler(models.TranscriptResult{Text: "car crash"})
	handler(models.TranscriptResult{Text: "car crash on Main Street", IsFinal: true})
	handler(models.TranscriptResult{Text: "   "})
	handler(models.TranscriptResult{Text: "please"})

	snapshot, err := service.GetTranscript(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "car crash on Main Street ", snapshot.Transcript)
	assert.Equal(t, "please", snapshot.InterimTranscript)
	assert.True(t, snapshot.IsListening)

	require.Len(t, broker.events, 3)
	assert.Equal(t, session.ID, broker.events[1].SessionID)
	assert.True(t, broker.events[1].IsFinal)
	assert.Equal(t, "car crash on Main Street", broker.events[1].Transcript)
	assert.Positive(t, broker.events[1].Timestamp)

	final, err := service.StopSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "car crash on Main Street", final.Transcript)
	assert.False(t, final.IsListening)
	assert.Equal(t, 1, transcriber.streams[0].finished)
	assert.Zero(t, service.ActiveSessions())

	// После остановки сессия недоступна
	_, err = service.GetTranscript(session.ID)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	assert.ErrorIs(t, service.SendAudio(ctx, session.ID, []byte{1}), models.ErrSessionNotFound)
	_, err = service.StopSession(ctx, session.ID)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	// Поздние результаты от закрытого потока игнорируются
	handler(models.TranscriptResult{Text: "late", IsFinal: true})
	assert.Len(t, broker.events, 3)
}

func TestStopSession_KeepsResultsFlushedOnFinish(t *testing.T) {
	service, transcriber, broker := newTestVoiceService(t)
	ctx := context.Background()

	session, err := service.StartSession(ctx, "session_flush")
	require.NoError(t, err)

	handler := transcriber.handlers[0]
	handler(models.TranscriptResult{Text: "there is a fire", IsFinal: true})
	transcriber.streams[0].onFinish = func() {
		handler(models.TranscriptResult{Text: "send an ambulance", IsFinal: true})
	}

	final, err := service.StopSession(ctx, session.ID)

	require.NoError(t, err)
	assert.Equal(t, "there is a fire send an ambulance", final.Transcript)
	require.Len(t, broker.events, 2)
	assert.Equal(t, "send an ambulance", broker.events[1].Transcript)
	assert.False(t, service.HasSession(session.ID))
}

func TestStopSession_ConcurrentStopFinishesOnce(t *testing.T) {
	service, transcriber, _ := newTestVoiceService(t)
	ctx := context.Background()

	_, err := service.StartSession(ctx, "session_twice")
	require.NoError(t, err)

	release := make(chan struct{})
	entered := make(chan struct{})
	transcriber.streams[0].onFinish = func() {
		close(entered)
		<-release
	}

	stopped := make(chan error, 1)
	go func() {
		_, err := service.StopSession(ctx, "session_twice")
		stopped <- err
	}()
	<-entered

	// Пока идет остановка, сессия не принимает аудио и не останавливается повторно
	assert.ErrorIs(t, service.SendAudio(ctx, "session_twice", []byte{1}), models.ErrSessionClosed)
	_, err = service.StopSession(ctx, "session_twice")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	close(release)
	require.NoError(t, <-stopped)
	assert.Equal(t, 1, transcriber.streams[0].finished)
}

func TestVoiceSession_StreamClosedByProvider(t *testing.T) {
	service, transcriber, _ := newTestVoiceService(t)
	ctx := context.Background()

	session, err := service.StartSession(ctx, "session_idle")
	require.NoError(t, err)
	transcriber.handlers[0](models.TranscriptResult{Text: "hello", IsFinal: true})

	transcriber.streams[0].closeRemote()

	assert.Eventually(t, func() bool {
		snapshot, err := service.GetTranscript(session.ID)
		return err == nil && !snapshot.IsListening
	}, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, service.SendAudio(ctx, session.ID, []byte{1}), models.ErrSessionClosed)
	assert.Empty(t, transcriber.streams[0].audio)

	// Остановка по-прежнему отдает накопленный текст
	final, err := service.StopSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", final.Transcript)
	assert.Zero(t, service.ActiveSessions())
}

func TestStartSession_DuplicateID(t *testing.T) {
	service, _, _ := newTestVoiceService(t)
	ctx := context.Background()

	_, err := service.StartSession(ctx, "session_fixed")
	require.NoError(t, err)

	_, err = service.StartSession(ctx, "session_fixed")
	assert.ErrorIs(t, err, models.ErrSessionExists)
	assert.Equal(t, 1, service.ActiveSessions())
}

func TestStartSession_OpenFails(t *testing.T) {
	service, transcriber, _ := newTestVoiceService(t)
	transcriber.err = errors.New("401 unauthorized")

	_, err := service.StartSession(context.Background(), "session_x")

	assert.ErrorContains(t, err, "could not start voice session")
	assert.Zero(t, service.ActiveSessions())
}

func TestStartSession_Disabled(t *testing.T) {
	service := NewVoiceService(nil, &fakeBroker{}, newTestLogger(), nil)

	assert.False(t, service.Enabled())
	_, err := service.StartSession(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrVoiceDisabled)
}

func TestVoiceShutdown_FinishesAllStreams(t *testing.T) {
	service, transcriber, _ := newTestVoiceService(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := service.StartSession(ctx, id)
		require.NoError(t, err)
	}

	require.NoError(t, service.Shutdown(ctx))

	assert.Zero(t, service.ActiveSessions())
	for _, stream := range transcriber.streams {
		assert.Equal(t, 1, stream.finished)
	}
}

func TestSubscribeTranscripts_UsesBroker(t *testing.T) {
	ctrl := gomock.NewController(t)
	brokerMock := mocks.NewMockTranscriptBroker(ctrl)
	service := NewVoiceService(&fakeTranscriber{}, brokerMock, newTestLogger(), nil)
	ctx := context.Background()

	events := make(chan models.TranscriptEvent, 1)
	events <- models.TranscriptEvent{SessionID: "s1", Transcript: "hello"}
	brokerMock.EXPECT().Subscribe(ctx).Return((<-chan models.TranscriptEvent)(events), nil).Times(1)

	ch, err := service.SubscribeTranscripts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", (<-ch).Transcript)

	brokerMock.EXPECT().Subscribe(ctx).Return(nil, errors.New("redis down")).Times(1)
	_, err = service.SubscribeTranscripts(ctx)
	assert.ErrorContains(t, err, "could not subscribe")
}
