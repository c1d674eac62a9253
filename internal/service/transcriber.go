package service

import (
	"context"

	"github.com/shenikar/responder_ai/internal/deepgram"
	"github.com/shenikar/responder_ai/internal/models"
)

// TranscriptHandler вызывается на каждый результат распознавания
type TranscriptHandler func(result models.TranscriptResult)

// TranscriptStream - открытый поток распознавания одной сессии.
// Done закрывается, когда поток завершился с любой стороны
type TranscriptStream interface {
	Send(audio []byte) error
	Finish() error
	Done() <-chan struct{}
}

// Transcriber открывает потоки распознавания речи
type Transcriber interface {
	Open(ctx context.Context, onResult TranscriptHandler) (TranscriptStream, error)
}

type deepgramTranscriber struct {
	client *deepgram.Client
}

// NewDeepgramTranscriber оборачивает клиент Deepgram в Transcriber
func NewDeepgramTranscriber(client *deepgram.Client) Transcriber {
	return &deepgramTranscriber{client: client}
}

func (t *deepgramTranscriber) Open(ctx context.Context, onResult TranscriptHandler) (TranscriptStream, error) {
	stream, err := t.client.Open(ctx, onResult)
	if err != nil {
		return nil, err
	}
	return stream, nil
}
