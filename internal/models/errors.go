package models

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidSort     = errors.New("invalid sort")
	ErrSessionNotFound = errors.New("voice session not found")
	ErrSessionExists   = errors.New("voice session already exists")
	ErrSessionClosed   = errors.New("voice session is no longer listening")
	ErrVoiceDisabled   = errors.New("voice transcription is disabled")
	ErrArchiveDisabled = errors.New("log archive is disabled")
	ErrEmptyTranscript = errors.New("no transcript provided")
)

// ErrDuplicateID - сгенерированный идентификатор уже занят
var ErrDuplicateID = errors.New("duplicate id")
