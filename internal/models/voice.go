package models

import "time"

// VoiceSession - активная сессия распознавания речи
type VoiceSession struct {
	ID                string    `json:"session_id"`
	Transcript        string    `json:"transcript"`
	InterimTranscript string    `json:"interim_transcript"`
	IsListening       bool      `json:"is_listening"`
	CreatedAt         time.Time `json:"created_at"`
}

// TranscriptEvent - фрагмент расшифровки для SSE подписчиков
type TranscriptEvent struct {
	SessionID  string  `json:"session_id"`
	Transcript string  `json:"transcript"`
	IsFinal    bool    `json:"is_final"`
	Timestamp  float64 `json:"timestamp"`
}

// TranscriptSnapshot - текущее состояние расшифровки сессии
type TranscriptSnapshot struct {
	Transcript        string `json:"transcript"`
	InterimTranscript string `json:"interim_transcript"`
	IsListening       bool   `json:"is_listening"`
}

// TranscriptResult - результат от сервиса распознавания
type TranscriptResult struct {
	Text    string
	IsFinal bool
}
