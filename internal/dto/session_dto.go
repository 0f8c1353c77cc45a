package dto

import "time"

type ResetSessionRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid4"`
}

type ChatTurnDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SessionInfoResponse struct {
	SessionId  string        `json:"session_id"`
	Provider   string        `json:"provider"`
	Files      []string      `json:"files"`
	History    []ChatTurnDTO `json:"history"`
	ChunkCount int           `json:"chunk_count"`
	CreatedAt  time.Time     `json:"created_at"`
}

type UsageStatsResponse struct {
	DocumentsIngested int64 `json:"documents_ingested"`
	ChunksIndexed     int64 `json:"chunks_indexed"`
	QuestionsAnswered int64 `json:"questions_answered"`
	SessionsReset     int64 `json:"sessions_reset"`
	ActiveSessions    int   `json:"active_sessions"`
}
