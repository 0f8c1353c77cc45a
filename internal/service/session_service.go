package service

import (
	"context"

	"doc-chat-be/internal/dto"
	"doc-chat-be/internal/pkg/logger"
	"doc-chat-be/pkg/events"
	"doc-chat-be/pkg/store"
)

type ISessionService interface {
	Info(ctx context.Context, id string) (*dto.SessionInfoResponse, error)
	Reset(ctx context.Context, id string)
	Delete(ctx context.Context, id string)
}

type sessionService struct {
	sessions         *store.Registry
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewSessionService(
	sessions *store.Registry,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) ISessionService {
	return &sessionService{
		sessions:         sessions,
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

func (s *sessionService) Info(ctx context.Context, id string) (*dto.SessionInfoResponse, error) {
	session, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	history := session.History()
	turns := make([]dto.ChatTurnDTO, len(history))
	for i, turn := range history {
		turns[i] = dto.ChatTurnDTO{Role: turn.Role, Content: turn.Content}
	}

	chunkCount := 0
	if index := session.Index(); index != nil {
		chunkCount = index.Size()
	}

	return &dto.SessionInfoResponse{
		SessionId:  session.ID,
		Provider:   string(session.Provider),
		Files:      session.Files(),
		History:    turns,
		ChunkCount: chunkCount,
		CreatedAt:  session.CreatedAt(),
	}, nil
}

// Reset wipes the session back to its empty state, keeping the provider
// binding. A missing session is a silent no-op by contract.
func (s *sessionService) Reset(ctx context.Context, id string) {
	s.sessions.Reset(id)

	s.logger.Info("session", "session reset", map[string]interface{}{
		"session_id": id,
	})

	if err := s.publisherService.Publish(ctx, events.NewSessionReset(id)); err != nil {
		s.logger.Warn("session", "failed to publish reset event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *sessionService) Delete(ctx context.Context, id string) {
	s.sessions.Delete(id)

	s.logger.Info("session", "session deleted", map[string]interface{}{
		"session_id": id,
	})
}
