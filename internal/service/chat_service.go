package service

import (
	"context"

	"doc-chat-be/internal/dto"
	"doc-chat-be/internal/pkg/logger"
	"doc-chat-be/pkg/events"
	"doc-chat-be/pkg/llm"
	"doc-chat-be/pkg/rag"
	"doc-chat-be/pkg/store"
)

type IChatService interface {
	Send(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type chatService struct {
	sessions         *store.Registry
	pipeline         *rag.Pipeline
	providers        llm.FactoryFunc
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewChatService(
	sessions *store.Registry,
	pipeline *rag.Pipeline,
	providers llm.FactoryFunc,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		sessions:         sessions,
		pipeline:         pipeline,
		providers:        providers,
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

// Send answers a question against the session's uploaded documents. The
// exchange is appended to the session history only after the provider
// returned successfully.
func (s *chatService) Send(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	session, err := s.sessions.Get(req.SessionId)
	if err != nil {
		return nil, err
	}

	provider, err := s.providers(session.Provider, session.APIKey)
	if err != nil {
		return nil, err
	}

	answer, sources, err := s.pipeline.Query(ctx, provider, req.Question, session)
	if err != nil {
		return nil, err
	}

	session.AppendExchange(req.Question, answer)

	s.logger.Info("chat", "question answered", map[string]interface{}{
		"session_id": session.ID,
		"sources":    sources,
	})

	if err := s.publisherService.Publish(ctx, events.NewChatAnswered(session.ID, len(sources))); err != nil {
		s.logger.Warn("chat", "failed to publish chat event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &dto.SendChatResponse{
		Answer:  answer,
		Sources: sources,
	}, nil
}
