package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"doc-chat-be/internal/dto"
	"doc-chat-be/internal/pkg/logger"
	"doc-chat-be/pkg/events"
	"doc-chat-be/pkg/extractor"
	"doc-chat-be/pkg/llm"
	"doc-chat-be/pkg/rag"
	"doc-chat-be/pkg/store"
)

// Fallback name when raw text is posted without a file.
const pastedTextFilename = "pasted-text.txt"

type IDocumentService interface {
	Upload(ctx context.Context, req *dto.UploadDocumentRequest, filename string, data []byte) (*dto.UploadDocumentResponse, error)
}

type documentService struct {
	sessions         *store.Registry
	pipeline         *rag.Pipeline
	extractor        extractor.Extractor
	providers        llm.FactoryFunc
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewDocumentService(
	sessions *store.Registry,
	pipeline *rag.Pipeline,
	docExtractor extractor.Extractor,
	providers llm.FactoryFunc,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IDocumentService {
	return &documentService{
		sessions:         sessions,
		pipeline:         pipeline,
		extractor:        docExtractor,
		providers:        providers,
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

// Upload extracts text from the submitted file (or takes the pasted text as
// is), chunks and embeds it, and commits it into the session's index. The
// session is created on the first successful upload; later uploads merge
// into the same index. Embedding runs before any session state is touched,
// so a failed provider call leaves nothing half-ingested.
func (s *documentService) Upload(ctx context.Context, req *dto.UploadDocumentRequest, filename string, data []byte) (*dto.UploadDocumentResponse, error) {
	text := req.Text
	if text == "" {
		extracted, err := s.extractor.Extract(filename, data)
		if err != nil {
			return nil, err
		}
		text = extracted
	}
	if filename == "" {
		filename = pastedTextFilename
	}
	if strings.TrimSpace(text) == "" {
		return nil, rag.ErrEmptyDocument
	}

	// An unknown or expired session id silently starts a fresh session,
	// matching the lazy-expiry contract: the client learns the new id from
	// the response.
	var session *store.Session
	if req.SessionId != "" {
		session, _ = s.sessions.Get(req.SessionId)
	}

	// The provider binding is fixed for the session's lifetime; only a
	// fresh session reads it from the request.
	providerType := llm.ProviderOpenAI
	apiKey := req.ApiKey
	if session != nil {
		providerType = session.Provider
		apiKey = session.APIKey
	} else if req.Provider != "" {
		parsed, err := llm.ParseProviderType(req.Provider)
		if err != nil {
			return nil, err
		}
		providerType = parsed
	}

	provider, err := s.providers(providerType, apiKey)
	if err != nil {
		return nil, err
	}

	batch, err := s.pipeline.IngestDocument(ctx, provider, text, filename)
	if err != nil {
		return nil, err
	}

	if session == nil {
		session, err = s.sessions.Create(uuid.NewString(), providerType, apiKey)
		if err != nil {
			return nil, err
		}
	}

	if err := session.CommitUpload(filename, batch.Vectors, batch.Passages); err != nil {
		return nil, err
	}

	s.logger.Info("document", "document ingested", map[string]interface{}{
		"session_id":  session.ID,
		"filename":    filename,
		"chunk_count": batch.ChunkCount(),
	})

	if err := s.publisherService.Publish(ctx, events.NewDocumentIngested(session.ID, filename, batch.ChunkCount())); err != nil {
		s.logger.Warn("document", "failed to publish ingest event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &dto.UploadDocumentResponse{
		SessionId:  session.ID,
		ChunkCount: batch.ChunkCount(),
		Files:      session.Files(),
	}, nil
}
