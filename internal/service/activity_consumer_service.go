package service

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"doc-chat-be/internal/dto"
	"doc-chat-be/internal/pkg/logger"
	"doc-chat-be/pkg/events"
	"doc-chat-be/pkg/store"
)

// IActivityConsumerService drains the activity topic in the background and
// keeps process-wide usage counters for the stats endpoint.
type IActivityConsumerService interface {
	Consume(ctx context.Context) error
	Snapshot() *dto.UsageStatsResponse
}

type activityConsumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sessions  *store.Registry
	logger    logger.ILogger

	documentsIngested atomic.Int64
	chunksIndexed     atomic.Int64
	questionsAnswered atomic.Int64
	sessionsReset     atomic.Int64
}

func NewActivityConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	sessions *store.Registry,
	sysLogger logger.ILogger,
) IActivityConsumerService {
	return &activityConsumerService{
		pubSub:    pubSub,
		topicName: topicName,
		sessions:  sessions,
		logger:    sysLogger,
	}
}

func (cs *activityConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *activityConsumerService) processMessage(msg *message.Message) {
	var payload dto.ActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("activity", "failed to unmarshal activity message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	switch payload.Type {
	case events.TypeDocumentIngested:
		cs.documentsIngested.Add(1)
		cs.chunksIndexed.Add(int64(asInt(payload.Payload["chunk_count"])))
	case events.TypeChatAnswered:
		cs.questionsAnswered.Add(1)
	case events.TypeSessionReset:
		cs.sessionsReset.Add(1)
	default:
		cs.logger.Warn("activity", "unknown activity type", map[string]interface{}{
			"type": payload.Type,
		})
	}

	cs.logger.Debug("activity", "activity recorded", map[string]interface{}{
		"type":    payload.Type,
		"payload": payload.Payload,
	})
	msg.Ack()
}

func (cs *activityConsumerService) Snapshot() *dto.UsageStatsResponse {
	return &dto.UsageStatsResponse{
		DocumentsIngested: cs.documentsIngested.Load(),
		ChunksIndexed:     cs.chunksIndexed.Load(),
		QuestionsAnswered: cs.questionsAnswered.Load(),
		SessionsReset:     cs.sessionsReset.Load(),
		ActiveSessions:    cs.sessions.Len(),
	}
}

// JSON numbers decode as float64 inside a map payload.
func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
