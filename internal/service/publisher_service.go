package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"doc-chat-be/internal/dto"
	"doc-chat-be/pkg/events"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

// Publish sends an event to the in-process activity topic. Delivery is
// best-effort; losing an activity event never fails the request that
// produced it, so callers log rather than propagate errors from here.
func (p *publisherService) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(dto.ActivityMessage{
		Type:       event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.pubSub.Publish(p.topicName, msg)
}
