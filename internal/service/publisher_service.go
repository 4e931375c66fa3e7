package service

import (
	"context"
	"encoding/json"
	"fmt"

	"health-assistant-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishIngestDocument(ctx context.Context, msg *dto.PublishIngestDocumentMessage) error
	PublishOutcome(ctx context.Context, msg *PublishOutcomeMessage) error
}

// PublishOutcomeMessage is the payload carried on the audit topic.
type PublishOutcomeMessage struct {
	UserID         string `json:"user_id"`
	TerminalState  string `json:"terminal_state"`
	Intent         string `json:"intent"`
	ResultKind     string `json:"result_kind"`
	TriggerKeyword string `json:"trigger_keyword,omitempty"`
	Detail         string `json:"detail,omitempty"`
}

type publisherService struct {
	pubSub      *gochannel.GoChannel
	ingestTopic string
	auditTopic  string
}

func NewPublisherService(pubSub *gochannel.GoChannel, ingestTopic, auditTopic string) IPublisherService {
	return &publisherService{
		pubSub:      pubSub,
		ingestTopic: ingestTopic,
		auditTopic:  auditTopic,
	}
}

func (s *publisherService) PublishIngestDocument(ctx context.Context, payload *dto.PublishIngestDocumentMessage) error {
	return s.publish(s.ingestTopic, payload)
}

func (s *publisherService) PublishOutcome(ctx context.Context, payload *PublishOutcomeMessage) error {
	return s.publish(s.auditTopic, payload)
}

func (s *publisherService) publish(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for topic %s: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	return s.pubSub.Publish(topic, msg)
}
