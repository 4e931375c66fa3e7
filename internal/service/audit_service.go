package service

import (
	"context"
	"encoding/json"
	"log"

	"health-assistant-be/internal/model"
	"health-assistant-be/internal/pkg/logger"
	"health-assistant-be/internal/repository/contract"
	"health-assistant-be/pkg/clinical/orchestrator"
	"health-assistant-be/pkg/events"
	pktNats "health-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditPublisher bridges the pipeline to the audit topic. Recording never
// fails the request; publish errors are logged and dropped.
type AuditPublisher struct {
	publisher IPublisherService
}

func NewAuditPublisher(publisher IPublisherService) *AuditPublisher {
	return &AuditPublisher{publisher: publisher}
}

var _ orchestrator.AuditRecorder = (*AuditPublisher)(nil)

func (a *AuditPublisher) RecordOutcome(ctx context.Context, outcome orchestrator.Outcome) {
	err := a.publisher.PublishOutcome(ctx, &PublishOutcomeMessage{
		UserID:         outcome.UserID,
		TerminalState:  outcome.TerminalState,
		Intent:         outcome.Intent,
		ResultKind:     string(outcome.ResultKind),
		TriggerKeyword: outcome.TriggerKeyword,
		Detail:         outcome.Detail,
	})
	if err != nil {
		log.Printf("[WARN] Failed to publish outcome: %v", err)
	}
}

type IAuditConsumerService interface {
	Consume(ctx context.Context) error
}

// auditConsumerService drains the audit topic: each outcome is persisted,
// written to the isolated audit log, and optionally mirrored to NATS.
type auditConsumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	auditRepo   contract.AuditRepository
	auditLogger logger.ILogger
	natsPub     *pktNats.Publisher
}

func NewAuditConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	auditRepo contract.AuditRepository,
	auditLogger logger.ILogger,
	natsPub *pktNats.Publisher,
) IAuditConsumerService {
	return &auditConsumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		auditRepo:   auditRepo,
		auditLogger: auditLogger,
		natsPub:     natsPub,
	}
}

func (cs *auditConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *auditConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload PublishOutcomeMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal outcome message: %v", err)
		msg.Ack()
		return
	}

	cs.auditLogger.Info("audit", "analysis outcome", map[string]interface{}{
		"user_id":        payload.UserID,
		"terminal_state": payload.TerminalState,
		"intent":         payload.Intent,
		"result_kind":    payload.ResultKind,
	})

	userId, err := uuid.Parse(payload.UserID)
	if err != nil {
		log.Printf("[ERROR] Invalid user id in outcome message: %v", err)
		msg.Ack()
		return
	}

	var detail datatypes.JSON
	if payload.TriggerKeyword != "" || payload.Detail != "" {
		raw, _ := json.Marshal(map[string]string{
			"trigger_keyword": payload.TriggerKeyword,
			"detail":          payload.Detail,
		})
		detail = raw
	}

	record := &model.AnalysisAudit{
		UserId:        userId,
		TerminalState: payload.TerminalState,
		Intent:        payload.Intent,
		ResultKind:    payload.ResultKind,
		Detail:        detail,
	}
	if err := cs.auditRepo.Create(ctx, record); err != nil {
		log.Printf("[ERROR] Failed to persist audit record: %v", err)
		msg.Nack()
		return
	}

	if cs.natsPub != nil {
		event := events.NewAnalysisCompleted(payload.UserID, payload.TerminalState, payload.Intent, payload.ResultKind)
		if payload.TerminalState == orchestrator.StateSafetyOverride {
			event = events.NewSafetyOverride(payload.UserID, payload.TriggerKeyword)
		}
		if err := cs.natsPub.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to mirror outcome to NATS: %v", err)
		}
	}

	msg.Ack()
}
