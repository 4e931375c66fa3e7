package service

import (
	"context"
	"encoding/json"
	"log"

	"health-assistant-be/internal/dto"
	"health-assistant-be/internal/model"
	"health-assistant-be/internal/repository/contract"
	"health-assistant-be/pkg/embedding"
	"health-assistant-be/pkg/events"
	pktNats "health-assistant-be/pkg/nats"
	"health-assistant-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

const (
	chunkSize    = 2000
	chunkOverlap = 200
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the ingest topic: each message is embedded and
// stored as a knowledge document in its partition.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	knowledgeRepo     contract.KnowledgeRepository
	embeddingProvider embedding.EmbeddingProvider
	natsPub           *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	knowledgeRepo contract.KnowledgeRepository,
	embeddingProvider embedding.EmbeddingProvider,
	natsPub *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		knowledgeRepo:     knowledgeRepo,
		embeddingProvider: embeddingProvider,
		natsPub:           natsPub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
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

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIngestDocumentMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal ingest message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Ingesting knowledge document (dataset=%s, source=%s)", payload.Dataset, payload.Source)

	var metadata datatypes.JSON
	if len(payload.Metadata) > 0 {
		if raw, err := json.Marshal(payload.Metadata); err == nil {
			metadata = raw
		}
	}

	// Long documents are stored as overlapping chunks so each fits the
	// embedding model's effective context.
	chunks := utils.SplitText(payload.Content, chunkSize, chunkOverlap)
	for _, chunk := range chunks {
		resp, err := cs.embeddingProvider.Generate(chunk, embedding.TaskRetrievalDocument)
		if err != nil {
			log.Printf("[ERROR] Failed to embed document: %v", err)
			msg.Nack() // Nack for retriable errors
			return
		}

		doc := &model.KnowledgeDocument{
			Content:        chunk,
			Source:         payload.Source,
			Title:          payload.Title,
			Category:       payload.Category,
			Dataset:        payload.Dataset,
			Metadata:       metadata,
			EmbeddingValue: pgvector.NewVector(resp.Embedding.Values),
		}

		if err := cs.knowledgeRepo.Create(ctx, doc); err != nil {
			log.Printf("[ERROR] Failed to store document: %v", err)
			msg.Nack()
			return
		}

		if cs.natsPub != nil {
			if err := cs.natsPub.Publish(ctx, events.NewKnowledgeIngested(doc.Id.String(), doc.Dataset)); err != nil {
				log.Printf("[WARN] Failed to publish ingest event: %v", err)
			}
		}
	}

	msg.Ack()
}
