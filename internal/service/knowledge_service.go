package service

import (
	"context"

	"health-assistant-be/internal/dto"
	"health-assistant-be/internal/repository/contract"
)

type IKnowledgeService interface {
	Ingest(ctx context.Context, req *dto.IngestDocumentRequest) error
	CountByDataset(ctx context.Context, dataset string) (int64, error)
}

type knowledgeService struct {
	knowledgeRepo contract.KnowledgeRepository
	publisher     IPublisherService
}

func NewKnowledgeService(knowledgeRepo contract.KnowledgeRepository, publisher IPublisherService) IKnowledgeService {
	return &knowledgeService{
		knowledgeRepo: knowledgeRepo,
		publisher:     publisher,
	}
}

// Ingest queues the document for embedding. The consumer stores it.
func (s *knowledgeService) Ingest(ctx context.Context, req *dto.IngestDocumentRequest) error {
	return s.publisher.PublishIngestDocument(ctx, &dto.PublishIngestDocumentMessage{
		Content:  req.Content,
		Source:   req.Source,
		Title:    req.Title,
		Category: req.Category,
		Dataset:  req.Dataset,
		Metadata: req.Metadata,
	})
}

func (s *knowledgeService) CountByDataset(ctx context.Context, dataset string) (int64, error) {
	return s.knowledgeRepo.CountByDataset(ctx, dataset)
}
