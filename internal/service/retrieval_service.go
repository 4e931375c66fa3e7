package service

import (
	"context"
	"fmt"

	"health-assistant-be/internal/mapper"
	"health-assistant-be/internal/repository/contract"
	"health-assistant-be/pkg/clinical"
	"health-assistant-be/pkg/embedding"
)

// minFetch is the floor on candidates pulled from the vector index. The
// partition filter runs after the fetch, so we over-fetch to keep enough
// survivors for the requested topK.
const minFetch = 15

type IRetrievalService interface {
	Search(ctx context.Context, query string, topK int) ([]clinical.RetrievedDocument, error)
}

type retrievalService struct {
	knowledgeRepo     contract.KnowledgeRepository
	embeddingProvider embedding.EmbeddingProvider
	mapper            *mapper.ClinicalMapper
}

func NewRetrievalService(
	knowledgeRepo contract.KnowledgeRepository,
	embeddingProvider embedding.EmbeddingProvider,
) IRetrievalService {
	return &retrievalService{
		knowledgeRepo:     knowledgeRepo,
		embeddingProvider: embeddingProvider,
		mapper:            mapper.NewClinicalMapper(),
	}
}

func (s *retrievalService) Search(ctx context.Context, query string, topK int) ([]clinical.RetrievedDocument, error) {
	if topK <= 0 {
		topK = 5
	}

	resp, err := s.embeddingProvider.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	fetchK := 3 * topK
	if fetchK < minFetch {
		fetchK = minFetch
	}

	scored, err := s.knowledgeRepo.SearchSimilarWithScore(ctx, resp.Embedding.Values, fetchK)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	return s.mapper.ToRetrievedDocuments(scored), nil
}
