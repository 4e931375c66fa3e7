package service

import (
	"context"
	"fmt"

	"health-assistant-be/internal/mapper"
	"health-assistant-be/internal/repository/contract"
	"health-assistant-be/pkg/clinical"
	clinicalmemory "health-assistant-be/pkg/clinical/memory"
	"health-assistant-be/pkg/embedding"

	"github.com/google/uuid"
)

const structuredContextLimit = 5

type IMemoryService interface {
	GetRecentTurns(ctx context.Context, userID string, limit int) ([]clinical.ConversationTurn, error)
	GetStructuredContext(ctx context.Context, userID, query string) ([]clinicalmemory.Chunk, error)
}

type memoryService struct {
	conversationRepo  contract.ConversationRepository
	memoryChunkRepo   contract.MemoryChunkRepository
	embeddingProvider embedding.EmbeddingProvider
	mapper            *mapper.ClinicalMapper
}

func NewMemoryService(
	conversationRepo contract.ConversationRepository,
	memoryChunkRepo contract.MemoryChunkRepository,
	embeddingProvider embedding.EmbeddingProvider,
) IMemoryService {
	return &memoryService{
		conversationRepo:  conversationRepo,
		memoryChunkRepo:   memoryChunkRepo,
		embeddingProvider: embeddingProvider,
		mapper:            mapper.NewClinicalMapper(),
	}
}

func (s *memoryService) GetRecentTurns(ctx context.Context, userID string, limit int) ([]clinical.ConversationTurn, error) {
	userId, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	turns, err := s.conversationRepo.FindRecentByUserId(ctx, userId, limit)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToConversationTurns(turns), nil
}

// GetStructuredContext returns typed facts from past conversations ranked
// by similarity to the current query.
func (s *memoryService) GetStructuredContext(ctx context.Context, userID, query string) ([]clinicalmemory.Chunk, error) {
	userId, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	resp, err := s.embeddingProvider.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	chunks, err := s.memoryChunkRepo.SearchSimilarByUserId(ctx, userId, resp.Embedding.Values, structuredContextLimit)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToMemoryChunks(chunks), nil
}
