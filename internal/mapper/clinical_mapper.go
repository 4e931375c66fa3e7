package mapper

import (
	"encoding/json"
	"strings"

	"health-assistant-be/internal/model"
	"health-assistant-be/internal/repository/contract"
	"health-assistant-be/pkg/clinical"
	clinicalmemory "health-assistant-be/pkg/clinical/memory"
)

type ClinicalMapper struct{}

func NewClinicalMapper() *ClinicalMapper {
	return &ClinicalMapper{}
}

func (m *ClinicalMapper) ToConversationTurn(t *model.ConversationTurn) clinical.ConversationTurn {
	return clinical.ConversationTurn{
		Role:      t.Role,
		Content:   t.Content,
		Kind:      t.Kind,
		Timestamp: t.CreatedAt,
	}
}

func (m *ClinicalMapper) ToConversationTurns(turns []*model.ConversationTurn) []clinical.ConversationTurn {
	out := make([]clinical.ConversationTurn, len(turns))
	for i, t := range turns {
		out[i] = m.ToConversationTurn(t)
	}
	return out
}

func (m *ClinicalMapper) ToRetrievedDocument(s *contract.ScoredKnowledgeDocument) clinical.RetrievedDocument {
	return clinical.RetrievedDocument{
		Text:     s.Document.Content,
		Source:   s.Document.Source,
		Title:    s.Document.Title,
		Category: s.Document.Category,
		Dataset:  s.Document.Dataset,
		Score:    s.Similarity,
	}
}

func (m *ClinicalMapper) ToRetrievedDocuments(scored []*contract.ScoredKnowledgeDocument) []clinical.RetrievedDocument {
	out := make([]clinical.RetrievedDocument, len(scored))
	for i, s := range scored {
		out[i] = m.ToRetrievedDocument(s)
	}
	return out
}

func (m *ClinicalMapper) ToMemoryChunk(c *model.MemoryChunk) clinicalmemory.Chunk {
	return clinicalmemory.Chunk{
		Type:    c.ChunkType,
		Content: c.Content,
	}
}

func (m *ClinicalMapper) ToMemoryChunks(chunks []*model.MemoryChunk) []clinicalmemory.Chunk {
	out := make([]clinicalmemory.Chunk, len(chunks))
	for i, c := range chunks {
		out[i] = m.ToMemoryChunk(c)
	}
	return out
}

func (m *ClinicalMapper) ToProfile(p *model.UserProfile) clinical.Profile {
	if p == nil {
		return clinical.Profile{}
	}

	var allergies, conditions []string
	if len(p.Allergies) > 0 {
		_ = json.Unmarshal(p.Allergies, &allergies)
	}
	if len(p.ChronicConditions) > 0 {
		_ = json.Unmarshal(p.ChronicConditions, &conditions)
	}

	return clinical.Profile{
		Age:               p.Age,
		Gender:            p.Gender,
		Allergies:         strings.Join(allergies, ", "),
		ChronicConditions: strings.Join(conditions, ", "),
	}
}
