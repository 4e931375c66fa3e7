package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"health-assistant-be/internal/dto"
	"health-assistant-be/internal/mapper"
	"health-assistant-be/internal/model"
	"health-assistant-be/internal/pkg/logger"
	"health-assistant-be/internal/repository/contract"
	"health-assistant-be/internal/repository/memory"
	"health-assistant-be/pkg/clinical"
	"health-assistant-be/pkg/clinical/orchestrator"
	"health-assistant-be/pkg/store"

	"github.com/google/uuid"
)

const defaultHistoryWindow = 10

type IAnalysisService interface {
	Query(ctx context.Context, userID uuid.UUID, req *dto.AnalysisQueryRequest) (*dto.AnalysisQueryResponse, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]dto.ConversationTurnResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) error
}

type analysisService struct {
	pipeline         *orchestrator.Orchestrator
	memoryService    IMemoryService
	conversationRepo contract.ConversationRepository
	profileRepo      contract.UserProfileRepository
	sessionRepo      *memory.SessionRepository
	mapper           *mapper.ClinicalMapper
	logger           logger.ILogger
	historyWindow    int
}

func NewAnalysisService(
	pipeline *orchestrator.Orchestrator,
	memoryService IMemoryService,
	conversationRepo contract.ConversationRepository,
	profileRepo contract.UserProfileRepository,
	sessionRepo *memory.SessionRepository,
	sysLogger logger.ILogger,
	historyWindow int,
) IAnalysisService {
	if historyWindow <= 0 {
		historyWindow = defaultHistoryWindow
	}
	return &analysisService{
		pipeline:         pipeline,
		memoryService:    memoryService,
		conversationRepo: conversationRepo,
		profileRepo:      profileRepo,
		sessionRepo:      sessionRepo,
		mapper:           mapper.NewClinicalMapper(),
		logger:           sysLogger,
		historyWindow:    historyWindow,
	}
}

func (s *analysisService) Query(ctx context.Context, userID uuid.UUID, req *dto.AnalysisQueryRequest) (*dto.AnalysisQueryResponse, error) {
	profileModel, err := s.profileRepo.FindByUserId(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	profile := s.mapper.ToProfile(profileModel)

	history, err := s.memoryService.GetRecentTurns(ctx, userID.String(), s.historyWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	inputs := clinical.Inputs{
		TextQuery:       req.TextQuery,
		TranscribedText: req.TranscribedText,
		ImageCaption:    req.ImageCaption,
		ReportText:      req.ReportText,
		Confirmation:    toConfirmation(req.MemoryConfirmation),
	}

	// If a clarification is pending, the new message answers it. Merge it
	// with the original query so the pipeline sees the full picture.
	sessionKey := userID.String()
	if session, found := s.sessionRepo.Get(sessionKey); found && session.State == store.StateAwaitingClarify {
		if strings.TrimSpace(inputs.TextQuery) != "" {
			inputs.TextQuery = session.PendingQuery + " " + inputs.TextQuery
		}
		s.sessionRepo.Delete(sessionKey)
	}

	result := s.pipeline.Run(ctx, userID.String(), profile, history, inputs)

	s.logger.Info("analysis", "query processed", map[string]interface{}{
		"user_id":     userID.String(),
		"result_kind": string(result.Kind),
	})

	s.persistTurns(ctx, userID, req, result)

	if result.Kind == clinical.KindClarification {
		s.sessionRepo.Save(&store.Session{
			ID:               sessionKey,
			UserID:           sessionKey,
			State:            store.StateAwaitingClarify,
			PendingQuery:     combinedText(req),
			PendingQuestions: result.Clarification.Questions,
			LastQuery:        req.TextQuery,
		})
	}

	return toResponse(result), nil
}

func (s *analysisService) History(ctx context.Context, userID uuid.UUID, limit int) ([]dto.ConversationTurnResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	turns, err := s.conversationRepo.FindRecentByUserId(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ConversationTurnResponse, len(turns))
	for i, t := range turns {
		out[i] = dto.ConversationTurnResponse{
			Role:      t.Role,
			Content:   t.Content,
			Kind:      t.Kind,
			CreatedAt: t.CreatedAt,
		}
	}
	return out, nil
}

func (s *analysisService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) error {
	allergies, _ := json.Marshal(req.Allergies)
	conditions, _ := json.Marshal(req.ChronicConditions)

	return s.profileRepo.Upsert(ctx, &model.UserProfile{
		UserId:            userID,
		Age:               req.Age,
		Gender:            req.Gender,
		Allergies:         allergies,
		ChronicConditions: conditions,
	})
}

// persistTurns records the exchange. Storage failures do not fail the
// request; the result has already been decided.
func (s *analysisService) persistTurns(ctx context.Context, userID uuid.UUID, req *dto.AnalysisQueryRequest, result *clinical.PipelineResult) {
	userText := combinedText(req)
	if userText != "" {
		_ = s.conversationRepo.Create(ctx, &model.ConversationTurn{
			UserId:  userID,
			Role:    clinical.RoleUser,
			Content: userText,
		})
	}

	assistantTurn := &model.ConversationTurn{
		UserId: userID,
		Role:   clinical.RoleAssistant,
	}
	switch result.Kind {
	case clinical.KindClarification:
		assistantTurn.Content = strings.Join(result.Clarification.Questions, " ")
		assistantTurn.Kind = clinical.TurnKindClarification
	case clinical.KindHealthReport:
		assistantTurn.Content = result.Report.InformationText
	case clinical.KindEmergency:
		assistantTurn.Content = result.Emergency.Message
	default:
		assistantTurn.Content = result.Error.Message
	}
	_ = s.conversationRepo.Create(ctx, assistantTurn)
}

func combinedText(req *dto.AnalysisQueryRequest) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{req.TextQuery, req.TranscribedText, req.ImageCaption, req.ReportText} {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

func toConfirmation(raw string) clinical.Confirmation {
	switch raw {
	case "yes":
		return clinical.ConfirmationYes
	case "no":
		return clinical.ConfirmationNo
	default:
		return clinical.ConfirmationSkip
	}
}

func toResponse(result *clinical.PipelineResult) *dto.AnalysisQueryResponse {
	resp := &dto.AnalysisQueryResponse{Type: string(result.Kind)}

	switch result.Kind {
	case clinical.KindClarification:
		resp.Clarification = &dto.ClarificationPayload{
			Context:   result.Clarification.Context,
			Questions: result.Clarification.Questions,
		}
	case clinical.KindHealthReport:
		sources := make([]dto.KnowledgeSourcePayload, len(result.Report.Sources))
		for i, src := range result.Report.Sources {
			sources[i] = dto.KnowledgeSourcePayload{Source: src.Source, Description: src.Description}
		}
		resp.Report = &dto.HealthReportPayload{
			InformationText:    result.Report.InformationText,
			PossibleConditions: result.Report.PossibleConditions,
			Reasoning:          result.Report.Reasoning,
			NextSteps:          result.Report.NextSteps,
			ConfidenceLabel:    result.Report.ConfidenceLabel,
			Sources:            sources,
		}
	case clinical.KindEmergency:
		resp.Emergency = &dto.EmergencyAlertPayload{
			Severity:        result.Emergency.Severity,
			Message:         result.Emergency.Message,
			ImmediateAction: result.Emergency.ImmediateAction,
		}
	default:
		resp.Error = &dto.ErrorPayload{Message: result.Error.Message}
	}
	return resp
}
