// Package orchestrator sequences the clinical analysis pipeline. It is the
// only component allowed to call the retrieval, memory and generation
// collaborators; every other stage is pure. Each request produces exactly
// one PipelineResult variant.
package orchestrator

import (
	"context"
	"log"
	"strings"

	"health-assistant-be/pkg/clinical"
	"health-assistant-be/pkg/clinical/fallback"
	"health-assistant-be/pkg/clinical/followup"
	"health-assistant-be/pkg/clinical/guardrail"
	"health-assistant-be/pkg/clinical/intent"
	"health-assistant-be/pkg/clinical/memory"
	"health-assistant-be/pkg/clinical/prompt"
	"health-assistant-be/pkg/clinical/report"
	"health-assistant-be/pkg/clinical/routing"
	"health-assistant-be/pkg/llm"
)

const (
	defaultTopK = 5

	// How many trailing history entries are scanned when deciding whether
	// a symptom was already discussed.
	repeatWindow = 5

	// Clarification requests carry at most this many questions.
	maxQuestions = 2
)

// Orchestrator runs the nine-stage analysis pipeline.
type Orchestrator struct {
	retriever   Retriever
	llmProvider llm.LLMProvider
	memoryStore MemoryStore
	audit       AuditRecorder
	validator   *routing.Validator
	logger      *log.Logger
	topK        int
}

func New(
	retriever Retriever,
	llmProvider llm.LLMProvider,
	memoryStore MemoryStore,
	audit AuditRecorder,
	logger *log.Logger,
) *Orchestrator {
	if audit == nil {
		audit = NopAudit{}
	}
	return &Orchestrator{
		retriever:   retriever,
		llmProvider: llmProvider,
		memoryStore: memoryStore,
		audit:       audit,
		validator:   routing.NewValidator(),
		logger:      logger,
		topK:        defaultTopK,
	}
}

// Tune adjusts retrieval knobs. Zero values keep the defaults.
func (o *Orchestrator) Tune(topK int, minScore float64) {
	if topK > 0 {
		o.topK = topK
	}
	if minScore > 0 {
		o.validator.MinScore = minScore
	}
}

// Run executes the pipeline for one request. history is the bounded
// conversation window, oldest to newest; it is never mutated.
func (o *Orchestrator) Run(
	ctx context.Context,
	userID string,
	profile clinical.Profile,
	history []clinical.ConversationTurn,
	inputs clinical.Inputs,
) *clinical.PipelineResult {

	// Stage 1: harmonize all input channels into one combined string.
	combined := harmonize(inputs)
	if combined == "" {
		o.logger.Printf("[PIPELINE] empty input for user %s", userID)
		return o.finish(ctx, userID, StateInputEmpty, intent.Unknown, "",
			clinical.ErrorResult("No input provided. Please provide text, voice, or an image."))
	}

	// Stage 2: deterministic safety guardrail, highest priority.
	if verdict := guardrail.Check(combined); !verdict.Safe {
		o.logger.Printf("[PIPELINE] safety override (keyword=%q)", verdict.Alert.TriggerKeyword)
		result := clinical.EmergencyResult(verdict.Alert)
		o.recordOutcome(ctx, Outcome{
			UserID:         userID,
			TerminalState:  StateSafetyOverride,
			Intent:         intent.Unknown.String(),
			ResultKind:     result.Kind,
			TriggerKeyword: verdict.Alert.TriggerKeyword,
		})
		return result
	}

	// Stage 3: symptom shortcut. A known common symptom with enough
	// context is answered from the static table without retrieval or
	// generation. Queries too short even for the shortcut fall through so
	// the clarify gate can pick them up.
	entry, hasFallback := fallback.Lookup(combined)
	if hasFallback &&
		!intent.IsDiseaseSymptomQuery(combined) &&
		inputs.Confirmation != clinical.ConfirmationYes &&
		!tooShortForShortcut(combined, inputs.Confirmation, history) {

		already := alreadyDiscussed(entry.Key, history)
		o.logger.Printf("[PIPELINE] shortcut hit (key=%q, repeat=%v)", entry.Key, already)
		return o.finish(ctx, userID, StateShortcut, intent.Symptom, entry.Key,
			clinical.ReportResult(fallback.BuildReport(entry, already)))
	}

	// Stage 4: intent classification.
	queryIntent := intent.Classify(combined)
	o.logger.Printf("[PIPELINE] intent=%s", queryIntent)

	// Stage 5: clarify gate, first pass only.
	if inputs.Confirmation == clinical.ConfirmationSkip &&
		followup.ShouldAsk(combined, queryIntent, history) {

		questions := followup.Questions(queryIntent)
		if len(questions) > maxQuestions {
			questions = questions[:maxQuestions]
		}
		o.logger.Printf("[PIPELINE] asking clarification (%d questions)", len(questions))
		return o.finish(ctx, userID, StateClarification, queryIntent, "",
			clinical.ClarificationResult(&clinical.ClarificationRequest{
				Context:   "I need a little more detail to give safe guidance.",
				Questions: questions,
			}))
	}

	// Stage 6: memory selection. The fetch is data-independent of query
	// augmentation, so it runs concurrently with stage 7's preparation;
	// both complete before generation.
	contextCh := make(chan string, 1)
	if memory.Admissible(inputs.Confirmation) {
		go func() {
			chunks, err := o.memoryStore.GetStructuredContext(ctx, userID, combined)
			if err != nil {
				o.logger.Printf("[WARN] structured context fetch failed: %v", err)
				contextCh <- memory.NoConfirmedContext
				return
			}
			contextCh <- memory.Summarize(chunks)
		}()
	} else {
		contextCh <- memory.NoConfirmedContext
	}

	// Stage 7: retrieval, partition filtering, quality validation.
	docs, sufficient := o.retrieve(ctx, combined, queryIntent)
	if !sufficient && hasFallback {
		already := alreadyDiscussed(entry.Key, history)
		o.logger.Printf("[PIPELINE] retrieval insufficient, using fallback (key=%q)", entry.Key)
		return o.finish(ctx, userID, StateRetrievalFallback, queryIntent, entry.Key,
			clinical.ReportResult(fallback.BuildReport(entry, already)))
	}

	confirmedContext := <-contextCh

	// Stage 8: generation, with the final fallback chain.
	if err := ctx.Err(); err != nil {
		o.logger.Printf("[PIPELINE] canceled before generation: %v", err)
		return o.generationFallback(ctx, userID, queryIntent, hasFallback, entry, history)
	}

	messages := []llm.Message{
		{Role: clinical.RoleSystem, Content: prompt.System()},
		{Role: clinical.RoleUser, Content: prompt.User(profile, combined, confirmedContext, docs, !sufficient)},
	}
	raw, err := o.llmProvider.Chat(ctx, messages, llm.WithTemperature(0.2))
	if err != nil {
		o.logger.Printf("[ERROR] generation failed: %v", err)
		return o.generationFallback(ctx, userID, queryIntent, hasFallback, entry, history)
	}

	healthReport, err := report.Parse(raw, docs)
	if err != nil {
		o.logger.Printf("[ERROR] reply parsing failed: %v", err)
		return o.generationFallback(ctx, userID, queryIntent, hasFallback, entry, history)
	}

	// Stage 9: exactly one result.
	return o.finish(ctx, userID, StateGenerated, queryIntent, "",
		clinical.ReportResult(healthReport))
}

// retrieve augments the query, fetches candidates, filters them to the
// allowed partitions, re-ranks by trust, and validates sufficiency.
func (o *Orchestrator) retrieve(ctx context.Context, combined string, queryIntent intent.Intent) ([]clinical.RetrievedDocument, bool) {
	if err := ctx.Err(); err != nil {
		return nil, false
	}

	augmented := routing.Augment(combined, queryIntent)
	candidates, err := o.retriever.Search(ctx, augmented, o.topK)
	if err != nil {
		o.logger.Printf("[ERROR] retrieval failed: %v", err)
		return nil, false
	}

	allowed := routing.Route(queryIntent)
	docs := routing.Rerank(routing.FilterByPartition(candidates, allowed))

	ok, reason := o.validator.Validate(docs, queryIntent)
	if !ok {
		o.logger.Printf("[PIPELINE] retrieval validation failed: %s", reason)
	}
	return docs, ok
}

// generationFallback resolves the terminal result when generation cannot
// produce a usable report.
func (o *Orchestrator) generationFallback(
	ctx context.Context,
	userID string,
	queryIntent intent.Intent,
	hasFallback bool,
	entry fallback.Entry,
	history []clinical.ConversationTurn,
) *clinical.PipelineResult {
	if hasFallback {
		already := alreadyDiscussed(entry.Key, history)
		return o.finish(ctx, userID, StateGenerationFallback, queryIntent, entry.Key,
			clinical.ReportResult(fallback.BuildReport(entry, already)))
	}
	return o.finish(ctx, userID, StateGenerationError, queryIntent, "",
		clinical.ErrorResult("I'm sorry, I couldn't process your request right now. Please try again in a moment."))
}

func (o *Orchestrator) finish(ctx context.Context, userID, state string, queryIntent intent.Intent, keyword string, result *clinical.PipelineResult) *clinical.PipelineResult {
	o.recordOutcome(ctx, Outcome{
		UserID:         userID,
		TerminalState:  state,
		Intent:         queryIntent.String(),
		ResultKind:     result.Kind,
		TriggerKeyword: keyword,
	})
	return result
}

func (o *Orchestrator) recordOutcome(ctx context.Context, outcome Outcome) {
	o.audit.RecordOutcome(ctx, outcome)
}

// harmonize joins all provided input channels into one combined string.
func harmonize(inputs clinical.Inputs) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{inputs.TextQuery, inputs.TranscribedText, inputs.ImageCaption, inputs.ReportText} {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

// tooShortForShortcut defers shortcut-eligible queries with almost no
// context to the clarify gate, but only when a clarification could
// actually be asked; otherwise the shortcut still answers.
func tooShortForShortcut(combined string, confirmation clinical.Confirmation, history []clinical.ConversationTurn) bool {
	if confirmation != clinical.ConfirmationSkip {
		return false
	}
	if len(strings.Fields(combined)) >= 4 {
		return false
	}
	return followup.ShouldAsk(combined, intent.Symptom, history)
}

// alreadyDiscussed reports whether the symptom key appeared in a user turn
// within the trailing repeat window.
func alreadyDiscussed(symptomKey string, history []clinical.ConversationTurn) bool {
	start := len(history) - repeatWindow
	if start < 0 {
		start = 0
	}
	for _, turn := range history[start:] {
		if turn.Role != clinical.RoleUser {
			continue
		}
		if strings.Contains(strings.ToLower(turn.Content), symptomKey) {
			return true
		}
	}
	return false
}
