package bootstrap

import (
	"log"
	"os"
	"time"

	"health-assistant-be/internal/config"
	"health-assistant-be/internal/controller"
	"health-assistant-be/internal/pkg/logger"
	"health-assistant-be/internal/repository/implementation"
	"health-assistant-be/internal/repository/memory"
	"health-assistant-be/internal/service"
	"health-assistant-be/pkg/clinical/orchestrator"
	"health-assistant-be/pkg/embedding"
	"health-assistant-be/pkg/llm/factory"

	pktNats "health-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AnalysisController  controller.IAnalysisController
	KnowledgeController controller.IKnowledgeController

	// Background Services (Exposed for main.go to run)
	ConsumerService      service.IConsumerService
	AuditConsumerService service.IAuditConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	embeddingProvider, err := embedding.NewEmbeddingProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.LLMAPIKey,
		cfg.Ai.OllamaModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s (%s)", cfg.Ai.EmbeddingProvider, cfg.Ai.OllamaModel)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		llmBaseURL(cfg),
		cfg.Ai.LLMAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	var natsPub *pktNats.Publisher
	if cfg.App.AuditMirrorEnabled {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
	}

	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Auth.SessionTTLMins) * time.Minute)

	// 5. Repositories
	knowledgeRepo := implementation.NewKnowledgeRepository(db)
	conversationRepo := implementation.NewConversationRepository(db)
	memoryChunkRepo := implementation.NewMemoryChunkRepository(db)
	auditRepo := implementation.NewAuditRepository(db)
	profileRepo := implementation.NewUserProfileRepository(db)

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Retrieval.IngestTopic, cfg.Retrieval.AuditTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Retrieval.IngestTopic,
		knowledgeRepo,
		embeddingProvider,
		natsPub,
	)

	auditLogger := logger.NewIsolatedLogger("logs/audit.log")
	auditConsumerService := service.NewAuditConsumerService(
		pubSub,
		cfg.Retrieval.AuditTopic,
		auditRepo,
		auditLogger,
		natsPub,
	)

	retrievalService := service.NewRetrievalService(knowledgeRepo, embeddingProvider)
	memoryService := service.NewMemoryService(conversationRepo, memoryChunkRepo, embeddingProvider)

	pipeline := orchestrator.New(
		retrievalService,
		llmProvider,
		memoryService,
		service.NewAuditPublisher(publisherService),
		log.New(os.Stdout, "[clinical] ", log.LstdFlags),
	)
	pipeline.Tune(cfg.Retrieval.TopK, cfg.Retrieval.MinScore)

	analysisService := service.NewAnalysisService(
		pipeline,
		memoryService,
		conversationRepo,
		profileRepo,
		sessionRepo,
		sysLogger,
		cfg.Retrieval.HistoryWindow,
	)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, publisherService)

	// 7. Controllers
	return &Container{
		AnalysisController:   controller.NewAnalysisController(analysisService),
		KnowledgeController:  controller.NewKnowledgeController(knowledgeService),
		ConsumerService:      consumerService,
		AuditConsumerService: auditConsumerService,
	}
}

func llmBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMBaseURL != "" {
		return cfg.Ai.LLMBaseURL
	}
	return cfg.Ai.OllamaBaseURL
}
