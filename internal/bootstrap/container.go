package bootstrap

import (
	"time"

	"doc-chat-be/internal/config"
	"doc-chat-be/internal/controller"
	"doc-chat-be/internal/pkg/logger"
	"doc-chat-be/internal/service"
	"doc-chat-be/pkg/extractor"
	"doc-chat-be/pkg/llm"
	"doc-chat-be/pkg/rag"
	"doc-chat-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	DocumentController controller.IDocumentController
	ChatController     controller.IChatController
	SessionController  controller.ISessionController
	DemoController     controller.IDemoController
	StatsController    controller.IStatsController

	// Background Services (Exposed for main.go to run)
	ActivityConsumerService service.IActivityConsumerService
}

func NewContainer(cfg *config.Config, providers llm.FactoryFunc) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Domain Core
	sessions := store.NewRegistry(time.Duration(cfg.Ai.SessionTTLMinutes) * time.Minute)
	pipeline := rag.NewPipeline(rag.Config{
		ChunkSize:     cfg.Ai.ChunkSize,
		ChunkOverlap:  cfg.Ai.ChunkOverlap,
		TopK:          cfg.Ai.TopK,
		HistoryWindow: cfg.Ai.HistoryWindow,
	})
	docExtractor := extractor.NewTextExtractor()

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.IngestTopicName)
	activityConsumerService := service.NewActivityConsumerService(pubSub, cfg.App.IngestTopicName, sessions, sysLogger)

	documentService := service.NewDocumentService(sessions, pipeline, docExtractor, providers, publisherService, sysLogger)
	chatService := service.NewChatService(sessions, pipeline, providers, publisherService, sysLogger)
	sessionService := service.NewSessionService(sessions, publisherService, sysLogger)
	demoService := service.NewDemoService()

	// 5. Controllers
	return &Container{
		DocumentController: controller.NewDocumentController(documentService),
		ChatController:     controller.NewChatController(chatService),
		SessionController:  controller.NewSessionController(sessionService),
		DemoController:     controller.NewDemoController(demoService),
		StatsController:    controller.NewStatsController(activityConsumerService),

		ActivityConsumerService: activityConsumerService,
	}
}
