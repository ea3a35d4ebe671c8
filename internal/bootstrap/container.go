package bootstrap

import (
	"slm-marketing-be/internal/config"
	"slm-marketing-be/internal/controller"
	"slm-marketing-be/internal/pkg/logger"
	"slm-marketing-be/internal/repository/memory"
	"slm-marketing-be/internal/repository/unitofwork"
	"slm-marketing-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	HeroController    controller.IHeroController
	FeatureController controller.IFeatureController
	AuditController   controller.IAuditController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	contentCache := memory.NewContentCache()
	publisherService := service.NewPublisherService(cfg.App.ContentTopic, pubSub)

	// 4. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret, cfg.Auth.TokenTTLHour, sysLogger)
	heroService := service.NewHeroService(uowFactory, publisherService, sysLogger)
	featureService := service.NewFeatureService(uowFactory, publisherService, contentCache, sysLogger)
	auditService := service.NewAuditService(uowFactory)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ContentTopic, uowFactory, sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		HeroController:    controller.NewHeroController(heroService),
		FeatureController: controller.NewFeatureController(featureService),
		AuditController:   controller.NewAuditController(auditService),
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
