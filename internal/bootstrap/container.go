package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mp-codespace/masterprima-site-sub001/internal/config"
	"github.com/mp-codespace/masterprima-site-sub001/internal/controller"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/logger"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/mailer"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/unitofwork"
	"github.com/mp-codespace/masterprima-site-sub001/internal/service"
	"github.com/mp-codespace/masterprima-site-sub001/pkg/invoicing"
	pktNats "github.com/mp-codespace/masterprima-site-sub001/pkg/nats"
)

const auditTopic = "admin.activity"

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	OAuthController    controller.IOAuthController
	PaymentController  controller.IPaymentController
	ArticleController  controller.IArticleController
	PricingController  controller.IPricingController
	SiteController     controller.ISiteController
	ActivityController controller.IActivityController

	// Shared infrastructure the server layer needs
	SessionCodec *session.Codec
	Logger       logger.ILogger

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	codec := session.NewCodec(cfg.Auth.SessionSecret)

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
		)
	}

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	publisherService := service.NewPublisherService(auditTopic, pubSub)
	auditService := service.NewAuditService(publisherService, sysLogger)
	consumerService := service.NewConsumerService(pubSub, auditTopic, uowFactory, sysLogger)

	// 2.5 Optional infrastructure
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v (login throttle disabled)", err)
			rdb = nil
		}
	}

	contentCache := gocache.New(5*time.Minute, 10*time.Minute)

	// 3. Services
	invoiceClient := invoicing.NewClient(cfg.Payment.BaseURL, cfg.Payment.SecretKey)

	authService := service.NewAuthService(uowFactory, codec, cfg.Auth, auditService, emailService, rdb, natsPub)
	oauthService := service.NewOAuthService(uowFactory, codec, cfg.Auth, cfg.OAuth, auditService, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, invoiceClient, cfg.Payment, emailService, natsPub, sysLogger)
	articleService := service.NewArticleService(uowFactory, auditService, natsPub)
	pricingService := service.NewPricingService(uowFactory, contentCache, auditService)
	siteService := service.NewSiteService(uowFactory, contentCache, auditService)
	activityService := service.NewActivityService(uowFactory)

	// 4. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService, codec, cfg.Auth.SessionCookieName, sysLogger),
		OAuthController:    controller.NewOAuthController(oauthService, cfg.Auth.SessionCookieName),
		PaymentController:  controller.NewPaymentController(paymentService, cfg.Payment.CallbackToken, sysLogger),
		ArticleController:  controller.NewArticleController(articleService, sysLogger),
		PricingController:  controller.NewPricingController(pricingService, sysLogger),
		SiteController:     controller.NewSiteController(siteService, articleService, sysLogger),
		ActivityController: controller.NewActivityController(activityService, sysLogger),

		SessionCodec: codec,
		Logger:       sysLogger,

		ConsumerService: consumerService,
	}
}
