package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/wishwell/wishwell-api/docs"
	v1 "github.com/wishwell/wishwell-api/internal/api/handler/v1"
	"github.com/wishwell/wishwell-api/internal/api/middleware"
	"github.com/wishwell/wishwell-api/internal/config"
	"github.com/wishwell/wishwell-api/internal/currency"
	"github.com/wishwell/wishwell-api/internal/payments"
	"github.com/wishwell/wishwell-api/internal/repository"
	"github.com/wishwell/wishwell-api/internal/repository/dao"
	"github.com/wishwell/wishwell-api/internal/scrape"
	"github.com/wishwell/wishwell-api/internal/service"
	"github.com/wishwell/wishwell-api/internal/storage"
	"github.com/wishwell/wishwell-api/internal/ws"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	// Shared infrastructure, one instance each per process.
	stripeClient := payments.NewClient(conf.Stripe, conf.API.BaseURL)
	converter := currency.NewConverter(conf.Rates.Endpoint, conf.Rates.TTL)
	uploader := storage.NewUploader(conf.Storage)
	scraper := scrape.NewScraper()
	hub := ws.NewHub()
	go hub.Run()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	wishRepo := repository.NewWishRepository(dao.NewWishDAO(db))
	cardRepo := repository.NewCardRepository(dao.NewCardDAO(db))
	webhookRepo := repository.NewWebhookEventRepository(dao.NewWebhookEventDAO(db))

	eventSvc := service.NewEventService(eventRepo)
	payoutSvc := service.NewPayoutService(userRepo, stripeClient)
	cardSvc := service.NewCardService(cardRepo)

	authHandler := v1.NewAuthHandler(conf.API, service.NewAuthService(userRepo))
	accountHandler := v1.NewAccountHandler(service.NewAccountService(userRepo, stripeClient))
	eventHandler := v1.NewEventHandler(eventSvc)
	wishHandler := v1.NewWishHandler(service.NewWishService(wishRepo, eventRepo, converter))
	payoutHandler := v1.NewPayoutHandler(payoutSvc)
	contributionHandler := v1.NewContributionHandler(
		service.NewContributionService(stripeClient, eventRepo, wishRepo, userRepo),
		cardSvc,
	)
	cardHandler := v1.NewCardHandler(cardSvc)
	currencyHandler := v1.NewCurrencyHandler(converter)
	scrapeHandler := v1.NewScrapeHandler(scraper)
	uploadHandler := v1.NewUploadHandler(uploader)
	webhookHandler := v1.NewWebhookHandler(stripeClient, payoutSvc, webhookRepo, hub)
	feedHandler := v1.NewFeedHandler(eventSvc, hub)

	s.MountHandlers(
		authHandler, accountHandler, eventHandler, wishHandler, payoutHandler,
		contributionHandler, cardHandler, currencyHandler, scrapeHandler,
		uploadHandler, webhookHandler, feedHandler,
	)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	accountHandler *v1.AccountHandler,
	eventHandler *v1.EventHandler,
	wishHandler *v1.WishHandler,
	payoutHandler *v1.PayoutHandler,
	contributionHandler *v1.ContributionHandler,
	cardHandler *v1.CardHandler,
	currencyHandler *v1.CurrencyHandler,
	scrapeHandler *v1.ScrapeHandler,
	uploadHandler *v1.UploadHandler,
	webhookHandler *v1.WebhookHandler,
	feedHandler *v1.FeedHandler,
) {
	const basePath = "/api/v1"

	// Public routes: signup/login, the event page a contributor lands on,
	// checkout and its helpers, and the processor webhook.
	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/events/slug/:slug", eventHandler.HandleGetEventBySlug)
		public.GET("/events/:eventID/wishes", wishHandler.HandleListWishes)
		public.GET("/events/:eventID/funding", contributionHandler.HandleGetFunding)
		public.GET("/wishes/:wishID", wishHandler.HandleGetWish)

		public.POST("/contributions/intent", contributionHandler.HandleCreateIntent)
		public.POST("/cards", cardHandler.HandleSaveCard)
		public.GET("/cards/:paymentID", cardHandler.HandleGetCard)

		public.GET("/payout/countries", payoutHandler.HandleListCountries)
		public.GET("/currency/codes", currencyHandler.HandleListCurrencies)
		public.GET("/currency/convert", currencyHandler.HandleConvert)

		public.POST("/stripe/webhook", webhookHandler.HandleWebhook)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/account", accountHandler.HandleGetAccount)
		authed.PUT("/account/currency", accountHandler.HandleUpdateCurrency)
		authed.DELETE("/account", accountHandler.HandleDeleteAccount)

		authed.POST("/events", eventHandler.HandleCreateEvent)
		authed.GET("/events", eventHandler.HandleListEvents)
		authed.GET("/events/slug-available", eventHandler.HandleSlugAvailable)
		authed.GET("/events/:eventID", eventHandler.HandleGetEvent)
		authed.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		authed.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)

		authed.POST("/events/:eventID/wishes", wishHandler.HandleCreateWish)
		authed.PUT("/wishes/:wishID", wishHandler.HandleUpdateWish)
		authed.DELETE("/wishes/:wishID", wishHandler.HandleDeleteWish)

		authed.GET("/events/:eventID/contributions", contributionHandler.HandleListEventContributions)
		authed.GET("/wishes/:wishID/contributions", contributionHandler.HandleListWishContributions)
		authed.GET("/events/:eventID/feed", feedHandler.HandleFeed)

		authed.POST("/payout/account", payoutHandler.HandleCreateAccount)
		authed.GET("/payout/status", payoutHandler.HandleGetStatus)
		authed.GET("/payout/balance", payoutHandler.HandleGetBalance)
		authed.GET("/payout/payouts", payoutHandler.HandleListPayouts)
		authed.DELETE("/payout/account", payoutHandler.HandleDeleteAccount)

		authed.POST("/scrape", scrapeHandler.HandleScrape)
		authed.POST("/uploads", uploadHandler.HandleUpload)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Wishwell API"
	docs.SwaggerInfo.Description = "Gift registry API: events, wishes and contributions."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
