package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	feedbackapp "github.com/muhammadheryan/resource-matcher/application/feedback"
	matchapp "github.com/muhammadheryan/resource-matcher/application/match"
	needapp "github.com/muhammadheryan/resource-matcher/application/need"
	provideapp "github.com/muhammadheryan/resource-matcher/application/provide"
	userapp "github.com/muhammadheryan/resource-matcher/application/user"
	"github.com/muhammadheryan/resource-matcher/cmd/config"
	redisclient "github.com/muhammadheryan/resource-matcher/cmd/redis"
	_ "github.com/muhammadheryan/resource-matcher/docs"
	catalogRepo "github.com/muhammadheryan/resource-matcher/repository/catalog"
	feedbackRepo "github.com/muhammadheryan/resource-matcher/repository/feedback"
	"github.com/muhammadheryan/resource-matcher/repository/migration"
	needRepo "github.com/muhammadheryan/resource-matcher/repository/need"
	redisRepo "github.com/muhammadheryan/resource-matcher/repository/redis"
	resourceRepo "github.com/muhammadheryan/resource-matcher/repository/resource"
	"github.com/muhammadheryan/resource-matcher/repository/store"
	userRepo "github.com/muhammadheryan/resource-matcher/repository/user"
	"github.com/muhammadheryan/resource-matcher/thirdparty/rabbitmq"
	"github.com/muhammadheryan/resource-matcher/transport"
	"github.com/muhammadheryan/resource-matcher/utils/logger"
	"go.uber.org/zap"
)

// @title RESOURCE MATCHER API
// @version 1.0
// @description Offer resources and match them with nearby needs
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	catalog, err := catalogRepo.NewFileCatalog(cfg.Catalog.Path).Load(context.Background())
	if err != nil {
		logger.Fatal("err load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := migration.Run(context.Background(), db); err != nil {
		logger.Fatal("err migrate db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Notifications are best effort; run without them if the broker is down
	var publisher rabbitmq.MatchPublisher
	p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, match notifications disabled", zap.Error(err))
	} else {
		publisher = p
		defer p.Close()
	}

	// Initialize repositories
	Store := store.NewStore(
		userRepo.NewUserRepository(db),
		resourceRepo.NewResourceRepository(db),
		needRepo.NewNeedRepository(db),
		feedbackRepo.NewFeedbackRepository(db),
	)
	ConversationRepo := redisRepo.NewRepository()

	// Initialize application layers
	MatchApp := matchapp.NewMatchApp(cfg, Store, publisher)
	ProvideApp := provideapp.NewProvideApp(cfg, catalog, Store, MatchApp, ConversationRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		Catalog:     catalog,
		ProvideApp:  ProvideApp,
		MatchApp:    MatchApp,
		UserApp:     userapp.NewUserApp(Store),
		NeedApp:     needapp.NewNeedApp(catalog, Store),
		FeedbackApp: feedbackapp.NewFeedbackApp(Store),
	}, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
