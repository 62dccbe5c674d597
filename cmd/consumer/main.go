package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/resource-matcher/cmd/config"
	"github.com/muhammadheryan/resource-matcher/thirdparty/rabbitmq"
	"github.com/muhammadheryan/resource-matcher/utils/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.NotifierURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Match notification consumer running", zap.String("notifier", cfg.Internal.NotifierURL))
	<-ctx.Done()
	logger.Info("Shutting down consumer")
}
