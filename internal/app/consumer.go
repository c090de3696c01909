package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/anzallkiyteb-cell/bey/internal/events"
	"github.com/anzallkiyteb-cell/bey/internal/messaging/kafka/consumer"
	"github.com/anzallkiyteb-cell/bey/internal/shared/audit"
	"github.com/anzallkiyteb-cell/bey/internal/shared/config"
	"github.com/anzallkiyteb-cell/bey/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer stores punch batches published by the device bridge.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(postgresConfig(cfg), cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	e, err := newEngine(cfg, sqlDB, gormDB, nil, audit.NewStdoutLogger())
	if err != nil {
		return err
	}

	reader := connection.NewKafkaReader(cfg.KafkaBroker, events.PunchesIngestedTopic, cfg.KafkaGroupID)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePunches(ctx, reader, e.attendance, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
