package app

import (
	"context"
	"log/slog"
	"os"

	grpcapp "github.com/georgyshamteev/SOA/internal/app/grpc"
	"github.com/georgyshamteev/SOA/internal/config"
	"github.com/georgyshamteev/SOA/internal/kafka"
	"github.com/georgyshamteev/SOA/internal/lib/logger/sl"
	"github.com/georgyshamteev/SOA/internal/services/statistics"
	"github.com/georgyshamteev/SOA/internal/storage/clickhouse"
)

type App struct {
	GRPCSrv   *grpcapp.App
	Consumers *kafka.Consumers
	Storage   *clickhouse.Storage
}

// New wires the service bottom-up: the store must be reachable and
// provisioned before any consumer or the gRPC server exists. A store
// that never comes up is fatal, the process must not serve
// half-initialized.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) *App {

	storage, err := clickhouse.New(ctx, log, cfg.Clickhouse)
	if err != nil {
		log.Error("clickhouse bootstrap failed", sl.Err(err))
		os.Exit(1)
	}

	statsService := statistics.New(log, storage, storage)

	consumers := kafka.NewConsumers(cfg.Kafka.Brokers, statsService, log)
	grpcApp := grpcapp.New(log, statsService, cfg.GRPC.Port)

	return &App{
		GRPCSrv:   grpcApp,
		Consumers: consumers,
		Storage:   storage,
	}
}
