package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/you-humble/repair-fulfillment/internal/config"
	"github.com/you-humble/repair-fulfillment/internal/converter"
	"github.com/you-humble/repair-fulfillment/internal/model"
	rpartrepo "github.com/you-humble/repair-fulfillment/internal/repository/repairpart"
	spartrepo "github.com/you-humble/repair-fulfillment/internal/repository/sparepart"
	usagerepo "github.com/you-humble/repair-fulfillment/internal/repository/usage"
	stockproducer "github.com/you-humble/repair-fulfillment/internal/service/producer/stock"
	readinesssvc "github.com/you-humble/repair-fulfillment/internal/service/readiness"
	rpartsvc "github.com/you-humble/repair-fulfillment/internal/service/repairpart"
	spartsvc "github.com/you-humble/repair-fulfillment/internal/service/sparepart"
	rparthttp "github.com/you-humble/repair-fulfillment/internal/transport/http/repairpart/v1"
	sparthttp "github.com/you-humble/repair-fulfillment/internal/transport/http/sparepart/v1"
	"github.com/you-humble/repair-fulfillment/platform/closer"
	"github.com/you-humble/repair-fulfillment/platform/db/migrator"
	"github.com/you-humble/repair-fulfillment/platform/kafka"
	"github.com/you-humble/repair-fulfillment/platform/kafka/producer"
	"github.com/you-humble/repair-fulfillment/platform/logger"
)

type Converter interface {
	StockMovedToPayload(m model.StockMovedEvent) ([]byte, error)
}

type di struct {
	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator

	sparePartRepo  *spartrepo.Repository
	repairPartRepo *rpartrepo.Repository
	usageRepo      rpartsvc.UsageRepository

	syncProducer        sarama.SyncProducer
	stockEventsProducer kafka.Producer
	stockProducer       rpartsvc.StockEventSender

	conv Converter

	sparePartService  sparthttp.SparePartService
	repairPartService rparthttp.RepairPartService
	readinessService  rparthttp.ReadinessService

	sparePartHandler  *sparthttp.Handler
	repairPartHandler *rparthttp.Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {

		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) SparePartRepository(ctx context.Context) *spartrepo.Repository {
	if d.sparePartRepo == nil {
		d.sparePartRepo = spartrepo.NewSparePartRepository(d.DBPool(ctx))
	}

	return d.sparePartRepo
}

func (d *di) RepairPartRepository(ctx context.Context) *rpartrepo.Repository {
	if d.repairPartRepo == nil {
		d.repairPartRepo = rpartrepo.NewRepairPartRepository(d.DBPool(ctx))
	}

	return d.repairPartRepo
}

func (d *di) UsageRepository(ctx context.Context) rpartsvc.UsageRepository {
	if d.usageRepo == nil {
		d.usageRepo = usagerepo.NewUsageRepository(d.DBPool(ctx))
	}

	return d.usageRepo
}

func (d *di) KafkaConverter(ctx context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.StockEventsProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) StockEventsProducer(ctx context.Context) kafka.Producer {
	if d.stockEventsProducer == nil {
		d.stockEventsProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.StockEventsTopic(),
			logger.L(),
		)
	}

	return d.stockEventsProducer
}

func (d *di) StockProducer(ctx context.Context) rpartsvc.StockEventSender {
	if d.stockProducer == nil {
		d.stockProducer = stockproducer.NewStockProducer(
			d.StockEventsProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.stockProducer
}

func (d *di) SparePartService(ctx context.Context) sparthttp.SparePartService {
	if d.sparePartService == nil {
		d.sparePartService = spartsvc.NewSparePartService(
			d.SparePartRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.sparePartService
}

func (d *di) RepairPartService(ctx context.Context) rparthttp.RepairPartService {
	if d.repairPartService == nil {
		d.repairPartService = rpartsvc.NewRepairPartService(
			d.RepairPartRepository(ctx),
			d.SparePartRepository(ctx),
			d.UsageRepository(ctx),
			d.StockProducer(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.repairPartService
}

func (d *di) ReadinessService(ctx context.Context) rparthttp.ReadinessService {
	if d.readinessService == nil {
		d.readinessService = readinesssvc.NewReadinessService(
			d.RepairPartRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.readinessService
}

func (d *di) SparePartHandler(ctx context.Context) *sparthttp.Handler {
	if d.sparePartHandler == nil {
		d.sparePartHandler = sparthttp.NewSparePartHandler(d.SparePartService(ctx))
	}

	return d.sparePartHandler
}

func (d *di) RepairPartHandler(ctx context.Context) *rparthttp.Handler {
	if d.repairPartHandler == nil {
		d.repairPartHandler = rparthttp.NewRepairPartHandler(
			d.RepairPartService(ctx),
			d.ReadinessService(ctx),
		)
	}

	return d.repairPartHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
