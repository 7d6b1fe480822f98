package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/toy-store-api/infrastructure/cache"
	"github.com/vfg2006/toy-store-api/infrastructure/database/postgres"
	"github.com/vfg2006/toy-store-api/infrastructure/migration"
	"github.com/vfg2006/toy-store-api/infrastructure/repository"
	"github.com/vfg2006/toy-store-api/internal/api"
	"github.com/vfg2006/toy-store-api/internal/api/handler"
	"github.com/vfg2006/toy-store-api/internal/config"
	"github.com/vfg2006/toy-store-api/internal/scheduler"
	"github.com/vfg2006/toy-store-api/internal/usecases/authenticating"
	"github.com/vfg2006/toy-store-api/internal/usecases/customer"
	"github.com/vfg2006/toy-store-api/internal/usecases/reporting"
	"github.com/vfg2006/toy-store-api/internal/usecases/selling"
	"github.com/vfg2006/toy-store-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	// valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.RunMigrations {
		if err := migration.Apply(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	userRepo := repository.NewUserRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	snapshotRepo := repository.NewReportSnapshotRepository(pgConn)

	reportService := reporting.NewReportService(saleRepo, customerRepo)

	var (
		reports     reporting.SalesAggregator = reportService
		invalidator reporting.ReportInvalidator
	)

	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis.URL)
		if err != nil {
			logrus.WithError(err).Warn("Redis indisponível, relatórios serão calculados sem cache")
		} else {
			defer redisCache.Close()

			cached := reporting.NewCachedAggregator(reportService, redisCache, cfg.Redis.ReportCacheTTL)
			reports, invalidator = cached, cached
		}
	}

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	customerService := customer.NewService(customerRepo, saleRepo, invalidator, cfg.Pagination)
	saleService := selling.NewService(saleRepo, customerRepo, invalidator, cfg.Pagination)

	snapshotService := scheduler.NewReportSnapshotService(userRepo, snapshotRepo, reportService, cfg.ReportSnapshot)
	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de relatórios")
	}

	server := api.New(cfg, api.Services{
		DB:            pgConn,
		Authenticator: authenticator,
		Customers:     customerService,
		Sales:         saleService,
		Reports:       reports,
		Snapshots:     snapshotRepo,
		CronJobs: handler.CronJobs{
			scheduler.ReportSnapshotJob: snapshotService,
		},
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
