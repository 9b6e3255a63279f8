package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/datasource"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/api"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/metrics"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

const metricsNamespace = "campaign_dashboard"

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics(metricsNamespace)

	datasetCache := newDatasetCache(ctx, cfg)
	loader := datasource.NewHTTPLoader(cfg.DataSource)

	dashboardService := dashboarding.NewService(cfg, loader, datasetCache, m)

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		dashboardService.WithLoadHistory(repository.NewLoadRunRepository(pgConn))
		logrus.Info("Histórico de cargas habilitado")
	}

	authenticator := authenticating.NewService(cfg.Auth)

	datasetRefreshService := scheduler.NewDatasetRefreshService(dashboardService, cfg)
	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de fontes")
	}

	server, err := api.New(cfg, dashboardService, authenticator, datasetRefreshService, m)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newDatasetCache escolhe o backend de cache; sem Redis disponível cai para memória
func newDatasetCache(ctx context.Context, cfg *config.Config) cache.DatasetCache {
	if cfg.Cache.Backend != config.CacheBackendRedis {
		logrus.WithField("ttl", cfg.Cache.TTL.String()).Info("Usando cache de datasets em memória")
		return cache.NewMemoryCache(cfg.Cache.TTL)
	}

	rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, usando cache em memória")
		return cache.NewMemoryCache(cfg.Cache.TTL)
	}

	logrus.WithField("ttl", cfg.Cache.TTL.String()).Info("Usando cache de datasets no Redis")
	return cache.NewRedisCache(rdb, cfg.Cache.TTL)
}

// pgconn conecta ao PostgreSQL e garante as tabelas do histórico de cargas
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar tabelas do histórico de cargas")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
