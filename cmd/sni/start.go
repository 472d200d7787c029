package main

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/goodnatureofminers/sni-backend/internal/clock"
	"github.com/goodnatureofminers/sni-backend/internal/config"
	"github.com/goodnatureofminers/sni-backend/internal/engine"
	"github.com/goodnatureofminers/sni-backend/internal/indexer"
	"github.com/goodnatureofminers/sni-backend/internal/logger"
	"github.com/goodnatureofminers/sni-backend/internal/metrics"
	"github.com/goodnatureofminers/sni-backend/internal/model"
	"github.com/goodnatureofminers/sni-backend/internal/network"
	"github.com/goodnatureofminers/sni-backend/internal/normalizer"
	"github.com/goodnatureofminers/sni-backend/internal/repository"
	"github.com/goodnatureofminers/sni-backend/internal/solana"
	"github.com/goodnatureofminers/sni-backend/internal/stats"
	"github.com/goodnatureofminers/sni-backend/internal/transport"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const sentryFlushTimeout = 2 * time.Second

type startCommand struct {
	Config string `short:"c" long:"config" env:"SNI_CONFIG" description:"path to the config file" default:"sni.toml"`
	Debug  bool   `short:"d" long:"debug" env:"SNI_DEBUG" description:"enable debug logging"`

	ctx context.Context
}

func (c *startCommand) Execute(_ []string) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.Debug {
		cfg.Log.Debug = true
	}

	log, err := logger.New(logger.Config{
		Debug:     cfg.Log.Debug,
		SentryDSN: cfg.Log.SentryDSN,
		Tags:      map[string]string{"service": "sni", "version": version},
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Close(sentryFlushTimeout)

	if err := run(c.ctx, cfg, log.Logger); err != nil {
		log.Error("indexer failed", zap.Error(err))
		return err
	}
	return nil
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting sni",
		zap.String("version", version),
		zap.String("rpc_url", cfg.Network.RPCURL),
		zap.String("engine", cfg.Engine.Source),
		zap.Strings("program_filters", cfg.Indexing.ProgramFilters),
	)

	repo, err := repository.Open(ctx, repository.Config{
		DatabaseURL:       cfg.Storage.DatabaseURL,
		EnableCompression: cfg.Storage.EnableCompression,
		MaxOpenConns:      cfg.Storage.MaxOpenConns,
	})
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close repository", zap.Error(err))
		}
	}()
	latest, ok, err := repo.LatestSlot(ctx)
	if err != nil {
		return fmt.Errorf("read latest slot: %w", err)
	}
	if ok {
		logger.Info("resuming over existing store", zap.Uint64("latest_slot", latest))
	}

	rpcClient, err := solana.NewClient(cfg.Network.RPCURL, cfg.Network.Commitment, cfg.Network.RequestTimeout, metrics.NewRPCClient(cfg.Network.RPCURL))
	if err != nil {
		return fmt.Errorf("init solana rpc client: %w", err)
	}

	logger.Info("solana rpc client ready", zap.String("commitment", string(rpcClient.Commitment())))

	commitment, err := model.ParseSlotCommitment(string(rpcClient.Commitment()))
	if err != nil {
		return fmt.Errorf("parse commitment: %w", err)
	}

	clk := clock.NewReal()
	networkMetrics := metrics.NewNetwork()

	components := indexer.Components{
		Engine: newEngine(cfg, rpcClient, logger),
		Store:  repo,
		Normalizer: normalizer.New(normalizer.Options{
			IndexBlocks:     cfg.Indexing.IndexBlocks,
			TrackSlotStatus: cfg.Indexing.TrackSlotStatus,
			Commitment:      commitment,
		}),
		Metrics: metrics.NewPipeline(cfg.Engine.Source),
	}

	var gauge network.ActiveValidatorsGauge = networkMetrics
	if cfg.Indexing.TrackNetworkHealth {
		monitor := network.NewMonitor(rpcClient, networkMetrics, clk, logger)
		components.Monitor = monitor
		gauge = monitor
	}
	components.Tracker = network.NewTracker(rpcClient, gauge, networkMetrics, clk, logger,
		cfg.Indexing.TrackValidators && cfg.Network.AutoDiscoverValidators)

	aggregator := stats.NewAggregator(clk)
	components.Stats = aggregator
	components.Reporter = stats.NewReporter(aggregator, cfg.Indexing.StatsInterval, logger)

	orchestrator := indexer.New(components, cfg.Network.HealthInterval, clk, logger)

	server, err := transport.NewServer(transport.ServerConfig{
		HTTPAddr:    net.JoinHostPort(cfg.API.Host, strconv.Itoa(cfg.API.Port)),
		GRPCAddr:    net.JoinHostPort(cfg.API.Host, strconv.Itoa(cfg.API.GRPCPort)),
		CORSOrigins: cfg.API.CORSOrigins,
	}, transport.NewHealthHandler(repo, orchestrator, version, logger), logger)
	if err != nil {
		return fmt.Errorf("init api server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx)
	})
	g.Go(func() error {
		server.SetServing(true)
		defer server.SetServing(false)
		defer orchestrator.Stop()
		return orchestrator.Start(gctx)
	})
	return g.Wait()
}

func newEngine(cfg *config.Config, client *solana.Client, logger *zap.Logger) indexer.Engine {
	engineMetrics := metrics.NewEngine(cfg.Engine.Source)
	if cfg.Engine.Source == config.SourceNATS {
		return engine.NewNATSSubscriber(engine.NATSSubscriberConfig{
			URL:        cfg.Engine.NATSURL,
			Subject:    cfg.Engine.NATSSubject,
			BufferSize: cfg.Engine.BufferSize,
		}, engineMetrics, logger)
	}
	return engine.NewSlotPoller(client, engineMetrics, engine.SlotPollerConfig{
		PollInterval:      cfg.Engine.PollInterval,
		FetchWorkers:      cfg.Engine.FetchWorkers,
		BufferSize:        cfg.Engine.BufferSize,
		RequestsPerSecond: cfg.Network.RPCRequestsPerSecond,
	}, logger)
}
