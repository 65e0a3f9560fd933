package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/verdantchain/explorer-backend/internal/indexer"
	"github.com/verdantchain/explorer-backend/internal/live"
	"github.com/verdantchain/explorer-backend/internal/metrics"
	"github.com/verdantchain/explorer-backend/internal/service"
	"github.com/verdantchain/explorer-backend/internal/simulated"
	"github.com/verdantchain/explorer-backend/internal/transport"
)

type config struct {
	Addr    string `long:"addr" env:"EXPLORER_ADDR" description:"http listen addr" default:":8000"`
	Network string `long:"network" env:"EXPLORER_NETWORK" description:"network name" default:"mainnet"`

	NodeURL      string `long:"node-url" env:"EXPLORER_NODE_URL" description:"verdantchain node JSON-RPC URL; empty runs on the simulated ledger only"`
	NodeUser     string `long:"node-user" env:"EXPLORER_NODE_USER" description:"node RPC username"`
	NodePassword string `long:"node-password" env:"EXPLORER_NODE_PASSWORD" description:"node RPC password"`
	NodeRPS      int    `long:"node-rps" env:"EXPLORER_NODE_RPS" description:"node RPC rate limit" default:"50"`

	SimSeed       int64  `long:"sim-seed" env:"EXPLORER_SIM_SEED" description:"simulated ledger seed" default:"1"`
	SimTipHeight  uint64 `long:"sim-tip-height" env:"EXPLORER_SIM_TIP_HEIGHT" description:"simulated ledger tip height" default:"100000"`
	SimBlockCount int    `long:"sim-block-count" env:"EXPLORER_SIM_BLOCK_COUNT" description:"simulated ledger window size" default:"50"`

	SnapshotInterval time.Duration `long:"snapshot-interval" env:"EXPLORER_SNAPSHOT_INTERVAL" description:"sustainability sampling interval" default:"1h"`
	SnapshotHistory  int           `long:"snapshot-history" env:"EXPLORER_SNAPSHOT_HISTORY" description:"retained sustainability snapshots" default:"2160"`
	TipPollInterval  time.Duration `long:"tip-poll-interval" env:"EXPLORER_TIP_POLL_INTERVAL" description:"chain tip poll interval" default:"15s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("explorer api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	sim, err := simulated.New(simulated.Config{
		Seed:       cfg.SimSeed,
		TipHeight:  cfg.SimTipHeight,
		BlockCount: cfg.SimBlockCount,
	})
	if err != nil {
		return fmt.Errorf("build simulated ledger: %w", err)
	}

	var (
		liveSource *live.Source
		dispatcher *live.Dispatcher
	)
	if cfg.NodeURL != "" {
		conn, err := live.NewNodeConnection(cfg.NodeURL, cfg.NodeUser, cfg.NodePassword)
		if err != nil {
			return fmt.Errorf("dial node: %w", err)
		}
		defer func() {
			conn.Shutdown()
			conn.WaitForShutdown()
		}()

		client := live.NewClient(conn, cfg.NodeRPS, metrics.NewRPCClient(cfg.Network))
		liveSource = live.NewSource(client, logger)
		dispatcher = live.NewDispatcher(logger)
		logger.Info("live node configured", zap.String("url", cfg.NodeURL))
	} else {
		logger.Info("no node configured, serving the simulated ledger")
	}

	var facade *indexer.Facade
	if liveSource != nil {
		facade, err = indexer.New(liveSource, liveSource, sim, metrics.NewFacade(), logger)
	} else {
		facade, err = indexer.New(nil, nil, sim, metrics.NewFacade(), logger)
	}
	if err != nil {
		return fmt.Errorf("build facade: %w", err)
	}

	store := service.NewHistoryStore(cfg.SnapshotHistory)
	collector := service.NewSustainabilityCollector(facade, store, metrics.NewCollector(), cfg.SnapshotInterval, logger)
	go func() {
		if err := collector.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("sustainability collector stopped", zap.Error(err))
		}
	}()

	var events transport.EventStream
	if dispatcher != nil {
		events = dispatcher
		watcher := service.NewTipWatcher(facade, dispatcher, cfg.TipPollInterval, logger)
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("tip watcher stopped", zap.Error(err))
			}
		}()
	}

	handler := transport.NewExplorerHandler(facade, collector, events, logger)

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(handler.Routes()),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// No write timeout: /api/events holds the response open.
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
