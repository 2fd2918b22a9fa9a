package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/timeline/internal/clock"
	"github.com/zestagio/timeline/internal/config"
	"github.com/zestagio/timeline/internal/logger"
	messagesbackend "github.com/zestagio/timeline/internal/repositories/messages/backend"
	serverdebug "github.com/zestagio/timeline/internal/server-debug"
	postmessage "github.com/zestagio/timeline/internal/usecases/user/post-message"
)

var configPath = flag.String("config", "configs/config.toml", "Path to config file")

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() (errReturned error) {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.ParseAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	logger.MustInit(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithSentryEnv(cfg.Global.Env),
			logger.WithSentryDsn(cfg.Sentry.Dsn),
			logger.WithProductionMode(cfg.Global.IsProduction()),
		),
	)
	defer logger.Sync()

	lg := zap.L().Named("main")

	if cfg.Global.IsProduction() && cfg.Stores.PSQL.Debug {
		lg.Warn("psql client in the debug mode")
	}

	// Repositories.
	msgRepo, storage, err := messagesbackend.Open(ctx, cfg.Stores)
	if err != nil {
		return fmt.Errorf("open %s store: %v", cfg.Stores.Driver, err)
	}
	defer multierr.AppendInvoke(&errReturned, multierr.Close(storage))
	lg.Info("store opened", zap.String("driver", cfg.Stores.Driver))

	if cfg.Services.MsgProducer.Enabled {
		publishingRepo, producer, err := initPublishingRepo(cfg.Services.MsgProducer, msgRepo)
		if err != nil {
			return fmt.Errorf("init publishing repo: %v", err)
		}
		defer multierr.AppendInvoke(&errReturned, multierr.Close(producer))
		msgRepo = publishingRepo
	}

	// Usecases.
	postMessageUseCase, err := postmessage.New(postmessage.NewOptions(msgRepo, clock.System{}))
	if err != nil {
		return fmt.Errorf("create post message usecase: %v", err)
	}

	// Services.
	processor, err := initPostRequestsProcessor(cfg.Services.PostRequestsProcessor, postMessageUseCase)
	if err != nil {
		return fmt.Errorf("init post requests processor: %v", err)
	}

	// Servers.
	srvDebug, err := serverdebug.New(serverdebug.NewOptions(
		cfg.Servers.Debug.Addr,
		serverdebug.WithStats(processor),
	))
	if err != nil {
		return fmt.Errorf("init debug server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	// Run servers.
	eg.Go(func() error { return srvDebug.Run(ctx) })

	// Run services.
	eg.Go(func() error { return processor.Run(ctx) })

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
