package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Christiandike/celo-mondo/internal/audit"
	"github.com/Christiandike/celo-mondo/internal/celo"
	"github.com/Christiandike/celo-mondo/internal/config"
	"github.com/Christiandike/celo-mondo/internal/core"
	"github.com/Christiandike/celo-mondo/internal/db"
	"github.com/Christiandike/celo-mondo/internal/guard"
	"github.com/Christiandike/celo-mondo/internal/http/handler"
	"github.com/Christiandike/celo-mondo/internal/http/handler/middleware"
	"github.com/Christiandike/celo-mondo/internal/http/payload"
	"github.com/Christiandike/celo-mondo/internal/http/server"
	"github.com/Christiandike/celo-mondo/internal/metrics"
	"github.com/Christiandike/celo-mondo/internal/repository"
	"github.com/Christiandike/celo-mondo/internal/telemetry"
	"github.com/Christiandike/celo-mondo/pkg/jwt"
	"github.com/Christiandike/celo-mondo/pkg/log"
	"github.com/Christiandike/celo-mondo/pkg/txwatch"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

const serviceName = "celo-mondo"

func Start() error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	ctx := context.Background()

	tracerShutdown, err := telemetry.InitTracer(ctx, serviceName, config.OtelEndpoint)
	if err != nil {
		logger.Errorw("tracing disabled, collector unreachable", "error", err)
	}
	defer func() {
		if sdErr := tracerShutdown(context.Background()); sdErr != nil {
			logger.Errorw("failed to shut down tracer", "error", sdErr)
		}
	}()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService(serviceName, []byte(config.JWTSecret))

	// repository
	repo := repository.NewActivationRepository(dbConn)

	err = repo.MigrateAndSeed(ctx)
	if err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("celo node connection failed", "error", err)
		return err
	}

	nodeService, err := celo.NewNodeService(client, config.ElectionContract, config.RelayerKey)
	if err != nil {
		logger.Errorw("failed to create node service", "error", err)
		return err
	}

	// metrics
	relayerMetrics := metrics.NewRelayerMetrics()
	if config.MetricsAddr != "" {
		metrics.Start(logger, config.MetricsAddr, relayerMetrics.Registry)
	}

	// relay guard
	var relayGuard core.RelayGuard = guard.NoopGuard{}
	if config.RedisAddr != "" {
		redisGuard, err := guard.NewRedisGuard(config.RedisAddr, 0)
		if err != nil {
			logger.Errorw("failed to connect to redis", "error", err)
			return err
		}
		defer redisGuard.Close()
		relayGuard = redisGuard
	}

	// audit stream
	var auditPublisher core.AuditPublisher = audit.NoopPublisher{}
	if len(config.KafkaBrokers) > 0 {
		publisher, err := audit.NewPublisher(audit.PublisherConfig{
			Brokers: config.KafkaBrokers,
			Topic:   config.KafkaTopic,
		})
		if err != nil {
			logger.Errorw("failed to create audit publisher", "error", err)
			return err
		}
		defer publisher.Close()
		auditPublisher = publisher
	}

	// confirmation tracker; the callbacks close over the relayer built below
	// and only fire after a transaction has been submitted through it
	var relayer *core.Relayer
	watcher := txwatch.NewWatcher(client,
		txwatch.WithLogger(logger),
		txwatch.WithOnConfirmed(func(c txwatch.Confirmation) {
			relayer.MarkActivationConfirmed(context.Background(), c.Hash.Hex())
		}),
		txwatch.WithOnFailed(func(c txwatch.Confirmation, failure error) {
			relayer.MarkActivationFailed(context.Background(), c.Hash.Hex(), failure)
		}))

	// relayer
	relayer = core.NewRelayer(
		logger,
		repo,
		jwtService,
		nodeService,
		watcher,
		relayGuard,
		auditPublisher,
		relayerMetrics)

	// handler
	mondoHlr := handler.NewMondoHandler(
		logger,
		payload.DecodeValidator{},
		relayer)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Activate, mondoHlr.HandleActivate)
	mux.HandleFunc(handler.Authenticate, mondoHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetActivations, mondoHlr.HandleGetActivations)
	mux.HandleFunc(handler.Health, mondoHlr.HandleHealth)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv, watcher)
}

func run(server *server.HTTPServer, watcher *txwatch.Watcher) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	// let in-flight receipt polls settle their records before exit
	watcher.Wait()

	return err
}
