package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "laundry-admin/internal/app"
	"laundry-admin/internal/handlers/rest/filter_options_get"
	"laundry-admin/internal/handlers/rest/filters_apply_post"
	"laundry-admin/internal/handlers/rest/filters_put"
	"laundry-admin/internal/handlers/rest/filters_reset_post"
	"laundry-admin/internal/handlers/rest/healthcheck_head"
	"laundry-admin/internal/handlers/rest/order_status_put"
	"laundry-admin/internal/handlers/rest/orders_get"
	"laundry-admin/internal/handlers/rest/ping_get"
	"laundry-admin/internal/handlers/rest/view_mode_put"
	wshandler "laundry-admin/internal/handlers/ws"
	"laundry-admin/internal/pkg/config"
	"laundry-admin/internal/pkg/dotenv"
	"laundry-admin/internal/pkg/kafka"
	metrics_system "laundry-admin/internal/pkg/metrics"
	"laundry-admin/internal/pkg/middlewares/graceful_shutdown"
	"laundry-admin/internal/pkg/middlewares/metrics"
	"laundry-admin/internal/pkg/middlewares/rate_limiter"
	"laundry-admin/internal/pkg/middlewares/timeout"
	"laundry-admin/internal/pkg/postgres"
	"laundry-admin/pkg/logger"
	"laundry-admin/pkg/logger/zap_adapter"
	"laundry-admin/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting laundry-admin application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	go businessApp.Hub.Run(ongoingCtx)

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// kafka consumer
	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	consumer, err := kafka.NewConsumer(
		ctx,
		log,
		&cfg.Kafka,
		brokers,
		cfg.Kafka.ConsumerGroup,
		[]string{cfg.Kafka.Topic},
		businessApp.KafkaHandler,
	)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}

	consumerErr := make(chan error, 1)
	go func() {
		defer close(consumerErr)

		runLog.With(
			logger.NewField("brokers", brokers),
			logger.NewField("topic", cfg.Kafka.Topic),
			logger.NewField("group", cfg.Kafka.ConsumerGroup),
		).Info("Kafka consumer starting")

		if err := consumer.Start(ongoingCtx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
				runLog.Info("Kafka consumer stopped gracefully")
			} else {
				consumerErr <- err
			}
		}
	}()
	// kafka consumer

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-consumerErr:
		return fmt.Errorf("consumer: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()

	// Гасим таймер подсветки, чтобы он не стрелял после остановки хаба.
	businessApp.ViewEngine.Close()

	if err := consumer.Close(); err != nil {
		runLog.With(logger.NewField("error", err)).Error("Failed to close Kafka consumer")
	}

	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	// Вебсокет живёт дольше любого request timeout, поэтому мимо middleware.
	router.Handle("/ws", wshandler.NewHandler(log, app.Hub)).Methods("GET")

	api := router.PathPrefix("/").Subrouter()

	api.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	api.Use(timeout.Middleware(cfg.RequestTimeout))
	api.Use(metrics.Middleware(log))
	api.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	api.Handle("/metrics", promhttp.Handler())

	api.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	api.Handle("/ping", ping_get.New(log)).Methods("GET")

	api.Handle("/orders", orders_get.New(log, app.ServiceView, app.Formatter)).Methods("GET")
	api.Handle("/orders/filter-options", filter_options_get.New(log, app.ServiceView)).Methods("GET")
	api.Handle("/orders/{id}/status", order_status_put.New(log, app.ServiceOrders)).Methods("PUT")

	api.Handle("/view/mode", view_mode_put.New(log, app.ServiceView)).Methods("PUT")
	api.Handle("/view/filters", filters_put.New(log, app.ServiceView)).Methods("PUT")
	api.Handle("/view/filters/apply", filters_apply_post.New(log, app.ServiceView)).Methods("POST")
	api.Handle("/view/filters/reset", filters_reset_post.New(log, app.ServiceView)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
