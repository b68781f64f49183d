//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"laundry-admin/internal/gateway/wordpress"
	"laundry-admin/internal/handlers/kafka-consumer/order_created"
	"laundry-admin/internal/handlers/rest/filter_options_get"
	"laundry-admin/internal/handlers/rest/filters_apply_post"
	"laundry-admin/internal/handlers/rest/filters_put"
	"laundry-admin/internal/handlers/rest/filters_reset_post"
	"laundry-admin/internal/handlers/rest/order_status_put"
	"laundry-admin/internal/handlers/rest/orders_get"
	"laundry-admin/internal/handlers/rest/view_mode_put"
	"laundry-admin/internal/handlers/tasks/orders_refresh"
	"laundry-admin/internal/handlers/ws"
	"laundry-admin/internal/pkg/config"
	"laundry-admin/internal/pkg/session"
	"laundry-admin/internal/pkg/timestamp"
	"laundry-admin/internal/repository/ordercache"
	ordersRepo "laundry-admin/internal/repository/orders"
	ordersService "laundry-admin/internal/service/orders"
	"laundry-admin/internal/service/orderview"

	"laundry-admin/pkg/background"
	"laundry-admin/pkg/logger"
	"laundry-admin/pkg/querier"
	"laundry-admin/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceOrders     ServiceOrders
	ServiceView       ServiceView
	ViewEngine        *orderview.Engine
	Formatter         *timestamp.Normalizer
	Hub               *ws.Hub
	KafkaHandler      *order_created.Handler
	BackgroundWorkers *background.Worker
}

type ServiceOrders interface {
	order_status_put.Service
}

type ServiceView interface {
	orders_get.Service
	view_mode_put.Service
	filters_put.Service
	filters_apply_post.Service
	filters_reset_post.Service
	filter_options_get.Service
}

// InitializeApplication собирает весь сервис (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrdersRepository,
		provideOrderCache,

		provideNormalizer,
		provideHub,
		provideViewEngine,

		provideHTTPClient,
		provideSessionStore,
		provideGateway,

		provideServiceOrders,
		provideKafkaHandler,

		provideOrdersRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrders), new(*ordersService.Service)),
		wire.Bind(new(ServiceView), new(*orderview.Engine)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrdersRepository(querier *querier.Querier, txManager *tx.Manager) *ordersRepo.Repository {
	return ordersRepo.New(querier, txManager)
}

func provideOrderCache() *ordercache.Store {
	return ordercache.New()
}

func provideNormalizer(log logger.Logger) *timestamp.Normalizer {
	return timestamp.New(log, timestamp.DisplayZone())
}

func provideHub(log logger.Logger) *ws.Hub {
	return ws.NewHub(log)
}

func provideViewEngine(
	log logger.Logger,
	cache *ordercache.Store,
	normalizer *timestamp.Normalizer,
	hub *ws.Hub,
) *orderview.Engine {
	return orderview.New(log, cache, normalizer, hub, nil, timestamp.DisplayZone())
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{
		Timeout: cfg.WordPress.RequestTimeout,
	}
}

func provideSessionStore(cfg *config.Config) session.Store {
	return session.NewMemory(session.Credentials{
		Nonce:  cfg.WordPress.Nonce,
		Cookie: cfg.WordPress.Cookie,
	})
}

func provideGateway(
	log logger.Logger,
	client *http.Client,
	cfg *config.Config,
	store session.Store,
) *wordpress.Gateway {
	return wordpress.New(log, client, cfg.WordPress.BaseURL, store)
}

func provideServiceOrders(
	log logger.Logger,
	gateway *wordpress.Gateway,
	cache *ordercache.Store,
	repository *ordersRepo.Repository,
	view *orderview.Engine,
) *ordersService.Service {
	return ordersService.New(log, gateway, cache, repository, view)
}

func provideKafkaHandler(
	log logger.Logger,
	service *ordersService.Service,
	view *orderview.Engine,
	hub *ws.Hub,
	cfg *config.Config,
) *order_created.Handler {
	return order_created.New(log, service, view, hub, cfg.Kafka.Handlers.OrderCreated.ProcessTimeout)
}

func provideOrdersRefreshTask(
	service *ordersService.Service,
	cfg *config.Config,
) *orders_refresh.OrdersRefresh {
	return orders_refresh.NewOrdersRefresh(service, time.Duration(cfg.Tasks.OrdersRefreshInterval))
}

func provideTaskList(
	ordersRefreshTask *orders_refresh.OrdersRefresh,
) []background.Task {
	return []background.Task{
		ordersRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
