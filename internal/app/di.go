package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	backendclient "github.com/you-humble/field-orders/internal/client/http/backend/v1"
	"github.com/you-humble/field-orders/internal/config"
	envconfig "github.com/you-humble/field-orders/internal/config/env"
	"github.com/you-humble/field-orders/internal/converter"
	"github.com/you-humble/field-orders/internal/repository/order/local"
	orderremote "github.com/you-humble/field-orders/internal/repository/order/remote"
	productmongo "github.com/you-humble/field-orders/internal/repository/product/mongo"
	productremote "github.com/you-humble/field-orders/internal/repository/product/remote"
	productstatic "github.com/you-humble/field-orders/internal/repository/product/static"
	"github.com/you-humble/field-orders/internal/repository/status"
	storeremote "github.com/you-humble/field-orders/internal/repository/store/remote"
	storestatic "github.com/you-humble/field-orders/internal/repository/store/static"
	"github.com/you-humble/field-orders/internal/service/catalog"
	"github.com/you-humble/field-orders/internal/service/export"
	service "github.com/you-humble/field-orders/internal/service/order"
	ordproducer "github.com/you-humble/field-orders/internal/service/producer/order"
	storesvc "github.com/you-humble/field-orders/internal/service/store"
	"github.com/you-humble/field-orders/internal/storage/file"
	"github.com/you-humble/field-orders/internal/storage/memory"
	pgstorage "github.com/you-humble/field-orders/internal/storage/postgres"
	redisstorage "github.com/you-humble/field-orders/internal/storage/redis"
	"github.com/you-humble/field-orders/internal/storage/serial"
	cathttp "github.com/you-humble/field-orders/internal/transport/http/catalog/v1"
	"github.com/you-humble/field-orders/internal/transport/http/health"
	ordhttp "github.com/you-humble/field-orders/internal/transport/http/order/v1"
	storehttp "github.com/you-humble/field-orders/internal/transport/http/store/v1"
	"github.com/you-humble/field-orders/platform/closer"
	"github.com/you-humble/field-orders/platform/db/migrator"
	"github.com/you-humble/field-orders/platform/kafka"
	"github.com/you-humble/field-orders/platform/kafka/producer"
	"github.com/you-humble/field-orders/platform/logger"
)

// KVStore is the key/value contract shared by the local order repository and
// the stock status overlay.
type KVStore interface {
	local.KVStore
}

// BackendClient is everything the remote repositories need from the REST
// backend.
type BackendClient interface {
	orderremote.BackendClient
	productremote.BackendClient
	storeremote.BackendClient
}

type OrderService interface {
	ordhttp.OrderService
	export.OrderReader
}

type CatalogService interface {
	cathttp.CatalogService
	service.ProductCatalog
}

type StoreService interface {
	storehttp.StoreService
	service.StoreDirectory
}

type Handler interface {
	RegisterRoutes(r chi.Router)
}

type di struct {
	redisClient *redis.Client
	dbPool      *pgxpool.Pool
	migrator    *migrator.Migrator
	mongo       *mongo.Client
	products    *mongo.Collection

	kvStore     KVStore
	statusStore KVStore
	queue       *serial.Queue

	backendClient BackendClient

	orderRepository   service.OrderRepository
	statusRepository  catalog.StatusRepository
	productSource     catalog.ProductSource
	storeRepository   storesvc.StoreRepository

	syncProducer       sarama.SyncProducer
	orderEventProducer kafka.Producer
	orderProducer      service.OrderProducer

	catalogService CatalogService
	storeService   StoreService
	orderService   OrderService
	exportService  ordhttp.ExportService

	orderHandler   Handler
	catalogHandler Handler
	storeHandler   Handler

	healthChecks map[string]health.Check

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) RedisClient(ctx context.Context) *redis.Client {
	if d.redisClient == nil {
		cfg := config.C().Redis

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		closer.AddNamed("Redis Client",
			func(ctx context.Context) error {
				return client.Close()
			})

		if err := client.Ping(ctx).Err(); err != nil {
			panic(fmt.Sprintf("failed to ping redis: %v\n", err))
		}

		d.redisClient = client
	}

	return d.redisClient
}

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

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(config.C().Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping mongodb: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) ProductsCollection(ctx context.Context) *mongo.Collection {
	if d.products == nil {
		cfg := config.C().Mongo

		coll := d.MongoDB(ctx).
			Database(cfg.DatabaseName()).
			Collection(cfg.ProductsCollection())

		if err := productmongo.EnsureIndexes(ctx, coll); err != nil {
			panic(fmt.Sprintf("failed to create product indexes: %v\n", err))
		}

		d.products = coll
	}

	return d.products
}

// KVStore picks the order storage backend. The remote backend keeps orders on
// the server, so it has no local store.
func (d *di) KVStore(ctx context.Context) KVStore {
	if d.kvStore == nil {
		switch config.C().Storage.Backend() {
		case envconfig.BackendMemory:
			d.kvStore = memory.NewStorage()
		case envconfig.BackendRedis:
			d.kvStore = redisstorage.NewStorage(d.RedisClient(ctx), config.C().Redis.KeyPrefix())
		case envconfig.BackendPostgres:
			if err := d.Migrator(ctx).Up(ctx); err != nil {
				panic(fmt.Sprintf("failed to apply migrations: %v\n", err))
			}
			d.kvStore = pgstorage.NewStorage(d.DBPool(ctx))
		default:
			d.kvStore = d.fileStore()
		}
	}

	return d.kvStore
}

// StatusStore holds stock overrides. They are device local even when orders
// live on the remote backend.
func (d *di) StatusStore(ctx context.Context) KVStore {
	if d.statusStore == nil {
		if config.C().Storage.Backend() == envconfig.BackendRemote {
			d.statusStore = d.fileStore()
		} else {
			d.statusStore = d.KVStore(ctx)
		}
	}

	return d.statusStore
}

func (d *di) fileStore() KVStore {
	s, err := file.NewStorage(config.C().Storage.FileDir())
	if err != nil {
		panic(fmt.Sprintf("failed to open file storage: %v\n", err))
	}
	return s
}

func (d *di) WriteQueue(_ context.Context) *serial.Queue {
	if d.queue == nil {
		q := serial.NewQueue(config.C().Server.StoreWriteTimeout())
		closer.AddNamed("Write Queue", q.Close)

		d.queue = q
	}

	return d.queue
}

func (d *di) BackendClient(_ context.Context) BackendClient {
	if d.backendClient == nil {
		cfg := config.C().API

		d.backendClient = backendclient.NewClient(cfg.BaseURL(), cfg.Version(), cfg.Timeout())
	}

	return d.backendClient
}

func (d *di) OrderRepository(ctx context.Context) service.OrderRepository {
	if d.orderRepository == nil {
		loc := config.C().Storage.Location()

		if config.C().Storage.Backend() == envconfig.BackendRemote {
			d.orderRepository = orderremote.NewOrderRepository(d.BackendClient(ctx), loc, config.C().API.PageSize())
		} else {
			d.orderRepository = local.NewOrderRepository(d.KVStore(ctx), d.WriteQueue(ctx), loc)
		}
	}

	return d.orderRepository
}

func (d *di) StatusRepository(ctx context.Context) catalog.StatusRepository {
	if d.statusRepository == nil {
		d.statusRepository = status.NewStatusRepository(d.StatusStore(ctx), d.WriteQueue(ctx))
	}

	return d.statusRepository
}

func (d *di) ProductSource(ctx context.Context) catalog.ProductSource {
	if d.productSource == nil {
		switch config.C().Catalog.Source() {
		case envconfig.CatalogRemote:
			d.productSource = productremote.NewProductRepository(
				d.BackendClient(ctx),
				config.C().API.PageSize(),
			)
		case envconfig.CatalogMongo:
			repo := productmongo.NewProductRepository(d.ProductsCollection(ctx))

			seed, err := productstatic.NewProductRepository()
			if err != nil {
				panic(fmt.Sprintf("failed to load bundled catalog: %v\n", err))
			}
			if err := productmongo.ProductsBootstrap(ctx, repo, seed.All()); err != nil {
				panic(fmt.Sprintf("failed to seed product catalog: %v\n", err))
			}

			d.productSource = repo
		default:
			repo, err := productstatic.NewProductRepository()
			if err != nil {
				panic(fmt.Sprintf("failed to load bundled catalog: %v\n", err))
			}
			d.productSource = repo
		}
	}

	return d.productSource
}

func (d *di) StoreRepository(ctx context.Context) storesvc.StoreRepository {
	if d.storeRepository == nil {
		if config.C().Storage.Backend() == envconfig.BackendRemote {
			d.storeRepository = storeremote.NewStoreRepository(
				d.BackendClient(ctx),
				config.C().API.PageSize(),
			)
		} else {
			repo, err := storestatic.NewStoreRepository()
			if err != nil {
				panic(fmt.Sprintf("failed to load bundled stores: %v\n", err))
			}
			d.storeRepository = repo
		}
	}

	return d.storeRepository
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C().Kafka

		p, err := sarama.NewSyncProducer(
			cfg.Brokers(),
			cfg.OrderEventsProducerConfig(),
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

func (d *di) OrderEventProducer(ctx context.Context) kafka.Producer {
	if d.orderEventProducer == nil {
		if !config.C().Kafka.Enabled() {
			d.orderEventProducer = kafka.NopProducer()
			return d.orderEventProducer
		}

		d.orderEventProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.OrderEventsTopic(),
			logger.L(),
		)
	}

	return d.orderEventProducer
}

func (d *di) OrderProducer(ctx context.Context) service.OrderProducer {
	if d.orderProducer == nil {
		d.orderProducer = ordproducer.NewOrderProducer(
			d.OrderEventProducer(ctx),
			converter.NewKafkaConverter(),
		)
	}

	return d.orderProducer
}

func (d *di) CatalogService(ctx context.Context) CatalogService {
	if d.catalogService == nil {
		d.catalogService = catalog.NewCatalogService(
			d.ProductSource(ctx),
			d.StatusRepository(ctx),
			config.C().Server.StoreReadTimeout(),
			config.C().Server.StoreWriteTimeout(),
		)
	}

	return d.catalogService
}

func (d *di) StoreService(ctx context.Context) StoreService {
	if d.storeService == nil {
		d.storeService = storesvc.NewStoreService(
			d.StoreRepository(ctx),
			config.C().Server.StoreReadTimeout(),
		)
	}

	return d.storeService
}

func (d *di) OrderService(ctx context.Context) OrderService {
	if d.orderService == nil {
		d.orderService = service.NewOrderService(
			d.OrderRepository(ctx),
			d.StoreService(ctx),
			d.CatalogService(ctx),
			d.OrderProducer(ctx),
			config.C().Server.StoreReadTimeout(),
			config.C().Server.StoreWriteTimeout(),
		)
	}

	return d.orderService
}

func (d *di) ExportService(ctx context.Context) ordhttp.ExportService {
	if d.exportService == nil {
		d.exportService = export.NewExportService(
			d.OrderService(ctx),
			config.C().Export.Directory(),
			config.C().Storage.Location(),
		)
	}

	return d.exportService
}

func (d *di) OrderHandler(ctx context.Context) Handler {
	if d.orderHandler == nil {
		d.orderHandler = ordhttp.NewOrderHandler(d.OrderService(ctx), d.ExportService(ctx))
	}

	return d.orderHandler
}

func (d *di) CatalogHandler(ctx context.Context) Handler {
	if d.catalogHandler == nil {
		d.catalogHandler = cathttp.NewCatalogHandler(d.CatalogService(ctx))
	}

	return d.catalogHandler
}

func (d *di) StoreHandler(ctx context.Context) Handler {
	if d.storeHandler == nil {
		d.storeHandler = storehttp.NewStoreHandler(d.StoreService(ctx))
	}

	return d.storeHandler
}

// HealthChecks pings only the connections this configuration opened.
func (d *di) HealthChecks(_ context.Context) map[string]health.Check {
	if d.healthChecks == nil {
		checks := make(map[string]health.Check)

		if d.redisClient != nil {
			client := d.redisClient
			checks["redis"] = func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			}
		}
		if d.dbPool != nil {
			pool := d.dbPool
			checks["postgres"] = pool.Ping
		}
		if d.mongo != nil {
			client := d.mongo
			checks["mongo"] = func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			}
		}

		d.healthChecks = checks
	}

	return d.healthChecks
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
