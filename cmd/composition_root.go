// Package cmd holds the configuration and the composition root that wire the
// dispatch service together.
package cmd

import (
	"fmt"
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/geo"
	"dispatch/internal/adapters/out/inmemory"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot builds the use case handlers, jobs and HTTP server from
// the configured adapters.
type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	locker     ports.Locker
	publisher  ports.EventPublisher
	geoClient  ports.GeoClient
}

// NewCompositionRoot wires the adapters. redisClient may be nil, in which case
// locks and the event sink fall back to their in-process versions.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, redisClient *goredis.Client, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewUnitOfWorkFactory(gormDB),
	}

	if redisClient != nil {
		c.locker = redis.NewLocker(redisClient)
		c.publisher = redis.NewStreamPublisher(redisClient, cfg.OrderEventsStream)
	} else {
		logger.Warn("redis is not configured, using in-process locks and log event sink")
		c.locker = inmemory.NewLocker()
		c.publisher = inmemory.NewLogPublisher(logger)
	}

	geoClient, err := newGeoClient(cfg, redisClient, logger)
	if err != nil {
		return nil, err
	}
	c.geoClient = geoClient

	return c, nil
}

func newGeoClient(cfg Config, redisClient *goredis.Client, logger *slog.Logger) (ports.GeoClient, error) {
	var client ports.GeoClient = geo.NewRandomClient()

	if cfg.GoogleMapsAPIKey != "" {
		bounds, err := geo.ParseBounds(cfg.GeoBounds)
		if err != nil {
			return nil, fmt.Errorf("GEO_BOUNDS: %w", err)
		}
		google, err := geo.NewGoogleClientWithKey(cfg.GoogleMapsAPIKey, bounds)
		if err != nil {
			return nil, fmt.Errorf("geocoding client: %w", err)
		}
		client = google

		if redisClient != nil {
			client = geo.NewCachedClient(google, redisClient, cfg.GeoCacheTTL, logger)
		}
	} else {
		logger.Warn("GOOGLE_MAPS_API_KEY is empty, order streets resolve to random locations")
	}

	return client, nil
}

// CreateAddCourierStorageCommandHandler returns the handler behind POST storage-places.
func (c *CompositionRoot) CreateAddCourierStorageCommandHandler() commands.AddCourierStorageCommandHandler {
	return commands.NewAddCourierStorageCommandHandler(c.courierUoWFactory())
}

// CreateCreateCourierCommandHandler returns the handler behind POST couriers.
func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
}

// CreateCreateOrderCommandHandler returns the handler behind POST orders.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.geoClient)
}

// CreateMoveCouriersCommandHandler returns the handler of the move tick.
func (c *CompositionRoot) CreateMoveCouriersCommandHandler() commands.MoveCouriersCommandHandler {
	return commands.NewMoveCouriersCommandHandler(c.uoWFactory())
}

// CreateAssignOrdersCommandHandler returns the handler of the assign tick.
func (c *CompositionRoot) CreateAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	return commands.NewAssignOrdersCommandHandler(c.uoWFactory(), services.NewOrderDispatcher())
}

// CreatePublishOutboxCommandHandler returns the handler of the outbox relay.
func (c *CompositionRoot) CreatePublishOutboxCommandHandler() commands.PublishOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishOutboxCommandHandler(f, c.publisher)
}

// CreateGetAllCouriersQueryHandler returns the handler behind GET couriers.
func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

// CreateGetUncompletedOrdersQueryHandler returns the handler behind GET orders/active.
func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

// CreateJobManager schedules the assign, move and relay jobs. The jobs are not started.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	assign, err := jobs.NewAssignOrdersJob(
		c.CreateAssignOrdersCommandHandler(),
		c.cfg.AssignBatchSize,
		c.schedule(c.cfg.AssignSchedule),
		c.locker,
		c.logger,
	)
	if err != nil {
		return nil, err
	}

	move := jobs.NewMoveCouriersJob(
		c.CreateMoveCouriersCommandHandler(),
		c.schedule(c.cfg.MoveSchedule),
		c.locker,
		c.logger,
	)

	relay, err := jobs.NewOutboxRelayJob(
		c.CreatePublishOutboxCommandHandler(),
		c.cfg.OutboxBatchSize,
		c.schedule(c.cfg.OutboxSchedule),
		c.locker,
		c.logger,
	)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(assign, move, relay), nil
}

// CreateHTTPServer returns the echo instance serving the REST API.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateCourier:        c.CreateCreateCourierCommandHandler(),
		AddCourierStorage:    c.CreateAddCourierStorageCommandHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		GetAllCouriers:       c.CreateGetAllCouriersQueryHandler(),
		GetUncompletedOrders: c.CreateGetUncompletedOrdersQueryHandler(),
	})
	return httpin.NewRouter(server, c.logger)
}

func (c *CompositionRoot) schedule(spec string) jobs.Schedule {
	return jobs.Schedule{Spec: spec, LockTTL: c.cfg.TickLockTTL}
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// FuncCourierUoWFactory adapts a function to commands.CourierUoWFactory.
type FuncCourierUoWFactory func() commands.CourierUoW

// Create calls f.
func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

// FuncOrderUoWFactory adapts a function to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create calls f.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncOutboxUoWFactory adapts a function to commands.OutboxUoWFactory.
type FuncOutboxUoWFactory func() commands.OutboxUoW

// Create calls f.
func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

// FuncUoWFactory adapts a function to commands.UoWFactory.
type FuncUoWFactory func() commands.UoW

// Create calls f.
func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
