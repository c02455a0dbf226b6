package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "grubdash/internal/adapters/in/http"
	"grubdash/internal/adapters/out/kafka"
	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/adapters/out/postgres"
	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/adapters/out/postgres/orderrepo"
	"grubdash/internal/adapters/out/seed"
	"grubdash/internal/core/application/dishes"
	"grubdash/internal/core/application/orders"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/ports"
	"grubdash/internal/jobs"
)

// CompositionRoot owns the long-lived dependencies of the process.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	dishRepo  ports.DishRepository
	orderRepo ports.OrderRepository

	dishesHandler *dishes.Handler
	ordersHandler *orders.Handler

	closers []func() error
}

// NewCompositionRoot opens the configured store and event publisher and loads
// the seed file. On error everything opened so far is closed again.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{cfg: cfg, logger: logger}
	if err := c.wire(ctx); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	return c, nil
}

func (c *CompositionRoot) wire(ctx context.Context) error {
	if err := c.openStorage(); err != nil {
		return err
	}
	publisher, err := c.openPublisher()
	if err != nil {
		return err
	}
	if err = c.loadSeed(ctx); err != nil {
		return err
	}

	ids := kernel.NewUUIDGenerator()
	c.dishesHandler = dishes.NewHandler(c.dishRepo, ids)
	c.ordersHandler = orders.NewHandler(c.orderRepo, ids,
		orders.WithEvents(publisher),
		orders.WithLogger(c.logger),
	)
	return nil
}

// DishesHandler returns the shared dish handler.
func (c *CompositionRoot) DishesHandler() *dishes.Handler {
	return c.dishesHandler
}

// OrdersHandler returns the shared order handler.
func (c *CompositionRoot) OrdersHandler() *orders.Handler {
	return c.ordersHandler
}

// NewServer creates the HTTP server over the shared handlers.
func (c *CompositionRoot) NewServer() *httpadapter.Server {
	return httpadapter.NewServer(c.dishesHandler, c.ordersHandler)
}

// NewJobManager creates the scheduled jobs.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.ordersHandler, c.cfg.BacklogReportSchedule, c.logger)
}

// Close releases the store and the publisher in reverse opening order.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) openStorage() error {
	if c.cfg.Storage != StoragePostgres {
		c.dishRepo = memory.NewDishRepository()
		c.orderRepo = memory.NewOrderRepository()
		c.logger.Info("Using in-memory storage")
		return nil
	}

	db, err := postgres.Open(postgres.Config{
		Host:     c.cfg.DBHost,
		Port:     c.cfg.DBPort,
		User:     c.cfg.DBUser,
		Password: c.cfg.DBPassword,
		Name:     c.cfg.DBName,
		SSLMode:  c.cfg.DBSslMode,
	})
	if err != nil {
		return err
	}
	c.closers = append(c.closers, func() error { return postgres.Close(db) })

	c.dishRepo = dishrepo.NewGormDishRepository(db)
	c.orderRepo = orderrepo.NewGormOrderRepository(db)
	c.logger.Info("Using PostgreSQL storage", "host", c.cfg.DBHost, "database", c.cfg.DBName)
	return nil
}

func (c *CompositionRoot) openPublisher() (ports.OrderEventPublisher, error) {
	publisher, err := kafka.NewOrderEventPublisher(kafka.NewClient(c.cfg.KafkaHost), c.cfg.KafkaOrderChangedTopic)
	if errors.Is(err, kafka.ErrDisabled) {
		c.logger.Info("Kafka is not configured, order events are discarded")
		return orders.DiscardEvents{}, nil
	}
	if err != nil {
		return nil, err
	}

	c.closers = append(c.closers, publisher.Close)
	c.logger.Info("Publishing order events", "topic", c.cfg.KafkaOrderChangedTopic)
	return publisher, nil
}

func (c *CompositionRoot) loadSeed(ctx context.Context) error {
	if c.cfg.SeedPath == "" {
		return nil
	}

	res, err := seed.LoadFile(ctx, c.cfg.SeedPath, c.dishRepo, c.orderRepo)
	if err != nil {
		return fmt.Errorf("loading seed data: %w", err)
	}
	c.logger.Info("Seed data loaded", "path", c.cfg.SeedPath, "dishes", res.Dishes, "orders", res.Orders, "skipped", res.Skipped)
	return nil
}
