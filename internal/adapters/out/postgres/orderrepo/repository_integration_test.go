package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/adapters/out/postgres/orderrepo"
	"grubdash/internal/adapters/out/seed"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite runs GormOrderRepository against a real
// PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines, orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSeedLoad_Twice_SkipsStoredOrders() {
	ctx := context.Background()
	f := seed.File{Orders: []seed.Order{{
		ID:           "seeded",
		DeliverTo:    "Rune St",
		MobileNumber: "555-0100",
		Status:       "preparing",
		Dishes:       []seed.OrderDish{{ID: "d1", Name: "Taco", Price: 3, Quantity: 2}},
	}}}

	first, err := seed.Load(ctx, f, memory.NewDishRepository(), suite.repository)
	suite.Require().NoError(err)
	suite.Equal(1, first.Orders)

	second, err := seed.Load(ctx, f, memory.NewDishRepository(), suite.repository)
	suite.Require().NoError(err)
	suite.Equal(seed.Result{Skipped: 1}, second)

	all, err := suite.repository.List(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsLines() {
	ctx := context.Background()
	o := suite.newOrder("o1", order.Pending, 2, 5)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, "o1")
	suite.Require().NoError(err)
	suite.Equal("Rune St", got.DeliverTo())
	suite.Equal("555-0100", got.MobileNumber())
	suite.Equal(order.Pending, got.Status())
	suite.Require().Len(got.Items(), 2)
	suite.Equal(2, got.Items()[0].Quantity())
	suite.Equal(5, got.Items()[1].Quantity())
	suite.Equal(order.DishSnapshot{
		ID:          "d0",
		Name:        "Taco",
		Description: "Crunchy",
		ImageURL:    "taco.png",
		Price:       3,
	}, got.Items()[0].Dish())
	suite.assertLineCount(2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Rejected() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestList_ReturnsInsertionOrder() {
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(id, order.Pending, 1)))
	}

	all, err := suite.repository.List(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("c", all[0].ID())
	suite.Equal("a", all[1].ID())
	suite.Equal("b", all[2].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), "missing")

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLines() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("o1", order.Pending, 1, 2, 3)))

	o, err := suite.repository.Get(ctx, "o1")
	suite.Require().NoError(err)
	item, err := order.NewLineItem(order.DishSnapshot{ID: "d9"}, 9)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Replace("New St", "555-0199", order.OutForDelivery, []order.LineItem{item}))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, "o1")
	suite.Require().NoError(err)
	suite.Equal("New St", got.DeliverTo())
	suite.Equal(order.OutForDelivery, got.Status())
	suite.Require().Len(got.Items(), 1)
	suite.Equal("d9", got.Items()[0].Dish().ID)
	suite.Equal(9, got.Items()[0].Quantity())
	suite.assertLineCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.newOrder("ghost", order.Pending, 1))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertLineCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_DeletesOrderAndLines() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("o1", order.Pending, 1, 1)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("o2", order.Pending, 1)))

	suite.Require().NoError(suite.repository.Remove(ctx, "o1"))

	suite.assertOrderCount(1)
	suite.assertLineCount(1)
	_, err := suite.repository.Get(ctx, "o1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Remove(context.Background(), "missing")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(id string, status order.Status, quantities ...int) *order.Order {
	items := make([]order.LineItem, 0, len(quantities))
	for i, q := range quantities {
		item, err := order.NewLineItem(order.DishSnapshot{
			ID:          "d" + string(rune('0'+i)),
			Name:        "Taco",
			Description: "Crunchy",
			ImageURL:    "taco.png",
			Price:       3,
		}, q)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	o, err := order.RestoreOrder(id, "Rune St", "555-0100", status, items)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertLineCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
