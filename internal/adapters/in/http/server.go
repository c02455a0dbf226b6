package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// DishService runs the dish pipelines.
type DishService interface {
	List(ctx context.Context) ([]*dish.Dish, error)
	Create(ctx context.Context, req pipeline.Request) (*dish.Dish, error)
	Read(ctx context.Context, req pipeline.Request) (*dish.Dish, error)
	Update(ctx context.Context, req pipeline.Request) (*dish.Dish, error)
	Delete(ctx context.Context, req pipeline.Request) error
}

// OrderService runs the order pipelines.
type OrderService interface {
	List(ctx context.Context) ([]*order.Order, error)
	Create(ctx context.Context, req pipeline.Request) (*order.Order, error)
	Read(ctx context.Context, req pipeline.Request) (*order.Order, error)
	Update(ctx context.Context, req pipeline.Request) (*order.Order, error)
	Delete(ctx context.Context, req pipeline.Request) error
}

// Server implements servers.ServerInterface on top of the resource handlers.
// Failures are returned to echo and rendered by HTTPErrorHandler.
type Server struct {
	dishes DishService
	orders OrderService
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server over the dish and order handlers.
func NewServer(dishes DishService, orders OrderService) *Server {
	return &Server{dishes: dishes, orders: orders}
}

// ListDishes handles GET /dishes.
func (s *Server) ListDishes(ctx echo.Context) error {
	all, err := s.dishes.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	response := make([]servers.Dish, 0, len(all))
	for _, d := range all {
		response = append(response, toDish(d))
	}
	return ctx.JSON(http.StatusOK, servers.DishListEnvelope{Data: response})
}

// CreateDish handles POST /dishes.
func (s *Server) CreateDish(ctx echo.Context) error {
	req, err := newRequest(ctx, "")
	if err != nil {
		return err
	}

	d, err := s.dishes.Create(ctx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.DishEnvelope{Data: toDish(d)})
}

// ReadDish handles GET /dishes/:dishId.
func (s *Server) ReadDish(ctx echo.Context, dishID servers.DishId) error {
	d, err := s.dishes.Read(ctx.Request().Context(), pipeline.NewRequest(dishID, pipeline.Payload{}))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.DishEnvelope{Data: toDish(d)})
}

// UpdateDish handles PUT /dishes/:dishId.
func (s *Server) UpdateDish(ctx echo.Context, dishID servers.DishId) error {
	req, err := newRequest(ctx, dishID)
	if err != nil {
		return err
	}

	d, err := s.dishes.Update(ctx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.DishEnvelope{Data: toDish(d)})
}

// DeleteDish handles DELETE /dishes/:dishId, which is always rejected.
func (s *Server) DeleteDish(ctx echo.Context, dishID servers.DishId) error {
	return s.dishes.Delete(ctx.Request().Context(), pipeline.NewRequest(dishID, pipeline.Payload{}))
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	all, err := s.orders.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	response := make([]servers.Order, 0, len(all))
	for _, o := range all {
		response = append(response, toOrder(o))
	}
	return ctx.JSON(http.StatusOK, servers.OrderListEnvelope{Data: response})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	req, err := newRequest(ctx, "")
	if err != nil {
		return err
	}

	o, err := s.orders.Create(ctx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.OrderEnvelope{Data: toOrder(o)})
}

// ReadOrder handles GET /orders/:orderId.
func (s *Server) ReadOrder(ctx echo.Context, orderID servers.OrderId) error {
	o, err := s.orders.Read(ctx.Request().Context(), pipeline.NewRequest(orderID, pipeline.Payload{}))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.OrderEnvelope{Data: toOrder(o)})
}

// UpdateOrder handles PUT /orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context, orderID servers.OrderId) error {
	req, err := newRequest(ctx, orderID)
	if err != nil {
		return err
	}

	o, err := s.orders.Update(ctx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.OrderEnvelope{Data: toOrder(o)})
}

// DeleteOrder handles DELETE /orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	if err := s.orders.Delete(ctx.Request().Context(), pipeline.NewRequest(orderID, pipeline.Payload{})); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// newRequest reads the body once and parses its { "data": ... } envelope.
func newRequest(ctx echo.Context, routeID string) (pipeline.Request, error) {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return pipeline.Request{}, pipeline.BadRequest("Invalid request body", err)
	}

	payload, err := pipeline.ParseEnvelope(body)
	if err != nil {
		return pipeline.Request{}, err
	}
	return pipeline.NewRequest(routeID, payload), nil
}

func logUnexpected(ctx echo.Context, logger *slog.Logger, err error) {
	logger.ErrorContext(ctx.Request().Context(), "Unexpected request failure",
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"error", err,
	)
}
