package http

import (
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/generated/servers"
)

func toDish(d *dish.Dish) servers.Dish {
	return servers.Dish{
		Id:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageUrl:    d.ImageURL(),
	}
}

func toOrder(o *order.Order) servers.Order {
	items := o.Items()
	dishes := make([]servers.OrderDish, 0, len(items))
	for _, item := range items {
		dishes = append(dishes, toOrderDish(item))
	}

	return servers.Order{
		Id:           o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       servers.OrderStatus(o.Status()),
		Dishes:       dishes,
	}
}

// toOrderDish leaves out snapshot fields the client never sent.
func toOrderDish(item order.LineItem) servers.OrderDish {
	snapshot := item.Dish()
	return servers.OrderDish{
		Id:          optional(snapshot.ID),
		Name:        optional(snapshot.Name),
		Description: optional(snapshot.Description),
		ImageUrl:    optional(snapshot.ImageURL),
		Price:       optional(snapshot.Price),
		Quantity:    item.Quantity(),
	}
}

func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
