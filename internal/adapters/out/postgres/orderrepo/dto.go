// Package orderrepo persists order aggregates through GORM. An order is stored as
// one "orders" row plus one "order_lines" row per line item, keyed by position.
package orderrepo

import "grubdash/internal/core/domain/model/order"

// OrderDTO is the row layout of an order. CreatedAt records insertion time in
// nanoseconds and gives List its store order.
type OrderDTO struct {
	ID           string         `gorm:"primaryKey"`
	DeliverTo    string         `gorm:"not null"`
	MobileNumber string         `gorm:"not null"`
	Status       string         `gorm:"not null;index"`
	CreatedAt    int64          `gorm:"autoCreateTime:nano;index"`
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one line item with its dish snapshot flattened into columns.
type OrderLineDTO struct {
	OrderID         string `gorm:"primaryKey"`
	Position        int    `gorm:"primaryKey;autoIncrement:false"`
	DishID          string
	DishName        string
	DishDescription string
	DishImageURL    string
	DishPrice       int
	Quantity        int `gorm:"not null"`
}

// TableName overrides GORM's default naming.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Lines:        linesFromDomain(o.ID(), o.Items()),
	}
}

func linesFromDomain(orderID string, items []order.LineItem) []OrderLineDTO {
	lines := make([]OrderLineDTO, 0, len(items))
	for i, item := range items {
		snapshot := item.Dish()
		lines = append(lines, OrderLineDTO{
			OrderID:         orderID,
			Position:        i,
			DishID:          snapshot.ID,
			DishName:        snapshot.Name,
			DishDescription: snapshot.Description,
			DishImageURL:    snapshot.ImageURL,
			DishPrice:       snapshot.Price,
			Quantity:        item.Quantity(),
		})
	}
	return lines
}

// toDomain rebuilds the aggregate. Lines must already be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		item, err := order.NewLineItem(order.DishSnapshot{
			ID:          line.DishID,
			Name:        line.DishName,
			Description: line.DishDescription,
			ImageURL:    line.DishImageURL,
			Price:       line.DishPrice,
		}, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, dto.DeliverTo, dto.MobileNumber, order.Status(dto.Status), items)
}
