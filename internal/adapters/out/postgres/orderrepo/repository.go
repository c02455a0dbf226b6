package orderrepo

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM. Writes that
// touch an order and its lines run in one transaction.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates an order repository over db.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// List returns every order with its lines, in insertion order.
func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withLines(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Add inserts the order row and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
}

// Get retrieves an order and its lines by id.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.withLines(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}
	return toDomain(dto)
}

// Update overwrites the order columns and replaces every line.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Updates(map[string]any{
				"deliver_to":    dto.DeliverTo,
				"mobile_number": dto.MobileNumber,
				"status":        dto.Status,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", dto.ID)
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderLineDTO{}).Error; err != nil {
			return err
		}
		return tx.Create(&dto.Lines).Error
	})
}

// Remove deletes an order and its lines.
func (r *GormOrderRepository) Remove(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&OrderLineDTO{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&OrderDTO{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", id)
		}
		return nil
	})
}

func (r *GormOrderRepository) withLines(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
