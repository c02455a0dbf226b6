package dishrepo

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDishRepository implements ports.DishRepository using GORM.
type GormDishRepository struct {
	db *gorm.DB
}

// NewGormDishRepository creates a dish repository over db.
func NewGormDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{db: db}
}

// List returns every dish in insertion order.
func (r *GormDishRepository) List(ctx context.Context) ([]*dish.Dish, error) {
	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	dishes := make([]*dish.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}

// Add inserts a new dish.
func (r *GormDishRepository) Add(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a dish by id.
func (r *GormDishRepository) Get(ctx context.Context, id string) (*dish.Dish, error) {
	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id)
		}
		return nil, err
	}
	return toDomain(dto)
}

// Update overwrites the mutable columns of an existing dish.
func (r *GormDishRepository) Update(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DishDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":        dto.Name,
			"description": dto.Description,
			"price":       dto.Price,
			"image_url":   dto.ImageURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", dto.ID)
	}
	return nil
}
