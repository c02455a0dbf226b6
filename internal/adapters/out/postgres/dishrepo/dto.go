// Package dishrepo persists dish aggregates in the "dishes" table through GORM.
package dishrepo

import "grubdash/internal/core/domain/model/dish"

// DishDTO is the row layout of a dish. CreatedAt records insertion time in
// nanoseconds and gives List its store order.
type DishDTO struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Price       int    `gorm:"not null"`
	ImageURL    string `gorm:"not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:nano;index"`
}

// TableName overrides GORM's default naming.
func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(d *dish.Dish) DishDTO {
	return DishDTO{
		ID:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	return dish.NewDish(dto.ID, dto.Name, dto.Description, dto.Price, dto.ImageURL)
}
