package domain

import "time"

// Category описывает категорию продукта
type Category struct {
	ID        int64
	Name      string
	Slug      string
	ImageKey  string
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsActive  bool
}

func NewCategory(name, slug, imageKey string) *Category {
	return &Category{
		Name:     name,
		Slug:     slug,
		ImageKey: imageKey,
	}
}
