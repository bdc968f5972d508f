package converter

import (
	"github.com/matbakh-tech/go-backend/internal/domain"
	"github.com/matbakh-tech/go-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter struct{}

func NewProductConverter() ProductConverter { return ProductConverter{} }

func (ProductConverter) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:              entity.ID,
		CategoryID:      entity.CategoryID,
		Name:            entity.Name,
		Description:     entity.Description,
		Price:           entity.Price,
		PriceUnit:       string(entity.PriceUnit),
		PriceUnitAmount: entity.PriceUnitAmount,
		ImageKey:        entity.ImageKey,
		IsPopular:       entity.IsPopular,
		CreatedAt:       entity.CreatedAt,
		UpdatedAt:       entity.UpdatedAt,
		IsArchived:      entity.IsArchived,
	}
}

func (ProductConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:              model.ID,
		CategoryID:      model.CategoryID,
		Name:            model.Name,
		Description:     model.Description,
		Price:           model.Price,
		PriceUnit:       domain.PriceUnit(model.PriceUnit),
		PriceUnitAmount: model.PriceUnitAmount,
		ImageKey:        model.ImageKey,
		IsPopular:       model.IsPopular,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
		IsArchived:      model.IsArchived,
	}
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter struct{}

func NewCategoryConverter() CategoryConverter { return CategoryConverter{} }

func (CategoryConverter) ToEntity(model *CategoryModel) *domain.Category {
	return &domain.Category{
		ID:        model.ID,
		Name:      model.Name,
		Slug:      model.Slug,
		ImageKey:  model.ImageKey,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		IsActive:  model.IsActive,
	}
}

// DeliveryZoneConverter преобразует сущности DeliveryZone между domain и моделью PostgreSQL.
type DeliveryZoneConverter struct{}

func NewDeliveryZoneConverter() DeliveryZoneConverter { return DeliveryZoneConverter{} }

func (DeliveryZoneConverter) ToEntity(model *DeliveryZoneModel) *domain.DeliveryZone {
	return &domain.DeliveryZone{
		ID:        model.ID,
		Name:      model.Name,
		Price:     model.Price,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter struct{}

func NewOutboxEventConverter() OutboxEventConverter { return OutboxEventConverter{} }

func (OutboxEventConverter) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		Key:         entity.Key,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		Key:         model.Key,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		result = append(result, c.ToEntity(model))
	}

	return result
}
