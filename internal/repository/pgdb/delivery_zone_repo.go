package pgdb

import (
	"context"
	"errors"

	"github.com/matbakh-tech/go-backend/internal/domain"
	"github.com/matbakh-tech/go-backend/internal/repository/pgdb/converter"
	"github.com/matbakh-tech/go-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// DeliveryZoneRepo реализует репозиторий зон доставки поверх PostgreSQL.
type DeliveryZoneRepo struct {
	pool *pgxpool.Pool
	conv converter.DeliveryZoneConverter
}

func NewDeliveryZoneRepo(pool *pgxpool.Pool, conv converter.DeliveryZoneConverter) *DeliveryZoneRepo {
	return &DeliveryZoneRepo{pool: pool, conv: conv}
}

// Create вставляет новую зону доставки.
func (d *DeliveryZoneRepo) Create(ctx context.Context, zone *domain.DeliveryZone) (*domain.DeliveryZone, error) {
	query := `
		INSERT INTO delivery_zones (name, price)
		VALUES ($1, $2)
		RETURNING id, name, price, created_at, updated_at;
	`

	var model converter.DeliveryZoneModel
	if err := d.pool.QueryRow(ctx, query, zone.Name, zone.Price).Scan(
		&model.ID, &model.Name, &model.Price, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return d.conv.ToEntity(&model), nil
}

// Update заменяет имя и стоимость зоны доставки.
func (d *DeliveryZoneRepo) Update(ctx context.Context, zone *domain.DeliveryZone) (*domain.DeliveryZone, error) {
	query := `
		UPDATE delivery_zones
		SET name = $2, price = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, price, created_at, updated_at;
	`

	var model converter.DeliveryZoneModel
	if err := d.pool.QueryRow(ctx, query, zone.ID, zone.Name, zone.Price).Scan(
		&model.ID, &model.Name, &model.Price, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return d.conv.ToEntity(&model), nil
}

// Delete удаляет зону доставки. Заказы на зону не ссылаются, поэтому удаление жёсткое.
func (d *DeliveryZoneRepo) Delete(ctx context.Context, id int64) error {
	result, err := d.pool.Exec(ctx, `DELETE FROM delivery_zones WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

// GetByID возвращает зону доставки по идентификатору.
func (d *DeliveryZoneRepo) GetByID(ctx context.Context, id int64) (*domain.DeliveryZone, error) {
	query := `
		SELECT id, name, price, created_at, updated_at
		FROM delivery_zones
		WHERE id = $1;
	`

	var model converter.DeliveryZoneModel
	if err := d.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Price, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return d.conv.ToEntity(&model), nil
}

// List возвращает все зоны доставки по возрастанию стоимости.
func (d *DeliveryZoneRepo) List(ctx context.Context) ([]domain.DeliveryZone, error) {
	query := `
		SELECT id, name, price, created_at, updated_at
		FROM delivery_zones
		ORDER BY price, name;
	`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.DeliveryZone, 0)
	for rows.Next() {
		var model converter.DeliveryZoneModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Price, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *d.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
