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

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// GetByID возвращает активную категорию по идентификатору.
func (c *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, slug, image_key, created_at, updated_at, is_active
		FROM categories
		WHERE id = $1 AND is_active;
	`

	var model converter.CategoryModel
	if err := c.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Slug, &model.ImageKey,
		&model.CreatedAt, &model.UpdatedAt, &model.IsActive,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// List возвращает все активные категории в алфавитном порядке.
func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug, image_key, created_at, updated_at, is_active
		FROM categories
		WHERE is_active
		ORDER BY name;
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Slug, &model.ImageKey,
			&model.CreatedAt, &model.UpdatedAt, &model.IsActive,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
