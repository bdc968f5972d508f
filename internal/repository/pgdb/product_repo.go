package pgdb

import (
	"context"
	"errors"

	"github.com/matbakh-tech/go-backend/internal/domain"
	"github.com/matbakh-tech/go-backend/internal/repository/pgdb/converter"
	"github.com/matbakh-tech/go-backend/internal/usecase"
	"github.com/matbakh-tech/go-backend/pkg/e"
	"github.com/matbakh-tech/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productColumns = `
	id, category_id, name, description, price, price_unit, price_unit_amount,
	image_key, is_popular, created_at, updated_at, is_archived`

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет новый продукт и возвращает запись с заполненными
// идентификатором и временем создания.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (category_id, name, description, price, price_unit, price_unit_amount, is_popular)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productColumns + `;
	`

	if err := tx.QueryRow(ctx, query,
		model.CategoryID, model.Name, model.Description,
		model.Price, model.PriceUnit, model.PriceUnitAmount, model.IsPopular,
	).Scan(scanTargets(model)...); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update полностью заменяет поля продукта, не трогая ключ изображения.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		UPDATE products
		SET category_id = $2,
			name = $3,
			description = $4,
			price = $5,
			price_unit = $6,
			price_unit_amount = $7,
			is_popular = $8,
			updated_at = NOW()
		WHERE id = $1 AND NOT is_archived
		RETURNING ` + productColumns + `;
	`

	if err := tx.QueryRow(ctx, query,
		model.ID, model.CategoryID, model.Name, model.Description,
		model.Price, model.PriceUnit, model.PriceUnitAmount, model.IsPopular,
	).Scan(scanTargets(model)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// UpdatePrice меняет цену и, опционально, единицу измерения продукта.
func (p *ProductRepo) UpdatePrice(ctx context.Context, req *usecase.UpdatePriceReq) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET price = $2,
			price_unit = COALESCE($3, price_unit),
			price_unit_amount = COALESCE($4, price_unit_amount),
			updated_at = NOW()
		WHERE id = $1 AND NOT is_archived
		RETURNING ` + productColumns + `;
	`

	model := &converter.ProductModel{}
	if err := tx.QueryRow(ctx, query,
		req.ID, req.Price, req.PriceUnit, req.PriceUnitAmount,
	).Scan(scanTargets(model)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// SetImageKey записывает ключ изображения продукта в MinIO.
func (p *ProductRepo) SetImageKey(ctx context.Context, id int64, imageKey string) error {
	query := `
		UPDATE products
		SET image_key = $2, updated_at = NOW()
		WHERE id = $1 AND NOT is_archived;
	`

	result, err := p.pool.Exec(ctx, query, id, imageKey)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

// Delete архивирует продукт. Запись остаётся для уже сохранённых снимков корзин.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET is_archived = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT is_archived;
	`

	result, err := tx.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

// GetByID возвращает неархивированный продукт по идентификатору.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1 AND NOT is_archived;
	`

	model := &converter.ProductModel{}
	if err := p.pool.QueryRow(ctx, query, id).Scan(scanTargets(model)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// List возвращает неархивированные продукты, опционально отфильтрованные
// по категории и признаку популярности.
func (p *ProductRepo) List(ctx context.Context, filter usecase.ProductFilter) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE NOT is_archived
		  AND ($1::bigint IS NULL OR category_id = $1)
		  AND ($2::boolean IS NULL OR is_popular = $2)
		ORDER BY name;
	`

	rows, err := p.pool.Query(ctx, query, filter.CategoryID, filter.IsPopular)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		model := &converter.ProductModel{}
		if err := rows.Scan(scanTargets(model)...); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.ToEntity(model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func scanTargets(model *converter.ProductModel) []any {
	return []any{
		&model.ID, &model.CategoryID, &model.Name, &model.Description,
		&model.Price, &model.PriceUnit, &model.PriceUnitAmount,
		&model.ImageKey, &model.IsPopular,
		&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
	}
}
