package http

import (
	"net/http"
	"strconv"

	"github.com/matbakh-tech/go-backend/internal/usecase"
	"github.com/matbakh-tech/go-backend/pkg/e"
	"github.com/matbakh-tech/go-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listCategories
//
//	@Summary		Список категорий
//	@Description	Возвращает активные категории каталога
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}		CategoryResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/categories [get]
func (c *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewArrCategoryResponse(categories))
}

// getCategory
//
//	@Summary	Категория по ID
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		int	true	"ID категории"
//	@Success	200	{object}	CategoryResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/categories/{id} [get]
func (c *CatalogHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	category, err := c.catalogUsecase.GetCategory(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCategoryResponse(category))
}

// listProducts
//
//	@Summary		Список продуктов
//	@Description	Возвращает продукты каталога с фильтрами по категории и популярности
//	@Tags			catalog
//	@Produce		json
//	@Param			category_id	query		int		false	"Фильтр по категории"
//	@Param			popular		query		bool	false	"Только популярные"
//	@Success		200			{array}		ProductResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/products [get]
func (c *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	products, err := c.catalogUsecase.ListProducts(r.Context(), filter)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewArrProductResponse(products))
}

// getProduct
//
//	@Summary	Продукт по ID
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		int	true	"ID продукта"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (c *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := c.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// listDeliveryZones
//
//	@Summary	Список зон доставки
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}		DeliveryZoneResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/delivery-zones [get]
func (c *CatalogHandler) listDeliveryZones(w http.ResponseWriter, r *http.Request) {
	zones, err := c.catalogUsecase.ListDeliveryZones(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewArrDeliveryZoneResponse(zones))
}

func parseProductFilter(r *http.Request) (usecase.ProductFilter, error) {
	var filter usecase.ProductFilter

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			return filter, e.ErrStatusBadRequest
		}
		filter.CategoryID = &id
	}

	if raw := r.URL.Query().Get("popular"); raw != "" {
		popular, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, e.ErrStatusBadRequest
		}
		filter.IsPopular = &popular
	}

	return filter, nil
}
