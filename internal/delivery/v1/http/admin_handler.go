package http

import (
	"net/http"
	"time"

	"github.com/matbakh-tech/go-backend/internal/domain"
	"github.com/matbakh-tech/go-backend/internal/usecase"
	"github.com/matbakh-tech/go-backend/pkg/e"
	"github.com/matbakh-tech/go-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	catalogUsecase usecase.CatalogUC
	auth           *AdminAuth
	logger         logger.Logger
}

func NewAdminHandler(catalogUsecase usecase.CatalogUC, auth *AdminAuth, logger logger.Logger) *AdminHandler {
	return &AdminHandler{catalogUsecase: catalogUsecase, auth: auth, logger: logger}
}

// login
//
//	@Summary		Вход администратора
//	@Description	Сверяет секрет на сервере и выдаёт JWT административной сессии
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Секрет администратора"
//	@Success		200		{object}	LoginResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/admin/login [post]
func (a *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	var body LoginRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := a.auth.CheckSecret(body.Secret); err != nil {
		a.logger.Warnf("admin login rejected")
		WriteError(w, err)
		return
	}

	token, err := a.auth.IssueToken(time.Now())
	if err != nil {
		a.logger.Errorf(err, "failed to issue admin token")
		WriteError(w, e.ErrInternalServerError)
		return
	}

	WriteSuccess(w, http.StatusOK, LoginResponse{Token: token})
}

// createProduct
//
//	@Summary	Создание продукта
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ProductRequest	true	"Продукт"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Security	AdminToken
//	@Router		/admin/products [post]
func (a *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var body ProductRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	req, err := toCreateProductReq(&body)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := a.catalogUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewProductResponse(product))
}

// updateProduct
//
//	@Summary	Полное обновление продукта
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID продукта"
//	@Param		request	body		ProductRequest	true	"Продукт"
//	@Success	200		{object}	ProductResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	AdminToken
//	@Router		/admin/products/{id} [put]
func (a *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body ProductRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	createReq, err := toCreateProductReq(&body)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := a.catalogUsecase.UpdateProduct(r.Context(), &usecase.UpdateProductReq{
		ID:              id,
		Name:            createReq.Name,
		Description:     createReq.Description,
		Price:           createReq.Price,
		PriceUnit:       createReq.PriceUnit,
		PriceUnitAmount: createReq.PriceUnitAmount,
		CategoryID:      createReq.CategoryID,
		IsPopular:       createReq.IsPopular,
	})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// updatePrice
//
//	@Summary		Изменение цены продукта
//	@Description	Меняет цену и, опционально, единицу измерения, не трогая остальные поля
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"ID продукта"
//	@Param			request	body		PriceRequest	true	"Новая цена"
//	@Success		200		{object}	ProductResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/admin/products/{id}/price [patch]
func (a *AdminHandler) updatePrice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body PriceRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	price, err := parsePriceToCents(body.Price)
	if err != nil {
		WriteError(w, err)
		return
	}

	req := &usecase.UpdatePriceReq{ID: id, Price: price}
	if body.PriceUnit != nil {
		unit := domain.PriceUnit(*body.PriceUnit)
		req.PriceUnit = &unit
	}
	if body.PriceUnitAmount != nil {
		amount, err := decimal.NewFromString(*body.PriceUnitAmount)
		if err != nil {
			WriteError(w, e.ErrInvalidUnitAmount)
			return
		}
		req.PriceUnitAmount = &amount
	}

	product, err := a.catalogUsecase.UpdateProductPrice(r.Context(), req)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление продукта из каталога
//	@Tags		admin
//	@Param		id	path	int	true	"ID продукта"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Security	AdminToken
//	@Router		/admin/products/{id} [delete]
func (a *AdminHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := a.catalogUsecase.DeleteProduct(r.Context(), id); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadProductImage
//
//	@Summary		Загрузка изображения продукта
//	@Description	Сохраняет изображение в объектное хранилище и записывает ключ в продукт
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		int		true	"ID продукта"
//	@Param			image	formData	file	true	"Файл изображения"
//	@Success		200		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Security		AdminToken
//	@Router			/admin/products/{id}/image [post]
func (a *AdminHandler) uploadProductImage(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 16 << 20
	)

	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := a.catalogUsecase.UploadProductImage(r.Context(), id, image)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// createDeliveryZone
//
//	@Summary	Создание зоны доставки
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ZoneRequest	true	"Зона доставки"
//	@Success	201		{object}	DeliveryZoneResponse
//	@Failure	400		{object}	ErrorResponse
//	@Security	AdminToken
//	@Router		/admin/delivery-zones [post]
func (a *AdminHandler) createDeliveryZone(w http.ResponseWriter, r *http.Request) {
	req, err := a.parseZoneRequest(r, 0)
	if err != nil {
		WriteError(w, err)
		return
	}

	zone, err := a.catalogUsecase.CreateDeliveryZone(r.Context(), req)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewDeliveryZoneResponse(zone))
}

// updateDeliveryZone
//
//	@Summary	Обновление зоны доставки
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int			true	"ID зоны"
//	@Param		request	body		ZoneRequest	true	"Зона доставки"
//	@Success	200		{object}	DeliveryZoneResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	AdminToken
//	@Router		/admin/delivery-zones/{id} [put]
func (a *AdminHandler) updateDeliveryZone(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := a.parseZoneRequest(r, id)
	if err != nil {
		WriteError(w, err)
		return
	}

	zone, err := a.catalogUsecase.UpdateDeliveryZone(r.Context(), req)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewDeliveryZoneResponse(zone))
}

// deleteDeliveryZone
//
//	@Summary	Удаление зоны доставки
//	@Tags		admin
//	@Param		id	path	int	true	"ID зоны"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Security	AdminToken
//	@Router		/admin/delivery-zones/{id} [delete]
func (a *AdminHandler) deleteDeliveryZone(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := a.catalogUsecase.DeleteDeliveryZone(r.Context(), id); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *AdminHandler) parseZoneRequest(r *http.Request, id int64) (*usecase.UpsertZoneReq, error) {
	var body ZoneRequest
	if err := decodeJSON(r, &body); err != nil {
		return nil, err
	}

	price, err := parsePriceToCents(body.Price)
	if err != nil {
		return nil, err
	}

	return &usecase.UpsertZoneReq{ID: id, Name: body.Name, Price: price}, nil
}

func toCreateProductReq(body *ProductRequest) (*usecase.CreateProductReq, error) {
	price, err := parsePriceToCents(body.Price)
	if err != nil {
		return nil, err
	}

	unit := domain.UnitPiece
	if body.PriceUnit != nil {
		unit = domain.PriceUnit(*body.PriceUnit)
	}

	amount := decimal.NewFromInt(1)
	if body.PriceUnitAmount != nil {
		amount, err = decimal.NewFromString(*body.PriceUnitAmount)
		if err != nil {
			return nil, e.ErrInvalidUnitAmount
		}
	}

	return &usecase.CreateProductReq{
		Name:            body.Name,
		Description:     body.Description,
		Price:           price,
		PriceUnit:       unit,
		PriceUnitAmount: amount,
		CategoryID:      body.CategoryID,
		IsPopular:       body.IsPopular,
	}, nil
}
