package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/matbakh-tech/go-backend/internal/cfg"
	"github.com/matbakh-tech/go-backend/internal/usecase"
	"github.com/matbakh-tech/go-backend/pkg/e"
	"github.com/matbakh-tech/go-backend/pkg/logger"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	cfg         *cfg.CartCfg
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, cfg *cfg.CartCfg, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, cfg: cfg, logger: logger}
}

// sessionID возвращает идентификатор сессии корзины из cookie,
// устанавливая новую cookie для первого визита.
func (c *CartHandler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(c.cfg.SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     c.cfg.SessionCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// getCart
//
//	@Summary	Текущая корзина сессии
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := c.cartUsecase.GetCart(r.Context(), c.sessionID(w, r))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// addItem
//
//	@Summary		Добавление продукта в корзину
//	@Description	Новый продукт добавляется одной штукой, уже лежащий увеличивается на единицу
//	@Tags			cart
//	@Produce		json
//	@Param			id	path		int	true	"ID продукта"
//	@Success		200	{object}	CartResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/cart/items/{id} [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.cartUsecase.AddItem(r.Context(), c.sessionID(w, r), productID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// updateQuantity
//
//	@Summary		Установка количества позиции
//	@Description	Количество ниже нуля поднимается до нуля, ноль убирает позицию
//	@Tags			cart
//	@Produce		json
//	@Param			id			path		int	true	"ID продукта"
//	@Param			quantity	query		int	true	"Новое количество"
//	@Success		200			{object}	CartResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/cart/items/{id} [put]
func (c *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	quantity, err := strconv.ParseInt(r.URL.Query().Get("quantity"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrInvalidQuantity)
		return
	}

	view, err := c.cartUsecase.UpdateQuantity(r.Context(), c.sessionID(w, r), productID, quantity)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// removeItem
//
//	@Summary	Удаление позиции из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		id	path		int	true	"ID продукта"
//	@Success	200	{object}	CartResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/cart/items/{id} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.cartUsecase.RemoveItem(r.Context(), c.sessionID(w, r), productID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// clearCart
//
//	@Summary	Очистка корзины
//	@Tags		cart
//	@Success	204
//	@Failure	500	{object}	ErrorResponse
//	@Router		/cart [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := c.cartUsecase.ClearCart(r.Context(), c.sessionID(w, r)); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// checkout
//
//	@Summary		Оформление заказа
//	@Description	Составляет текст заказа и возвращает ссылку мессенджера; корзина очищается только после фиксации передачи
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CheckoutRequest	false	"Параметры заказа"
//	@Success		200		{object}	CheckoutResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/cart/checkout [post]
func (c *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var body CheckoutRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &body); err != nil {
			WriteError(w, err)
			return
		}
	}

	res, err := c.cartUsecase.Checkout(r.Context(),
		usecase.NewCheckoutReq(c.sessionID(w, r), body.DeliveryZoneID))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCheckoutResponse(res))
}
