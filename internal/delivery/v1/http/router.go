package http

import (
	_ "github.com/matbakh-tech/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/matbakh-tech/go-backend/internal/cfg"
	"github.com/matbakh-tech/go-backend/internal/usecase"
	"github.com/matbakh-tech/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	cfg    *cfg.Config
	logger logger.Logger
}

func NewRouter(router *chi.Mux, cfg *cfg.Config, logger logger.Logger) *Router {
	return &Router{router: router, cfg: cfg, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	auth := NewAdminAuth(r.cfg.Admin)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		registerCatalogRoutes(v1, catalogHandler)

		cartHandler := NewCartHandler(cartUC, r.cfg.Cart, r.logger)
		registerCartRoutes(v1, cartHandler)

		adminHandler := NewAdminHandler(catalogUC, auth, r.logger)
		registerAdminRoutes(v1, adminHandler, auth)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", h.listCategories)
		cat.Get("/{id}", h.getCategory)
	})

	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
	})

	router.Get("/delivery-zones", h.listDeliveryZones)
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Get("/", h.getCart)
		cart.Delete("/", h.clearCart)
		cart.Post("/checkout", h.checkout)

		cart.Route("/items/{id}", func(item chi.Router) {
			item.Post("/", h.addItem)
			item.Put("/", h.updateQuantity)
			item.Delete("/", h.removeItem)
		})
	})
}

func registerAdminRoutes(router chi.Router, h *AdminHandler, auth *AdminAuth) {
	router.Route("/admin", func(admin chi.Router) {
		admin.Post("/login", h.login)

		admin.Group(func(protected chi.Router) {
			protected.Use(auth.Middleware)

			protected.Route("/products", func(pr chi.Router) {
				pr.Post("/", h.createProduct)
				pr.Put("/{id}", h.updateProduct)
				pr.Patch("/{id}/price", h.updatePrice)
				pr.Delete("/{id}", h.deleteProduct)
				pr.Post("/{id}/image", h.uploadProductImage)
			})

			protected.Route("/delivery-zones", func(dz chi.Router) {
				dz.Post("/", h.createDeliveryZone)
				dz.Put("/{id}", h.updateDeliveryZone)
				dz.Delete("/{id}", h.deleteDeliveryZone)
			})
		})
	})
}
