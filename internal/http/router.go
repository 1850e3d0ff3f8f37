package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/reev-boutik/produit/docs"
	"github.com/reev-boutik/produit/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Use(RateLimitMiddleware)

		r.Get("/products", handlers.SearchProductsHandler)
		r.Get("/products/search", handlers.SearchProductsHandler)
		r.Get("/products/barcode/{codebar}", handlers.GetProductByBarcodeHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Get("/products/{id}/analytics", handlers.GetProductAnalyticsHandler)
		r.Get("/products/{id}/price-history", handlers.GetPriceHistoryHandler)

		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Get("/sort-options", handlers.GetSortOptionsHandler)
		r.Get("/stats", handlers.GetStatsHandler)
		r.Get("/exchange-rates", handlers.GetExchangeRatesHandler)

		r.Post("/auth/login", handlers.LoginHandler)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware)
			r.Post("/products", handlers.CreateProductHandler)
			r.Put("/products/{id}", handlers.UpdateProductHandler)
			r.Post("/products/{id}/prices", handlers.RecordPriceHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
