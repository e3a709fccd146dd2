package httpapi

import (
	"net/http"

	"tablepos/internal/catalog"
	"tablepos/internal/config"
	"tablepos/internal/http/handlers"
	"tablepos/internal/middleware"
	"tablepos/internal/orders"
	"tablepos/internal/payment"
	"tablepos/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func NewRouter(st *store.Store, logger *zap.Logger, cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Telemetry(logger))

	if cfg.Env == "development" || len(cfg.CorsAllowedOrigins) > 0 {
		options := cors.Options{
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{
				"Accept",
				"Content-Type",
				"X-Requested-With",
				"Cache-Control",
				"Pragma",
			},
			AllowCredentials: true,
			MaxAge:           300,
		}

		if cfg.Env == "development" {
			options.AllowOriginFunc = func(_ *http.Request, origin string) bool {
				return true
			}
		} else {
			options.AllowedOrigins = cfg.CorsAllowedOrigins
		}

		r.Use(cors.Handler(options))
	}

	h := &handlers.Handler{
		Store:    st,
		Orders:   orders.NewService(st),
		Payments: payment.NewService(st),
		Catalog:  catalog.NewService(st),
		Logger:   logger,
		Config:   cfg,
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/orders", h.OrdersList)
		r.Post("/orders", h.OrderCreate)
		r.Patch("/orders/{id}/status", h.OrderSetStatus)
		r.Post("/orders/{id}/revert", h.OrderRevert)

		r.Post("/payments", h.PaymentProcess)
		r.Post("/payments/quote", h.PaymentQuote)

		r.Get("/history", h.HistoryList)
		r.Get("/history/{id}/receipt", h.HistoryReceiptText)
		r.Get("/history/{id}/receipt.pdf", h.HistoryReceiptPDF)

		r.Get("/menu", h.MenuList)
		r.Post("/menu", h.MenuCreate)
		r.Put("/menu/{id}", h.MenuUpdate)
		r.Delete("/menu/{id}", h.MenuDelete)

		r.Get("/categories", h.CategoriesList)
		r.Post("/categories", h.CategoryCreate)
		r.Put("/categories", h.CategoriesRename)
		r.Delete("/categories/{name}", h.CategoryDelete)

		r.Get("/tables", h.TablesList)
	})

	return r
}
