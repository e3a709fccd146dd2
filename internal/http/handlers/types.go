package handlers

import (
	"go.uber.org/zap"

	"tablepos/internal/catalog"
	"tablepos/internal/config"
	"tablepos/internal/orders"
	"tablepos/internal/payment"
	"tablepos/internal/store"
)

// Handler carries the wired services for every route.
type Handler struct {
	Store    *store.Store
	Orders   *orders.Service
	Payments *payment.Service
	Catalog  *catalog.Service
	Logger   *zap.Logger
	Config   config.Config
}
