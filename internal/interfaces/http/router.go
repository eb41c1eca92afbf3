package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	RegisterSale *sales.RegisterSaleUseCase
	StatsUC      *usecase.StatsUseCase
}

// Router registra las rutas de la API.
// El registro de clientes es in-process y no tiene rutas: el frontend legado
// nunca los envió al backend.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Sales
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.RegisterSale)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.StatsUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
