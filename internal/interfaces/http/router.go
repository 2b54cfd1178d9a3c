package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mouyassirm/elles224/internal/application/finance"
	"github.com/mouyassirm/elles224/internal/application/ledger"
	"github.com/mouyassirm/elles224/internal/application/report"
	"github.com/mouyassirm/elles224/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC   *stock.UseCase
	LedgerUC  *ledger.UseCase
	FinanceUC *finance.UseCase
	ReportUC  *report.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Artículos
	items := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	items.Post("/", stockHandler.Create)
	items.Get("/", stockHandler.List)
	items.Get("/low-stock", stockHandler.LowStock)
	items.Get("/reference/:reference", stockHandler.GetByReference)
	items.Get("/:id", stockHandler.GetByID)
	items.Put("/:id", stockHandler.Update)
	items.Delete("/:id", stockHandler.Delete)

	// Libro de movimientos
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.LedgerUC)
	movements.Post("/purchase", movementHandler.RecordPurchase)
	movements.Post("/sale", movementHandler.RecordSale)
	movements.Get("/", movementHandler.List)

	// Finanzas
	fin := api.Group("/finance")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	fin.Get("/summary", financeHandler.Summary)
	fin.Get("/revenue/monthly", financeHandler.RevenueByMonth)
	fin.Get("/best-sellers", financeHandler.BestSellers)
	fin.Get("/sales", financeHandler.SalesTable)
	fin.Get("/sales/trend", financeHandler.SalesTrend)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/stock/summary", reportHandler.StockSummary)
	reports.Get("/stock/value-distribution", reportHandler.ValueDistribution)
	reports.Get("/stock/quantity-alerts", reportHandler.QuantityAlerts)
	reports.Get("/performance", reportHandler.PerformanceMetrics)
}
