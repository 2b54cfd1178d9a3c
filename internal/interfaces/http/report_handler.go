package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mouyassirm/elles224/internal/application/report"
)

// ReportHandler expone los reportes consolidados de inventario.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Tablero consolidado: stock, finanzas y actividad reciente
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockSummary devuelve totales de inventario: artículos, unidades y valor.
// GET /api/reports/stock/summary
func (h *ReportHandler) StockSummary(c *fiber.Ctx) error {
	out, err := h.uc.StockSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ValueDistribution devuelve el valor de inventario por artículo.
// GET /api/reports/stock/value-distribution
func (h *ReportHandler) ValueDistribution(c *fiber.Ctx) error {
	out, err := h.uc.ValueDistribution(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// QuantityAlerts devuelve los artículos por debajo del umbral de stock.
// GET /api/reports/stock/quantity-alerts?threshold=10
func (h *ReportHandler) QuantityAlerts(c *fiber.Ctx) error {
	threshold := int64(c.QueryInt("threshold", 0))
	if threshold < 0 {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "threshold debe ser positivo")
	}
	out, err := h.uc.QuantityAlerts(c.Context(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PerformanceMetrics devuelve métricas de rendimiento de los últimos 30 días.
// GET /api/reports/performance
func (h *ReportHandler) PerformanceMetrics(c *fiber.Ctx) error {
	out, err := h.uc.PerformanceMetrics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
