package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mouyassirm/elles224/internal/application/finance"
)

// FinanceHandler expone los agregados financieros calculados sobre el
// libro de movimientos.
type FinanceHandler struct {
	uc *finance.UseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen financiero (ingresos, descuento medio, flujo de caja)
// @Tags         finance
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.FinancialSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/finance/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "rango de fechas inválido, use YYYY-MM-DD")
	}
	out, err := h.uc.Summary(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BestSellers devuelve los artículos más vendidos por unidades.
// GET /api/finance/best-sellers?limit=5
func (h *FinanceHandler) BestSellers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "limit debe ser positivo")
	}
	out, err := h.uc.BestSellers(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"best_sellers": out})
}

// SalesTable devuelve la tabla de ventas, la más reciente primero.
// GET /api/finance/sales?start_date=...&end_date=...
func (h *FinanceHandler) SalesTable(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "rango de fechas inválido, use YYYY-MM-DD")
	}
	out, err := h.uc.SalesTable(c.Context(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"sales": out})
}

// RevenueByMonth devuelve los ingresos por mes de un año dado.
// GET /api/finance/revenue/monthly?year=2026
func (h *FinanceHandler) RevenueByMonth(c *fiber.Ctx) error {
	year := time.Now().Year()
	if s := c.Query("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 1970 || y > 9999 {
			return status(c, fiber.StatusBadRequest, "VALIDATION", "year inválido")
		}
		year = y
	}
	out, err := h.uc.RevenueByMonth(c.Context(), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesTrend devuelve la serie de ventas para un periodo: week, month o year.
// GET /api/finance/sales/trend?period=month
func (h *FinanceHandler) SalesTrend(c *fiber.Ctx) error {
	period := c.Query("period", "month")
	out, err := h.uc.SalesTrend(c.Context(), period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
