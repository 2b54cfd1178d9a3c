package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mouyassirm/elles224/internal/application/dto"
	"github.com/mouyassirm/elles224/internal/application/ledger"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	uc *ledger.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// RecordPurchase godoc
// @Summary      Registrar una compra (entrada de stock)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "item_id, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/purchase [post]
func (h *MovementHandler) RecordPurchase(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return status(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	mov, err := h.uc.RecordPurchase(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// RecordSale godoc
// @Summary      Registrar una venta (salida de stock)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "item_id, quantity, discount_percent"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/sale [post]
func (h *MovementHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return status(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	mov, err := h.uc.RecordSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// List lista movimientos en orden cronológico inverso, con filtros
// opcionales item_id, type, from y to.
// GET /api/movements
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()

	in := ledger.ListInput{
		ItemID: c.Query("item_id"),
		Type:   c.Query("type"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if s := c.Query("from"); s != "" {
		from, err := time.Parse(dateLayout, s)
		if err != nil {
			return status(c, fiber.StatusBadRequest, "VALIDATION", "from inválida, use YYYY-MM-DD")
		}
		in.From = &from
	}
	if s := c.Query("to"); s != "" {
		day, err := time.Parse(dateLayout, s)
		if err != nil {
			return status(c, fiber.StatusBadRequest, "VALIDATION", "to inválida, use YYYY-MM-DD")
		}
		// El día final es inclusivo
		to := day.Add(24*time.Hour - time.Nanosecond)
		in.To = &to
	}

	list, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
