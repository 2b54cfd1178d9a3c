package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mouyassirm/elles224/internal/application/dto"
	"github.com/mouyassirm/elles224/internal/application/stock"
	domfin "github.com/mouyassirm/elles224/internal/domain/finance"
)

// StockHandler maneja las peticiones HTTP del catálogo de artículos.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un artículo
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "reference, name, quantity, unit_price"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return status(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	item, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List lista el catálogo con paginación.
// GET /api/stock
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene un artículo por ID.
// GET /api/stock/:id
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// GetByReference obtiene un artículo por referencia.
// GET /api/stock/reference/:reference
func (h *StockHandler) GetByReference(c *fiber.Ctx) error {
	item, err := h.uc.FindByReference(c.Context(), c.Params("reference"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Update actualiza nombre, cantidad o precio de un artículo.
// PUT /api/stock/:id
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return status(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	item, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Delete da de baja un artículo. El historial de movimientos sobrevive.
// DELETE /api/stock/:id
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LowStock lista artículos por debajo del umbral (por defecto 10).
// GET /api/stock/low-stock
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	threshold := int64(c.QueryInt("threshold", domfin.LowStockThreshold))
	if threshold <= 0 {
		return status(c, fiber.StatusBadRequest, "VALIDATION", "threshold debe ser positivo")
	}
	items, err := h.uc.LowStock(c.Context(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"threshold": threshold, "items": items})
}
