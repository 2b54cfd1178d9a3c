package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mouyassirm/elles224/internal/application/dto"
	"github.com/mouyassirm/elles224/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP tipadas.
// Ningún error se traga: lo que no se reconoce sale como 500 con su mensaje.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return status(c, fiber.StatusBadRequest, "INVALID_QUANTITY", "la cantidad debe ser mayor que cero")
	case errors.Is(err, domain.ErrInvalidDiscount):
		return status(c, fiber.StatusBadRequest, "INVALID_DISCOUNT", "el descuento debe estar entre 0 y 100")
	case errors.Is(err, domain.ErrImmutableReference):
		return status(c, fiber.StatusBadRequest, "IMMUTABLE_REFERENCE", "la referencia no se puede modificar")
	case errors.Is(err, domain.ErrInvalidInput):
		return status(c, fiber.StatusBadRequest, "VALIDATION", "datos inválidos")
	case errors.Is(err, domain.ErrNotFound):
		return status(c, fiber.StatusNotFound, "NOT_FOUND", "artículo no encontrado")
	case errors.Is(err, domain.ErrDuplicateReference):
		return status(c, fiber.StatusConflict, "DUPLICATE_REFERENCE", "la referencia ya existe")
	case errors.Is(err, domain.ErrInsufficientStock):
		return status(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", "stock insuficiente")
	case errors.Is(err, domain.ErrUnavailable):
		return status(c, fiber.StatusServiceUnavailable, "UNAVAILABLE", "almacenamiento no disponible, reintente")
	default:
		return status(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

func status(c *fiber.Ctx, code int, errCode, msg string) error {
	return c.Status(code).JSON(dto.ErrorResponse{Code: errCode, Message: msg})
}

const dateLayout = "2006-01-02"

// parseRange lee start_date y end_date (YYYY-MM-DD, ambos inclusivos) de la
// query. Sin parámetros devuelve el rango histórico completo hasta ahora.
func parseRange(c *fiber.Ctx) (start, end time.Time, err error) {
	end = time.Now()
	if s := c.Query("start_date"); s != "" {
		start, err = time.Parse(dateLayout, s)
		if err != nil {
			return start, end, domain.ErrInvalidInput
		}
	}
	if s := c.Query("end_date"); s != "" {
		day, perr := time.Parse(dateLayout, s)
		if perr != nil {
			return start, end, domain.ErrInvalidInput
		}
		// El día final es inclusivo
		end = day.Add(24*time.Hour - time.Nanosecond)
	}
	if start.After(end) {
		return start, end, domain.ErrInvalidInput
	}
	return start, end, nil
}
