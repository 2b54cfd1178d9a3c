package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicateReference = errors.New("la referencia ya está registrada")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
	ErrInvalidDiscount    = errors.New("descuento fuera del rango [0,100]")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrImmutableReference = errors.New("la referencia del artículo no se puede modificar")
	ErrUnavailable        = errors.New("almacenamiento no disponible, reintente")
)
