package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para registrar un artículo.
type CreateItemRequest struct {
	Reference string          `json:"reference"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// UpdateItemRequest entrada para actualizar un artículo.
// Reference se acepta en el body solo si coincide con la actual (es inmutable).
type UpdateItemRequest struct {
	Reference *string          `json:"reference,omitempty"`
	Name      *string          `json:"name,omitempty"`
	Quantity  *int64           `json:"quantity,omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID         string          `json:"id"`
	Reference  string          `json:"reference"`
	Name       string          `json:"name"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalValue decimal.Decimal `json:"total_value"` // derivado, nunca almacenado
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items  []ItemResponse `json:"items"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
