package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de stock.
const (
	MovementTypePurchase = "purchase" // entrada de stock
	MovementTypeSale     = "sale"     // salida de stock
)

// Movement es una entrada inmutable del libro de movimientos.
// Una vez creada no se actualiza ni se borra; las correcciones se modelan
// como movimientos compensatorios.
type Movement struct {
	ID              string
	Seq             int64 // posición en el libro, asignada al persistir
	ItemID          string
	Type            string          // purchase | sale
	Quantity        int64           // siempre > 0; el signo lo da Type
	DiscountPercent decimal.Decimal // solo ventas; 0 en compras
	UnitPrice       decimal.Decimal // precio unitario del artículo al momento del movimiento
	Date            time.Time       // fijada al crear
	CreatedAt       time.Time
}

// IsSale indica si el movimiento es una venta.
func (m *Movement) IsSale() bool {
	return m.Type == MovementTypeSale
}
