package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo de stock.
// Quantity solo la modifica el motor de movimientos; Reference es inmutable.
// El borrado es lógico (DeletedAt) para que el historial de movimientos
// siga resolviendo nombre y precio del artículo.
type Item struct {
	ID        string
	Reference string // clave de negocio única
	Name      string
	Quantity  int64           // siempre >= 0
	UnitPrice decimal.Decimal // precio unitario actual
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// TotalValue devuelve quantity × unit_price. Derivado, nunca se persiste.
func (i *Item) TotalValue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Deleted indica si el artículo fue dado de baja del catálogo.
func (i *Item) Deleted() bool {
	return i.DeletedAt != nil
}
