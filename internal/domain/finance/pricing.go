package finance

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// EffectiveUnitPrice aplica el descuento al precio unitario (servicio de dominio).
// PrecioEfectivo = PrecioUnitario * (1 - Descuento/100)
func EffectiveUnitPrice(unitPrice, discountPercent decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(discountPercent.Div(hundred))
	return unitPrice.Mul(factor)
}

// LineTotal devuelve el total de una línea de venta: precio efectivo × cantidad.
func LineTotal(unitPrice, discountPercent decimal.Decimal, quantity int64) decimal.Decimal {
	return EffectiveUnitPrice(unitPrice, discountPercent).Mul(decimal.NewFromInt(quantity))
}

// ValidDiscount verifica que el porcentaje esté dentro de [0,100].
func ValidDiscount(discountPercent decimal.Decimal) bool {
	return !discountPercent.LessThan(decimal.Zero) && !discountPercent.GreaterThan(hundred)
}
