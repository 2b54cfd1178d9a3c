// Package finance contiene la lógica pura de agregación financiera.
// Todas las funciones son deterministas y sin efectos secundarios: con los
// mismos artículos y movimientos producen exactamente el mismo resultado.
package finance

import (
	"sort"
	"time"

	"github.com/mouyassirm/elles224/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Range es un rango de fechas inclusivo [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro del rango (extremos incluidos).
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// CurrentMonth devuelve el rango del mes calendario de now (día 1 00:00 hasta now).
func CurrentMonth(now time.Time) Range {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Range{Start: start, End: now}
}

// Revenue suma line_total sobre las ventas del rango.
// line_total = unit_price * (1 - descuento/100) * cantidad, con el precio
// capturado en el movimiento.
func Revenue(movements []*entity.Movement, r Range) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.IsSale() && r.Contains(m.Date) {
			total = total.Add(LineTotal(m.UnitPrice, m.DiscountPercent, m.Quantity))
		}
	}
	return total
}

// PurchaseCost suma unit_price * cantidad sobre las compras del rango.
func PurchaseCost(movements []*entity.Movement, r Range) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.Type == entity.MovementTypePurchase && r.Contains(m.Date) {
			total = total.Add(m.UnitPrice.Mul(decimal.NewFromInt(m.Quantity)))
		}
	}
	return total
}

// NetCashFlow devuelve ingresos por ventas menos costo de compras del rango.
func NetCashFlow(movements []*entity.Movement, r Range) decimal.Decimal {
	return Revenue(movements, r).Sub(PurchaseCost(movements, r))
}

// SalesCount cuenta las ventas del rango.
func SalesCount(movements []*entity.Movement, r Range) int {
	n := 0
	for _, m := range movements {
		if m.IsSale() && r.Contains(m.Date) {
			n++
		}
	}
	return n
}

// AverageDiscount devuelve la media aritmética del descuento de las ventas
// del rango; cero si no hubo ventas.
func AverageDiscount(movements []*entity.Movement, r Range) decimal.Decimal {
	sum := decimal.Zero
	n := int64(0)
	for _, m := range movements {
		if m.IsSale() && r.Contains(m.Date) {
			sum = sum.Add(m.DiscountPercent)
			n++
		}
	}
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(n))
}

// BestSeller acumulado de ventas de un artículo.
type BestSeller struct {
	ItemID      string
	Name        string
	Quantity    int64
	Revenue     decimal.Decimal
	ItemDeleted bool
}

// BestSellers agrupa todas las ventas por artículo, suma cantidad e ingreso
// y devuelve como máximo limit artículos ordenados por cantidad descendente.
// Los empates conservan el orden de primera aparición en el libro.
// Los artículos dados de baja se reportan con su último nombre conocido.
func BestSellers(movements []*entity.Movement, items map[string]*entity.Item, limit int) []BestSeller {
	byItem := make(map[string]*BestSeller)
	var order []string
	for _, m := range movements {
		if !m.IsSale() {
			continue
		}
		agg, ok := byItem[m.ItemID]
		if !ok {
			name := m.ItemID
			deleted := true
			if it, found := items[m.ItemID]; found {
				name = it.Name
				deleted = it.Deleted()
			}
			agg = &BestSeller{ItemID: m.ItemID, Name: name, Revenue: decimal.Zero, ItemDeleted: deleted}
			byItem[m.ItemID] = agg
			order = append(order, m.ItemID)
		}
		agg.Quantity += m.Quantity
		agg.Revenue = agg.Revenue.Add(LineTotal(m.UnitPrice, m.DiscountPercent, m.Quantity))
	}

	result := make([]BestSeller, 0, len(order))
	for _, id := range order {
		result = append(result, *byItem[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Quantity > result[j].Quantity
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// SaleRow es una línea de la tabla de ventas.
type SaleRow struct {
	MovementID      string
	ItemID          string
	ItemName        string
	ItemDeleted     bool
	Date            time.Time
	Quantity        int64
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	LineTotal       decimal.Decimal
}

// SalesTable devuelve las ventas del rango ordenadas por fecha descendente;
// a igual fecha, primero la última agregada al libro.
// movements debe venir en orden de inserción en el libro.
func SalesTable(movements []*entity.Movement, items map[string]*entity.Item, r Range) []SaleRow {
	var rows []SaleRow
	// Recorrido inverso: los empates de fecha quedan en orden inverso de inserción
	// y el sort estable por fecha lo preserva.
	for i := len(movements) - 1; i >= 0; i-- {
		m := movements[i]
		if !m.IsSale() || !r.Contains(m.Date) {
			continue
		}
		row := SaleRow{
			MovementID:      m.ID,
			ItemID:          m.ItemID,
			ItemName:        m.ItemID,
			ItemDeleted:     true,
			Date:            m.Date,
			Quantity:        m.Quantity,
			UnitPrice:       m.UnitPrice,
			DiscountPercent: m.DiscountPercent,
			LineTotal:       LineTotal(m.UnitPrice, m.DiscountPercent, m.Quantity),
		}
		if it, ok := items[m.ItemID]; ok {
			row.ItemName = it.Name
			row.ItemDeleted = it.Deleted()
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})
	return rows
}

// RevenueByMonth devuelve el ingreso por ventas de cada mes del año dado
// (índice 0 = enero). Los meses sin ventas quedan en cero.
func RevenueByMonth(movements []*entity.Movement, year int) [12]decimal.Decimal {
	var buckets [12]decimal.Decimal
	for i := range buckets {
		buckets[i] = decimal.Zero
	}
	for _, m := range movements {
		if m.IsSale() && m.Date.Year() == year {
			idx := int(m.Date.Month()) - 1
			buckets[idx] = buckets[idx].Add(LineTotal(m.UnitPrice, m.DiscountPercent, m.Quantity))
		}
	}
	return buckets
}

// StockSummary resumen del catálogo vivo.
type StockSummary struct {
	TotalItems    int
	TotalValue    decimal.Decimal
	LowStockItems int
}

// LowStockThreshold umbral fijo de stock bajo.
const LowStockThreshold = 10

// SummarizeStock calcula total de artículos, valor total y artículos con
// stock bajo sobre el catálogo vivo (excluye borrados).
func SummarizeStock(items []*entity.Item) StockSummary {
	s := StockSummary{TotalValue: decimal.Zero}
	for _, it := range items {
		if it.Deleted() {
			continue
		}
		s.TotalItems++
		s.TotalValue = s.TotalValue.Add(it.TotalValue())
		if it.Quantity < LowStockThreshold {
			s.LowStockItems++
		}
	}
	return s
}
