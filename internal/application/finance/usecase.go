// Package finance contiene los casos de uso del agregador financiero.
// El agregador no posee estado: cada consulta se deriva por completo del
// catálogo y del libro de movimientos en ese instante.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/mouyassirm/elles224/internal/application/dto"
	"github.com/mouyassirm/elles224/internal/domain"
	"github.com/mouyassirm/elles224/internal/domain/entity"
	domfin "github.com/mouyassirm/elles224/internal/domain/finance"
	"github.com/mouyassirm/elles224/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase consultas financieras de solo lectura.
type UseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository

	// Now es inyectable para fijar el reloj en tests; por defecto time.Now.
	Now func() time.Time
}

// New construye el caso de uso.
func New(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *UseCase {
	return &UseCase{itemRepo: itemRepo, movRepo: movRepo, Now: time.Now}
}

// load trae el libro completo (orden de inserción) y el catálogo indexado
// por ID, incluyendo artículos dados de baja para resolver nombres.
func (uc *UseCase) load(ctx context.Context) ([]*entity.Movement, map[string]*entity.Item, error) {
	movs, err := uc.movRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("cargar libro de movimientos: %w", err)
	}
	items, err := uc.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("cargar catálogo: %w", err)
	}
	byID := make(map[string]*entity.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return movs, byID, nil
}

// Summary construye el resumen financiero para el rango [start, end].
func (uc *UseCase) Summary(ctx context.Context, start, end time.Time) (*dto.FinancialSummaryDTO, error) {
	if start.After(end) {
		return nil, domain.ErrInvalidInput
	}
	movs, _, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	rng := domfin.Range{Start: start, End: end}
	month := domfin.CurrentMonth(uc.Now())
	return &dto.FinancialSummaryDTO{
		TotalRevenue:    domfin.Revenue(movs, rng),
		MonthlyRevenue:  domfin.Revenue(movs, month),
		TotalSales:      domfin.SalesCount(movs, rng),
		AverageDiscount: domfin.AverageDiscount(movs, rng),
		NetCashFlow:     domfin.NetCashFlow(movs, rng),
	}, nil
}

// BestSellers devuelve los artículos más vendidos por cantidad.
func (uc *UseCase) BestSellers(ctx context.Context, limit int) ([]dto.BestSellerDTO, error) {
	if limit <= 0 {
		limit = 5
	}
	movs, items, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	ranked := domfin.BestSellers(movs, items, limit)
	out := make([]dto.BestSellerDTO, 0, len(ranked))
	for _, b := range ranked {
		out = append(out, dto.BestSellerDTO{
			Name:        b.Name,
			Quantity:    b.Quantity,
			Revenue:     b.Revenue,
			ItemDeleted: b.ItemDeleted,
		})
	}
	return out, nil
}

// SalesTable devuelve las ventas del rango, fecha descendente.
func (uc *UseCase) SalesTable(ctx context.Context, start, end time.Time) ([]dto.SaleRowDTO, error) {
	if start.After(end) {
		return nil, domain.ErrInvalidInput
	}
	movs, items, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	rows := domfin.SalesTable(movs, items, domfin.Range{Start: start, End: end})
	return toSaleRows(rows), nil
}

// RevenueByMonth devuelve el ingreso de cada mes del año dado.
func (uc *UseCase) RevenueByMonth(ctx context.Context, year int) (*dto.MonthlyRevenueDTO, error) {
	movs, _, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	buckets := domfin.RevenueByMonth(movs, year)
	monthly := make(map[int]decimal.Decimal, 12)
	for i, v := range buckets {
		monthly[i+1] = v
	}
	return &dto.MonthlyRevenueDTO{Year: year, Monthly: monthly}, nil
}

// SalesTrend devuelve la serie de ingresos de las últimas 4 semanas,
// 6 meses o 5 años según period.
func (uc *UseCase) SalesTrend(ctx context.Context, period string) (*dto.SalesTrendDTO, error) {
	movs, _, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.Now()
	var points []dto.TrendPointDTO
	switch period {
	case "week":
		for i := 4; i >= 1; i-- {
			start := now.AddDate(0, 0, -7*i)
			end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
			rev := domfin.Revenue(movs, domfin.Range{Start: start, End: end})
			points = append(points, dto.TrendPointDTO{
				Period:  fmt.Sprintf("Semana %d", 5-i),
				Revenue: rev,
			})
		}
	case "month":
		for i := 6; i >= 1; i-- {
			first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
			end := first.AddDate(0, 1, 0).Add(-time.Nanosecond)
			rev := domfin.Revenue(movs, domfin.Range{Start: first, End: end})
			points = append(points, dto.TrendPointDTO{
				Period:  first.Format("2006-01"),
				Revenue: rev,
			})
		}
	case "year":
		for i := 5; i >= 1; i-- {
			year := now.Year() - i
			start := time.Date(year, 1, 1, 0, 0, 0, 0, now.Location())
			end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)
			rev := domfin.Revenue(movs, domfin.Range{Start: start, End: end})
			points = append(points, dto.TrendPointDTO{
				Period:  fmt.Sprintf("%d", year),
				Revenue: rev,
			})
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	return &dto.SalesTrendDTO{Period: period, TrendData: points}, nil
}

func toSaleRows(rows []domfin.SaleRow) []dto.SaleRowDTO {
	out := make([]dto.SaleRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SaleRowDTO{
			MovementID:      r.MovementID,
			ItemName:        r.ItemName,
			ItemDeleted:     r.ItemDeleted,
			Date:            r.Date,
			Quantity:        r.Quantity,
			UnitPrice:       r.UnitPrice,
			DiscountPercent: r.DiscountPercent,
			LineTotal:       r.LineTotal,
		})
	}
	return out
}
