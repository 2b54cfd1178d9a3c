// Package report compone los reportes de presentación a partir del registro
// de artículos y del agregador financiero. No tiene lógica propia más allá
// de la composición: cada payload se recalcula desde el núcleo en cada
// consulta, nunca se mantiene a mano.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/mouyassirm/elles224/internal/application/dto"
	appfinance "github.com/mouyassirm/elles224/internal/application/finance"
	"github.com/mouyassirm/elles224/internal/domain/entity"
	domfin "github.com/mouyassirm/elles224/internal/domain/finance"
	"github.com/mouyassirm/elles224/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const recentRows = 5 // filas recientes en el dashboard

// UseCase fachada de reportes.
type UseCase struct {
	itemRepo  repository.ItemRepository
	movRepo   repository.MovementRepository
	financeUC *appfinance.UseCase

	// Now es inyectable para fijar el reloj en tests; por defecto time.Now.
	Now func() time.Time
}

// New construye la fachada.
func New(itemRepo repository.ItemRepository, movRepo repository.MovementRepository, financeUC *appfinance.UseCase) *UseCase {
	return &UseCase{itemRepo: itemRepo, movRepo: movRepo, financeUC: financeUC, Now: time.Now}
}

// StockSummary devuelve total de artículos, valor total y stock bajo.
func (uc *UseCase) StockSummary(ctx context.Context) (*dto.StockSummaryDTO, error) {
	items, err := uc.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	s := domfin.SummarizeStock(items)
	return &dto.StockSummaryDTO{
		TotalItems:    s.TotalItems,
		TotalValue:    s.TotalValue,
		LowStockItems: s.LowStockItems,
	}, nil
}

// Dashboard compone el payload completo del tablero.
//
// Cuatro consultas en paralelo (patrón del resto de casos de uso de lectura):
//  1. StockSummary
//  2. Resumen financiero histórico
//  3. Últimos 5 movimientos
//  4. Últimas 5 ventas
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	now := uc.Now()
	allTime := time.Time{}

	type stockResult struct {
		summary *dto.StockSummaryDTO
		err     error
	}
	type finResult struct {
		summary *dto.FinancialSummaryDTO
		err     error
	}
	type movResult struct {
		movs []*entity.Movement
		err  error
	}
	type salesResult struct {
		rows []dto.SaleRowDTO
		err  error
	}

	stockCh := make(chan stockResult, 1)
	finCh := make(chan finResult, 1)
	movCh := make(chan movResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		s, err := uc.StockSummary(ctx)
		stockCh <- stockResult{s, err}
	}()
	go func() {
		s, err := uc.financeUC.Summary(ctx, allTime, now)
		finCh <- finResult{s, err}
	}()
	go func() {
		movs, err := uc.movRepo.List(ctx, repository.MovementFilter{}, recentRows, 0)
		movCh <- movResult{movs, err}
	}()
	go func() {
		rows, err := uc.financeUC.SalesTable(ctx, allTime, now)
		if err == nil && len(rows) > recentRows {
			rows = rows[:recentRows]
		}
		salesCh <- salesResult{rows, err}
	}()

	stock := <-stockCh
	fin := <-finCh
	mov := <-movCh
	sales := <-salesCh

	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de stock: %w", stock.err)
	}
	if fin.err != nil {
		return nil, fmt.Errorf("dashboard: resumen financiero: %w", fin.err)
	}
	if mov.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", mov.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", sales.err)
	}

	recent := make([]dto.MovementResponse, 0, len(mov.movs))
	for _, m := range mov.movs {
		recent = append(recent, dto.MovementResponse{
			ID:              m.ID,
			ItemID:          m.ItemID,
			Type:            m.Type,
			Quantity:        m.Quantity,
			DiscountPercent: m.DiscountPercent,
			UnitPrice:       m.UnitPrice,
			Date:            m.Date,
		})
	}

	return &dto.DashboardDTO{
		StockSummary:     *stock.summary,
		FinancialSummary: *fin.summary,
		RecentMovements:  recent,
		RecentSales:      sales.rows,
	}, nil
}

// ValueDistribution devuelve pares nombre/valor de los artículos vivos con
// valor positivo, ordenados por el listado del catálogo.
func (uc *UseCase) ValueDistribution(ctx context.Context) (*dto.ValueDistributionDTO, error) {
	items, err := uc.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.ValueDistributionDTO{Labels: []string{}, Values: []decimal.Decimal{}}
	for _, it := range items {
		if it.Deleted() {
			continue
		}
		value := it.TotalValue()
		if value.GreaterThan(decimal.Zero) {
			out.Labels = append(out.Labels, it.Name)
			out.Values = append(out.Values, value)
		}
	}
	return out, nil
}

// QuantityAlerts devuelve el detalle de artículos por debajo del umbral.
func (uc *UseCase) QuantityAlerts(ctx context.Context, threshold int64) (*dto.QuantityAlertsDTO, error) {
	if threshold <= 0 {
		threshold = domfin.LowStockThreshold
	}
	items, err := uc.itemRepo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	out := &dto.QuantityAlertsDTO{Threshold: threshold, AlertCount: len(items), Items: []dto.ItemResponse{}}
	for _, it := range items {
		out.Items = append(out.Items, dto.ItemResponse{
			ID:         it.ID,
			Reference:  it.Reference,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalValue: it.TotalValue(),
			CreatedAt:  it.CreatedAt,
			UpdatedAt:  it.UpdatedAt,
		})
	}
	return out, nil
}

// PerformanceMetrics métricas de los últimos 30 días más valor de stock y
// descuento medio histórico.
func (uc *UseCase) PerformanceMetrics(ctx context.Context) (*dto.PerformanceMetricsDTO, error) {
	now := uc.Now()
	last30 := domfin.Range{Start: now.AddDate(0, 0, -30), End: now}
	allTime := domfin.Range{Start: time.Time{}, End: now}

	movs, err := uc.movRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stock := domfin.SummarizeStock(items)

	monthlyMovements := 0
	var itemsSold, totalStock int64
	for _, m := range movs {
		if last30.Contains(m.Date) {
			monthlyMovements++
			if m.IsSale() {
				itemsSold += m.Quantity
			}
		}
	}
	for _, it := range items {
		if !it.Deleted() {
			totalStock += it.Quantity
		}
	}

	turnover := decimal.Zero
	if totalStock > 0 {
		turnover = decimal.NewFromInt(itemsSold).
			Div(decimal.NewFromInt(totalStock)).
			Mul(decimal.NewFromInt(100))
	}

	return &dto.PerformanceMetricsDTO{
		TotalStockValue:   stock.TotalValue,
		MonthlyRevenue:    domfin.Revenue(movs, last30),
		MonthlyMovements:  monthlyMovements,
		AverageDiscount:   domfin.AverageDiscount(movs, allTime),
		StockTurnoverRate: turnover,
		ItemsSoldMonth:    itemsSold,
	}, nil
}
