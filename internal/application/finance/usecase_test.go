package finance_test

import (
	"context"
	"testing"
	"time"

	"github.com/mouyassirm/elles224/internal/application/finance"
	"github.com/mouyassirm/elles224/internal/domain"
	"github.com/mouyassirm/elles224/internal/domain/entity"
	"github.com/mouyassirm/elles224/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reloj fijo para que los agregados "del mes" y las series sean deterministas.
var fixedNow = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

// stubItemRepo catálogo de solo lectura para el agregador.
type stubItemRepo struct {
	items []*entity.Item
}

func (r *stubItemRepo) Create(context.Context, *entity.Item) error { return nil }
func (r *stubItemRepo) GetByID(context.Context, string) (*entity.Item, error) {
	return nil, nil
}
func (r *stubItemRepo) GetByReference(context.Context, string) (*entity.Item, error) {
	return nil, nil
}
func (r *stubItemRepo) List(context.Context, int, int) ([]*entity.Item, error) {
	return r.items, nil
}
func (r *stubItemRepo) ListAll(context.Context) ([]*entity.Item, error) { return r.items, nil }
func (r *stubItemRepo) ListLowStock(_ context.Context, threshold int64) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if !it.Deleted() && it.Quantity < threshold {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *stubItemRepo) Update(context.Context, *entity.Item) error          { return nil }
func (r *stubItemRepo) SoftDelete(context.Context, string, time.Time) error { return nil }
func (r *stubItemRepo) GetForUpdate(context.Context, string) (*entity.Item, error) {
	return nil, nil
}

// stubMovementRepo libro de solo lectura en orden de inserción.
type stubMovementRepo struct {
	movements []*entity.Movement
}

func (r *stubMovementRepo) Create(context.Context, *entity.Movement) error { return nil }
func (r *stubMovementRepo) List(_ context.Context, _ repository.MovementFilter, limit, _ int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		out = append(out, r.movements[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
func (r *stubMovementRepo) ListAll(context.Context) ([]*entity.Movement, error) {
	return r.movements, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func venta(id string, qty int64, price, discount string, date time.Time) *entity.Movement {
	return &entity.Movement{
		ID: id, ItemID: "item-1", Type: entity.MovementTypeSale,
		Quantity: qty, DiscountPercent: dec(discount), UnitPrice: dec(price), Date: date,
	}
}

func compra(id string, qty int64, price string, date time.Time) *entity.Movement {
	return &entity.Movement{
		ID: id, ItemID: "item-1", Type: entity.MovementTypePurchase,
		Quantity: qty, UnitPrice: dec(price), Date: date,
	}
}

func newFinanceUC(items []*entity.Item, movs []*entity.Movement) *finance.UseCase {
	uc := finance.New(&stubItemRepo{items: items}, &stubMovementRepo{movements: movs})
	uc.Now = func() time.Time { return fixedNow }
	return uc
}

func TestSummary_SeparaTotalYMesActual(t *testing.T) {
	movs := []*entity.Movement{
		venta("m1", 1, "100.00", "0", time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)),
		venta("m2", 1, "40.00", "0", time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC)),
		compra("m3", 2, "10.00", time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC)),
	}
	uc := newFinanceUC(nil, movs)

	out, err := uc.Summary(context.Background(), time.Time{}, fixedNow)
	require.NoError(t, err)
	assert.True(t, dec("140").Equal(out.TotalRevenue), "ingreso histórico")
	assert.True(t, dec("40").Equal(out.MonthlyRevenue), "solo la venta de agosto cuenta para el mes")
	assert.Equal(t, 2, out.TotalSales)
	assert.True(t, dec("120").Equal(out.NetCashFlow), "140 de ventas menos 20 de compras")
}

func TestSummary_RangoInvertido(t *testing.T) {
	uc := newFinanceUC(nil, nil)

	_, err := uc.Summary(context.Background(), fixedNow, fixedNow.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBestSellers_LimitePorDefecto(t *testing.T) {
	var movs []*entity.Movement
	items := make([]*entity.Item, 0, 8)
	for i := 0; i < 8; i++ {
		id := string(rune('a' + i))
		items = append(items, &entity.Item{ID: "item-" + id, Name: "Artículo " + id})
		movs = append(movs, &entity.Movement{
			ID: "m-" + id, ItemID: "item-" + id, Type: entity.MovementTypeSale,
			Quantity: int64(i + 1), UnitPrice: dec("10.00"), DiscountPercent: decimal.Zero,
			Date: fixedNow,
		})
	}
	uc := newFinanceUC(items, movs)

	out, err := uc.BestSellers(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, out, 5, "sin límite explícito se devuelven 5")
	assert.Equal(t, int64(8), out[0].Quantity, "el más vendido encabeza la lista")
}

func TestRevenueByMonth_MesesUnoADoce(t *testing.T) {
	movs := []*entity.Movement{
		venta("m1", 1, "50.00", "0", time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)),
	}
	uc := newFinanceUC(nil, movs)

	out, err := uc.RevenueByMonth(context.Background(), 2026)
	require.NoError(t, err)
	assert.Equal(t, 2026, out.Year)
	require.Len(t, out.Monthly, 12)
	assert.True(t, dec("50").Equal(out.Monthly[1]), "enero es la clave 1")
	assert.True(t, out.Monthly[12].IsZero())
}

func TestSalesTrend_Mensual(t *testing.T) {
	julio := venta("m1", 1, "30.00", "0", time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC))
	uc := newFinanceUC(nil, []*entity.Movement{julio})

	out, err := uc.SalesTrend(context.Background(), "month")
	require.NoError(t, err)
	require.Len(t, out.TrendData, 6)
	assert.Equal(t, "2026-02", out.TrendData[0].Period, "la serie arranca seis meses atrás")
	assert.Equal(t, "2026-07", out.TrendData[5].Period)
	assert.True(t, dec("30").Equal(out.TrendData[5].Revenue))
	assert.True(t, out.TrendData[0].Revenue.IsZero())
}

func TestSalesTrend_Periodos(t *testing.T) {
	uc := newFinanceUC(nil, nil)
	ctx := context.Background()

	semanal, err := uc.SalesTrend(ctx, "week")
	require.NoError(t, err)
	assert.Len(t, semanal.TrendData, 4)

	anual, err := uc.SalesTrend(ctx, "year")
	require.NoError(t, err)
	assert.Len(t, anual.TrendData, 5)
	assert.Equal(t, "2021", anual.TrendData[0].Period)

	_, err = uc.SalesTrend(ctx, "decade")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesTable_FiltraPorRango(t *testing.T) {
	items := []*entity.Item{{ID: "item-1", Name: "Lámpara"}}
	movs := []*entity.Movement{
		venta("m1", 1, "10.00", "0", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)),
		venta("m2", 1, "10.00", "0", time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)),
	}
	uc := newFinanceUC(items, movs)

	rows, err := uc.SalesTable(context.Background(),
		time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), fixedNow)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "m2", rows[0].MovementID)
	assert.Equal(t, "Lámpara", rows[0].ItemName)
}
