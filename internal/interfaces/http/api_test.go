package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appfinance "github.com/mouyassirm/elles224/internal/application/finance"
	"github.com/mouyassirm/elles224/internal/application/ledger"
	"github.com/mouyassirm/elles224/internal/application/report"
	"github.com/mouyassirm/elles224/internal/application/stock"
	"github.com/mouyassirm/elles224/internal/domain"
	"github.com/mouyassirm/elles224/internal/domain/entity"
	"github.com/mouyassirm/elles224/internal/domain/repository"
	apphttp "github.com/mouyassirm/elles224/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación de prueba: la API completa sobre repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memItemRepo struct {
	order []string
	items map[string]entity.Item
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[string]entity.Item)}
}

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	for _, it := range r.items {
		if it.Reference == item.Reference {
			return domain.ErrDuplicateReference
		}
	}
	r.order = append(r.order, item.ID)
	r.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copia := it
	return &copia, nil
}

func (r *memItemRepo) GetByReference(_ context.Context, reference string) (*entity.Item, error) {
	for _, it := range r.items {
		if it.Reference == reference {
			copia := it
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) List(_ context.Context, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, id := range r.order {
		it := r.items[id]
		if it.Deleted() {
			continue
		}
		copia := it
		out = append(out, &copia)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memItemRepo) ListAll(_ context.Context) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, id := range r.order {
		copia := r.items[id]
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memItemRepo) ListLowStock(_ context.Context, threshold int64) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, id := range r.order {
		it := r.items[id]
		if it.Deleted() || it.Quantity >= threshold {
			continue
		}
		copia := it
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memItemRepo) Update(_ context.Context, item *entity.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.DeletedAt = &at
	r.items[id] = it
	return nil
}

func (r *memItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

type memMovementRepo struct {
	movements []entity.Movement
}

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	m.Seq = int64(len(r.movements) + 1)
	r.movements = append(r.movements, *m)
	return nil
}

func (r *memMovementRepo) List(_ context.Context, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if filter.ItemID != "" && m.ItemID != filter.ItemID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.From != nil && m.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.Date.After(*filter.To) {
			continue
		}
		copia := m
		out = append(out, &copia)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memMovementRepo) ListAll(_ context.Context) ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0, len(r.movements))
	for i := range r.movements {
		copia := r.movements[i]
		out = append(out, &copia)
	}
	return out, nil
}

type memTxRunner struct {
	itemRepo *memItemRepo
	movRepo  *memMovementRepo
}

func (tx *memTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	snapshot := make(map[string]entity.Item, len(tx.itemRepo.items))
	for k, v := range tx.itemRepo.items {
		snapshot[k] = v
	}
	if err := fn(tx.itemRepo, tx.movRepo); err != nil {
		tx.itemRepo.items = snapshot
		return err
	}
	return nil
}

// buildTestApp monta la API completa sobre repositorios en memoria.
func buildTestApp() *fiber.App {
	itemRepo := newMemItemRepo()
	movRepo := &memMovementRepo{}
	tx := &memTxRunner{itemRepo: itemRepo, movRepo: movRepo}

	financeUC := appfinance.New(itemRepo, movRepo)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		StockUC:   stock.New(itemRepo),
		LedgerUC:  ledger.New(tx, itemRepo, movRepo),
		FinanceUC: financeUC,
		ReportUC:  report.New(itemRepo, movRepo, financeUC),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		// Las respuestas 204 no llevan cuerpo.
		require.NoError(t, json.Unmarshal(raw, &payload), "cuerpo: %s", raw)
	}
	return resp, payload
}

func createItem(t *testing.T, app *fiber.App, reference string, quantity int64) string {
	t.Helper()
	resp, payload := doJSON(t, app, http.MethodPost, "/api/stock/", map[string]any{
		"reference":  reference,
		"name":       "Artículo " + reference,
		"quantity":   quantity,
		"unit_price": "35.50",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return payload["id"].(string)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CrearYConsultarArticulo(t *testing.T) {
	app := buildTestApp()

	id := createItem(t, app, "EL-001", 10)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/stock/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "EL-001", payload["reference"])
	assert.Equal(t, "355", payload["total_value"], "10 unidades a 35.50")

	resp, _ = doJSON(t, app, http.MethodGet, "/api/stock/reference/EL-001", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_ReferenciaDuplicadaDa409(t *testing.T) {
	app := buildTestApp()
	createItem(t, app, "EL-001", 10)

	resp, payload := doJSON(t, app, http.MethodPost, "/api/stock/", map[string]any{
		"reference":  "EL-001",
		"name":       "Otro",
		"quantity":   1,
		"unit_price": "1.00",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_REFERENCE", payload["code"])
}

func TestAPI_ArticuloInexistenteDa404(t *testing.T) {
	app := buildTestApp()

	resp, payload := doJSON(t, app, http.MethodGet, "/api/stock/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", payload["code"])
}

func TestAPI_CambiarReferenciaDa400(t *testing.T) {
	app := buildTestApp()
	id := createItem(t, app, "EL-001", 10)

	resp, payload := doJSON(t, app, http.MethodPut, "/api/stock/"+id, map[string]any{
		"reference": "EL-999",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "IMMUTABLE_REFERENCE", payload["code"])
}

func TestAPI_BajaYConsultaPosterior(t *testing.T) {
	app := buildTestApp()
	id := createItem(t, app, "EL-001", 10)

	req := httptest.NewRequest(http.MethodDelete, "/api/stock/"+id, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/stock/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CompraVentaYListado(t *testing.T) {
	app := buildTestApp()
	id := createItem(t, app, "EL-001", 10)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/movements/purchase", map[string]any{
		"item_id": id, "quantity": 5,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, payload := doJSON(t, app, http.MethodPost, "/api/movements/sale", map[string]any{
		"item_id": id, "quantity": 3, "discount_percent": "10",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "sale", payload["type"])

	// El stock queda en 10 + 5 - 3 = 12.
	_, item := doJSON(t, app, http.MethodGet, "/api/stock/"+id, nil)
	assert.Equal(t, float64(12), item["quantity"])

	// Orden cronológico inverso: la venta sale primero.
	_, list := doJSON(t, app, http.MethodGet, "/api/movements/", nil)
	movs := list["movements"].([]any)
	require.Len(t, movs, 2)
	assert.Equal(t, "sale", movs[0].(map[string]any)["type"])

	// Filtro por tipo.
	_, list = doJSON(t, app, http.MethodGet, "/api/movements/?type=purchase", nil)
	require.Len(t, list["movements"].([]any), 1)
}

func TestAPI_FiltroDeFechasEnMovimientos(t *testing.T) {
	app := buildTestApp()
	id := createItem(t, app, "EL-001", 10)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/movements/purchase", map[string]any{
		"item_id": id, "quantity": 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// El movimiento recién creado cae dentro de un rango amplio.
	_, list := doJSON(t, app, http.MethodGet, "/api/movements/?from=2000-01-01&to=2100-01-01", nil)
	require.Len(t, list["movements"].([]any), 1)

	// Un rango futuro lo deja fuera.
	_, list = doJSON(t, app, http.MethodGet, "/api/movements/?from=2100-01-01", nil)
	assert.Empty(t, list["movements"].([]any))

	// Un rango pasado también.
	_, list = doJSON(t, app, http.MethodGet, "/api/movements/?to=2000-01-01", nil)
	assert.Empty(t, list["movements"].([]any))

	// Fechas mal formadas son 400.
	resp, payload := doJSON(t, app, http.MethodGet, "/api/movements/?from=ayer", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", payload["code"])
}

func TestAPI_VentaSinStockDa409(t *testing.T) {
	app := buildTestApp()
	id := createItem(t, app, "EL-001", 2)

	resp, payload := doJSON(t, app, http.MethodPost, "/api/movements/sale", map[string]any{
		"item_id": id, "quantity": 3,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", payload["code"])

	// La venta rechazada no toca el stock.
	_, item := doJSON(t, app, http.MethodGet, "/api/stock/"+id, nil)
	assert.Equal(t, float64(2), item["quantity"])
}

func TestAPI_DescuentoFueraDeRangoDa400(t *testing.T) {
	app := buildTestApp()
	id := createItem(t, app, "EL-001", 10)

	resp, payload := doJSON(t, app, http.MethodPost, "/api/movements/sale", map[string]any{
		"item_id": id, "quantity": 1, "discount_percent": "101",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_DISCOUNT", payload["code"])
}

func TestAPI_CantidadCeroDa400(t *testing.T) {
	app := buildTestApp()
	id := createItem(t, app, "EL-001", 10)

	resp, payload := doJSON(t, app, http.MethodPost, "/api/movements/purchase", map[string]any{
		"item_id": id, "quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUANTITY", payload["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Finanzas y reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ResumenFinanciero(t *testing.T) {
	app := buildTestApp()
	id := createItem(t, app, "EL-001", 10)

	// Venta de 3 unidades a 35.50 con 10%: 95.85
	resp, _ := doJSON(t, app, http.MethodPost, "/api/movements/sale", map[string]any{
		"item_id": id, "quantity": 3, "discount_percent": "10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/finance/summary", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "95.85", payload["total_revenue"])
	assert.Equal(t, float64(1), payload["total_sales"])
}

func TestAPI_RangoDeFechasInvalidoDa400(t *testing.T) {
	app := buildTestApp()

	resp, _ := doJSON(t, app, http.MethodGet, "/api/finance/summary?start_date=no-es-fecha", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet,
		"/api/finance/summary?start_date=2026-05-10&end_date=2026-05-01", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_Dashboard(t *testing.T) {
	app := buildTestApp()
	id := createItem(t, app, "EL-001", 10)
	resp, _ := doJSON(t, app, http.MethodPost, "/api/movements/sale", map[string]any{
		"item_id": id, "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/reports/dashboard", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	for _, key := range []string{"stock_summary", "financial_summary", "recent_movements", "recent_sales"} {
		assert.Contains(t, payload, key)
	}
}

func TestAPI_AlertasDeStock(t *testing.T) {
	app := buildTestApp()
	createItem(t, app, "EL-001", 2)
	createItem(t, app, "EL-002", 50)

	resp, payload := doJSON(t, app, http.MethodGet, "/api/reports/stock/quantity-alerts", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), payload["alert_count"])
}

func TestAPI_TendenciaPeriodoInvalidoDa400(t *testing.T) {
	app := buildTestApp()

	resp, payload := doJSON(t, app, http.MethodGet, "/api/finance/sales/trend?period=decade", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", payload["code"])
}

func TestAPI_MejoresVendidos(t *testing.T) {
	app := buildTestApp()
	a := createItem(t, app, "EL-001", 50)
	b := createItem(t, app, "EL-002", 50)

	for _, venta := range []struct {
		id  string
		qty int64
	}{{a, 2}, {b, 7}, {a, 1}} {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/movements/sale", map[string]any{
			"item_id": venta.id, "quantity": venta.qty,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, payload := doJSON(t, app, http.MethodGet, "/api/finance/best-sellers", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	ranked := payload["best_sellers"].([]any)
	require.Len(t, ranked, 2)
	top := ranked[0].(map[string]any)
	assert.Equal(t, "Artículo EL-002", top["name"])
	assert.Equal(t, float64(7), top["quantity"])
}
