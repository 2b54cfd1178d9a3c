package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mouyassirm/elles224/internal/domain"
	"github.com/mouyassirm/elles224/internal/domain/entity"
	"github.com/mouyassirm/elles224/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = "id, reference, name, quantity, unit_price, created_at, updated_at, deleted_at"

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, reference, name, quantity, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Reference, item.Name, item.Quantity, item.UnitPrice,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return wrapStorage(err, "insert item")
	}
	return nil
}

// GetByID obtiene un artículo por ID, incluidos los dados de baja.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// GetByReference obtiene un artículo por referencia, incluidos los dados de baja.
func (r *ItemRepo) GetByReference(ctx context.Context, reference string) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM items WHERE reference = $1`, reference)
}

// GetForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE).
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id)
}

func (r *ItemRepo) getOne(ctx context.Context, query string, arg any) (*entity.Item, error) {
	var it entity.Item
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&it.ID, &it.Reference, &it.Name, &it.Quantity, &it.UnitPrice,
		&it.CreatedAt, &it.UpdatedAt, &it.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStorage(err, "get item")
	}
	return &it, nil
}

// List lista el catálogo vivo con paginación.
func (r *ItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items WHERE deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListAll devuelve todos los artículos, incluidos los dados de baja
// (el agregador los necesita para resolver nombres históricos).
func (r *ItemRepo) ListAll(ctx context.Context) ([]*entity.Item, error) {
	return r.list(ctx, `SELECT `+itemColumns+` FROM items ORDER BY created_at DESC`)
}

// ListLowStock lista artículos vivos con cantidad por debajo del umbral.
func (r *ItemRepo) ListLowStock(ctx context.Context, threshold int64) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items WHERE deleted_at IS NULL AND quantity < $1
		ORDER BY quantity ASC`
	return r.list(ctx, query, threshold)
}

func (r *ItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStorage(err, "list items")
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Reference, &it.Name, &it.Quantity, &it.UnitPrice,
			&it.CreatedAt, &it.UpdatedAt, &it.DeletedAt); err != nil {
			return nil, wrapStorage(err, "scan item")
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza nombre, cantidad y precio. Reference no se toca nunca.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, quantity = $3, unit_price = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Quantity, item.UnitPrice, item.UpdatedAt,
	)
	if err != nil {
		return wrapStorage(err, "update item")
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el artículo como dado de baja; la fila sobrevive para
// que el historial siga resolviendo nombre y precio.
func (r *ItemRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE items SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
	)
	if err != nil {
		return wrapStorage(err, "delete item")
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
