package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mouyassirm/elles224/internal/domain/entity"
	"github.com/mouyassirm/elles224/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = "id, seq, item_id, type, quantity, discount_percent, unit_price, date, created_at"

// MovementRepo implementación append-only del libro de movimientos sobre
// PostgreSQL (usable con pool o tx). No expone update ni delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create anexa un movimiento al libro. La BD asigna la posición (seq).
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, item_id, type, quantity, discount_percent, unit_price, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING seq`
	err := r.q.QueryRow(ctx, query,
		movement.ID, movement.ItemID, movement.Type, movement.Quantity,
		movement.DiscountPercent, movement.UnitPrice, movement.Date, movement.CreatedAt,
	).Scan(&movement.Seq)
	if err != nil {
		return wrapStorage(err, "append movement")
	}
	return nil
}

// List devuelve movimientos en orden cronológico inverso; a igual fecha,
// primero el último anexado (seq descendente).
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE 1=1`
	var args []any
	pos := 1
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, seq DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	return r.query(ctx, query, args...)
}

// ListAll devuelve el libro completo en orden de inserción.
func (r *MovementRepo) ListAll(ctx context.Context) ([]*entity.Movement, error) {
	return r.query(ctx, `SELECT `+movementColumns+` FROM movements ORDER BY seq ASC`)
}

func (r *MovementRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStorage(err, "list movements")
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Seq, &m.ItemID, &m.Type, &m.Quantity,
			&m.DiscountPercent, &m.UnitPrice, &m.Date, &m.CreatedAt); err != nil {
			return nil, wrapStorage(err, "scan movement")
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
