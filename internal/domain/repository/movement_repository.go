package repository

import (
	"context"
	"time"

	"github.com/mouyassirm/elles224/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	ItemID string
	Type   string // purchase | sale | "" (todos)
	From   *time.Time
	To     *time.Time
}

// MovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: solo Create; no existen update ni delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error

	// List devuelve movimientos en orden cronológico inverso; a igual fecha,
	// primero el último agregado al libro.
	List(ctx context.Context, filter MovementFilter, limit, offset int) ([]*entity.Movement, error)

	// ListAll devuelve el libro completo en orden de inserción (Seq ascendente).
	ListAll(ctx context.Context) ([]*entity.Movement, error)
}
