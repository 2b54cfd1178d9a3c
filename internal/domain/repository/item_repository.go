package repository

import (
	"context"
	"time"

	"github.com/mouyassirm/elles224/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// GetByID y GetByReference devuelven también artículos dados de baja
// (el caller decide con Deleted()); List y ListLowStock solo el catálogo vivo.
// Devuelven (nil, nil) cuando el artículo no existe.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetByReference(ctx context.Context, reference string) (*entity.Item, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Item, error)
	ListAll(ctx context.Context) ([]*entity.Item, error)
	ListLowStock(ctx context.Context, threshold int64) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	SoftDelete(ctx context.Context, id string, at time.Time) error

	// GetForUpdate bloquea la fila del artículo (SELECT FOR UPDATE) dentro
	// de una transacción; fuera de una tx se comporta como GetByID.
	GetForUpdate(ctx context.Context, id string) (*entity.Item, error)
}
