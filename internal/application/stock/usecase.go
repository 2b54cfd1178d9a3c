// Package stock contiene los casos de uso del registro de artículos.
package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mouyassirm/elles224/internal/application/dto"
	"github.com/mouyassirm/elles224/internal/domain"
	"github.com/mouyassirm/elles224/internal/domain/entity"
	"github.com/mouyassirm/elles224/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase casos de uso CRUD del catálogo. Quantity solo la muta el motor de
// movimientos; aquí la edición directa de cantidad es la excepción explícita
// del contrato de Update (corrección manual de inventario).
type UseCase struct {
	repo repository.ItemRepository
}

// New construye el caso de uso.
func New(repo repository.ItemRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create registra un artículo nuevo. Falla con ErrDuplicateReference si la
// referencia ya existe (incluye artículos dados de baja: la referencia es
// clave de negocio histórica).
func (uc *UseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Reference == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByReference(ctx, in.Reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateReference
	}
	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Reference: in.Reference,
		Name:      in.Name,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Get obtiene un artículo vivo por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Deleted() {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// FindByReference obtiene un artículo vivo por referencia.
func (uc *UseCase) FindByReference(ctx context.Context, reference string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Deleted() {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista el catálogo vivo con paginación.
func (uc *UseCase) List(ctx context.Context, limit, offset int) (*dto.ItemListResponse, error) {
	items, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: out, Limit: limit, Offset: offset}, nil
}

// LowStock lista artículos vivos con cantidad por debajo del umbral.
func (uc *UseCase) LowStock(ctx context.Context, threshold int64) ([]dto.ItemResponse, error) {
	items, err := uc.repo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Update actualiza nombre, cantidad o precio. La referencia es inmutable:
// si viene en el payload con un valor distinto, se rechaza.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Deleted() {
		return nil, domain.ErrNotFound
	}
	if in.Reference != nil && *in.Reference != item.Reference {
		return nil, domain.ErrImmutableReference
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.UnitPrice = *in.UnitPrice
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete da de baja un artículo (borrado lógico). Los movimientos históricos
// sobreviven; el artículo deja de aceptar movimientos nuevos.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil || item.Deleted() {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, id, time.Now())
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:         i.ID,
		Reference:  i.Reference,
		Name:       i.Name,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice,
		TotalValue: i.TotalValue(),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}
