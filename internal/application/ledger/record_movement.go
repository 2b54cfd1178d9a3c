// Package ledger contiene el motor de movimientos: el único escritor de
// Item.Quantity. Cada aplicación de movimiento es una transición de un solo
// paso: validar, verificar disponibilidad, aplicar y anexar al libro, todo
// dentro de una transacción con bloqueo de fila.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mouyassirm/elles224/internal/application/dto"
	"github.com/mouyassirm/elles224/internal/domain"
	"github.com/mouyassirm/elles224/internal/domain/entity"
	"github.com/mouyassirm/elles224/internal/domain/finance"
	"github.com/mouyassirm/elles224/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase registra movimientos de compra y venta de forma transaccional.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// New construye el caso de uso.
func New(txRunner TxRunner, itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// RecordPurchase registra una entrada de stock: suma quantity al artículo y
// anexa el movimiento al libro con el precio unitario vigente.
func (uc *UseCase) RecordPurchase(ctx context.Context, in dto.RecordPurchaseRequest) (*dto.MovementResponse, error) {
	return uc.record(ctx, in.ItemID, entity.MovementTypePurchase, in.Quantity, decimal.Zero)
}

// RecordSale registra una salida de stock: valida disponibilidad y descuento,
// resta quantity y anexa el movimiento. El descuento solo aplica a ventas.
func (uc *UseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.MovementResponse, error) {
	if !finance.ValidDiscount(in.DiscountPercent) {
		return nil, domain.ErrInvalidDiscount
	}
	return uc.record(ctx, in.ItemID, entity.MovementTypeSale, in.Quantity, in.DiscountPercent)
}

// record aplica la transición: dentro de la transacción bloquea la fila del
// artículo, revalida, muta la cantidad y anexa el movimiento. Cualquier fallo
// antes del Commit deja el estado exactamente como estaba.
func (uc *UseCase) record(ctx context.Context, itemID, movType string, quantity int64, discount decimal.Decimal) (*dto.MovementResponse, error) {
	if itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	// Prevalidación fuera de la tx: existencia y baja del artículo.
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Deleted() {
		return nil, domain.ErrNotFound
	}

	var recorded *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del artículo para que leer-modificar-escribir
		// no se intercale con otros movimientos ni con ediciones.
		locked, err := itemRepo.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if locked == nil || locked.Deleted() {
			return domain.ErrNotFound
		}

		now := time.Now()
		switch movType {
		case entity.MovementTypePurchase:
			locked.Quantity += quantity
		case entity.MovementTypeSale:
			if locked.Quantity < quantity {
				return domain.ErrInsufficientStock
			}
			locked.Quantity -= quantity
		default:
			return domain.ErrInvalidInput
		}
		locked.UpdatedAt = now
		if err := itemRepo.Update(ctx, locked); err != nil {
			return err
		}

		mov := &entity.Movement{
			ID:              uuid.New().String(),
			ItemID:          itemID,
			Type:            movType,
			Quantity:        quantity,
			DiscountPercent: discount,
			UnitPrice:       locked.UnitPrice, // precio capturado al momento del movimiento
			Date:            now,
			CreatedAt:       now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		recorded = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(recorded), nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:              m.ID,
		ItemID:          m.ItemID,
		Type:            m.Type,
		Quantity:        m.Quantity,
		DiscountPercent: m.DiscountPercent,
		UnitPrice:       m.UnitPrice,
		Date:            m.Date,
	}
}
