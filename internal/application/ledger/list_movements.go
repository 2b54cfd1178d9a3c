package ledger

import (
	"context"
	"time"

	"github.com/mouyassirm/elles224/internal/application/dto"
	"github.com/mouyassirm/elles224/internal/domain"
	"github.com/mouyassirm/elles224/internal/domain/entity"
	"github.com/mouyassirm/elles224/internal/domain/repository"
)

// ListInput filtros opcionales para listar movimientos.
type ListInput struct {
	ItemID string
	Type   string // purchase | sale | ""
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// List devuelve movimientos del libro en orden cronológico inverso;
// a igual fecha, primero el último agregado.
func (uc *UseCase) List(ctx context.Context, in ListInput) (*dto.MovementListResponse, error) {
	if in.Type != "" && in.Type != entity.MovementTypePurchase && in.Type != entity.MovementTypeSale {
		return nil, domain.ErrInvalidInput
	}
	if in.From != nil && in.To != nil && in.From.After(*in.To) {
		return nil, domain.ErrInvalidInput
	}
	movs, err := uc.movRepo.List(ctx, repository.MovementFilter{
		ItemID: in.ItemID,
		Type:   in.Type,
		From:   in.From,
		To:     in.To,
	}, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Movements: out, Limit: in.Limit, Offset: in.Offset}, nil
}
