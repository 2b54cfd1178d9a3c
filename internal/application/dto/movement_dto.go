package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPurchaseRequest body para POST /api/movements/purchase.
type RecordPurchaseRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

// RecordSaleRequest body para POST /api/movements/sale.
type RecordSaleRequest struct {
	ItemID          string          `json:"item_id"`
	Quantity        int64           `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	Type            string          `json:"type"`
	Quantity        int64           `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Date            time.Time       `json:"date"`
}

// MovementListResponse lista de movimientos (orden cronológico inverso).
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}
