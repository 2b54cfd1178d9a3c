package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialSummaryDTO respuesta de GET /api/finance/summary.
type FinancialSummaryDTO struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`    // ventas del rango
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"`  // mes calendario en curso
	TotalSales      int             `json:"total_sales"`      // número de ventas del rango
	AverageDiscount decimal.Decimal `json:"average_discount"` // % medio; 0 sin ventas
	NetCashFlow     decimal.Decimal `json:"net_cash_flow"`    // ventas - compras del rango
}

// BestSellerDTO un artículo del ranking de más vendidos.
type BestSellerDTO struct {
	Name        string          `json:"name"`
	Quantity    int64           `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
	ItemDeleted bool            `json:"item_deleted,omitempty"`
}

// SaleRowDTO línea de la tabla de ventas.
type SaleRowDTO struct {
	MovementID      string          `json:"movement_id"`
	ItemName        string          `json:"item_name"`
	ItemDeleted     bool            `json:"item_deleted,omitempty"`
	Date            time.Time       `json:"date"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

// MonthlyRevenueDTO ingreso por mes de un año.
type MonthlyRevenueDTO struct {
	Year    int                     `json:"year"`
	Monthly map[int]decimal.Decimal `json:"monthly_revenue"` // 1..12
}

// TrendPointDTO punto de la serie de tendencia de ventas.
type TrendPointDTO struct {
	Period  string          `json:"period"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesTrendDTO respuesta de GET /api/finance/sales/trend.
type SalesTrendDTO struct {
	Period    string          `json:"period"` // week | month | year
	TrendData []TrendPointDTO `json:"trend_data"`
}
