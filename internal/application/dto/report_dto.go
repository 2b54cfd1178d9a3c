package dto

import "github.com/shopspring/decimal"

// StockSummaryDTO resumen del catálogo vivo.
type StockSummaryDTO struct {
	TotalItems    int             `json:"total_items"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockItems int             `json:"low_stock_items"` // quantity < 10
}

// DashboardDTO respuesta de GET /api/reports/dashboard.
// Todo se recalcula desde el núcleo en cada consulta; nada se cachea a mano.
type DashboardDTO struct {
	StockSummary     StockSummaryDTO     `json:"stock_summary"`
	FinancialSummary FinancialSummaryDTO `json:"financial_summary"`
	RecentMovements  []MovementResponse  `json:"recent_movements"`
	RecentSales      []SaleRowDTO        `json:"recent_sales"`
}

// ValueDistributionDTO pares nombre/valor para gráficas de distribución.
type ValueDistributionDTO struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}

// QuantityAlertsDTO artículos por debajo del umbral de stock.
type QuantityAlertsDTO struct {
	Threshold  int64          `json:"threshold"`
	AlertCount int            `json:"alert_count"`
	Items      []ItemResponse `json:"items"`
}

// PerformanceMetricsDTO métricas de desempeño de los últimos 30 días.
type PerformanceMetricsDTO struct {
	TotalStockValue   decimal.Decimal `json:"total_stock_value"`
	MonthlyRevenue    decimal.Decimal `json:"monthly_revenue"`
	MonthlyMovements  int             `json:"monthly_movements"`
	AverageDiscount   decimal.Decimal `json:"average_discount"`
	StockTurnoverRate decimal.Decimal `json:"stock_turnover_rate"` // % vendido sobre stock actual
	ItemsSoldMonth    int64           `json:"items_sold_this_month"`
}
