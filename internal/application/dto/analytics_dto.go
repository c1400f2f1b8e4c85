package dto

import "github.com/shopspring/decimal"

// TopProductDTO producto destacado en el dashboard.
type TopProductDTO struct {
	ProductID      string          `json:"product_id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	UnitsSold      int64           `json:"units_sold"`
	GrossRevenue   decimal.Decimal `json:"gross_revenue"`
	GrossMarginPct decimal.Decimal `json:"gross_margin_pct"`
}

// MonthlySalesDTO punto de la serie de ventas mensuales.
type MonthlySalesDTO struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DashboardSummaryDTO resumen financiero del día y del mes en curso.
type DashboardSummaryDTO struct {
	TodaySales    decimal.Decimal   `json:"today_sales"`
	TodayMargin   decimal.Decimal   `json:"today_margin"`
	MonthlySales  decimal.Decimal   `json:"monthly_sales"`
	MonthlyMargin decimal.Decimal   `json:"monthly_margin"`
	TopProducts   []TopProductDTO   `json:"top_products"`
	SalesByMonth  []MonthlySalesDTO `json:"sales_by_month"`
	DateLabel     string            `json:"date_label"`
}
