package model

import "time"

// ==================== 统计周期 ====================

// Period 报表统计周期
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ParsePeriod 解析周期
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return Period(s), true
	}
	return "", false
}

// Window 当前周期窗口长度，上一周期紧邻其前
func (p Period) Window() time.Duration {
	switch p {
	case PeriodWeekly:
		return 7 * 24 * time.Hour
	case PeriodYearly:
		return 365 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

// ==================== 聚合结果 ====================

// DashboardStats 仪表盘汇总
type DashboardStats struct {
	TotalRevenue         float64
	TotalOrders          int
	TotalStores          int
	ActiveBusinessOwners int
	RevenueChange        float64
	OrdersChange         float64
	StoresChange         float64
	OwnersChange         float64
	RecentOrders         []Order
	TopStores            []Store
}

// MetricComparison 当前/上期/变化率
type MetricComparison struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Change   float64 `json:"change"` // 百分比，负数表示下降
}

// ProductRank 商品排行
type ProductRank struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// CategoryShare 品类营收占比
type CategoryShare struct {
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	Percentage int     `json:"percentage"`
}

// ReportMetrics 周期报表
type ReportMetrics struct {
	Period            Period           `json:"period"`
	From              time.Time        `json:"from"`
	To                time.Time        `json:"to"`
	Revenue           MetricComparison `json:"revenue"`
	Orders            MetricComparison `json:"orders"`
	Customers         MetricComparison `json:"customers"`
	AverageOrderValue MetricComparison `json:"average_order_value"`
	TopProducts       []ProductRank    `json:"top_products"`
	TopCategories     []CategoryShare  `json:"top_categories"`
}
