package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wa_admin_202610/internal/apperr"
	"wa_admin_202610/internal/model"
)

var testNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return testNow.AddDate(0, 0, -n) }

func order(id, customer, storeID, status string, amount float64, date time.Time, items ...model.OrderItem) model.Order {
	return model.Order{
		BaseModel:    model.BaseModel{ID: id},
		CustomerName: customer,
		StoreID:      storeID,
		Status:       status,
		Amount:       amount,
		Date:         date,
		ItemCount:    1,
		Items:        items,
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name      string
		cur, prev float64
		want      float64
	}{
		{"上期为零", 100, 0, 0},
		{"持平", 50, 50, 0},
		{"增长", 150, 100, 50},
		{"下降", 75, 100, -25},
		{"一位小数", 1, 3, -66.7},
		{"极小下降不出现负零", 99999, 100000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentChange(tt.cur, tt.prev))
		})
	}
}

func TestLargestRemainder(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []int
	}{
		{"三等分", []float64{1, 1, 1}, []int{34, 33, 33}},
		{"单项", []float64{42}, []int{100}},
		{"整除", []float64{50, 25, 25}, []int{50, 25, 25}},
		{"余数大者优先", []float64{10, 20, 70.5}, []int{10, 20, 70}},
		{"全零", []float64{0, 0}, []int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LargestRemainder(tt.values))
		})
	}
}

func TestLargestRemainder_SumsTo100(t *testing.T) {
	inputs := [][]float64{
		{1, 2, 3, 4, 5, 6, 7},
		{0.1, 0.1, 0.1},
		{999.99, 0.01},
		{13, 17, 19, 23, 29, 31},
		{5, 0, 5},
	}
	for _, in := range inputs {
		sum := 0
		for _, p := range LargestRemainder(in) {
			sum += p
		}
		assert.Equal(t, 100, sum, "%v", in)
	}
}

func TestTopN_StableTies(t *testing.T) {
	stores := []model.Store{
		{BaseModel: model.BaseModel{ID: "a"}, Revenue: 10},
		{BaseModel: model.BaseModel{ID: "b"}, Revenue: 30},
		{BaseModel: model.BaseModel{ID: "c"}, Revenue: 10},
		{BaseModel: model.BaseModel{ID: "d"}, Revenue: 30},
	}
	top := TopN(stores, 3, func(s model.Store) float64 { return s.Revenue })
	require.Len(t, top, 3)
	assert.Equal(t, []string{"b", "d", "a"}, []string{top[0].ID, top[1].ID, top[2].ID})
	// 原切片不变
	assert.Equal(t, "a", stores[0].ID)
}

func TestComputeDashboardStats_Example(t *testing.T) {
	orders := []model.Order{
		order("O1", "x", "s1", model.OrderStatusCompleted, 100, daysAgo(1)),
		order("O2", "y", "s1", model.OrderStatusPending, 50, daysAgo(2)),
	}
	stats := ComputeDashboardStats(testNow, nil, nil, orders)
	assert.Equal(t, 100.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.TotalOrders)
}

func TestComputeDashboardStats_SubCentRevenue(t *testing.T) {
	amounts := []float64{10.006, 0.004, 0.003}
	orders := make([]model.Order, 0, len(amounts)+1)
	want := 0.0
	for i, amount := range amounts {
		orders = append(orders, order(string(rune('A'+i)), "x", "s1", model.OrderStatusCompleted, amount, daysAgo(i+1)))
		want += amount
	}
	orders = append(orders, order("P", "y", "s1", model.OrderStatusPending, 0.009, daysAgo(1)))

	stats := ComputeDashboardStats(testNow, nil, nil, orders)
	// 精确等于已完成订单金额之和，不按分取整
	assert.Equal(t, want, stats.TotalRevenue)
	assert.InDelta(t, 10.013, stats.TotalRevenue, 1e-9)
}

func TestComputeDashboardStats_Empty(t *testing.T) {
	stats := ComputeDashboardStats(testNow, nil, nil, nil)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.RevenueChange)
	assert.Zero(t, stats.OwnersChange)
	assert.Empty(t, stats.RecentOrders)
	assert.Empty(t, stats.TopStores)
}

func TestComputeDashboardStats(t *testing.T) {
	owners := []model.BusinessOwner{
		{BaseModel: model.BaseModel{ID: "b1"}, Status: model.StatusActive, JoinedAt: daysAgo(100)},
		{BaseModel: model.BaseModel{ID: "b2"}, Status: model.StatusActive, JoinedAt: daysAgo(5)},
		{BaseModel: model.BaseModel{ID: "b3"}, Status: model.StatusSuspended, JoinedAt: daysAgo(100)},
	}
	stores := []model.Store{
		{BaseModel: model.BaseModel{ID: "s1"}, Status: model.StatusActive, Revenue: 500, CreatedAt: daysAgo(90)},
		{BaseModel: model.BaseModel{ID: "s2"}, Status: model.StatusActive, Revenue: 900, CreatedAt: daysAgo(60)},
		{BaseModel: model.BaseModel{ID: "s3"}, Status: model.StatusSuspended, Revenue: 900, CreatedAt: daysAgo(60)},
		{BaseModel: model.BaseModel{ID: "s4"}, Status: model.StatusActive, Revenue: 100, CreatedAt: daysAgo(3)},
	}
	orders := []model.Order{
		order("O1", "a", "s1", model.OrderStatusCompleted, 200, daysAgo(1)),
		order("O2", "b", "s1", model.OrderStatusCompleted, 100, daysAgo(40)),
		order("O3", "c", "s2", model.OrderStatusCancelled, 80, daysAgo(3)),
		order("O4", "d", "s2", model.OrderStatusPending, 20, daysAgo(1)),
		order("O5", "e", "s2", model.OrderStatusCompleted, 50, daysAgo(10)),
		order("O6", "f", "s4", model.OrderStatusShipped, 60, daysAgo(20)),
	}

	stats := ComputeDashboardStats(testNow, owners, stores, orders)

	assert.Equal(t, 350.0, stats.TotalRevenue)
	assert.Equal(t, 6, stats.TotalOrders)
	assert.Equal(t, 3, stats.TotalStores)
	assert.Equal(t, 2, stats.ActiveBusinessOwners)

	// 近 30 天营收 250，上一窗口 100
	assert.Equal(t, 150.0, stats.RevenueChange)
	// 近 30 天 5 单，上一窗口 1 单
	assert.Equal(t, 400.0, stats.OrdersChange)
	// 活跃店铺 3 vs 2，活跃商家 2 vs 1
	assert.Equal(t, 50.0, stats.StoresChange)
	assert.Equal(t, 100.0, stats.OwnersChange)

	require.Len(t, stats.RecentOrders, 5)
	// O1 与 O4 同一天，按插入顺序
	assert.Equal(t, []string{"O1", "O4", "O3", "O5", "O6"}, orderIDs(stats.RecentOrders))

	require.Len(t, stats.TopStores, 3)
	assert.Equal(t, "s2", stats.TopStores[0].ID)
	assert.Equal(t, "s3", stats.TopStores[1].ID)
	assert.Equal(t, "s1", stats.TopStores[2].ID)
}

func orderIDs(orders []model.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestComputeReportMetrics_InvalidPeriod(t *testing.T) {
	_, err := ComputeReportMetrics("daily", testNow, nil, nil)
	var ip *apperr.InvalidPeriodError
	require.ErrorAs(t, err, &ip)
	assert.Equal(t, "daily", ip.Period)
}

func TestComputeReportMetrics_Empty(t *testing.T) {
	for _, p := range []string{"weekly", "monthly", "yearly"} {
		r, err := ComputeReportMetrics(p, testNow, nil, nil)
		require.NoError(t, err)
		assert.Zero(t, r.Revenue.Current)
		assert.Zero(t, r.AverageOrderValue.Current)
		assert.Zero(t, r.Orders.Change)
		assert.Empty(t, r.TopProducts)
		assert.Empty(t, r.TopCategories)
	}
}

func TestComputeReportMetrics_Weekly(t *testing.T) {
	stores := []model.Store{
		{BaseModel: model.BaseModel{ID: "s1"}, Category: "Fashion"},
		{BaseModel: model.BaseModel{ID: "s2"}, Category: "Food"},
	}
	shirt := model.OrderItem{ProductName: "Shirt", Quantity: 2, UnitPrice: 30}
	spice := model.OrderItem{ProductName: "Spice", Quantity: 4, UnitPrice: 10}
	orders := []model.Order{
		// 当前周
		order("O1", "Ann", "s1", model.OrderStatusCompleted, 60, daysAgo(1), shirt),
		order("O2", "Ben", "s2", model.OrderStatusCompleted, 40, daysAgo(2), spice),
		order("O3", "Ann", "s2", model.OrderStatusPending, 40, daysAgo(3), spice),
		order("O4", "Cat", "s1", model.OrderStatusCompleted, 60, daysAgo(6), shirt),
		// 上一周
		order("O5", "Dan", "s1", model.OrderStatusCompleted, 80, daysAgo(8)),
		// 窗口之外
		order("O6", "Eve", "s1", model.OrderStatusCompleted, 999, daysAgo(30)),
	}

	r, err := ComputeReportMetrics("weekly", testNow, stores, orders)
	require.NoError(t, err)

	assert.Equal(t, model.PeriodWeekly, r.Period)
	assert.Equal(t, model.MetricComparison{Current: 160, Previous: 80, Change: 100}, r.Revenue)
	assert.Equal(t, model.MetricComparison{Current: 4, Previous: 1, Change: 300}, r.Orders)
	assert.Equal(t, model.MetricComparison{Current: 3, Previous: 1, Change: 200}, r.Customers)
	assert.Equal(t, model.MetricComparison{Current: 40, Previous: 80, Change: -50}, r.AverageOrderValue)

	require.Len(t, r.TopProducts, 2)
	assert.Equal(t, model.ProductRank{Name: "Shirt", Sales: 4, Revenue: 120}, r.TopProducts[0])
	assert.Equal(t, model.ProductRank{Name: "Spice", Sales: 4, Revenue: 40}, r.TopProducts[1])

	require.Len(t, r.TopCategories, 2)
	assert.Equal(t, model.CategoryShare{Name: "Fashion", Revenue: 120, Percentage: 75}, r.TopCategories[0])
	assert.Equal(t, model.CategoryShare{Name: "Food", Revenue: 40, Percentage: 25}, r.TopCategories[1])
}

func TestComputeReportMetrics_ChangeZeroWhenNoPrevious(t *testing.T) {
	orders := []model.Order{
		order("O1", "Ann", "s1", model.OrderStatusCompleted, 60, daysAgo(1)),
	}
	for _, p := range []string{"weekly", "monthly", "yearly"} {
		r, err := ComputeReportMetrics(p, testNow, nil, orders)
		require.NoError(t, err)
		for _, m := range []model.MetricComparison{r.Revenue, r.Orders, r.Customers, r.AverageOrderValue} {
			assert.Zero(t, m.Previous)
			assert.Zero(t, m.Change)
		}
		// 未知店铺归入未分类
		require.Len(t, r.TopCategories, 1)
		assert.Equal(t, "Uncategorized", r.TopCategories[0].Name)
		assert.Equal(t, 100, r.TopCategories[0].Percentage)
	}
}

func TestComputeReportMetrics_CategoriesSumTo100(t *testing.T) {
	stores := []model.Store{
		{BaseModel: model.BaseModel{ID: "s1"}, Category: "A"},
		{BaseModel: model.BaseModel{ID: "s2"}, Category: "B"},
		{BaseModel: model.BaseModel{ID: "s3"}, Category: "C"},
	}
	orders := []model.Order{
		order("O1", "x", "s1", model.OrderStatusCompleted, 10, daysAgo(1)),
		order("O2", "x", "s2", model.OrderStatusCompleted, 10, daysAgo(1)),
		order("O3", "x", "s3", model.OrderStatusCompleted, 10, daysAgo(1)),
	}
	r, err := ComputeReportMetrics("monthly", testNow, stores, orders)
	require.NoError(t, err)
	sum := 0
	for _, c := range r.TopCategories {
		sum += c.Percentage
	}
	assert.Equal(t, 100, sum)
}
