package service

import (
	"math"
	"sort"
	"time"

	"wa_admin_202610/internal/apperr"
	"wa_admin_202610/internal/model"
)

const (
	recentOrdersLimit = 5
	topStoresLimit    = 3
	topProductsLimit  = 5

	// 仪表盘变化率按月度窗口比较
	dashboardPeriod = model.PeriodMonthly

	uncategorized = "Uncategorized"
)

// ==================== 通用计算 ====================

// PercentChange (current-previous)/previous*100，保留一位小数；previous 为 0 时返回 0
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	change := math.Round((current-previous)/previous*1000) / 10
	if change == 0 {
		return 0 // 去掉 -0
	}
	return change
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// TopN 按 score 降序取前 n 个，分数相同保持原顺序
func TopN[T any](items []T, n int, score func(T) float64) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return score(sorted[i]) > score(sorted[j])
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// LargestRemainder 将各值按占比分配为整数百分比，总和恰为 100
// 余数相同时靠前者优先；总和为 0 时全部为 0
func LargestRemainder(values []float64) []int {
	out := make([]int, len(values))
	var total float64
	for _, v := range values {
		total += v
	}
	if total <= 0 {
		return out
	}

	type remainder struct {
		idx  int
		frac float64
	}
	rems := make([]remainder, len(values))
	assigned := 0
	for i, v := range values {
		quota := v / total * 100
		floor := math.Floor(quota)
		out[i] = int(floor)
		assigned += out[i]
		rems[i] = remainder{idx: i, frac: quota - floor}
	}
	sort.SliceStable(rems, func(i, j int) bool { return rems[i].frac > rems[j].frac })
	for i := 0; assigned < 100 && len(rems) > 0; i = (i + 1) % len(rems) {
		out[rems[i].idx]++
		assigned++
	}
	return out
}

// window 统计窗口 (From, To]
type window struct {
	From time.Time
	To   time.Time
}

func (w window) contains(t time.Time) bool {
	return t.After(w.From) && !t.After(w.To)
}

// periodWindows 当前窗口与紧邻的上一窗口
func periodWindows(p model.Period, now time.Time) (current, previous window) {
	span := p.Window()
	current = window{From: now.Add(-span), To: now}
	previous = window{From: now.Add(-2 * span), To: now.Add(-span)}
	return current, previous
}

// ==================== 仪表盘 ====================

// ComputeDashboardStats 仪表盘汇总，空集合时各项为 0
func ComputeDashboardStats(now time.Time, owners []model.BusinessOwner, stores []model.Store, orders []model.Order) model.DashboardStats {
	stats := model.DashboardStats{TotalOrders: len(orders)}

	// 营收为原始累加值，取整留给展示层

	for _, o := range orders {
		if o.IsCompleted() {
			stats.TotalRevenue += o.Amount
		}
	}

	for _, s := range stores {
		if s.IsActive() {
			stats.TotalStores++
		}
	}
	for _, o := range owners {
		if o.IsActive() {
			stats.ActiveBusinessOwners++
		}
	}

	cur, prev := periodWindows(dashboardPeriod, now)
	curRevenue, curOrders := windowRevenueAndCount(orders, cur)
	prevRevenue, prevOrders := windowRevenueAndCount(orders, prev)
	stats.RevenueChange = PercentChange(curRevenue, prevRevenue)
	stats.OrdersChange = PercentChange(float64(curOrders), float64(prevOrders))

	// 店铺/商家按截至窗口起点的活跃存量比较
	activeStoresAt := func(t time.Time) float64 {
		n := 0
		for _, s := range stores {
			if s.IsActive() && !s.CreatedAt.After(t) {
				n++
			}
		}
		return float64(n)
	}
	activeOwnersAt := func(t time.Time) float64 {
		n := 0
		for _, o := range owners {
			if o.IsActive() && !o.JoinedAt.After(t) {
				n++
			}
		}
		return float64(n)
	}
	stats.StoresChange = PercentChange(activeStoresAt(cur.To), activeStoresAt(cur.From))
	stats.OwnersChange = PercentChange(activeOwnersAt(cur.To), activeOwnersAt(cur.From))

	// 最近订单：日期倒序
	recent := make([]model.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}
	stats.RecentOrders = recent

	stats.TopStores = TopN(stores, topStoresLimit, func(s model.Store) float64 { return s.Revenue })
	return stats
}

// windowRevenueAndCount 窗口内已完成订单营收与全部订单数
func windowRevenueAndCount(orders []model.Order, w window) (float64, int) {
	var revenue float64
	count := 0
	for _, o := range orders {
		if !w.contains(o.Date) {
			continue
		}
		count++
		if o.IsCompleted() {
			revenue += o.Amount
		}
	}
	return revenue, count
}

// ==================== 周期报表 ====================

type periodTotals struct {
	revenue   float64
	orders    int
	customers int
}

func (t periodTotals) averageOrderValue() float64 {
	if t.orders == 0 {
		return 0
	}
	return t.revenue / float64(t.orders)
}

func totalsIn(orders []model.Order, w window) periodTotals {
	var t periodTotals
	customers := make(map[string]struct{})
	for _, o := range orders {
		if !w.contains(o.Date) {
			continue
		}
		t.orders++
		customers[o.CustomerName] = struct{}{}
		if o.IsCompleted() {
			t.revenue += o.Amount
		}
	}
	t.customers = len(customers)
	return t
}

func compare(current, previous float64) model.MetricComparison {
	return model.MetricComparison{
		Current:  current,
		Previous: previous,
		Change:   PercentChange(current, previous),
	}
}

// ComputeReportMetrics 周期报表；period 不合法返回 InvalidPeriodError
func ComputeReportMetrics(period string, now time.Time, stores []model.Store, orders []model.Order) (model.ReportMetrics, error) {
	p, ok := model.ParsePeriod(period)
	if !ok {
		return model.ReportMetrics{}, apperr.InvalidPeriod(period)
	}

	cur, prev := periodWindows(p, now)
	c := totalsIn(orders, cur)
	pv := totalsIn(orders, prev)

	revenue := compare(roundMoney(c.revenue), roundMoney(pv.revenue))
	aov := compare(roundMoney(c.averageOrderValue()), roundMoney(pv.averageOrderValue()))

	inWindow := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsCompleted() && cur.contains(o.Date) {
			inWindow = append(inWindow, o)
		}
	}

	return model.ReportMetrics{
		Period:            p,
		From:              cur.From,
		To:                cur.To,
		Revenue:           revenue,
		Orders:            compare(float64(c.orders), float64(pv.orders)),
		Customers:         compare(float64(c.customers), float64(pv.customers)),
		AverageOrderValue: aov,
		TopProducts:       topProducts(inWindow, topProductsLimit),
		TopCategories:     topCategories(inWindow, stores),
	}, nil
}

// topProducts 按商品营收排行，首次出现顺序决定并列次序
func topProducts(orders []model.Order, n int) []model.ProductRank {
	index := make(map[string]int)
	ranks := make([]model.ProductRank, 0)
	for _, o := range orders {
		for _, item := range o.Items {
			pos, ok := index[item.ProductName]
			if !ok {
				pos = len(ranks)
				index[item.ProductName] = pos
				ranks = append(ranks, model.ProductRank{Name: item.ProductName})
			}
			ranks[pos].Sales += item.Quantity
			ranks[pos].Revenue += item.Total()
		}
	}
	for i := range ranks {
		ranks[i].Revenue = roundMoney(ranks[i].Revenue)
	}
	return TopN(ranks, n, func(r model.ProductRank) float64 { return r.Revenue })
}

// topCategories 按店铺品类汇总营收占比，百分比总和为 100；无营收时为空
func topCategories(orders []model.Order, stores []model.Store) []model.CategoryShare {
	categoryOf := make(map[string]string, len(stores))
	for _, s := range stores {
		categoryOf[s.ID] = s.Category
	}

	index := make(map[string]int)
	shares := make([]model.CategoryShare, 0)
	for _, o := range orders {
		if o.Amount <= 0 {
			continue
		}
		name := categoryOf[o.StoreID]
		if name == "" {
			name = uncategorized
		}
		pos, ok := index[name]
		if !ok {
			pos = len(shares)
			index[name] = pos
			shares = append(shares, model.CategoryShare{Name: name})
		}
		shares[pos].Revenue += o.Amount
	}
	if len(shares) == 0 {
		return shares
	}

	shares = TopN(shares, -1, func(c model.CategoryShare) float64 { return c.Revenue })
	values := make([]float64, len(shares))
	for i, s := range shares {
		values[i] = s.Revenue
	}
	for i, pct := range LargestRemainder(values) {
		shares[i].Percentage = pct
		shares[i].Revenue = roundMoney(shares[i].Revenue)
	}
	return shares
}
