package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"

	"wa_admin_202610/internal/api/dto"
	"wa_admin_202610/internal/apperr"
	"wa_admin_202610/internal/metrics"
	"wa_admin_202610/internal/model"
	"wa_admin_202610/internal/repository"
	"wa_admin_202610/pkg/utils"
)

// DefaultReportCacheTTL 报表缓存默认有效期
const DefaultReportCacheTTL = 30 * time.Second

// AdminService 管理后台唯一入口
// 写操作持有 writeMu 串行执行；读操作依赖存储自身的原子性
type AdminService struct {
	store    repository.EntityStore
	clock    Clock
	logger   *slog.Logger
	latency  time.Duration
	validate *validator.Validate
	storage  StorageProvider

	writeMu sync.Mutex

	reports *utils.TTLCache[model.Period, model.ReportMetrics]
	// generation 每次写操作递增，防止并发计算的旧报表回填缓存
	generation atomic.Uint64
}

// AdminOption 可选配置
type AdminOption func(*AdminService)

func WithClock(c Clock) AdminOption {
	return func(s *AdminService) { s.clock = c }
}

func WithLogger(l *slog.Logger) AdminOption {
	return func(s *AdminService) { s.logger = l }
}

// WithLatency 模拟网络延迟
func WithLatency(d time.Duration) AdminOption {
	return func(s *AdminService) { s.latency = d }
}

// WithReportCacheTTL ttl <= 0 关闭缓存
func WithReportCacheTTL(ttl time.Duration) AdminOption {
	return func(s *AdminService) { s.reports = utils.NewTTLCache[model.Period, model.ReportMetrics](ttl) }
}

// WithStorage 报表导出存储
func WithStorage(p StorageProvider) AdminOption {
	return func(s *AdminService) { s.storage = p }
}

func NewAdminService(store repository.EntityStore, opts ...AdminOption) *AdminService {
	s := &AdminService{
		store:    store,
		clock:    SystemClock(),
		logger:   slog.Default(),
		validate: newValidator(),
		reports:  utils.NewTTLCache[model.Period, model.ReportMetrics](DefaultReportCacheTTL),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ==================== 通用 ====================

// wait 模拟延迟，可被 ctx 取消
func (s *AdminService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// invalidate 写操作后清空派生数据
func (s *AdminService) invalidate() {
	s.generation.Add(1)
	s.reports.Purge()
}

// Driver 存储驱动名
func (s *AdminService) Driver() string { return s.store.Driver() }

// Counts 各实体数量
func (s *AdminService) Counts(ctx context.Context) (map[model.EntityKind]int, error) {
	return repository.Counts(ctx, s.store)
}

// nameIndex 读取边界上的名称关联
type nameIndex struct {
	owners     map[string]string // owner id -> name
	stores     map[string]string // store id -> name
	ownerStore map[string]string // owner id -> 首个店铺名
}

func (s *AdminService) loadNames(ctx context.Context) (nameIndex, error) {
	owners, err := s.store.Owners().All(ctx)
	if err != nil {
		return nameIndex{}, err
	}
	stores, err := s.store.Stores().All(ctx)
	if err != nil {
		return nameIndex{}, err
	}
	return buildNameIndex(owners, stores), nil
}

func buildNameIndex(owners []model.BusinessOwner, stores []model.Store) nameIndex {
	idx := nameIndex{
		owners:     make(map[string]string, len(owners)),
		stores:     make(map[string]string, len(stores)),
		ownerStore: make(map[string]string, len(stores)),
	}
	for _, o := range owners {
		idx.owners[o.ID] = o.Name
	}
	for _, st := range stores {
		idx.stores[st.ID] = st.Name
		if _, ok := idx.ownerStore[st.OwnerID]; !ok {
			idx.ownerStore[st.OwnerID] = st.Name
		}
	}
	return idx
}

func (n nameIndex) owner(o model.BusinessOwner) dto.OwnerView {
	return dto.OwnerView{BusinessOwner: o, StoreName: n.ownerStore[o.ID]}
}

func (n nameIndex) store(st model.Store) dto.StoreView {
	return dto.StoreView{Store: st, OwnerName: n.owners[st.OwnerID]}
}

func (n nameIndex) order(o model.Order) dto.OrderView {
	return dto.OrderView{Order: o, StoreName: n.stores[o.StoreID]}
}

func (n nameIndex) payment(p model.Payment) dto.PaymentView {
	return dto.PaymentView{Payment: p, StoreName: n.stores[p.StoreID]}
}

func mapViews[T, V any](items []T, fn func(T) V) []V {
	out := make([]V, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// ==================== 列表 ====================

func (s *AdminService) ListBusinessOwners(ctx context.Context) ([]dto.OwnerView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	owners, err := s.store.Owners().All(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := s.store.Stores().All(ctx)
	if err != nil {
		return nil, err
	}
	return mapViews(owners, buildNameIndex(owners, stores).owner), nil
}

func (s *AdminService) ListStores(ctx context.Context) ([]dto.StoreView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	owners, err := s.store.Owners().All(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := s.store.Stores().All(ctx)
	if err != nil {
		return nil, err
	}
	return mapViews(stores, buildNameIndex(owners, stores).store), nil
}

func (s *AdminService) ListOrders(ctx context.Context) ([]dto.OrderView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	names, err := s.loadNames(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.store.Orders().All(ctx)
	if err != nil {
		return nil, err
	}
	return mapViews(orders, names.order), nil
}

func (s *AdminService) ListPayments(ctx context.Context) ([]dto.PaymentView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	names, err := s.loadNames(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.store.Payments().All(ctx)
	if err != nil {
		return nil, err
	}
	return mapViews(payments, names.payment), nil
}

func (s *AdminService) ListIntegrations(ctx context.Context) ([]dto.IntegrationView, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	integrations, err := s.store.Integrations().All(ctx)
	if err != nil {
		return nil, err
	}
	return mapViews(integrations, func(i model.Integration) dto.IntegrationView {
		return dto.IntegrationView{Integration: i}
	}), nil
}

// ==================== 查询 ====================

func (s *AdminService) QueryBusinessOwners(ctx context.Context, q ListQuery) ([]dto.OwnerView, error) {
	list, err := s.ListBusinessOwners(ctx)
	if err != nil {
		return nil, err
	}
	return Query(list, q, dto.OwnerSearchFields), nil
}

func (s *AdminService) QueryStores(ctx context.Context, q ListQuery) ([]dto.StoreView, error) {
	list, err := s.ListStores(ctx)
	if err != nil {
		return nil, err
	}
	return Query(list, q, dto.StoreSearchFields), nil
}

func (s *AdminService) QueryOrders(ctx context.Context, q ListQuery) ([]dto.OrderView, error) {
	list, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return Query(list, q, dto.OrderSearchFields), nil
}

func (s *AdminService) QueryPayments(ctx context.Context, q ListQuery) ([]dto.PaymentView, error) {
	list, err := s.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	return Query(list, q, dto.PaymentSearchFields), nil
}

func (s *AdminService) QueryIntegrations(ctx context.Context, q ListQuery) ([]dto.IntegrationView, error) {
	list, err := s.ListIntegrations(ctx)
	if err != nil {
		return nil, err
	}
	return Query(list, q, dto.IntegrationSearchFields), nil
}

// ==================== 详情 ====================

func (s *AdminService) GetBusinessOwner(ctx context.Context, id string) (dto.OwnerView, error) {
	if err := s.wait(ctx); err != nil {
		return dto.OwnerView{}, err
	}
	o, err := s.store.Owners().Get(ctx, id)
	if err != nil {
		return dto.OwnerView{}, err
	}
	names, err := s.loadNames(ctx)
	if err != nil {
		return dto.OwnerView{}, err
	}
	return names.owner(o), nil
}

func (s *AdminService) GetStore(ctx context.Context, id string) (dto.StoreView, error) {
	if err := s.wait(ctx); err != nil {
		return dto.StoreView{}, err
	}
	st, err := s.store.Stores().Get(ctx, id)
	if err != nil {
		return dto.StoreView{}, err
	}
	names, err := s.loadNames(ctx)
	if err != nil {
		return dto.StoreView{}, err
	}
	return names.store(st), nil
}

func (s *AdminService) GetOrder(ctx context.Context, id string) (dto.OrderView, error) {
	if err := s.wait(ctx); err != nil {
		return dto.OrderView{}, err
	}
	o, err := s.store.Orders().Get(ctx, id)
	if err != nil {
		return dto.OrderView{}, err
	}
	names, err := s.loadNames(ctx)
	if err != nil {
		return dto.OrderView{}, err
	}
	return names.order(o), nil
}

func (s *AdminService) GetPayment(ctx context.Context, id string) (dto.PaymentView, error) {
	if err := s.wait(ctx); err != nil {
		return dto.PaymentView{}, err
	}
	p, err := s.store.Payments().Get(ctx, id)
	if err != nil {
		return dto.PaymentView{}, err
	}
	names, err := s.loadNames(ctx)
	if err != nil {
		return dto.PaymentView{}, err
	}
	return names.payment(p), nil
}

func (s *AdminService) GetIntegration(ctx context.Context, id string) (dto.IntegrationView, error) {
	if err := s.wait(ctx); err != nil {
		return dto.IntegrationView{}, err
	}
	i, err := s.store.Integrations().Get(ctx, id)
	if err != nil {
		return dto.IntegrationView{}, err
	}
	return dto.IntegrationView{Integration: i}, nil
}

// ==================== 状态变更 ====================

// updateStatus 读取 -> 状态机校验 -> 写回，全程持有写锁
func updateStatus[T any, PT statefulEntity[T]](ctx context.Context, s *AdminService, kind model.EntityKind, coll repository.Collection[T], id, status string) (next T, err error) {
	defer func() { metrics.ObserveMutation(string(kind), "status", err) }()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current, err := coll.Get(ctx, id)
	if err != nil {
		return next, err
	}
	from := PT(&current).CurrentStatus()
	next, err = Transition[T, PT](current, status)
	if err != nil {
		return next, err
	}
	if err = coll.Upsert(ctx, next); err != nil {
		return next, fmt.Errorf("save %s %s: %w", kind, id, err)
	}
	s.invalidate()
	s.logger.Info("[AdminService] 状态已更新",
		slog.String("entity", string(kind)),
		slog.String("id", id),
		slog.String("from", from),
		slog.String("to", status))
	return next, nil
}

func (s *AdminService) UpdateBusinessOwnerStatus(ctx context.Context, id, status string) (dto.OwnerView, error) {
	if err := s.wait(ctx); err != nil {
		return dto.OwnerView{}, err
	}
	o, err := updateStatus[model.BusinessOwner](ctx, s, model.KindBusinessOwner, s.store.Owners(), id, status)
	if err != nil {
		return dto.OwnerView{}, err
	}
	names, err := s.loadNames(ctx)
	if err != nil {
		return dto.OwnerView{}, err
	}
	return names.owner(o), nil
}

func (s *AdminService) UpdateStoreStatus(ctx context.Context, id, status string) (dto.StoreView, error) {
	if err := s.wait(ctx); err != nil {
		return dto.StoreView{}, err
	}
	st, err := updateStatus[model.Store](ctx, s, model.KindStore, s.store.Stores(), id, status)
	if err != nil {
		return dto.StoreView{}, err
	}
	names, err := s.loadNames(ctx)
	if err != nil {
		return dto.StoreView{}, err
	}
	return names.store(st), nil
}

func (s *AdminService) UpdateOrderStatus(ctx context.Context, id, status string) (dto.OrderView, error) {
	if err := s.wait(ctx); err != nil {
		return dto.OrderView{}, err
	}
	o, err := updateStatus[model.Order](ctx, s, model.KindOrder, s.store.Orders(), id, status)
	if err != nil {
		return dto.OrderView{}, err
	}
	names, err := s.loadNames(ctx)
	if err != nil {
		return dto.OrderView{}, err
	}
	return names.order(o), nil
}

func (s *AdminService) UpdatePaymentStatus(ctx context.Context, id, status string) (dto.PaymentView, error) {
	if err := s.wait(ctx); err != nil {
		return dto.PaymentView{}, err
	}
	p, err := updateStatus[model.Payment](ctx, s, model.KindPayment, s.store.Payments(), id, status)
	if err != nil {
		return dto.PaymentView{}, err
	}
	names, err := s.loadNames(ctx)
	if err != nil {
		return dto.PaymentView{}, err
	}
	return names.payment(p), nil
}

// ToggleIntegration 启停集成
func (s *AdminService) ToggleIntegration(ctx context.Context, id, status string) (dto.IntegrationView, error) {
	if err := s.wait(ctx); err != nil {
		return dto.IntegrationView{}, err
	}
	i, err := updateStatus[model.Integration](ctx, s, model.KindIntegration, s.store.Integrations(), id, status)
	if err != nil {
		return dto.IntegrationView{}, err
	}
	return dto.IntegrationView{Integration: i}, nil
}

// StampIntegrationSync 将活跃集成的 last_sync_at 置为当前时间，返回更新数量
func (s *AdminService) StampIntegrationSync(ctx context.Context) (n int, err error) {
	defer func() { metrics.ObserveMutation(string(model.KindIntegration), "sync", err) }()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	integrations, err := s.store.Integrations().All(ctx)
	if err != nil {
		return 0, err
	}
	now := s.clock.Now()
	for _, i := range integrations {
		if !i.IsActive() {
			continue
		}
		i.LastSyncAt = now
		if err := s.store.Integrations().Upsert(ctx, i); err != nil {
			return n, fmt.Errorf("stamp integration %s: %w", i.ID, err)
		}
		n++
	}
	if n > 0 {
		s.invalidate()
	}
	return n, nil
}

// ==================== 删除 ====================

func (s *AdminService) DeleteBusinessOwner(ctx context.Context, id string) error {
	return s.remove(ctx, model.KindBusinessOwner, s.store.Owners().Remove, id)
}

func (s *AdminService) DeleteStore(ctx context.Context, id string) error {
	return s.remove(ctx, model.KindStore, s.store.Stores().Remove, id)
}

// remove 硬删除，关联记录保留，名称解析为空
func (s *AdminService) remove(ctx context.Context, kind model.EntityKind, fn func(context.Context, string) error, id string) (err error) {
	if err = s.wait(ctx); err != nil {
		return err
	}
	defer func() { metrics.ObserveMutation(string(kind), "delete", err) }()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err = fn(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	s.logger.Info("[AdminService] 已删除", slog.String("entity", string(kind)), slog.String("id", id))
	return nil
}

// ==================== 统计 ====================

func (s *AdminService) GetDashboardStats(ctx context.Context) (dto.DashboardStatsResp, error) {
	if err := s.wait(ctx); err != nil {
		return dto.DashboardStatsResp{}, err
	}
	owners, err := s.store.Owners().All(ctx)
	if err != nil {
		return dto.DashboardStatsResp{}, err
	}
	stores, err := s.store.Stores().All(ctx)
	if err != nil {
		return dto.DashboardStatsResp{}, err
	}
	orders, err := s.store.Orders().All(ctx)
	if err != nil {
		return dto.DashboardStatsResp{}, err
	}

	stats := ComputeDashboardStats(s.clock.Now(), owners, stores, orders)
	names := buildNameIndex(owners, stores)
	return dto.DashboardStatsResp{
		TotalRevenue:         stats.TotalRevenue,
		TotalOrders:          stats.TotalOrders,
		TotalStores:          stats.TotalStores,
		ActiveBusinessOwners: stats.ActiveBusinessOwners,
		RevenueChange:        stats.RevenueChange,
		OrdersChange:         stats.OrdersChange,
		StoresChange:         stats.StoresChange,
		OwnersChange:         stats.OwnersChange,
		RecentOrders:         mapViews(stats.RecentOrders, names.order),
		TopStores:            mapViews(stats.TopStores, names.store),
	}, nil
}

// GetReportMetrics 周期报表，结果按周期缓存
func (s *AdminService) GetReportMetrics(ctx context.Context, period string) (model.ReportMetrics, error) {
	if err := s.wait(ctx); err != nil {
		return model.ReportMetrics{}, err
	}
	p, ok := model.ParsePeriod(period)
	if !ok {
		return model.ReportMetrics{}, apperr.InvalidPeriod(period)
	}
	if cached, hit := s.reports.Get(p); hit {
		metrics.ObserveReportCache(true)
		return cached, nil
	}
	metrics.ObserveReportCache(false)

	gen := s.generation.Load()
	stores, err := s.store.Stores().All(ctx)
	if err != nil {
		return model.ReportMetrics{}, err
	}
	orders, err := s.store.Orders().All(ctx)
	if err != nil {
		return model.ReportMetrics{}, err
	}
	report, err := ComputeReportMetrics(period, s.clock.Now(), stores, orders)
	if err != nil {
		return model.ReportMetrics{}, err
	}
	s.cacheReport(p, gen, report)
	return report, nil
}

// cacheReport 仅在计算期间没有写操作时回填缓存
// Set 之后再次比对 generation，与 invalidate 交错时删除刚写入的旧报表
func (s *AdminService) cacheReport(p model.Period, gen uint64, report model.ReportMetrics) {
	if s.generation.Load() != gen {
		return
	}
	s.reports.Set(p, report)
	if s.generation.Load() != gen {
		s.reports.Delete(p)
	}
}

// ==================== 平台设置 ====================

func (s *AdminService) GetPlatformSettings(ctx context.Context) (model.PlatformSettings, error) {
	if err := s.wait(ctx); err != nil {
		return model.PlatformSettings{}, err
	}
	return s.store.Settings(ctx)
}

// UpdatePlatformSettings 按字段合并后整体校验，校验失败不落库
func (s *AdminService) UpdatePlatformSettings(ctx context.Context, patch model.SettingsPatch) (merged model.PlatformSettings, err error) {
	if err = s.wait(ctx); err != nil {
		return merged, err
	}
	defer func() { metrics.ObserveMutation("platform_settings", "update", err) }()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current, err := s.store.Settings(ctx)
	if err != nil {
		return merged, err
	}
	merged, err = current.Merge(patch)
	if err != nil {
		return model.PlatformSettings{}, apperr.BadRequest(err.Error())
	}
	if err = validateStruct(s.validate, merged); err != nil {
		return model.PlatformSettings{}, err
	}
	if err = s.store.SaveSettings(ctx, merged); err != nil {
		return model.PlatformSettings{}, fmt.Errorf("save settings: %w", err)
	}
	s.logger.Info("[AdminService] 平台设置已更新")
	return merged, nil
}
