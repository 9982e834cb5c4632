package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wa_admin_202610/internal/apperr"
	"wa_admin_202610/internal/model"
	"wa_admin_202610/internal/repository"
)

// ==================== 测试辅助 ====================

func setupAdminService(t *testing.T, opts ...AdminOption) (*AdminService, repository.EntityStore) {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()

	require.NoError(t, store.Owners().Upsert(ctx, model.BusinessOwner{BaseModel: model.BaseModel{ID: "B1"}, Name: "Amara", Email: "amara@crafts.ng", Country: "Nigeria", Status: model.StatusActive, JoinedAt: daysAgo(200)}))
	require.NoError(t, store.Owners().Upsert(ctx, model.BusinessOwner{BaseModel: model.BaseModel{ID: "B2"}, Name: "Rahul", Email: "rahul@spice.in", Country: "India", Status: model.StatusSuspended, JoinedAt: daysAgo(100)}))
	require.NoError(t, store.Stores().Upsert(ctx, model.Store{BaseModel: model.BaseModel{ID: "S1"}, Name: "Okafor Crafts", OwnerID: "B1", Category: "Handicrafts", Status: model.StatusActive, Revenue: 300, CreatedAt: daysAgo(200)}))
	require.NoError(t, store.Stores().Upsert(ctx, model.Store{BaseModel: model.BaseModel{ID: "S2"}, Name: "Spice Bazaar", OwnerID: "B2", Category: "Food", Status: model.StatusActive, Revenue: 100, CreatedAt: daysAgo(100)}))
	require.NoError(t, store.Orders().Upsert(ctx, order("O1", "Chidi", "S1", model.OrderStatusCompleted, 100, daysAgo(1))))
	require.NoError(t, store.Orders().Upsert(ctx, order("O2", "Priya", "S2", model.OrderStatusPending, 50, daysAgo(2))))
	require.NoError(t, store.Payments().Upsert(ctx, model.Payment{BaseModel: model.BaseModel{ID: "P1"}, OrderID: "O1", StoreID: "S1", Amount: 100, Method: model.PaymentMethodPaypal, Status: model.PaymentStatusCompleted, TransactionID: "txn-abc"}))
	require.NoError(t, store.Integrations().Upsert(ctx, model.Integration{BaseModel: model.BaseModel{ID: "I1"}, Name: "Stripe", Type: model.IntegrationTypePayment, Status: model.StatusActive}))
	require.NoError(t, store.Integrations().Upsert(ctx, model.Integration{BaseModel: model.BaseModel{ID: "I2"}, Name: "Mailchimp", Type: model.IntegrationTypeEmail, Status: model.StatusInactive}))

	opts = append([]AdminOption{WithClock(FixedClock(testNow))}, opts...)
	return NewAdminService(store, opts...), store
}

// ==================== 列表与关联名称 ====================

func TestAdminService_ListsResolveNames(t *testing.T) {
	svc, _ := setupAdminService(t)
	ctx := context.Background()

	owners, err := svc.ListBusinessOwners(ctx)
	require.NoError(t, err)
	require.Len(t, owners, 2)
	assert.Equal(t, "Okafor Crafts", owners[0].StoreName)

	stores, err := svc.ListStores(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rahul", stores[1].OwnerName)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"O1", "O2"}, []string{orders[0].ID, orders[1].ID})
	assert.Equal(t, "Spice Bazaar", orders[1].StoreName)

	payments, err := svc.ListPayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Okafor Crafts", payments[0].StoreName)

	integrations, err := svc.ListIntegrations(ctx)
	require.NoError(t, err)
	assert.Len(t, integrations, 2)
}

func TestAdminService_DanglingReferenceResolvesEmpty(t *testing.T) {
	svc, _ := setupAdminService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteStore(ctx, "S1"))

	o, err := svc.GetOrder(ctx, "O1")
	require.NoError(t, err)
	assert.Empty(t, o.StoreName)

	owner, err := svc.GetBusinessOwner(ctx, "B1")
	require.NoError(t, err)
	assert.Empty(t, owner.StoreName)
}

func TestAdminService_Query(t *testing.T) {
	svc, _ := setupAdminService(t)
	ctx := context.Background()

	owners, err := svc.QueryBusinessOwners(ctx, ListQuery{Q: "spice"})
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "B2", owners[0].ID)

	payments, err := svc.QueryPayments(ctx, ListQuery{Q: "TXN-ABC"})
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	orders, err := svc.QueryOrders(ctx, ListQuery{Status: model.OrderStatusPending})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "O2", orders[0].ID)

	stores, err := svc.QueryStores(ctx, ListQuery{Q: "amara"})
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "S1", stores[0].ID)

	integrations, err := svc.QueryIntegrations(ctx, ListQuery{Q: "email", Status: "all"})
	require.NoError(t, err)
	require.Len(t, integrations, 1)
	assert.Equal(t, "I2", integrations[0].ID)
}

// ==================== 状态变更 ====================

func TestAdminService_UpdateStatus(t *testing.T) {
	svc, store := setupAdminService(t)
	ctx := context.Background()

	t.Run("合法流转落库", func(t *testing.T) {
		view, err := svc.UpdateOrderStatus(ctx, "O2", model.OrderStatusProcessing)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusProcessing, view.Status)
		assert.Equal(t, "Spice Bazaar", view.StoreName)

		stored, err := store.Orders().Get(ctx, "O2")
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusProcessing, stored.Status)
	})

	t.Run("非法流转不修改存储", func(t *testing.T) {
		_, err := svc.UpdateOrderStatus(ctx, "O1", model.OrderStatusProcessing)
		assert.True(t, apperr.IsIllegalTransition(err))

		stored, err := store.Orders().Get(ctx, "O1")
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusCompleted, stored.Status)
	})

	t.Run("不存在", func(t *testing.T) {
		_, err := svc.UpdateStoreStatus(ctx, "S9", model.StatusSuspended)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("商家自环", func(t *testing.T) {
		view, err := svc.UpdateBusinessOwnerStatus(ctx, "B2", model.StatusSuspended)
		require.NoError(t, err)
		assert.Equal(t, model.StatusSuspended, view.Status)
	})

	t.Run("支付退款", func(t *testing.T) {
		view, err := svc.UpdatePaymentStatus(ctx, "P1", model.PaymentStatusRefunded)
		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusRefunded, view.Status)

		_, err = svc.UpdatePaymentStatus(ctx, "P1", model.PaymentStatusCompleted)
		assert.True(t, apperr.IsIllegalTransition(err))
	})

	t.Run("集成启停", func(t *testing.T) {
		view, err := svc.ToggleIntegration(ctx, "I2", model.StatusActive)
		require.NoError(t, err)
		assert.Equal(t, model.StatusActive, view.Status)

		_, err = svc.ToggleIntegration(ctx, "I2", "paused")
		assert.True(t, apperr.IsIllegalTransition(err))
	})
}

func TestAdminService_ConcurrentUpdatesSerialize(t *testing.T) {
	svc, store := setupAdminService(t)
	ctx := context.Background()

	// pending -> processing 只能成功一次
	var wg sync.WaitGroup
	var mu sync.Mutex
	success := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.UpdateOrderStatus(ctx, "O2", model.OrderStatusProcessing); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	stored, err := store.Orders().Get(ctx, "O2")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusProcessing, stored.Status)
}

// ==================== 删除 ====================

func TestAdminService_Delete(t *testing.T) {
	svc, _ := setupAdminService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteBusinessOwner(ctx, "B1"))
	assert.True(t, apperr.IsNotFound(svc.DeleteBusinessOwner(ctx, "B1")))
	assert.True(t, apperr.IsNotFound(svc.DeleteStore(ctx, "missing")))

	_, err := svc.GetBusinessOwner(ctx, "B1")
	assert.True(t, apperr.IsNotFound(err))

	// 删除商家后店铺仍在，商家名为空
	stores, err := svc.ListStores(ctx)
	require.NoError(t, err)
	assert.Empty(t, stores[0].OwnerName)
}

// ==================== 统计 ====================

func TestAdminService_DashboardStats(t *testing.T) {
	svc, _ := setupAdminService(t)
	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 100.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 2, stats.TotalStores)
	assert.Equal(t, 1, stats.ActiveBusinessOwners)
	require.Len(t, stats.RecentOrders, 2)
	assert.Equal(t, "Okafor Crafts", stats.RecentOrders[0].StoreName)
	require.Len(t, stats.TopStores, 2)
	assert.Equal(t, "Amara", stats.TopStores[0].OwnerName)
}

func TestAdminService_ReportCacheInvalidatedOnMutation(t *testing.T) {
	svc, _ := setupAdminService(t)
	ctx := context.Background()

	first, err := svc.GetReportMetrics(ctx, "monthly")
	require.NoError(t, err)
	assert.Equal(t, 100.0, first.Revenue.Current)

	_, err = svc.UpdateOrderStatus(ctx, "O2", model.OrderStatusProcessing)
	require.NoError(t, err)
	_, err = svc.UpdateOrderStatus(ctx, "O2", model.OrderStatusShipped)
	require.NoError(t, err)
	_, err = svc.UpdateOrderStatus(ctx, "O2", model.OrderStatusCompleted)
	require.NoError(t, err)

	second, err := svc.GetReportMetrics(ctx, "monthly")
	require.NoError(t, err)
	assert.Equal(t, 150.0, second.Revenue.Current)
}

func TestAdminService_CacheReportSkipsStaleGeneration(t *testing.T) {
	svc, _ := setupAdminService(t)
	ctx := context.Background()

	stale, err := ComputeReportMetrics("monthly", testNow, nil, nil)
	require.NoError(t, err)

	gen := svc.generation.Load()
	svc.invalidate()
	svc.cacheReport(model.PeriodMonthly, gen, stale)

	_, hit := svc.reports.Get(model.PeriodMonthly)
	assert.False(t, hit, "计算期间发生写操作，结果不得回填")

	fresh, err := svc.GetReportMetrics(ctx, "monthly")
	require.NoError(t, err)
	assert.Equal(t, 100.0, fresh.Revenue.Current)
}

func TestAdminService_ReportCacheConsistentUnderConcurrentWrites(t *testing.T) {
	svc, store := setupAdminService(t, WithReportCacheTTL(time.Hour))
	ctx := context.Background()

	const n = 30
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("C%02d", i)
		require.NoError(t, store.Orders().Upsert(ctx, order(id, "c"+id, "S1", model.OrderStatusPending, 10, daysAgo(3))))
	}

	stop := make(chan struct{})
	var readers sync.WaitGroup
	for r := 0; r < 4; r++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-stop:
					return
				default:
					_, _ = svc.GetReportMetrics(ctx, "monthly")
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		id := fmt.Sprintf("C%02d", i)
		for _, status := range []string{model.OrderStatusProcessing, model.OrderStatusShipped, model.OrderStatusCompleted} {
			_, err := svc.UpdateOrderStatus(ctx, id, status)
			require.NoError(t, err)
		}
	}
	close(stop)
	readers.Wait()

	// 写操作全部结束后，缓存中的报表必须反映最终状态
	report, err := svc.GetReportMetrics(ctx, "monthly")
	require.NoError(t, err)
	assert.Equal(t, 100.0+float64(n)*10, report.Revenue.Current)
}

func TestAdminService_ReportInvalidPeriod(t *testing.T) {
	svc, _ := setupAdminService(t)
	_, err := svc.GetReportMetrics(context.Background(), "quarterly")
	assert.Equal(t, apperr.CodeInvalidPeriod, apperr.CodeOf(err))
}

// ==================== 平台设置 ====================

func TestAdminService_UpdatePlatformSettings(t *testing.T) {
	svc, _ := setupAdminService(t)
	ctx := context.Background()

	t.Run("分组内按字段合并", func(t *testing.T) {
		merged, err := svc.UpdatePlatformSettings(ctx, model.SettingsPatch{
			Notifications: json.RawMessage(`{"sms_notifications": true}`),
		})
		require.NoError(t, err)
		assert.True(t, merged.Notifications.SMSNotifications)
		assert.True(t, merged.Notifications.EmailNotifications, "未提交的字段保持原值")
		assert.True(t, merged.Notifications.PushNotifications)
		assert.Equal(t, model.DefaultPlatformSettings().General, merged.General)
	})

	t.Run("部分支付字段不重置其余字段", func(t *testing.T) {
		merged, err := svc.UpdatePlatformSettings(ctx, model.SettingsPatch{
			Payments: json.RawMessage(`{"commission_rate": 10}`),
		})
		require.NoError(t, err)
		assert.Equal(t, 10.0, merged.Payments.CommissionRate)
		assert.True(t, merged.Payments.StripeEnabled)
		assert.True(t, merged.Payments.PaypalEnabled)
		assert.Equal(t, 50.0, merged.Payments.MinimumPayout)

		current, err := svc.GetPlatformSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, merged, current)
	})

	t.Run("越界值被拒绝且不落库", func(t *testing.T) {
		_, err := svc.UpdatePlatformSettings(ctx, model.SettingsPatch{
			Payments: json.RawMessage(`{"commission_rate": -5}`),
		})

		fields := apperr.FieldsOf(err)
		require.NotNil(t, fields)
		assert.Contains(t, fields, "payments.commission_rate")

		current, err := svc.GetPlatformSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10.0, current.Payments.CommissionRate)
	})

	t.Run("多字段校验", func(t *testing.T) {
		_, err := svc.UpdatePlatformSettings(ctx, model.SettingsPatch{
			General:  json.RawMessage(`{"platform_name": "", "support_email": "not-an-email", "currency": "US", "timezone": ""}`),
			Security: json.RawMessage(`{"session_timeout_minutes": 0, "min_password_length": 0}`),
		})
		fields := apperr.FieldsOf(err)
		for _, key := range []string{
			"general.platform_name", "general.support_email", "general.currency", "general.timezone",
			"security.session_timeout_minutes", "security.min_password_length",
		} {
			assert.Contains(t, fields, key)
		}
	})

	t.Run("字段类型错误", func(t *testing.T) {
		_, err := svc.UpdatePlatformSettings(ctx, model.SettingsPatch{
			Payments: json.RawMessage(`{"commission_rate": "high"}`),
		})
		assert.Equal(t, apperr.CodeBadRequest, apperr.CodeOf(err))
	})
}

// ==================== 延迟与取消 ====================

func TestAdminService_LatencyHonoursCancel(t *testing.T) {
	svc, _ := setupAdminService(t, WithLatency(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ListOrders(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAdminService_LatencyDelays(t *testing.T) {
	svc, _ := setupAdminService(t, WithLatency(20*time.Millisecond))
	start := time.Now()
	_, err := svc.GetPlatformSettings(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

// ==================== 集成同步与导出 ====================

func TestAdminService_StampIntegrationSync(t *testing.T) {
	svc, store := setupAdminService(t)
	ctx := context.Background()

	n, err := svc.StampIntegrationSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	active, err := store.Integrations().Get(ctx, "I1")
	require.NoError(t, err)
	assert.True(t, active.LastSyncAt.Equal(testNow))

	inactive, err := store.Integrations().Get(ctx, "I2")
	require.NoError(t, err)
	assert.True(t, inactive.LastSyncAt.IsZero())
}

func TestAdminService_ExportReport(t *testing.T) {
	dir := t.TempDir()
	local, err := NewLocalStorage(&StorageConfig{BasePath: dir})
	require.NoError(t, err)
	svc, _ := setupAdminService(t, WithStorage(local))
	ctx := context.Background()

	path, err := svc.ExportReport(ctx, "weekly", ExportTriggerManual)
	require.NoError(t, err)
	assert.Contains(t, path, "report-weekly-")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var report model.ReportMetrics
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, model.PeriodWeekly, report.Period)
	assert.Equal(t, 100.0, report.Revenue.Current)

	_, err = svc.ExportReport(ctx, "hourly", ExportTriggerManual)
	assert.Equal(t, apperr.CodeInvalidPeriod, apperr.CodeOf(err))
}

func TestAdminService_ExportWithoutStorage(t *testing.T) {
	svc, _ := setupAdminService(t)
	_, err := svc.ExportReport(context.Background(), "weekly", ExportTriggerManual)
	assert.ErrorIs(t, err, errNoStorage)
}
