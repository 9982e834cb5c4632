package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wa_admin_202610/internal/model"
)

// ==================== 演示数据 ====================

const day = 24 * time.Hour

// Seed 写入演示数据，时间均相对 now 计算
func Seed(ctx context.Context, store EntityStore, now time.Time) error {
	owners := []model.BusinessOwner{
		{BaseModel: model.BaseModel{ID: "owner-1"}, Name: "Amara Okafor", Email: "amara@okaforcrafts.ng", Country: "Nigeria", Status: model.StatusActive, JoinedAt: now.AddDate(-1, -2, 0), TotalOrders: 342, TotalRevenue: 18450.75},
		{BaseModel: model.BaseModel{ID: "owner-2"}, Name: "Rahul Mehta", Email: "rahul@spicebazaar.in", Country: "India", Status: model.StatusActive, JoinedAt: now.AddDate(0, -8, 0), TotalOrders: 215, TotalRevenue: 9870.20},
		{BaseModel: model.BaseModel{ID: "owner-3"}, Name: "Lucia Fernandes", Email: "lucia@modabrasil.com.br", Country: "Brazil", Status: model.StatusSuspended, JoinedAt: now.AddDate(0, -6, -12), TotalOrders: 87, TotalRevenue: 4320.00},
		{BaseModel: model.BaseModel{ID: "owner-4"}, Name: "Siti Rahman", Email: "siti@batikhouse.id", Country: "Indonesia", Status: model.StatusActive, JoinedAt: now.AddDate(0, -3, -5), TotalOrders: 129, TotalRevenue: 6110.40},
		{BaseModel: model.BaseModel{ID: "owner-5"}, Name: "Diego Ramirez", Email: "diego@tacotech.mx", Country: "Mexico", Status: model.StatusActive, JoinedAt: now.AddDate(0, 0, -12), TotalOrders: 14, TotalRevenue: 690.00},
	}
	stores := []model.Store{
		{BaseModel: model.BaseModel{ID: "store-1"}, Name: "Okafor Crafts", OwnerID: "owner-1", Category: "Handicrafts", Status: model.StatusActive, ProductsCount: 48, OrdersCount: 342, Revenue: 18450.75, Rating: 4.8, CreatedAt: now.AddDate(-1, -2, 0)},
		{BaseModel: model.BaseModel{ID: "store-2"}, Name: "Spice Bazaar", OwnerID: "owner-2", Category: "Food & Grocery", Status: model.StatusActive, ProductsCount: 112, OrdersCount: 215, Revenue: 9870.20, Rating: 4.6, CreatedAt: now.AddDate(0, -8, 0)},
		{BaseModel: model.BaseModel{ID: "store-3"}, Name: "Moda Brasil", OwnerID: "owner-3", Category: "Fashion", Status: model.StatusSuspended, ProductsCount: 64, OrdersCount: 87, Revenue: 4320.00, Rating: 3.9, CreatedAt: now.AddDate(0, -6, -12)},
		{BaseModel: model.BaseModel{ID: "store-4"}, Name: "Batik House", OwnerID: "owner-4", Category: "Fashion", Status: model.StatusActive, ProductsCount: 35, OrdersCount: 129, Revenue: 6110.40, Rating: 4.5, CreatedAt: now.AddDate(0, -3, -5)},
		{BaseModel: model.BaseModel{ID: "store-5"}, Name: "Taco Tech", OwnerID: "owner-5", Category: "Electronics", Status: model.StatusActive, ProductsCount: 9, OrdersCount: 14, Revenue: 690.00, Rating: 4.1, CreatedAt: now.AddDate(0, 0, -12)},
	}

	type seedOrder struct {
		customer string
		storeID  string
		status   string
		age      time.Duration
		items    []model.OrderItem
	}
	seedOrders := []seedOrder{
		{"Chidi Eze", "store-1", model.OrderStatusCompleted, 1 * day, []model.OrderItem{{ProductName: "Woven Basket", Category: "Handicrafts", Quantity: 2, UnitPrice: 35}}},
		{"Priya Sharma", "store-2", model.OrderStatusProcessing, 2 * day, []model.OrderItem{{ProductName: "Garam Masala 200g", Category: "Food & Grocery", Quantity: 3, UnitPrice: 6.5}}},
		{"Ana Souza", "store-3", model.OrderStatusCancelled, 3 * day, []model.OrderItem{{ProductName: "Linen Dress", Category: "Fashion", Quantity: 1, UnitPrice: 79}}},
		{"Budi Santoso", "store-4", model.OrderStatusShipped, 4 * day, []model.OrderItem{{ProductName: "Batik Shirt", Category: "Fashion", Quantity: 2, UnitPrice: 42}}},
		{"Ngozi Adeyemi", "store-1", model.OrderStatusCompleted, 5 * day, []model.OrderItem{{ProductName: "Beaded Necklace", Category: "Handicrafts", Quantity: 1, UnitPrice: 55}, {ProductName: "Woven Basket", Category: "Handicrafts", Quantity: 1, UnitPrice: 35}}},
		{"Carlos Vega", "store-5", model.OrderStatusPending, 6 * day, []model.OrderItem{{ProductName: "USB-C Charger", Category: "Electronics", Quantity: 1, UnitPrice: 24}}},
		{"Arjun Nair", "store-2", model.OrderStatusCompleted, 9 * day, []model.OrderItem{{ProductName: "Saffron 5g", Category: "Food & Grocery", Quantity: 2, UnitPrice: 18}}},
		{"Dewi Lestari", "store-4", model.OrderStatusCompleted, 14 * day, []model.OrderItem{{ProductName: "Batik Scarf", Category: "Fashion", Quantity: 3, UnitPrice: 22}}},
		{"Chidi Eze", "store-1", model.OrderStatusRefunded, 20 * day, []model.OrderItem{{ProductName: "Carved Bowl", Category: "Handicrafts", Quantity: 1, UnitPrice: 48}}},
		{"Priya Sharma", "store-2", model.OrderStatusCompleted, 27 * day, []model.OrderItem{{ProductName: "Garam Masala 200g", Category: "Food & Grocery", Quantity: 4, UnitPrice: 6.5}}},
		{"Ana Souza", "store-3", model.OrderStatusCompleted, 35 * day, []model.OrderItem{{ProductName: "Linen Dress", Category: "Fashion", Quantity: 1, UnitPrice: 79}}},
		{"Budi Santoso", "store-4", model.OrderStatusCompleted, 41 * day, []model.OrderItem{{ProductName: "Batik Shirt", Category: "Fashion", Quantity: 1, UnitPrice: 42}}},
		{"Kemi Balogun", "store-1", model.OrderStatusCompleted, 52 * day, []model.OrderItem{{ProductName: "Beaded Necklace", Category: "Handicrafts", Quantity: 2, UnitPrice: 55}}},
		{"Rohan Gupta", "store-2", model.OrderStatusCancelled, 58 * day, []model.OrderItem{{ProductName: "Saffron 5g", Category: "Food & Grocery", Quantity: 1, UnitPrice: 18}}},
		{"Maria Lopez", "store-5", model.OrderStatusCompleted, 200 * day, []model.OrderItem{{ProductName: "Bluetooth Speaker", Category: "Electronics", Quantity: 1, UnitPrice: 65}}},
	}

	orders := make([]model.Order, 0, len(seedOrders))
	payments := make([]model.Payment, 0, len(seedOrders))
	methods := []string{model.PaymentMethodCreditCard, model.PaymentMethodPaypal, model.PaymentMethodBankTransfer}
	for i, so := range seedOrders {
		order := model.Order{
			BaseModel:    model.BaseModel{ID: fmt.Sprintf("ORD-%03d", i+1)},
			CustomerName: so.customer,
			StoreID:      so.storeID,
			Status:       so.status,
			Date:         now.Add(-so.age),
			Items:        so.items,
		}
		for _, item := range so.items {
			order.Amount += item.Total()
		}
		order.ItemCount = order.Quantity()
		orders = append(orders, order)

		payments = append(payments, model.Payment{
			BaseModel:     model.BaseModel{ID: fmt.Sprintf("PAY-%03d", i+1)},
			OrderID:       order.ID,
			StoreID:       order.StoreID,
			Amount:        order.Amount,
			Method:        methods[i%len(methods)],
			Status:        paymentStatusFor(order.Status),
			Date:          order.Date,
			TransactionID: uuid.NewString(),
		})
	}

	integrations := []model.Integration{
		{BaseModel: model.BaseModel{ID: "int-1"}, Name: "Stripe", Type: model.IntegrationTypePayment, Status: model.StatusActive, StoresConnected: 4, LastSyncAt: now.Add(-2 * time.Hour)},
		{BaseModel: model.BaseModel{ID: "int-2"}, Name: "PayPal", Type: model.IntegrationTypePayment, Status: model.StatusActive, StoresConnected: 3, LastSyncAt: now.Add(-5 * time.Hour)},
		{BaseModel: model.BaseModel{ID: "int-3"}, Name: "Mailchimp", Type: model.IntegrationTypeEmail, Status: model.StatusInactive, StoresConnected: 0, LastSyncAt: now.AddDate(0, 0, -14)},
		{BaseModel: model.BaseModel{ID: "int-4"}, Name: "Shopify", Type: model.IntegrationTypeEcommerce, Status: model.StatusActive, StoresConnected: 2, LastSyncAt: now.Add(-30 * time.Minute)},
		{BaseModel: model.BaseModel{ID: "int-5"}, Name: "Google Analytics", Type: model.IntegrationTypeAnalytics, Status: model.StatusInactive, StoresConnected: 0, LastSyncAt: now.AddDate(0, -1, 0)},
	}

	for _, o := range owners {
		if err := store.Owners().Upsert(ctx, o); err != nil {
			return fmt.Errorf("seed owner %s: %w", o.ID, err)
		}
	}
	for _, s := range stores {
		if err := store.Stores().Upsert(ctx, s); err != nil {
			return fmt.Errorf("seed store %s: %w", s.ID, err)
		}
	}
	for _, o := range orders {
		if err := store.Orders().Upsert(ctx, o); err != nil {
			return fmt.Errorf("seed order %s: %w", o.ID, err)
		}
	}
	for _, p := range payments {
		if err := store.Payments().Upsert(ctx, p); err != nil {
			return fmt.Errorf("seed payment %s: %w", p.ID, err)
		}
	}
	for _, it := range integrations {
		if err := store.Integrations().Upsert(ctx, it); err != nil {
			return fmt.Errorf("seed integration %s: %w", it.ID, err)
		}
	}
	return store.SaveSettings(ctx, model.DefaultPlatformSettings())
}

func paymentStatusFor(orderStatus string) string {
	switch orderStatus {
	case model.OrderStatusCompleted, model.OrderStatusShipped, model.OrderStatusProcessing:
		return model.PaymentStatusCompleted
	case model.OrderStatusRefunded:
		return model.PaymentStatusRefunded
	case model.OrderStatusCancelled:
		return model.PaymentStatusFailed
	}
	return model.PaymentStatusPending
}
