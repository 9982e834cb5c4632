package dto

import (
	"strconv"
	"strings"

	"wa_admin_202610/internal/model"
)

// ================== Request DTO ==================

// ListReq 列表查询参数
type ListReq struct {
	Q      string `form:"q"`
	Status string `form:"status"` // 空或 all 表示不过滤
	Fields string `form:"fields"` // 逗号分隔，为空使用默认检索字段
}

// FieldList 解析检索字段
func (r ListReq) FieldList() []string {
	if strings.TrimSpace(r.Fields) == "" {
		return nil
	}
	parts := strings.Split(r.Fields, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// UpdateStatusReq 状态变更
type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// ================== Response DTO ==================

// ListResp 列表响应
type ListResp[T any] struct {
	Total int `json:"total"`
	List  []T `json:"list"`
}

// NewListResp 构造列表响应，空列表输出 [] 而不是 null
func NewListResp[T any](list []T) ListResp[T] {
	if list == nil {
		list = []T{}
	}
	return ListResp[T]{Total: len(list), List: list}
}

// TransitionsResp 可流转目标
type TransitionsResp struct {
	Entity  string   `json:"entity"`
	From    string   `json:"from"`
	Targets []string `json:"targets"`
}

// ExportResp 报表导出结果
type ExportResp struct {
	URL string `json:"url"`
}

// HealthResp 健康检查
type HealthResp struct {
	Status string         `json:"status"`
	Driver string         `json:"driver"`
	Counts map[string]int `json:"counts"`
}

// DashboardStatsResp 仪表盘
type DashboardStatsResp struct {
	TotalRevenue         float64     `json:"total_revenue"`
	TotalOrders          int         `json:"total_orders"`
	TotalStores          int         `json:"total_stores"`
	ActiveBusinessOwners int         `json:"active_business_owners"`
	RevenueChange        float64     `json:"revenue_change"`
	OrdersChange         float64     `json:"orders_change"`
	StoresChange         float64     `json:"stores_change"`
	OwnersChange         float64     `json:"owners_change"`
	RecentOrders         []OrderView `json:"recent_orders"`
	TopStores            []StoreView `json:"top_stores"`
}

// ================== 视图 (带关联名称) ==================
// 视图实现 FieldValue / StatusValue 供查询引擎检索

// OwnerView 商家视图
type OwnerView struct {
	model.BusinessOwner
	StoreName string `json:"store_name"`
}

func (v OwnerView) FieldValue(field string) string {
	switch field {
	case "id":
		return v.ID
	case "name":
		return v.Name
	case "email":
		return v.Email
	case "store", "store_name", "storeName":
		return v.StoreName
	case "country":
		return v.Country
	case "status":
		return v.Status
	}
	return ""
}

func (v OwnerView) StatusValue() string { return v.Status }

// StoreView 店铺视图
type StoreView struct {
	model.Store
	OwnerName string `json:"owner_name"`
}

func (v StoreView) FieldValue(field string) string {
	switch field {
	case "id":
		return v.ID
	case "name":
		return v.Name
	case "owner", "owner_name", "ownerName":
		return v.OwnerName
	case "category":
		return v.Category
	case "status":
		return v.Status
	}
	return ""
}

func (v StoreView) StatusValue() string { return v.Status }

// OrderView 订单视图
type OrderView struct {
	model.Order
	StoreName string `json:"store_name"`
}

func (v OrderView) FieldValue(field string) string {
	switch field {
	case "id":
		return v.ID
	case "customer", "customer_name", "customerName":
		return v.CustomerName
	case "store", "store_name", "storeName":
		return v.StoreName
	case "status":
		return v.Status
	case "amount":
		return strconv.FormatFloat(v.Amount, 'f', 2, 64)
	}
	return ""
}

func (v OrderView) StatusValue() string { return v.Status }

// PaymentView 支付视图
type PaymentView struct {
	model.Payment
	StoreName string `json:"store_name"`
}

func (v PaymentView) FieldValue(field string) string {
	switch field {
	case "id":
		return v.ID
	case "order", "order_id", "orderId":
		return v.OrderID
	case "store", "store_name", "storeName":
		return v.StoreName
	case "transactionId", "transaction_id":
		return v.TransactionID
	case "method":
		return v.Method
	case "status":
		return v.Status
	}
	return ""
}

func (v PaymentView) StatusValue() string { return v.Status }

// IntegrationView 集成视图
type IntegrationView struct {
	model.Integration
}

func (v IntegrationView) FieldValue(field string) string {
	switch field {
	case "id":
		return v.ID
	case "name":
		return v.Name
	case "type":
		return v.Type
	case "status":
		return v.Status
	}
	return ""
}

func (v IntegrationView) StatusValue() string { return v.Status }

// ================== 默认检索字段 ==================

var (
	OwnerSearchFields       = []string{"name", "email", "store", "country"}
	StoreSearchFields       = []string{"name", "owner", "category"}
	OrderSearchFields       = []string{"id", "customer", "store"}
	PaymentSearchFields     = []string{"id", "order", "store", "transactionId", "method"}
	IntegrationSearchFields = []string{"name", "type"}
)
