package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== 订单状态常量 ====================

const (
	OrderStatusPending    = "pending"    // 待处理
	OrderStatusProcessing = "processing" // 处理中
	OrderStatusShipped    = "shipped"    // 已发货
	OrderStatusCompleted  = "completed"  // 已完成
	OrderStatusCancelled  = "cancelled"  // 已取消
	OrderStatusRefunded   = "refunded"   // 已退款
)

// OrderStatuses 全部订单状态
var OrderStatuses = []string{
	OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
	OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded,
}

// ==================== Order 订单 ====================

// Order 订单
type Order struct {
	BaseModel
	CustomerName string    `gorm:"size:255" json:"customer_name"`
	StoreID      string    `gorm:"size:64;index" json:"store_id"`
	Amount       float64   `gorm:"type:decimal(14,2)" json:"amount"`
	Status       string    `gorm:"size:32;index;default:pending" json:"status"`
	Date         time.Time `gorm:"index" json:"date"`
	ItemCount    int       `gorm:"default:1" json:"item_count"`

	// 订单明细（JSON 列），用于商品排行
	Items datatypes.JSONSlice[OrderItem] `gorm:"type:json" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

func (Order) Kind() EntityKind { return KindOrder }

func (o Order) CurrentStatus() string { return o.Status }

func (o *Order) SetStatus(status string) { o.Status = status }

// IsCompleted 是否计入营收
func (o Order) IsCompleted() bool { return o.Status == OrderStatusCompleted }

// Quantity 商品件数，有明细时以明细为准
func (o Order) Quantity() int {
	if len(o.Items) == 0 {
		return o.ItemCount
	}
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// OrderItem 订单明细
type OrderItem struct {
	ProductName string  `json:"product_name"`
	Category    string  `json:"category,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Total 明细小计
func (i OrderItem) Total() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Clone 深拷贝，避免共享明细切片
func (o Order) Clone() Order {
	if o.Items != nil {
		items := make(datatypes.JSONSlice[OrderItem], len(o.Items))
		copy(items, o.Items)
		o.Items = items
	}
	return o
}
