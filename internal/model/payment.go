package model

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// 支付方式
const (
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodPaypal       = "paypal"
	PaymentMethodBankTransfer = "bank_transfer"
)

// Payment 支付流水
type Payment struct {
	BaseModel
	OrderID       string    `gorm:"size:64;index" json:"order_id"`
	StoreID       string    `gorm:"size:64;index" json:"store_id"`
	Amount        float64   `gorm:"type:decimal(14,2)" json:"amount"`
	Method        string    `gorm:"size:32" json:"method"`
	Status        string    `gorm:"size:20;index;default:pending" json:"status"`
	Date          time.Time `gorm:"index" json:"date"`
	TransactionID string    `gorm:"size:64;uniqueIndex" json:"transaction_id"`
}

func (Payment) TableName() string { return "payments" }

func (Payment) Kind() EntityKind { return KindPayment }

func (p Payment) CurrentStatus() string { return p.Status }

func (p *Payment) SetStatus(status string) { p.Status = status }
