package model

import "time"

// 集成类型
const (
	IntegrationTypePayment   = "payment"
	IntegrationTypeEmail     = "email"
	IntegrationTypeEcommerce = "ecommerce"
	IntegrationTypeAnalytics = "analytics"
)

// Integration 第三方集成
type Integration struct {
	BaseModel
	Name            string    `gorm:"size:100" json:"name"`
	Type            string    `gorm:"size:32" json:"type"`
	Status          string    `gorm:"size:20;index;default:inactive" json:"status"`
	StoresConnected int       `gorm:"default:0" json:"stores_connected"`
	LastSyncAt      time.Time `json:"last_sync_at"`
}

func (Integration) TableName() string { return "integrations" }

func (Integration) Kind() EntityKind { return KindIntegration }

func (i Integration) CurrentStatus() string { return i.Status }

func (i *Integration) SetStatus(status string) { i.Status = status }

func (i Integration) IsActive() bool { return i.Status == StatusActive }
