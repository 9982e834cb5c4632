package model

import (
	"encoding/json"
	"fmt"
)

// PlatformSettings 平台设置（全局唯一）
type PlatformSettings struct {
	General       GeneralSettings      `json:"general"`
	Payments      PaymentSettings      `json:"payments"`
	Notifications NotificationSettings `json:"notifications"`
	Security      SecuritySettings     `json:"security"`
}

// GeneralSettings 基础信息
type GeneralSettings struct {
	PlatformName string `json:"platform_name" validate:"required"`
	SupportEmail string `json:"support_email" validate:"omitempty,email"`
	Currency     string `json:"currency" validate:"required,len=3"`
	Timezone     string `json:"timezone" validate:"required"`
}

// PaymentSettings 支付网关与佣金
type PaymentSettings struct {
	StripeEnabled       bool    `json:"stripe_enabled"`
	PaypalEnabled       bool    `json:"paypal_enabled"`
	BankTransferEnabled bool    `json:"bank_transfer_enabled"`
	CommissionRate      float64 `json:"commission_rate" validate:"gte=0,lte=100"` // 百分比
	MinimumPayout       float64 `json:"minimum_payout" validate:"gte=0"`
}

// NotificationSettings 通知渠道
type NotificationSettings struct {
	EmailNotifications bool `json:"email_notifications"`
	SMSNotifications   bool `json:"sms_notifications"`
	PushNotifications  bool `json:"push_notifications"`
}

// SecuritySettings 安全策略
type SecuritySettings struct {
	RequireTwoFactor      bool `json:"require_two_factor"`
	SessionTimeoutMinutes int  `json:"session_timeout_minutes" validate:"gt=0"`
	MinPasswordLength     int  `json:"min_password_length" validate:"gte=1"`
}

// SettingsPatch 局部更新，每个分组内只覆盖提交的字段
type SettingsPatch struct {
	General       json.RawMessage `json:"general,omitempty" swaggertype:"object"`
	Payments      json.RawMessage `json:"payments,omitempty" swaggertype:"object"`
	Notifications json.RawMessage `json:"notifications,omitempty" swaggertype:"object"`
	Security      json.RawMessage `json:"security,omitempty" swaggertype:"object"`
}

// Merge 把各分组的补丁解码到当前值的副本上，未提交的字段保持不变
// 不修改接收者；分组内容不是合法 JSON 对象时返回错误
func (s PlatformSettings) Merge(patch SettingsPatch) (PlatformSettings, error) {
	merged := s
	groups := []struct {
		name string
		raw  json.RawMessage
		dst  any
	}{
		{"general", patch.General, &merged.General},
		{"payments", patch.Payments, &merged.Payments},
		{"notifications", patch.Notifications, &merged.Notifications},
		{"security", patch.Security, &merged.Security},
	}
	for _, g := range groups {
		if len(g.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(g.raw, g.dst); err != nil {
			return s, fmt.Errorf("invalid %s settings: %w", g.name, err)
		}
	}
	return merged, nil
}

// DefaultPlatformSettings 默认设置
func DefaultPlatformSettings() PlatformSettings {
	return PlatformSettings{
		General: GeneralSettings{
			PlatformName: "WhatsApp Commerce",
			SupportEmail: "support@wacommerce.com",
			Currency:     "USD",
			Timezone:     "UTC",
		},
		Payments: PaymentSettings{
			StripeEnabled:       true,
			PaypalEnabled:       true,
			BankTransferEnabled: false,
			CommissionRate:      5,
			MinimumPayout:       50,
		},
		Notifications: NotificationSettings{
			EmailNotifications: true,
			SMSNotifications:   false,
			PushNotifications:  true,
		},
		Security: SecuritySettings{
			RequireTwoFactor:      false,
			SessionTimeoutMinutes: 30,
			MinPasswordLength:     8,
		},
	}
}
