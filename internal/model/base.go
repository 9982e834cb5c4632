package model

// EntityKind 实体类型
type EntityKind string

const (
	KindBusinessOwner EntityKind = "business_owner"
	KindStore         EntityKind = "store"
	KindOrder         EntityKind = "order"
	KindPayment       EntityKind = "payment"
	KindIntegration   EntityKind = "integration"
)

// AllKinds 全部实体类型，顺序即展示顺序
var AllKinds = []EntityKind{KindBusinessOwner, KindStore, KindOrder, KindPayment, KindIntegration}

// ParseKind 解析实体类型，支持复数路由名 (owners / stores ...)
func ParseKind(s string) (EntityKind, bool) {
	switch s {
	case "business_owner", "owner", "owners":
		return KindBusinessOwner, true
	case "store", "stores":
		return KindStore, true
	case "order", "orders":
		return KindOrder, true
	case "payment", "payments":
		return KindPayment, true
	case "integration", "integrations":
		return KindIntegration, true
	}
	return "", false
}

// BaseModel 所有实体共享的主键与排序字段
type BaseModel struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`
	// Seq 插入顺序，仅 gorm 存储使用，内存存储依赖切片顺序
	Seq int64 `gorm:"index" json:"-"`
}

func (b *BaseModel) EntityID() string { return b.ID }

func (b *BaseModel) SetSeq(seq int64) { b.Seq = seq }

func (b *BaseModel) Sequence() int64 { return b.Seq }

// Entity 可被 EntityStore 管理的实体
type Entity interface {
	EntityID() string
	SetSeq(seq int64)
	Sequence() int64
}

// Stateful 拥有状态机的实体
type Stateful interface {
	Kind() EntityKind
	CurrentStatus() string
	SetStatus(status string)
}
