package service

import (
	"wa_admin_202610/internal/apperr"
	"wa_admin_202610/internal/model"
)

// ==================== 状态图 ====================

// edges from -> 合法目标集合
type edges map[string][]string

var transitionGraphs = map[model.EntityKind]edges{
	// 启停类：二节点完全图，允许自环
	model.KindBusinessOwner: {
		model.StatusActive:    {model.StatusActive, model.StatusSuspended},
		model.StatusSuspended: {model.StatusActive, model.StatusSuspended},
	},
	model.KindStore: {
		model.StatusActive:    {model.StatusActive, model.StatusSuspended},
		model.StatusSuspended: {model.StatusActive, model.StatusSuspended},
	},
	model.KindIntegration: {
		model.StatusActive:   {model.StatusActive, model.StatusInactive},
		model.StatusInactive: {model.StatusActive, model.StatusInactive},
	},
	model.KindOrder: {
		model.OrderStatusPending:    {model.OrderStatusProcessing, model.OrderStatusCancelled},
		model.OrderStatusProcessing: {model.OrderStatusShipped, model.OrderStatusCancelled},
		model.OrderStatusShipped:    {model.OrderStatusCompleted, model.OrderStatusCancelled},
		model.OrderStatusCompleted:  {model.OrderStatusRefunded},
		model.OrderStatusCancelled:  {},
		model.OrderStatusRefunded:   {},
	},
	model.KindPayment: {
		model.PaymentStatusPending:   {model.PaymentStatusCompleted, model.PaymentStatusFailed},
		model.PaymentStatusCompleted: {model.PaymentStatusRefunded},
		model.PaymentStatusFailed:    {},
		model.PaymentStatusRefunded:  {},
	},
}

// Statuses 实体的全部状态
func Statuses(kind model.EntityKind) []string {
	switch kind {
	case model.KindBusinessOwner, model.KindStore:
		return []string{model.StatusActive, model.StatusSuspended}
	case model.KindIntegration:
		return []string{model.StatusActive, model.StatusInactive}
	case model.KindOrder:
		return append([]string(nil), model.OrderStatuses...)
	case model.KindPayment:
		return []string{model.PaymentStatusPending, model.PaymentStatusCompleted, model.PaymentStatusFailed, model.PaymentStatusRefunded}
	}
	return nil
}

// IsKnownStatus 状态是否属于该实体
func IsKnownStatus(kind model.EntityKind, status string) bool {
	_, ok := transitionGraphs[kind][status]
	return ok
}

// CanTransition from -> to 是否合法
func CanTransition(kind model.EntityKind, from, to string) bool {
	for _, target := range transitionGraphs[kind][from] {
		if target == to {
			return true
		}
	}
	return false
}

// AllowedTargets 当前状态可流转到的目标，未知状态返回空
func AllowedTargets(kind model.EntityKind, from string) []string {
	return append([]string{}, transitionGraphs[kind][from]...)
}

// ==================== 状态流转 ====================

// statefulEntity 约束 *T 同时可取 ID 与读写状态
type statefulEntity[T any] interface {
	*T
	model.Entity
	model.Stateful
}

// Transition 返回状态为 to 的副本，非法流转返回 IllegalTransitionError 且不修改入参
func Transition[T any, PT statefulEntity[T]](entity T, to string) (T, error) {
	p := PT(&entity)
	from := p.CurrentStatus()
	if !CanTransition(p.Kind(), from, to) {
		var zero T
		return zero, apperr.IllegalTransition(string(p.Kind()), p.EntityID(), from, to)
	}
	p.SetStatus(to)
	return entity, nil
}
