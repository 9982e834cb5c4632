package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wa_admin_202610/internal/apperr"
	"wa_admin_202610/internal/model"
)

// 期望的合法边，按实体列出
var legalEdges = map[model.EntityKind][][2]string{
	model.KindBusinessOwner: {
		{"active", "active"}, {"active", "suspended"}, {"suspended", "active"}, {"suspended", "suspended"},
	},
	model.KindStore: {
		{"active", "active"}, {"active", "suspended"}, {"suspended", "active"}, {"suspended", "suspended"},
	},
	model.KindIntegration: {
		{"active", "active"}, {"active", "inactive"}, {"inactive", "active"}, {"inactive", "inactive"},
	},
	model.KindOrder: {
		{"pending", "processing"}, {"processing", "shipped"}, {"shipped", "completed"},
		{"pending", "cancelled"}, {"processing", "cancelled"}, {"shipped", "cancelled"},
		{"completed", "refunded"},
	},
	model.KindPayment: {
		{"pending", "completed"}, {"pending", "failed"}, {"completed", "refunded"},
	},
}

func isLegal(kind model.EntityKind, from, to string) bool {
	for _, e := range legalEdges[kind] {
		if e[0] == from && e[1] == to {
			return true
		}
	}
	return false
}

func TestCanTransition_AllPairs(t *testing.T) {
	for _, kind := range model.AllKinds {
		statuses := append(Statuses(kind), "archived", "")
		for _, from := range statuses {
			for _, to := range statuses {
				assert.Equal(t, isLegal(kind, from, to), CanTransition(kind, from, to),
					"%s: %q -> %q", kind, from, to)
			}
		}
	}
}

func TestTransition_Order_AllPairs(t *testing.T) {
	for _, from := range model.OrderStatuses {
		for _, to := range model.OrderStatuses {
			order := model.Order{BaseModel: model.BaseModel{ID: "O1"}, Status: from, Amount: 10}
			got, err := Transition(order, to)
			if isLegal(model.KindOrder, from, to) {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, got.Status)
				assert.Equal(t, 10.0, got.Amount)
			} else {
				var ite *apperr.IllegalTransitionError
				require.ErrorAs(t, err, &ite, "%s -> %s", from, to)
				assert.Equal(t, from, ite.From)
				assert.Equal(t, to, ite.To)
				assert.Equal(t, "order", ite.EntityType)
				assert.Equal(t, "O1", ite.ID)
			}
			// 入参不被修改
			assert.Equal(t, from, order.Status)
		}
	}
}

func TestTransition_Payment_AllPairs(t *testing.T) {
	statuses := Statuses(model.KindPayment)
	for _, from := range statuses {
		for _, to := range statuses {
			p := model.Payment{BaseModel: model.BaseModel{ID: "P1"}, Status: from}
			got, err := Transition(p, to)
			if isLegal(model.KindPayment, from, to) {
				require.NoError(t, err)
				assert.Equal(t, to, got.Status)
			} else {
				assert.True(t, apperr.IsIllegalTransition(err), "%s -> %s", from, to)
			}
		}
	}
}

func TestTransition_Scenarios(t *testing.T) {
	t.Run("商家停用后再次停用仍然成功", func(t *testing.T) {
		owner := model.BusinessOwner{BaseModel: model.BaseModel{ID: "B1"}, Status: model.StatusActive}
		suspended, err := Transition(owner, model.StatusSuspended)
		require.NoError(t, err)
		assert.Equal(t, model.StatusSuspended, suspended.Status)

		again, err := Transition(suspended, model.StatusSuspended)
		require.NoError(t, err)
		assert.Equal(t, model.StatusSuspended, again.Status)
	})

	t.Run("已完成订单不能回到处理中", func(t *testing.T) {
		order := model.Order{BaseModel: model.BaseModel{ID: "O1"}, Status: model.OrderStatusCompleted}
		_, err := Transition(order, model.OrderStatusProcessing)
		var ite *apperr.IllegalTransitionError
		require.ErrorAs(t, err, &ite)
		assert.Equal(t, "completed", ite.From)
		assert.Equal(t, "processing", ite.To)
	})

	t.Run("集成未知状态非法", func(t *testing.T) {
		i := model.Integration{BaseModel: model.BaseModel{ID: "I1"}, Status: model.StatusActive}
		_, err := Transition(i, "paused")
		assert.True(t, apperr.IsIllegalTransition(err))
	})
}

func TestAllowedTargets(t *testing.T) {
	assert.Equal(t, []string{"processing", "cancelled"}, AllowedTargets(model.KindOrder, "pending"))
	assert.Equal(t, []string{"refunded"}, AllowedTargets(model.KindOrder, "completed"))
	assert.Empty(t, AllowedTargets(model.KindOrder, "refunded"))
	assert.Empty(t, AllowedTargets(model.KindPayment, "unknown"))
	assert.NotNil(t, AllowedTargets(model.KindPayment, "unknown"))
	assert.Equal(t, []string{"active", "suspended"}, AllowedTargets(model.KindStore, "suspended"))
}
