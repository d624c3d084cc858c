package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/stavka/internal/data"
)

func TestAwardReputation(t *testing.T) {
	tests := []struct {
		name   string
		awards []int32
		want   int32
	}{
		{name: "single award", awards: []int32{10}, want: 10},
		{name: "accumulates", awards: []int32{10, 25, 5}, want: 40},
		{name: "zero ignored", awards: []int32{10, 0}, want: 10},
		{name: "negative ignored", awards: []int32{10, -50}, want: 10},
		{name: "clamped at cap", awards: []int32{9000, 5000}, want: MaxReputation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOfficer(t, 0)
			for _, a := range tt.awards {
				o.AwardReputation(a)
			}
			assert.Equal(t, tt.want, o.Reputation())
		})
	}
}

func TestAwardReputationForAction(t *testing.T) {
	tests := []struct {
		name       string
		action     data.ActionCategory
		multiplier float64
		want       int32
	}{
		{name: "combat x2", action: data.ActionCombat, multiplier: 2.0, want: 6},
		{name: "move x1", action: data.ActionMove, multiplier: 1.0, want: 1},
		{name: "unit destroyed x3", action: data.ActionUnitDestroyed, multiplier: 3.0, want: 24},
		{name: "multiplier clamped low", action: data.ActionCombat, multiplier: 0.1, want: 3},
		{name: "multiplier clamped high", action: data.ActionCombat, multiplier: 10.0, want: 9},
		{name: "rounds half up", action: data.ActionForcedRetreat, multiplier: 1.5, want: 8}, // 7.5 → 8
		{name: "unknown action ignored", action: data.ActionCategory(99), multiplier: 2.0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOfficer(t, 0)
			o.AwardReputationForAction(tt.action, tt.multiplier)
			assert.Equal(t, tt.want, o.Reputation())
		})
	}
}

// TestReputationNeverNegative: трата больше баланса отклоняется целиком.
func TestReputationNeverNegative(t *testing.T) {
	o := newTestOfficer(t, 59)

	ok, err := o.UnlockSkill(101) // cost 60
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int32(59), o.Reputation())
}

// TestReputationNotifications: награды и траты уведомляют (delta, newTotal).
func TestReputationNotifications(t *testing.T) {
	o := newTestOfficer(t, 0)
	rec := &recorderListener{}
	o.AddListener(rec)

	o.AwardReputation(100)
	mustUnlock(t, o, 101) // spend 60

	assert.Equal(t, []repEvent{
		{delta: 100, total: 100},
		{delta: -60, total: 40},
	}, rec.reputation)
}
