package model

import (
	"log/slog"
	"math"

	"github.com/udisondev/stavka/internal/data"
)

// AwardReputation добавляет amount к репутации (единственный путь заработка).
// Неположительный amount молча игнорируется; итог обрезается по MaxReputation.
// Слушатели получают (фактическую дельту, новый итог).
func (o *Officer) AwardReputation(amount int32) {
	if amount <= 0 {
		return
	}

	o.mu.Lock()
	newTotal := o.reputation + amount
	if newTotal > MaxReputation {
		newTotal = MaxReputation
	}
	delta := newTotal - o.reputation
	if delta <= 0 {
		o.mu.Unlock()
		return
	}
	o.reputation = newTotal
	o.mu.Unlock()

	o.notifyReputationChanged(delta, newTotal)
}

// AwardReputationForAction начисляет репутацию за категорию действия:
// базовая награда × contextMultiplier (clamp [1.0, 3.0]), округление
// half-away-from-zero. Неизвестная категория даёт 0 и игнорируется.
func (o *Officer) AwardReputationForAction(action data.ActionCategory, contextMultiplier float64) {
	base := data.BaseReputationAward(action)
	if base <= 0 {
		slog.Debug("reputation award for unknown action ignored",
			"officer", o.Name(),
			"action", action)
		return
	}

	if contextMultiplier < 1.0 {
		contextMultiplier = 1.0
	}
	if contextMultiplier > 3.0 {
		contextMultiplier = 3.0
	}

	amount := int32(math.Round(float64(base) * contextMultiplier))
	if amount > 0 {
		o.AwardReputation(amount)
	}
}

// Reputation возвращает текущий баланс репутации.
func (o *Officer) Reputation() int32 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.reputation
}

// spendReputation атомарно списывает cost, если баланса хватает.
// Единственный путь траты — успешный unlock в SkillTree.
// Репутация никогда не уходит в минус. Уведомление слушателей — на стороне
// вызывающего (SkillTree.Unlock), уже вне его lock.
func (o *Officer) spendReputation(cost int32) (int32, bool) {
	if cost < 0 {
		return 0, false
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.reputation < cost {
		return o.reputation, false
	}
	o.reputation -= cost
	return o.reputation, true
}

// setReputation восстанавливает баланс при restore/clone. Без уведомлений.
func (o *Officer) setReputation(total int32) {
	if total < 0 {
		total = 0
	}
	if total > MaxReputation {
		total = MaxReputation
	}
	o.mu.Lock()
	o.reputation = total
	o.mu.Unlock()
}
