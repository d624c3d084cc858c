package model

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/udisondev/stavka/internal/data"
)

// GateRule — правило доступности Doctrine/Specialization веток.
type GateRule string

const (
	// GateRuleTier - branch opens when a specific Leadership tier is unlocked
	GateRuleTier GateRule = "tier"
	// GateRuleCount - branch opens when N Leadership skills are unlocked
	GateRuleCount GateRule = "count"
)

// TreePolicy — настраиваемые правила дерева: гейты веток и политика respec.
type TreePolicy struct {
	GateRule               GateRule
	DoctrineGateTier       int32
	SpecializationGateTier int32

	// RespecRefund возвращает потраченную репутацию при сбросе.
	// По умолчанию false: потраченное остаётся потраченным.
	RespecRefund bool
}

// DefaultTreePolicy returns the policy used unless configuration overrides it.
func DefaultTreePolicy() TreePolicy {
	return TreePolicy{
		GateRule:               GateRuleTier,
		DoctrineGateTier:       1,
		SpecializationGateTier: 3,
	}
}

// SkillTree — движок авторизации навыков офицера.
// Эксклюзивно принадлежит своему Officer, никогда не шарится.
// Тратит репутацию владельца при unlock; все остальные операции — чистые
// запросы.
type SkillTree struct {
	owner    *Officer
	policy   TreePolicy
	unlocked map[data.SkillID]struct{}

	mu sync.RWMutex
}

// newSkillTree создаёт пустое дерево для владельца.
func newSkillTree(owner *Officer, policy TreePolicy) *SkillTree {
	return &SkillTree{
		owner:    owner,
		policy:   policy,
		unlocked: make(map[data.SkillID]struct{}),
	}
}

// SetPolicy заменяет правила дерева. Применяется к последующим операциям,
// уже разблокированные навыки не пересматриваются.
func (t *SkillTree) SetPolicy(p TreePolicy) {
	t.mu.Lock()
	t.policy = p
	t.mu.Unlock()
}

// Policy возвращает текущие правила дерева.
func (t *SkillTree) Policy() TreePolicy {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.policy
}

// IsUnlocked reports whether the skill is unlocked.
func (t *SkillTree) IsUnlocked(id data.SkillID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.unlocked[id]
	return ok
}

// CanUnlock проверяет все условия разблокировки: навык ещё не открыт, ветка
// доступна, предыдущий tier открыт (или это первый tier), репутации хватает.
// Неизвестный SkillID — ошибка ErrInvalidArgument; все rule-отказы — false.
func (t *SkillTree) CanUnlock(id data.SkillID) (bool, error) {
	def := data.GetSkill(id)
	if def == nil {
		return false, fmt.Errorf("%w: unknown skill ID %d", ErrInvalidArgument, id)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.canUnlockLocked(def), nil
}

// canUnlockLocked — проверка условий под read/write lock.
// Баланс репутации читается у владельца (отдельный mutex, порядок
// захвата всегда tree → officer).
func (t *SkillTree) canUnlockLocked(def *data.SkillDef) bool {
	if _, ok := t.unlocked[def.ID]; ok {
		return false
	}
	if !t.branchAvailableLocked(def.Branch) {
		return false
	}
	if def.Tier > 1 {
		prev := data.SkillID(int32(def.Branch)*100 + def.Tier - 1)
		if _, ok := t.unlocked[prev]; !ok {
			return false
		}
	}
	return t.owner.Reputation() >= def.Cost
}

// IsBranchAvailable reports whether the branch gate is open.
// Foundation-ветки доступны всегда; Doctrine/Specialization требуют прогресса
// в Leadership согласно policy.
func (t *SkillTree) IsBranchAvailable(branch data.Branch) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.branchAvailableLocked(branch)
}

func (t *SkillTree) branchAvailableLocked(branch data.Branch) bool {
	var gate int32
	switch branch.Type() {
	case data.BranchTypeFoundation:
		return true
	case data.BranchTypeDoctrine:
		gate = t.policy.DoctrineGateTier
	case data.BranchTypeSpecialization:
		gate = t.policy.SpecializationGateTier
	}

	if t.policy.GateRule == GateRuleCount {
		var n int32
		for id := range t.unlocked {
			if id.Branch() == data.BranchLeadership {
				n++
			}
		}
		return n >= gate
	}

	// GateRuleTier: конкретный Leadership tier должен быть открыт.
	required := data.SkillID(int32(data.BranchLeadership)*100 + gate)
	_, ok := t.unlocked[required]
	return ok
}

// Unlock атомарно перепроверяет все условия CanUnlock, списывает стоимость,
// открывает навык и, если навык promotion, повышает ранг владельца на одну
// ступень. Любой не выполненный rule-критерий — false без изменения
// состояния; частичного применения не бывает.
func (t *SkillTree) Unlock(id data.SkillID) (bool, error) {
	def := data.GetSkill(id)
	if def == nil {
		return false, fmt.Errorf("%w: unknown skill ID %d", ErrInvalidArgument, id)
	}

	t.mu.Lock()
	if !t.canUnlockLocked(def) {
		t.mu.Unlock()
		slog.Debug("skill unlock rejected",
			"officer", t.owner.Name(),
			"skill", def.Name,
			"reputation", t.owner.Reputation())
		return false, nil
	}

	// Списание перепроверяет баланс атомарно: между canUnlockLocked и
	// spendReputation другой вызов мог потратить репутацию владельца.
	newTotal, ok := t.owner.spendReputation(def.Cost)
	if !ok {
		t.mu.Unlock()
		return false, nil
	}
	t.unlocked[def.ID] = struct{}{}
	t.mu.Unlock()

	t.owner.notifyReputationChanged(-def.Cost, newTotal)
	t.owner.notifySkillUnlocked(def.ID, def.Name)
	if def.Promotion {
		t.owner.promote()
	}

	slog.Debug("skill unlocked",
		"officer", t.owner.Name(),
		"skill", def.Name,
		"cost", def.Cost)

	return true, nil
}

// HasCapability — OR по всем открытым навыкам, дающим boolean-флаг bt.
func (t *SkillTree) HasCapability(bt data.BonusType) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for id := range t.unlocked {
		for _, b := range data.GetSkill(id).Bonuses {
			if b.Capability && b.Type == bt {
				return true
			}
		}
	}
	return false
}

// BonusValue — сумма числовых бонусов типа bt по всем открытым навыкам,
// 0 если таких нет.
func (t *SkillTree) BonusValue(bt data.BonusType) int32 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var sum int32
	for id := range t.unlocked {
		for _, b := range data.GetSkill(id).Bonuses {
			if !b.Capability && b.Type == bt {
				sum += b.Value
			}
		}
	}
	return sum
}

// UnlockedSkills возвращает открытые навыки, отсортированные по ID.
func (t *SkillTree) UnlockedSkills() []data.SkillID {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]data.SkillID, 0, len(t.unlocked))
	for id := range t.unlocked {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// UnlockedCount возвращает число открытых навыков.
func (t *SkillTree) UnlockedCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.unlocked)
}

// SpentReputation возвращает сумму стоимостей всех открытых навыков.
func (t *SkillTree) SpentReputation() int32 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var sum int32
	for id := range t.unlocked {
		sum += data.GetSkill(id).Cost
	}
	return sum
}

// ResetExceptLeadership сбрасывает все навыки вне Leadership-ветки (respec).
// Leadership-навыки и уже полученные повышения ранга сохраняются.
// Возвращает true, если хотя бы один навык был сброшен.
// Репутация не возвращается, если policy.RespecRefund не включён.
func (t *SkillTree) ResetExceptLeadership() bool {
	t.mu.Lock()
	var refund int32
	var reset bool
	for id := range t.unlocked {
		if id.Branch() == data.BranchLeadership {
			continue
		}
		refund += data.GetSkill(id).Cost
		delete(t.unlocked, id)
		reset = true
	}
	refundEnabled := t.policy.RespecRefund
	t.mu.Unlock()

	if !reset {
		return false
	}

	if refundEnabled && refund > 0 {
		t.owner.AwardReputation(refund)
	}

	slog.Debug("skill tree reset",
		"officer", t.owner.Name(),
		"refund", refundEnabled)

	return true
}

// restoreUnlocked восстанавливает набор открытых навыков из снапшота.
// Без списаний и уведомлений; неизвестный ID — ошибка.
func (t *SkillTree) restoreUnlocked(ids []data.SkillID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.unlocked = make(map[data.SkillID]struct{}, len(ids))
	for _, id := range ids {
		if data.GetSkill(id) == nil {
			return fmt.Errorf("%w: unknown skill ID %d in snapshot", ErrInvalidArgument, id)
		}
		t.unlocked[id] = struct{}{}
	}
	return nil
}
