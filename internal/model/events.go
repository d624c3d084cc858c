package model

import "github.com/udisondev/stavka/internal/data"

// OfficerListener получает уведомления об изменениях состояния офицера.
// Вызовы синхронные, в порядке регистрации, fire-and-forget: офицер не ждёт
// подтверждения и не даёт гарантий сверх порядка самих операций.
type OfficerListener interface {
	OnReputationChanged(o *Officer, delta, newTotal int32)
	OnGradeChanged(o *Officer, grade CommandGrade)
	OnSkillUnlocked(o *Officer, id data.SkillID, name string)
	OnUnitAssigned(o *Officer, unitID string)
	OnUnitUnassigned(o *Officer)
}

// AddListener регистрирует слушателя. Порядок регистрации определяет порядок
// вызова. Дедупликации нет.
func (o *Officer) AddListener(l OfficerListener) {
	if l == nil {
		return
	}
	o.mu.Lock()
	o.listeners = append(o.listeners, l)
	o.mu.Unlock()
}

// snapshotListeners возвращает копию списка слушателей для вызова вне lock.
func (o *Officer) snapshotListeners() []OfficerListener {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if len(o.listeners) == 0 {
		return nil
	}
	ls := make([]OfficerListener, len(o.listeners))
	copy(ls, o.listeners)
	return ls
}

func (o *Officer) notifyReputationChanged(delta, newTotal int32) {
	for _, l := range o.snapshotListeners() {
		l.OnReputationChanged(o, delta, newTotal)
	}
}

func (o *Officer) notifyGradeChanged(grade CommandGrade) {
	for _, l := range o.snapshotListeners() {
		l.OnGradeChanged(o, grade)
	}
}

func (o *Officer) notifySkillUnlocked(id data.SkillID, name string) {
	for _, l := range o.snapshotListeners() {
		l.OnSkillUnlocked(o, id, name)
	}
}

func (o *Officer) notifyUnitAssigned(unitID string) {
	for _, l := range o.snapshotListeners() {
		l.OnUnitAssigned(o, unitID)
	}
}

func (o *Officer) notifyUnitUnassigned() {
	for _, l := range o.snapshotListeners() {
		l.OnUnitUnassigned(o)
	}
}
