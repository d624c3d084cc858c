package model

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/stavka/internal/data"
)

// SkillTreeSnapshot — непрозрачный снапшот дерева навыков для persistence.
type SkillTreeSnapshot struct {
	Unlocked []data.SkillID
}

// OfficerSnapshot — полное сохраняемое состояние офицера.
// Round-trip через Snapshot/RestoreOfficer даёт наблюдаемо идентичного
// офицера: те же открытые навыки, бонусы, ранг, репутация, назначение.
type OfficerSnapshot struct {
	ObjectID    uint32
	Name        string
	Nationality data.Nationality
	Side        Side
	Rating      CommandRating
	Grade       CommandGrade
	Reputation  int32
	UnitID      string
	Assigned    bool
	Skills      SkillTreeSnapshot
}

// Snapshot возвращает снапшот текущего состояния офицера.
func (o *Officer) Snapshot() OfficerSnapshot {
	unlocked := o.tree.UnlockedSkills()

	o.mu.RLock()
	defer o.mu.RUnlock()
	return OfficerSnapshot{
		ObjectID:    o.objectID,
		Name:        o.name,
		Nationality: o.nationality,
		Side:        o.side,
		Rating:      o.rating,
		Grade:       o.grade,
		Reputation:  o.reputation,
		UnitID:      o.unitID,
		Assigned:    o.assigned,
		Skills:      SkillTreeSnapshot{Unlocked: unlocked},
	}
}

// Digest возвращает hex BLAKE2b-256 от канонической записи снапшота.
// Хранится рядом с сохранёнными данными и проверяется при restore, чтобы
// повреждённая запись не воскресла как валидный офицер.
func (s OfficerSnapshot) Digest() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%s|%d|%d|%d|%d|%d|%s|%t|",
		s.ObjectID, s.Name, s.Nationality, s.Side, s.Rating,
		s.Grade, s.Reputation, s.UnitID, s.Assigned)
	for _, id := range s.Skills.Unlocked {
		fmt.Fprintf(&b, "%d,", id)
	}

	sum := blake2b.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// RestoreOfficer восстанавливает офицера из снапшота.
// Валидация та же, что при создании; ранг и репутация берутся из снапшота,
// без повторного проигрывания promotion-навыков.
func RestoreOfficer(s OfficerSnapshot) (*Officer, error) {
	o, err := NewOfficer(s.ObjectID, s.Name, s.Nationality, s.Side, s.Rating)
	if err != nil {
		return nil, err
	}
	if s.Grade < GradeJunior || s.Grade > GradeTop {
		return nil, fmt.Errorf("%w: grade %d", ErrInvalidArgument, s.Grade)
	}

	o.setReputation(s.Reputation)
	o.grade = s.Grade
	if err := o.tree.restoreUnlocked(s.Skills.Unlocked); err != nil {
		return nil, err
	}

	if s.Assigned {
		unitID := strings.TrimSpace(s.UnitID)
		if unitID == "" {
			return nil, fmt.Errorf("%w: assigned with empty unit ID", ErrInvalidArgument)
		}
		o.unitID = unitID
		o.assigned = true
	}

	return o, nil
}

// Clone создаёт глубокую копию офицера со свежим identity.
// Копируются имя, национальность, рейтинг, репутация, ранг и дерево навыков;
// назначение на тот же юнит сохраняется. Слушатели не копируются.
func (o *Officer) Clone(newID uint32) (*Officer, error) {
	s := o.Snapshot()
	s.ObjectID = newID
	c, err := RestoreOfficer(s)
	if err != nil {
		return nil, err
	}
	c.tree.SetPolicy(o.tree.Policy())
	return c, nil
}
