package model

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/udisondev/stavka/internal/data"
)

// Side — принадлежность офицера.
type Side int32

const (
	SidePlayer Side = iota
	SideAI
)

// String returns human-readable side name.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "PLAYER"
	case SideAI:
		return "AI"
	default:
		return "UNKNOWN"
	}
}

const (
	// MinNameLength/MaxNameLength — пределы длины имени офицера (в рунах).
	MinNameLength = 2
	MaxNameLength = 50

	// MaxReputation — верхняя граница репутации; начисления обрезаются по ней.
	MaxReputation = 9999
)

// Officer — офицер: identity, рейтинг, ранг, репутация, назначение на юнит.
// Владеет ровно одним SkillTree (эксклюзивно, одно время жизни).
// Все внешние обращения к дереву, репутации и назначению идут через Officer.
//
// Мутации не рассчитаны на конкурентные вызовы из нескольких симуляций —
// вызывающая сторона сериализует доступ (один офицер — один шаг симуляции).
type Officer struct {
	objectID    uint32
	name        string
	nationality data.Nationality
	side        Side
	rating      CommandRating
	grade       CommandGrade
	reputation  int32

	// Assignment state. Пустой unitID при assigned=false.
	unitID   string
	assigned bool

	tree *SkillTree

	listeners []OfficerListener

	mu sync.RWMutex
}

// NewOfficer создаёт офицера с явными атрибутами.
// Имя обрезается по пробелам и проверяется на [MinNameLength, MaxNameLength]
// рун; рейтинг clamp-ится к допустимому диапазону.
func NewOfficer(objectID uint32, name string, nat data.Nationality, side Side, rating CommandRating) (*Officer, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if !nat.Valid() {
		return nil, fmt.Errorf("%w: nationality %d", ErrInvalidArgument, nat)
	}

	o := &Officer{
		objectID:    objectID,
		name:        name,
		nationality: nat,
		side:        side,
		rating:      ClampRating(rating),
		grade:       GradeJunior,
	}
	o.tree = newSkillTree(o, DefaultTreePolicy())
	return o, nil
}

// NewRandomOfficer создаёт офицера со случайным именем и рейтингом.
// Рейтинг: 3d6-10, clamp к [-2, 0] — случайные офицеры тяготеют к рейтингу
// ниже среднего и никогда не выпадают Genius.
// Отсутствие генератора имён — fatal precondition.
func NewRandomOfficer(objectID uint32, nat data.Nationality, side Side, names *data.NameGenerator, rng *rand.Rand) (*Officer, error) {
	if names == nil {
		return nil, ErrNameServiceUnavailable
	}
	if !nat.Valid() {
		return nil, fmt.Errorf("%w: nationality %d", ErrInvalidArgument, nat)
	}

	name := names.GenerateMaleFirstName(nat) + " " + names.GenerateLastName(nat)
	rating := rollRandomRating(rng)

	return NewOfficer(objectID, name, nat, side, rating)
}

// rollRandomRating бросает 3d6-10 и clamp-ит к [RatingAverage, RatingSuperior].
func rollRandomRating(rng *rand.Rand) CommandRating {
	roll := int32(0)
	for range 3 {
		roll += rng.Int32N(6) + 1
	}
	r := CommandRating(roll - 10)
	if r < RatingAverage {
		r = RatingAverage
	}
	if r > RatingSuperior {
		r = RatingSuperior
	}
	return r
}

// normalizeName обрезает пробелы и проверяет длину имени.
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return "", fmt.Errorf("%w: name length %d, want %d..%d", ErrInvalidArgument, n, MinNameLength, MaxNameLength)
	}
	return name, nil
}

// ObjectID возвращает уникальный ID офицера (immutable после создания).
func (o *Officer) ObjectID() uint32 {
	return o.objectID
}

// Name возвращает отображаемое имя офицера.
func (o *Officer) Name() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.name
}

// SetName меняет имя офицера с той же валидацией, что и при создании.
func (o *Officer) SetName(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	o.mu.Lock()
	o.name = name
	o.mu.Unlock()
	return nil
}

// Nationality возвращает национальность офицера.
func (o *Officer) Nationality() data.Nationality {
	return o.nationality
}

// Side возвращает сторону офицера.
func (o *Officer) Side() Side {
	return o.side
}

// Rating возвращает боевой командный рейтинг.
func (o *Officer) Rating() CommandRating {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.rating
}

// SetRating устанавливает рейтинг с clamp к допустимому диапазону.
func (o *Officer) SetRating(r CommandRating) {
	o.mu.Lock()
	o.rating = ClampRating(r)
	o.mu.Unlock()
}

// Grade возвращает текущий ранг.
func (o *Officer) Grade() CommandGrade {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.grade
}

// RankTitle возвращает титул звания по национальности и текущему рангу.
func (o *Officer) RankTitle() string {
	return RankTitle(o.nationality, o.Grade())
}

// promote повышает ранг ровно на одну ступень (без пропусков, без регрессии).
// Вызывается только из SkillTree при разблокировке promotion-навыка.
func (o *Officer) promote() {
	o.mu.Lock()
	if o.grade >= GradeTop {
		o.mu.Unlock()
		return
	}
	o.grade++
	grade := o.grade
	o.mu.Unlock()

	o.notifyGradeChanged(grade)
}

// SkillTree возвращает дерево навыков офицера.
func (o *Officer) SkillTree() *SkillTree {
	return o.tree
}

// CanUnlockSkill — см. SkillTree.CanUnlock.
func (o *Officer) CanUnlockSkill(id data.SkillID) (bool, error) {
	return o.tree.CanUnlock(id)
}

// UnlockSkill — см. SkillTree.Unlock.
func (o *Officer) UnlockSkill(id data.SkillID) (bool, error) {
	return o.tree.Unlock(id)
}

// IsSkillUnlocked — см. SkillTree.IsUnlocked.
func (o *Officer) IsSkillUnlocked(id data.SkillID) bool {
	return o.tree.IsUnlocked(id)
}

// HasCapability — см. SkillTree.HasCapability.
func (o *Officer) HasCapability(bt data.BonusType) bool {
	return o.tree.HasCapability(bt)
}

// BonusValue — см. SkillTree.BonusValue.
func (o *Officer) BonusValue(bt data.BonusType) int32 {
	return o.tree.BonusValue(bt)
}

// AssignedUnitID возвращает ID юнита и флаг назначения.
func (o *Officer) AssignedUnitID() (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.unitID, o.assigned
}

// AssignToUnit назначает офицера на юнит. Пустой или пробельный ID
// отклоняется. Существование юнита не проверяется — это контракт вызывающей
// стороны.
func (o *Officer) AssignToUnit(unitID string) error {
	unitID = strings.TrimSpace(unitID)
	if unitID == "" {
		return fmt.Errorf("%w: empty unit ID", ErrInvalidArgument)
	}

	o.mu.Lock()
	o.unitID = unitID
	o.assigned = true
	o.mu.Unlock()

	o.notifyUnitAssigned(unitID)
	return nil
}

// UnassignFromUnit снимает назначение. Всегда успешно.
func (o *Officer) UnassignFromUnit() {
	o.mu.Lock()
	o.unitID = ""
	o.assigned = false
	o.mu.Unlock()

	o.notifyUnitUnassigned()
}
