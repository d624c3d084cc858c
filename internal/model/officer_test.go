package model

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/stavka/internal/data"
)

// repEvent фиксирует одно уведомление об изменении репутации.
type repEvent struct {
	delta int32
	total int32
}

// recorderListener записывает все уведомления для проверки порядка вызова.
type recorderListener struct {
	reputation []repEvent
	grades     []CommandGrade
	skills     []data.SkillID
	assigned   []string
	unassigned int
	order      []string
}

func (r *recorderListener) OnReputationChanged(_ *Officer, delta, total int32) {
	r.reputation = append(r.reputation, repEvent{delta, total})
	r.order = append(r.order, "reputation")
}

func (r *recorderListener) OnGradeChanged(_ *Officer, grade CommandGrade) {
	r.grades = append(r.grades, grade)
	r.order = append(r.order, "grade")
}

func (r *recorderListener) OnSkillUnlocked(_ *Officer, id data.SkillID, _ string) {
	r.skills = append(r.skills, id)
	r.order = append(r.order, "skill")
}

func (r *recorderListener) OnUnitAssigned(_ *Officer, unitID string) {
	r.assigned = append(r.assigned, unitID)
	r.order = append(r.order, "assigned")
}

func (r *recorderListener) OnUnitUnassigned(_ *Officer) {
	r.unassigned++
	r.order = append(r.order, "unassigned")
}

func TestNewOfficer_Validation(t *testing.T) {
	tests := []struct {
		name    string
		offName string
		nat     data.Nationality
		wantErr bool
	}{
		{name: "valid", offName: "Erich Weber", nat: data.NationGermany},
		{name: "trimmed", offName: "  Ivan Petrov  ", nat: data.NationSovietUnion},
		{name: "minimum length", offName: "Li", nat: data.NationJapan},
		{name: "too short", offName: "X", nat: data.NationGermany, wantErr: true},
		{name: "blank", offName: "   ", nat: data.NationGermany, wantErr: true},
		{name: "too long", offName: strings.Repeat("a", 51), nat: data.NationGermany, wantErr: true},
		{name: "bad nationality", offName: "Erich Weber", nat: data.Nationality(42), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewOfficer(1, tt.offName, tt.nat, SidePlayer, RatingAverage)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.offName), o.Name())
			assert.Equal(t, GradeJunior, o.Grade())
			assert.Equal(t, int32(0), o.Reputation())
		})
	}
}

func TestOfficer_RatingClamped(t *testing.T) {
	o, err := NewOfficer(1, "Erich Weber", data.NationGermany, SidePlayer, CommandRating(50))
	require.NoError(t, err)
	assert.Equal(t, RatingGenius, o.Rating())

	o.SetRating(CommandRating(-10))
	assert.Equal(t, RatingAverage, o.Rating())
}

func TestNewRandomOfficer_RequiresNameService(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	_, err := NewRandomOfficer(1, data.NationGermany, SideAI, nil, rng)
	assert.ErrorIs(t, err, ErrNameServiceUnavailable)
}

// TestNewRandomOfficer_RatingBounds: 3d6-10 с clamp [-2, 0] за 10000 бросков
// никогда не выходит за пределы и никогда не даёт Genius.
func TestNewRandomOfficer_RatingBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 99))
	names := data.NewNameGenerator(rng)

	seen := map[CommandRating]int{}
	for i := range 10000 {
		o, err := NewRandomOfficer(uint32(i+1), data.NationSovietUnion, SideAI, names, rng)
		require.NoError(t, err)

		r := o.Rating()
		require.GreaterOrEqual(t, r, RatingAverage)
		require.LessOrEqual(t, r, RatingSuperior)
		seen[r]++
	}

	// Все три значения закрытого набора встречаются.
	assert.Len(t, seen, 3)
}

func TestOfficer_Assignment(t *testing.T) {
	o := newTestOfficer(t, 0)
	rec := &recorderListener{}
	o.AddListener(rec)

	_, assigned := o.AssignedUnitID()
	assert.False(t, assigned)

	assert.ErrorIs(t, o.AssignToUnit(""), ErrInvalidArgument)
	assert.ErrorIs(t, o.AssignToUnit("   "), ErrInvalidArgument)

	require.NoError(t, o.AssignToUnit("2nd Guards Rifle Division"))
	unitID, assigned := o.AssignedUnitID()
	assert.True(t, assigned)
	assert.Equal(t, "2nd Guards Rifle Division", unitID)

	// Переназначение перезаписывает юнит.
	require.NoError(t, o.AssignToUnit("7th Tank Corps"))
	unitID, _ = o.AssignedUnitID()
	assert.Equal(t, "7th Tank Corps", unitID)

	o.UnassignFromUnit()
	unitID, assigned = o.AssignedUnitID()
	assert.False(t, assigned)
	assert.Empty(t, unitID)

	assert.Equal(t, []string{"2nd Guards Rifle Division", "7th Tank Corps"}, rec.assigned)
	assert.Equal(t, 1, rec.unassigned)
}

// TestOfficer_ListenerOrder: слушатели вызываются в порядке регистрации.
func TestOfficer_ListenerOrder(t *testing.T) {
	o := newTestOfficer(t, 0)

	var calls []string
	first := &funcListener{onRep: func() { calls = append(calls, "first") }}
	second := &funcListener{onRep: func() { calls = append(calls, "second") }}
	o.AddListener(first)
	o.AddListener(second)

	o.AwardReputation(10)
	assert.Equal(t, []string{"first", "second"}, calls)
}

// funcListener — слушатель с одним хуком на изменение репутации.
type funcListener struct {
	onRep func()
}

func (f *funcListener) OnReputationChanged(*Officer, int32, int32) {
	if f.onRep != nil {
		f.onRep()
	}
}
func (f *funcListener) OnGradeChanged(*Officer, CommandGrade)          {}
func (f *funcListener) OnSkillUnlocked(*Officer, data.SkillID, string) {}
func (f *funcListener) OnUnitAssigned(*Officer, string)                {}
func (f *funcListener) OnUnitUnassigned(*Officer)                      {}

// TestOfficer_UnlockNotificationOrder: unlock promotion-навыка уведомляет
// в порядке внутренних операций: трата → навык → ранг.
func TestOfficer_UnlockNotificationOrder(t *testing.T) {
	o := newTestOfficer(t, 500)
	mustUnlock(t, o, 101)

	rec := &recorderListener{}
	o.AddListener(rec)
	mustUnlock(t, o, 102) // promotion skill

	assert.Equal(t, []string{"reputation", "skill", "grade"}, rec.order)
	assert.Equal(t, []CommandGrade{GradeSenior}, rec.grades)
	assert.Equal(t, []data.SkillID{102}, rec.skills)
}

func TestOfficer_SetName(t *testing.T) {
	o := newTestOfficer(t, 0)

	assert.ErrorIs(t, o.SetName("x"), ErrInvalidArgument)
	assert.Equal(t, "Test Officer", o.Name(), "rejected rename keeps old name")

	require.NoError(t, o.SetName("  Kurt Brandt "))
	assert.Equal(t, "Kurt Brandt", o.Name())
}
