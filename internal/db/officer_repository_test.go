package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/stavka/internal/data"
	"github.com/udisondev/stavka/internal/model"
)

// newTestOfficer создаёт офицера с прогрессом: репутация, навыки, назначение.
func newTestOfficer(t *testing.T, objectID uint32) *model.Officer {
	t.Helper()

	o, err := model.NewOfficer(objectID, "Erich Weber", data.NationGermany, model.SidePlayer, model.RatingGood)
	require.NoError(t, err)

	o.AwardReputation(500)
	for _, id := range []data.SkillID{101, 102, 301} {
		ok, err := o.UnlockSkill(id)
		require.NoError(t, err)
		require.True(t, ok, "unlock %d", id)
	}
	require.NoError(t, o.AssignToUnit("3rd Panzer Battalion"))

	return o
}

func TestOfficerRepository_SaveLoad_RoundTrip(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOfficerRepository(pool)
	ctx := context.Background()

	o := newTestOfficer(t, 0x10000001)
	require.NoError(t, repo.Save(ctx, o))

	loaded, err := repo.Load(ctx, o.ObjectID())
	require.NoError(t, err)

	// Наблюдаемо идентичный офицер: identity, прогрессия, бонусы, назначение.
	assert.Equal(t, o.ObjectID(), loaded.ObjectID())
	assert.Equal(t, o.Name(), loaded.Name())
	assert.Equal(t, o.Nationality(), loaded.Nationality())
	assert.Equal(t, o.Side(), loaded.Side())
	assert.Equal(t, o.Rating(), loaded.Rating())
	assert.Equal(t, o.Grade(), loaded.Grade())
	assert.Equal(t, o.Reputation(), loaded.Reputation())
	assert.Equal(t, o.SkillTree().UnlockedSkills(), loaded.SkillTree().UnlockedSkills())
	assert.Equal(t, o.BonusValue(data.BonusMorale), loaded.BonusValue(data.BonusMorale))
	assert.Equal(t, o.BonusValue(data.BonusAttack), loaded.BonusValue(data.BonusAttack))

	unitID, assigned := loaded.AssignedUnitID()
	assert.True(t, assigned)
	assert.Equal(t, "3rd Panzer Battalion", unitID)
}

func TestOfficerRepository_Save_Overwrites(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOfficerRepository(pool)
	ctx := context.Background()

	o := newTestOfficer(t, 0x10000002)
	require.NoError(t, repo.Save(ctx, o))

	// Прогрессия после первого сохранения
	o.AwardReputation(200)
	ok, err := o.UnlockSkill(103)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, repo.Save(ctx, o))

	loaded, err := repo.Load(ctx, o.ObjectID())
	require.NoError(t, err)
	assert.Equal(t, o.Reputation(), loaded.Reputation())
	assert.True(t, loaded.IsSkillUnlocked(103))
}

func TestOfficerRepository_Load_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOfficerRepository(pool)

	_, err := repo.Load(context.Background(), 0xDEAD)
	assert.ErrorIs(t, err, ErrOfficerNotFound)
}

func TestOfficerRepository_Load_CorruptedDigest(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOfficerRepository(pool)
	ctx := context.Background()

	o := newTestOfficer(t, 0x10000003)
	require.NoError(t, repo.Save(ctx, o))

	// Портим сохранённую репутацию мимо репозитория
	_, err := pool.Exec(ctx, `UPDATE officers SET reputation = 9000 WHERE object_id = $1`, int64(o.ObjectID()))
	require.NoError(t, err)

	_, err = repo.Load(ctx, o.ObjectID())
	assert.ErrorIs(t, err, model.ErrSnapshotCorrupted)
}

func TestOfficerRepository_LoadAll_Delete(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOfficerRepository(pool)
	ctx := context.Background()

	first := newTestOfficer(t, 0x10000004)
	second := newTestOfficer(t, 0x10000005)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	all, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ObjectID(), all[0].ObjectID())

	require.NoError(t, repo.Delete(ctx, first.ObjectID()))
	all, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
