package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/stavka/internal/data"
	"github.com/udisondev/stavka/internal/model"
)

// ErrOfficerNotFound возвращается Load, если офицера нет в БД.
var ErrOfficerNotFound = errors.New("officer not found")

// OfficerRepository управляет офицерами в БД.
// Сохраняет снапшот офицера плюс digest; при загрузке digest сверяется,
// повреждённая запись не восстанавливается.
type OfficerRepository struct {
	db *pgxpool.Pool
}

// NewOfficerRepository создаёт новый OfficerRepository.
func NewOfficerRepository(db *pgxpool.Pool) *OfficerRepository {
	return &OfficerRepository{db: db}
}

// Save сохраняет полное состояние офицера (upsert + полная перезапись
// навыков в одной транзакции).
func (r *OfficerRepository) Save(ctx context.Context, o *model.Officer) error {
	s := o.Snapshot()
	digest := s.Digest()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // rollback after commit is a no-op error
	}()

	if _, err := tx.Exec(ctx, `
		INSERT INTO officers
			(object_id, name, nationality, side, rating, grade, reputation, unit_id, assigned, snapshot_digest, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (object_id) DO UPDATE SET
			name = $2, nationality = $3, side = $4, rating = $5, grade = $6,
			reputation = $7, unit_id = $8, assigned = $9, snapshot_digest = $10,
			updated_at = now()
	`,
		int64(s.ObjectID), s.Name, int32(s.Nationality), int32(s.Side), int32(s.Rating),
		int32(s.Grade), s.Reputation, s.UnitID, s.Assigned, digest,
	); err != nil {
		return fmt.Errorf("upserting officer %d: %w", s.ObjectID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM officer_skills WHERE officer_id = $1`, int64(s.ObjectID)); err != nil {
		return fmt.Errorf("deleting existing skills: %w", err)
	}
	for _, id := range s.Skills.Unlocked {
		if _, err := tx.Exec(ctx,
			`INSERT INTO officer_skills (officer_id, skill_id) VALUES ($1, $2)`,
			int64(s.ObjectID), int32(id),
		); err != nil {
			return fmt.Errorf("inserting skill %d: %w", id, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing officer save: %w", err)
	}

	return nil
}

// Load загружает офицера по object ID и восстанавливает его через
// model.RestoreOfficer.
func (r *OfficerRepository) Load(ctx context.Context, objectID uint32) (*model.Officer, error) {
	var (
		s      model.OfficerSnapshot
		id     int64
		digest string
	)

	err := r.db.QueryRow(ctx, `
		SELECT object_id, name, nationality, side, rating, grade, reputation, unit_id, assigned, snapshot_digest
		FROM officers
		WHERE object_id = $1
	`, int64(objectID)).Scan(
		&id, &s.Name, &s.Nationality, &s.Side, &s.Rating,
		&s.Grade, &s.Reputation, &s.UnitID, &s.Assigned, &digest,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("officer %d: %w", objectID, ErrOfficerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying officer %d: %w", objectID, err)
	}
	s.ObjectID = uint32(id)

	skills, err := r.loadSkills(ctx, objectID)
	if err != nil {
		return nil, err
	}
	s.Skills.Unlocked = skills

	if strings.TrimSpace(digest) != s.Digest() {
		return nil, fmt.Errorf("officer %d: %w", objectID, model.ErrSnapshotCorrupted)
	}

	o, err := model.RestoreOfficer(s)
	if err != nil {
		return nil, fmt.Errorf("restoring officer %d: %w", objectID, err)
	}
	return o, nil
}

// loadSkills загружает открытые навыки офицера, отсортированные по ID.
func (r *OfficerRepository) loadSkills(ctx context.Context, objectID uint32) ([]data.SkillID, error) {
	rows, err := r.db.Query(ctx, `
		SELECT skill_id
		FROM officer_skills
		WHERE officer_id = $1
		ORDER BY skill_id
	`, int64(objectID))
	if err != nil {
		return nil, fmt.Errorf("querying skills for officer %d: %w", objectID, err)
	}
	defer rows.Close()

	skills := make([]data.SkillID, 0, 8)
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning skill row: %w", err)
		}
		skills = append(skills, data.SkillID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skill rows: %w", err)
	}

	return skills, nil
}

// LoadAll загружает всех офицеров.
func (r *OfficerRepository) LoadAll(ctx context.Context) ([]*model.Officer, error) {
	rows, err := r.db.Query(ctx, `SELECT object_id FROM officers ORDER BY object_id`)
	if err != nil {
		return nil, fmt.Errorf("querying officer IDs: %w", err)
	}
	defer rows.Close()

	var ids []uint32
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning officer ID: %w", err)
		}
		ids = append(ids, uint32(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating officer IDs: %w", err)
	}

	officers := make([]*model.Officer, 0, len(ids))
	for _, id := range ids {
		o, err := r.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		officers = append(officers, o)
	}
	return officers, nil
}

// Delete удаляет офицера и его навыки (каскадно).
func (r *OfficerRepository) Delete(ctx context.Context, objectID uint32) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM officers WHERE object_id = $1`, int64(objectID)); err != nil {
		return fmt.Errorf("deleting officer %d: %w", objectID, err)
	}
	return nil
}
