package data

import (
	"fmt"
	"log/slog"
)

// SkillTable maps SkillID → *SkillDef.
// Загружается через LoadSkillTree() при старте.
var SkillTable map[SkillID]*SkillDef

// BranchSkills maps Branch → skill IDs ordered by tier (1..N).
var BranchSkills map[Branch][]SkillID

// Branches lists all branches in definition order.
var Branches []Branch

// GetSkill returns the skill definition, or nil if the ID is not part of the
// closed skill set.
func GetSkill(id SkillID) *SkillDef {
	return SkillTable[id]
}

// LoadSkillTree строит SkillTable и BranchSkills из Go-литералов (branchDefs).
// Вызывается один раз при старте; повторный вызов перестраивает таблицы.
func LoadSkillTree() error {
	SkillTable = make(map[SkillID]*SkillDef)
	BranchSkills = make(map[Branch][]SkillID)
	Branches = Branches[:0]

	for _, bd := range branchDefs {
		if n := len(bd.skills); n < 2 || n > MaxTier {
			return fmt.Errorf("branch %s: %d skills, want 2..%d", bd.branch, n, MaxTier)
		}

		Branches = append(Branches, bd.branch)
		for i, sd := range bd.skills {
			tier := int32(i + 1)
			id := SkillID(int32(bd.branch)*100 + tier)
			if _, exists := SkillTable[id]; exists {
				return fmt.Errorf("duplicate skill ID %d", id)
			}
			if sd.promotion && bd.branch != BranchLeadership {
				return fmt.Errorf("skill %q: promotion outside Leadership branch", sd.name)
			}
			if len(sd.bonuses) == 0 {
				return fmt.Errorf("skill %q: no bonuses", sd.name)
			}

			SkillTable[id] = &SkillDef{
				ID:        id,
				Name:      sd.name,
				Branch:    bd.branch,
				Tier:      tier,
				Cost:      SkillCost(tier),
				Promotion: sd.promotion,
				Bonuses:   sd.bonuses,
			}
			BranchSkills[bd.branch] = append(BranchSkills[bd.branch], id)
		}
	}

	slog.Info("skill tree loaded",
		"branches", len(BranchSkills),
		"skills", len(SkillTable))

	return nil
}
