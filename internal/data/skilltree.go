package data

// BranchType — тип ветки дерева навыков.
type BranchType int32

const (
	// BranchTypeFoundation - always available, entry point of the tree
	BranchTypeFoundation BranchType = iota
	// BranchTypeDoctrine - combat doctrine branches, gated on Leadership progress
	BranchTypeDoctrine
	// BranchTypeSpecialization - late-game branches, deeper Leadership gate
	BranchTypeSpecialization
)

// String returns human-readable branch type name.
func (t BranchType) String() string {
	switch t {
	case BranchTypeFoundation:
		return "FOUNDATION"
	case BranchTypeDoctrine:
		return "DOCTRINE"
	case BranchTypeSpecialization:
		return "SPECIALIZATION"
	default:
		return "UNKNOWN"
	}
}

// Branch — ветка дерева навыков (упорядоченная цепочка из 2-5 навыков).
type Branch int32

const (
	BranchLeadership Branch = iota + 1
	BranchPoliticallyConnected
	BranchArmored
	BranchInfantry
	BranchArtillery
	BranchAirDefense
	BranchAirborne
	BranchAirMobile
	BranchIntelligence
	BranchCombinedArms
	BranchSignalIntelligence
	BranchEngineering
	BranchSpecialForces
)

// Type returns the branch type for b.
func (b Branch) Type() BranchType {
	switch b {
	case BranchLeadership, BranchPoliticallyConnected:
		return BranchTypeFoundation
	case BranchCombinedArms, BranchSignalIntelligence, BranchEngineering, BranchSpecialForces:
		return BranchTypeSpecialization
	default:
		return BranchTypeDoctrine
	}
}

// String returns human-readable branch name.
func (b Branch) String() string {
	switch b {
	case BranchLeadership:
		return "Leadership"
	case BranchPoliticallyConnected:
		return "Politically Connected"
	case BranchArmored:
		return "Armored"
	case BranchInfantry:
		return "Infantry"
	case BranchArtillery:
		return "Artillery"
	case BranchAirDefense:
		return "Air Defense"
	case BranchAirborne:
		return "Airborne"
	case BranchAirMobile:
		return "Air Mobile"
	case BranchIntelligence:
		return "Intelligence"
	case BranchCombinedArms:
		return "Combined Arms"
	case BranchSignalIntelligence:
		return "Signal Intelligence"
	case BranchEngineering:
		return "Engineering"
	case BranchSpecialForces:
		return "Special Forces"
	default:
		return "UNKNOWN"
	}
}

// SkillID — уникальный ID навыка: branch*100 + tier.
// ID стабильны, хранятся в БД как есть.
type SkillID int32

// Branch returns the branch encoded in the skill ID.
func (id SkillID) Branch() Branch {
	return Branch(id / 100)
}

// Tier returns the tier (1-5) encoded in the skill ID.
func (id SkillID) Tier() int32 {
	return int32(id % 100)
}

// BonusType — именованный эффект, который дают разблокированные навыки.
// Числовые бонусы суммируются, capability-флаги объединяются через OR.
type BonusType int32

const (
	BonusAttack BonusType = iota
	BonusDefense
	BonusMovement
	BonusInitiative
	BonusMorale
	BonusSpotting
	BonusSupply
	BonusAirDefense
	BonusOverrun
	BonusForcedMarch
	BonusCounterBattery
	BonusEarlyWarning
	BonusAirborneAssault
	BonusAirMobileLift
	BonusInfiltration
	BonusCombinedAssault
	BonusSignalsDecrypt
	BonusNightFighting
	BonusPriorityRequisition
)

// String returns human-readable bonus type name.
func (t BonusType) String() string {
	switch t {
	case BonusAttack:
		return "Attack"
	case BonusDefense:
		return "Defense"
	case BonusMovement:
		return "Movement"
	case BonusInitiative:
		return "Initiative"
	case BonusMorale:
		return "Morale"
	case BonusSpotting:
		return "Spotting"
	case BonusSupply:
		return "Supply"
	case BonusAirDefense:
		return "Air Defense"
	case BonusOverrun:
		return "Overrun"
	case BonusForcedMarch:
		return "Forced March"
	case BonusCounterBattery:
		return "Counter-Battery Fire"
	case BonusEarlyWarning:
		return "Early Warning"
	case BonusAirborneAssault:
		return "Airborne Assault"
	case BonusAirMobileLift:
		return "Air Mobile Lift"
	case BonusInfiltration:
		return "Infiltration"
	case BonusCombinedAssault:
		return "Combined Assault"
	case BonusSignalsDecrypt:
		return "Signals Decryption"
	case BonusNightFighting:
		return "Night Fighting"
	case BonusPriorityRequisition:
		return "Priority Requisition"
	default:
		return "UNKNOWN"
	}
}

// SkillBonus — один эффект навыка.
// Capability=true означает boolean-флаг, Value игнорируется.
type SkillBonus struct {
	Type       BonusType
	Value      int32
	Capability bool
}

// SkillDef описывает навык в дереве: ветка, tier, стоимость, бонусы.
// Шаблоны строятся один раз при старте через LoadSkillTree().
type SkillDef struct {
	ID        SkillID
	Name      string
	Branch    Branch
	Tier      int32
	Cost      int32
	Promotion bool // unlocking advances command grade by one step
	Bonuses   []SkillBonus
}

const (
	// MinSkillCost/MaxSkillCost — пределы clamp для стоимости навыка.
	MinSkillCost = 50
	MaxSkillCost = 500

	// MaxTier — максимальный tier навыка в ветке.
	MaxTier = 5
)

// SkillCost returns the reputation cost for a skill at the given tier:
// 60 for tier 1, +50 per tier, clamped to [MinSkillCost, MaxSkillCost].
func SkillCost(tier int32) int32 {
	cost := 60 + 50*(tier-1)
	if cost < MinSkillCost {
		cost = MinSkillCost
	}
	if cost > MaxSkillCost {
		cost = MaxSkillCost
	}
	return cost
}
