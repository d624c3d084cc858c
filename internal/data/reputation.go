package data

// ActionCategory — категория боевого действия, за которое начисляется репутация.
type ActionCategory int32

const (
	ActionMove ActionCategory = iota
	ActionMountDismount
	ActionIntelGather
	ActionCombat
	ActionAirborneJump
	ActionForcedRetreat
	ActionUnitDestroyed
)

// String returns human-readable action category name.
func (a ActionCategory) String() string {
	switch a {
	case ActionMove:
		return "MOVE"
	case ActionMountDismount:
		return "MOUNT_DISMOUNT"
	case ActionIntelGather:
		return "INTEL_GATHER"
	case ActionCombat:
		return "COMBAT"
	case ActionAirborneJump:
		return "AIRBORNE_JUMP"
	case ActionForcedRetreat:
		return "FORCED_RETREAT"
	case ActionUnitDestroyed:
		return "UNIT_DESTROYED"
	default:
		return "UNKNOWN"
	}
}

// baseReputationAwards — фиксированные базовые награды за категорию действия.
var baseReputationAwards = map[ActionCategory]int32{
	ActionMove:          1,
	ActionMountDismount: 1,
	ActionIntelGather:   2,
	ActionCombat:        3,
	ActionAirborneJump:  3,
	ActionForcedRetreat: 5,
	ActionUnitDestroyed: 8,
}

// BaseReputationAward returns the base award for the action category,
// or 0 for an unknown category.
func BaseReputationAward(a ActionCategory) int32 {
	return baseReputationAwards[a]
}
