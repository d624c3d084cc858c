package data

// branchDef — определение одной ветки дерева навыков.
// Tier определяется позицией в skills (index+1), стоимость — SkillCost(tier).
type branchDef struct {
	branch Branch
	skills []branchSkillDef
}

// branchSkillDef — одна запись в ветке.
type branchSkillDef struct {
	name      string
	promotion bool
	bonuses   []SkillBonus
}

var branchDefs = []branchDef{
	{
		branch: BranchLeadership,
		skills: []branchSkillDef{
			{name: "Command Presence", bonuses: []SkillBonus{{Type: BonusMorale, Value: 1}}},
			{name: "Field Promotion", promotion: true, bonuses: []SkillBonus{{Type: BonusInitiative, Value: 1}}},
			{name: "Operational Planning", bonuses: []SkillBonus{{Type: BonusInitiative, Value: 1}}},
			{name: "Staff College", promotion: true, bonuses: []SkillBonus{{Type: BonusMorale, Value: 1}}},
			{name: "Inspiring Leader", bonuses: []SkillBonus{{Type: BonusMorale, Value: 2}, {Type: BonusInitiative, Value: 1}}},
		},
	},
	{
		branch: BranchPoliticallyConnected,
		skills: []branchSkillDef{
			{name: "Connections", bonuses: []SkillBonus{{Type: BonusSupply, Value: 1}}},
			{name: "Quartermaster Friends", bonuses: []SkillBonus{{Type: BonusSupply, Value: 2}}},
			{name: "High Command's Ear", bonuses: []SkillBonus{{Type: BonusPriorityRequisition, Capability: true}}},
		},
	},
	{
		branch: BranchArmored,
		skills: []branchSkillDef{
			{name: "Tank Tactics", bonuses: []SkillBonus{{Type: BonusAttack, Value: 1}}},
			{name: "Mobile Warfare", bonuses: []SkillBonus{{Type: BonusMovement, Value: 1}}},
			{name: "Shock Assault", bonuses: []SkillBonus{{Type: BonusAttack, Value: 2}}},
			{name: "Armored Breakthrough", bonuses: []SkillBonus{{Type: BonusOverrun, Capability: true}}},
		},
	},
	{
		branch: BranchInfantry,
		skills: []branchSkillDef{
			{name: "Infantry Tactics", bonuses: []SkillBonus{{Type: BonusDefense, Value: 1}}},
			{name: "Entrenchment", bonuses: []SkillBonus{{Type: BonusDefense, Value: 2}}},
			{name: "Assault Teams", bonuses: []SkillBonus{{Type: BonusAttack, Value: 1}}},
			{name: "Forced March", bonuses: []SkillBonus{{Type: BonusForcedMarch, Capability: true}, {Type: BonusMovement, Value: 1}}},
		},
	},
	{
		branch: BranchArtillery,
		skills: []branchSkillDef{
			{name: "Fire Discipline", bonuses: []SkillBonus{{Type: BonusAttack, Value: 1}}},
			{name: "Forward Observers", bonuses: []SkillBonus{{Type: BonusSpotting, Value: 1}}},
			{name: "Rolling Barrage", bonuses: []SkillBonus{{Type: BonusAttack, Value: 2}}},
			{name: "Counter-Battery Fire", bonuses: []SkillBonus{{Type: BonusCounterBattery, Capability: true}}},
		},
	},
	{
		branch: BranchAirDefense,
		skills: []branchSkillDef{
			{name: "AA Gunnery", bonuses: []SkillBonus{{Type: BonusAirDefense, Value: 1}}},
			{name: "Radar Direction", bonuses: []SkillBonus{{Type: BonusAirDefense, Value: 1}, {Type: BonusSpotting, Value: 1}}},
			{name: "Integrated Air Defense", bonuses: []SkillBonus{{Type: BonusEarlyWarning, Capability: true}}},
		},
	},
	{
		branch: BranchAirborne,
		skills: []branchSkillDef{
			{name: "Jump Training", bonuses: []SkillBonus{{Type: BonusAirborneAssault, Capability: true}}},
			{name: "Drop Zone Discipline", bonuses: []SkillBonus{{Type: BonusMorale, Value: 1}}},
			{name: "Vertical Envelopment", bonuses: []SkillBonus{{Type: BonusAttack, Value: 1}}},
		},
	},
	{
		branch: BranchAirMobile,
		skills: []branchSkillDef{
			{name: "Helicopter Operations", bonuses: []SkillBonus{{Type: BonusAirMobileLift, Capability: true}}},
			{name: "Air Assault Tactics", bonuses: []SkillBonus{{Type: BonusAttack, Value: 1}}},
			{name: "Rapid Redeployment", bonuses: []SkillBonus{{Type: BonusMovement, Value: 1}}},
		},
	},
	{
		branch: BranchIntelligence,
		skills: []branchSkillDef{
			{name: "Field Intelligence", bonuses: []SkillBonus{{Type: BonusSpotting, Value: 1}}},
			{name: "Interrogation", bonuses: []SkillBonus{{Type: BonusSpotting, Value: 1}}},
			{name: "Signals Intercept", bonuses: []SkillBonus{{Type: BonusInitiative, Value: 1}}},
			{name: "Deep Reconnaissance", bonuses: []SkillBonus{{Type: BonusInfiltration, Capability: true}}},
		},
	},
	{
		branch: BranchCombinedArms,
		skills: []branchSkillDef{
			{name: "Joint Operations", bonuses: []SkillBonus{{Type: BonusAttack, Value: 1}, {Type: BonusDefense, Value: 1}}},
			{name: "Coordinated Assault", bonuses: []SkillBonus{{Type: BonusInitiative, Value: 1}}},
			{name: "All-Arms Battle", bonuses: []SkillBonus{{Type: BonusCombinedAssault, Capability: true}}},
		},
	},
	{
		branch: BranchSignalIntelligence,
		skills: []branchSkillDef{
			{name: "Cipher Section", bonuses: []SkillBonus{{Type: BonusSpotting, Value: 2}}},
			{name: "Decryption Bureau", bonuses: []SkillBonus{{Type: BonusSignalsDecrypt, Capability: true}}},
		},
	},
	{
		branch: BranchEngineering,
		skills: []branchSkillDef{
			{name: "Combat Engineering", bonuses: []SkillBonus{{Type: BonusDefense, Value: 1}}},
			{name: "Bridging Operations", bonuses: []SkillBonus{{Type: BonusForcedMarch, Capability: true}}},
			{name: "Fortification", bonuses: []SkillBonus{{Type: BonusDefense, Value: 2}}},
		},
	},
	{
		branch: BranchSpecialForces,
		skills: []branchSkillDef{
			{name: "Commando Training", bonuses: []SkillBonus{{Type: BonusAttack, Value: 1}}},
			{name: "Night Operations", bonuses: []SkillBonus{{Type: BonusNightFighting, Capability: true}}},
			{name: "Deep Strike", bonuses: []SkillBonus{{Type: BonusInfiltration, Capability: true}, {Type: BonusAttack, Value: 1}}},
		},
	},
}
