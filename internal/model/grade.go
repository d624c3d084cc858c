package model

import "github.com/udisondev/stavka/internal/data"

// CommandGrade — ранг офицера. Линейная лестница без пропусков и регрессии:
// повышается только Leadership-навыками с флагом Promotion.
type CommandGrade int32

const (
	GradeJunior CommandGrade = iota
	GradeSenior
	GradeTop
)

// String returns human-readable grade name.
func (g CommandGrade) String() string {
	switch g {
	case GradeJunior:
		return "JuniorGrade"
	case GradeSenior:
		return "SeniorGrade"
	case GradeTop:
		return "TopGrade"
	default:
		return "UNKNOWN"
	}
}

// rankTitles — культурные наборы титулов: grade → строка звания.
var rankTitles = map[data.Nationality][3]string{
	data.NationGermany:       {"Major", "Oberst", "Generalmajor"},
	data.NationSovietUnion:   {"Mayor", "Polkovnik", "General-Mayor"},
	data.NationUnitedStates:  {"Major", "Colonel", "Brigadier General"},
	data.NationUnitedKingdom: {"Major", "Colonel", "Brigadier"},
	data.NationFrance:        {"Commandant", "Colonel", "General de Brigade"},
	data.NationJapan:         {"Shosa", "Taisa", "Shosho"},
}

// RankTitle returns the nationality-specific rank title for the grade.
// Unrecognized nationalities fall back to the raw grade name.
func RankTitle(nat data.Nationality, grade CommandGrade) string {
	titles, ok := rankTitles[nat]
	if !ok || grade < GradeJunior || grade > GradeTop {
		return grade.String()
	}
	return titles[grade]
}
