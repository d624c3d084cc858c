package data

// Nationality определяет культурный набор офицера: пул имён и титулы званий.
type Nationality int32

const (
	NationGermany Nationality = iota
	NationSovietUnion
	NationUnitedStates
	NationUnitedKingdom
	NationFrance
	NationJapan
)

// NationalityCount — количество поддерживаемых национальностей.
const NationalityCount = 6

// Valid reports whether n is one of the supported nationalities.
func (n Nationality) Valid() bool {
	return n >= NationGermany && n <= NationJapan
}

// String returns human-readable nationality name.
func (n Nationality) String() string {
	switch n {
	case NationGermany:
		return "Germany"
	case NationSovietUnion:
		return "Soviet Union"
	case NationUnitedStates:
		return "United States"
	case NationUnitedKingdom:
		return "United Kingdom"
	case NationFrance:
		return "France"
	case NationJapan:
		return "Japan"
	default:
		return "UNKNOWN"
	}
}
