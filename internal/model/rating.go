package model

// CommandRating — боевой командный рейтинг офицера, модификатор боёвки.
// Четыре упорядоченных значения; сеттеры делают clamp к этому диапазону.
type CommandRating int32

const (
	RatingAverage  CommandRating = -2
	RatingGood     CommandRating = -1
	RatingSuperior CommandRating = 0
	RatingGenius   CommandRating = 1
)

// ClampRating clamps r to the defined 4-value range [RatingAverage, RatingGenius].
func ClampRating(r CommandRating) CommandRating {
	if r < RatingAverage {
		return RatingAverage
	}
	if r > RatingGenius {
		return RatingGenius
	}
	return r
}

// String returns human-readable rating name.
func (r CommandRating) String() string {
	switch r {
	case RatingAverage:
		return "Average"
	case RatingGood:
		return "Good"
	case RatingSuperior:
		return "Superior"
	case RatingGenius:
		return "Genius"
	default:
		return "UNKNOWN"
	}
}
