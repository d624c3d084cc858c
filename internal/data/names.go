package data

import "math/rand/v2"

// NameGenerator выдаёт имена офицеров из пулов, ключованных по национальности.
// Источник случайности инжектируется явно — никакого глобального состояния.
type NameGenerator struct {
	rng *rand.Rand
}

// NewNameGenerator creates a name generator backed by the given random source.
func NewNameGenerator(rng *rand.Rand) *NameGenerator {
	return &NameGenerator{rng: rng}
}

// GenerateMaleFirstName returns a random male first name for the nationality.
// Unsupported nationalities fall back to the German pool.
func (g *NameGenerator) GenerateMaleFirstName(nat Nationality) string {
	pool, ok := maleFirstNames[nat]
	if !ok {
		pool = maleFirstNames[NationGermany]
	}
	return pool[g.rng.IntN(len(pool))]
}

// GenerateLastName returns a random last name for the nationality.
// Unsupported nationalities fall back to the German pool.
func (g *NameGenerator) GenerateLastName(nat Nationality) string {
	pool, ok := lastNames[nat]
	if !ok {
		pool = lastNames[NationGermany]
	}
	return pool[g.rng.IntN(len(pool))]
}

// Name pools per nationality.
var maleFirstNames = map[Nationality][]string{
	NationGermany: {
		"Erich", "Heinz", "Gunther", "Werner", "Klaus", "Helmut", "Dietrich",
		"Friedrich", "Otto", "Wilhelm", "Hans", "Kurt", "Manfred", "Rudolf",
	},
	NationSovietUnion: {
		"Ivan", "Nikolai", "Sergei", "Dmitri", "Mikhail", "Aleksei", "Pavel",
		"Konstantin", "Vasili", "Georgi", "Andrei", "Boris", "Fyodor", "Yuri",
	},
	NationUnitedStates: {
		"James", "Robert", "John", "William", "George", "Charles", "Frank",
		"Harold", "Walter", "Raymond", "Eugene", "Howard", "Earl", "Clarence",
	},
	NationUnitedKingdom: {
		"Arthur", "Bernard", "Cedric", "Edmund", "Geoffrey", "Harold", "Miles",
		"Nigel", "Percival", "Reginald", "Rupert", "Stanley", "Trevor", "Wilfred",
	},
	NationFrance: {
		"Antoine", "Bernard", "Charles", "Etienne", "Francois", "Gaston",
		"Henri", "Jacques", "Louis", "Marcel", "Philippe", "Pierre", "Rene", "Yves",
	},
	NationJapan: {
		"Akira", "Hiroshi", "Isamu", "Kenji", "Masao", "Noboru", "Osamu",
		"Shigeru", "Takeo", "Tadashi", "Tetsuo", "Toshio", "Yoshio", "Minoru",
	},
}

var lastNames = map[Nationality][]string{
	NationGermany: {
		"Mueller", "Schmidt", "Fischer", "Weber", "Wagner", "Becker", "Hoffmann",
		"Schulz", "Richter", "Krueger", "Lehmann", "Vogel", "Brandt", "Keller",
	},
	NationSovietUnion: {
		"Ivanov", "Petrov", "Sidorov", "Smirnov", "Kuznetsov", "Popov",
		"Volkov", "Sokolov", "Morozov", "Orlov", "Fedorov", "Zhukov", "Kozlov", "Pavlov",
	},
	NationUnitedStates: {
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis",
		"Wilson", "Anderson", "Taylor", "Thomas", "Moore", "Jackson", "Harris",
	},
	NationUnitedKingdom: {
		"Ashworth", "Blackwood", "Carrington", "Davenport", "Fairfax",
		"Hargreaves", "Kingsley", "Montgomery", "Pemberton", "Sinclair",
		"Thornton", "Whitfield", "Winslow", "Radcliffe",
	},
	NationFrance: {
		"Bernard", "Dubois", "Durand", "Fontaine", "Garnier", "Lambert",
		"Lefevre", "Marchand", "Moreau", "Renaud", "Rousseau", "Verne", "Chevalier", "Berger",
	},
	NationJapan: {
		"Tanaka", "Suzuki", "Takahashi", "Watanabe", "Yamamoto", "Nakamura",
		"Kobayashi", "Saito", "Kato", "Yoshida", "Yamada", "Sasaki", "Matsumoto", "Inoue",
	},
}
