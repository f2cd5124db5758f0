// Package entities contains core domain data structures.
package entities

// Stat identifies one of the six base stats.
type Stat string

// Base stats, in display order.
const (
	StatHP        Stat = "hp"
	StatAttack    Stat = "attack"
	StatDefense   Stat = "defense"
	StatSpAttack  Stat = "sp_attack"
	StatSpDefense Stat = "sp_defense"
	StatSpeed     Stat = "speed"
)

// StatDomain describes the inclusive value range a stat can take.
type StatDomain struct {
	Stat  Stat   `json:"stat"`
	Label string `json:"label"`
	Max   int    `json:"max"`
}

// StatDomains lists every stat with its domain maximum. The minimum is always 0.
var StatDomains = []StatDomain{
	{Stat: StatHP, Label: "HP", Max: 255},
	{Stat: StatAttack, Label: "Attack", Max: 190},
	{Stat: StatDefense, Label: "Defense", Max: 230},
	{Stat: StatSpAttack, Label: "Sp. Attack", Max: 194},
	{Stat: StatSpDefense, Label: "Sp. Defense", Max: 230},
	{Stat: StatSpeed, Label: "Speed", Max: 180},
}

// DomainOf returns the domain for a stat.
func DomainOf(stat Stat) (StatDomain, bool) {
	for _, d := range StatDomains {
		if d.Stat == stat {
			return d, true
		}
	}
	return StatDomain{}, false
}

// Stats holds the six base stats of a Pokémon.
type Stats struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// Get returns the value of a single stat.
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatHP:
		return s.HP
	case StatAttack:
		return s.Attack
	case StatDefense:
		return s.Defense
	case StatSpAttack:
		return s.SpAttack
	case StatSpDefense:
		return s.SpDefense
	case StatSpeed:
		return s.Speed
	default:
		return 0
	}
}

// Total returns the base stat total.
func (s Stats) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpAttack + s.SpDefense + s.Speed
}

// Pokemon is a single row of the Pokémon table. Several rows may share a
// Name when they describe different forms.
type Pokemon struct {
	Number     int    `json:"number"`
	Name       string `json:"name"`
	Type1      string `json:"type1"`
	Type2      string `json:"type2,omitempty"` // Empty when the Pokémon has a single type
	Stats      Stats  `json:"stats"`
	Form       string `json:"form,omitempty"`
	Generation int    `json:"generation"` // Derived from Number at load time
}

// FormKey identifies a Pokémon for deduplication: rows with the same name
// and trimmed form label describe the same creature.
type FormKey struct {
	Name string
	Form string
}

// Key returns the deduplication key for the Pokémon.
func (p Pokemon) Key() FormKey {
	return FormKey{Name: p.Name, Form: trimSpace(p.Form)}
}

// generationBreakpoints holds the last national dex number of each generation.
var generationBreakpoints = []int{151, 251, 386, 493, 649, 721, 809, 898}

// MaxGeneration is the highest generation bucket.
const MaxGeneration = 9

// GenerationOf returns the generation bucket (1-9) for a national dex number.
func GenerationOf(number int) int {
	for i, last := range generationBreakpoints {
		if number <= last {
			return i + 1
		}
	}
	return MaxGeneration
}
