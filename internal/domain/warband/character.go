package warband

// CharacterType distinguishes the two creation flows
type CharacterType string

const (
	CharacterTypeHero     CharacterType = "hero"
	CharacterTypeFollower CharacterType = "follower"
)

// Stats holds a character's final statistics.
// DashBonus is a display string ("+3"), everything else is a plain score.
type Stats struct {
	Agility     int    `json:"agility"`
	SpeedBase   int    `json:"speed_base"`
	DashBonus   string `json:"dash_bonus"`
	CombatSkill int    `json:"combat_skill"`
	Toughness   int    `json:"toughness"`
	Casting     int    `json:"casting"`
	Will        int    `json:"will"`
	Luck        int    `json:"luck"`
}

// BaseStats returns the stat line every character starts from before
// any capability or mentality bonuses are applied
func BaseStats() Stats {
	return Stats{
		Agility:     1,
		SpeedBase:   4,
		DashBonus:   "+3",
		CombatSkill: 0,
		Toughness:   3,
		Casting:     0,
		Will:        0,
		Luck:        0,
	}
}

// Character is a finished warband member. It is created once by the
// creation wizard and only modified through explicit roster operations.
type Character struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Origin        string        `json:"origin"`
	Background    string        `json:"background"`
	CharacterType CharacterType `json:"character_type"`
	IsMystic      bool          `json:"is_mystic"`
	Stats         Stats         `json:"stats"`
	Skills        []string      `json:"skills"`
	Equipment     []Equipment   `json:"equipment"`
	XP            int           `json:"xp"`
	Gold          int           `json:"gold"`
	Notes         string        `json:"notes"`
}

// ArmorScore sums the protection values of all armor pieces the character owns.
// It is derived on demand, never stored.
func (c *Character) ArmorScore() int {
	score := 0
	for _, item := range c.Equipment {
		score += ArmorValue(item.Name)
	}
	return score
}
