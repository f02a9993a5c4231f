package rulebook

// Background names
const (
	BackgroundTownsfolk = "Townsfolk"
	BackgroundZealot    = "Zealot"
	BackgroundFrontier  = "Frontier"
	BackgroundMystic    = "Mystic"
	BackgroundNoble     = "Noble"
)

// FollowerBackground is the placeholder background recorded for followers,
// who never roll on background tables
const FollowerBackground = BackgroundTownsfolk

// Background is a hero creation template: who can take it, and the four
// d20 tables rolled during creation
type Background struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	// ValidOrigins lists the origins that may take this background.
	// Empty means valid for all origins.
	ValidOrigins []Origin  `json:"valid_origins,omitempty"`
	Capabilities RollTable `json:"capabilities"`
	Mentality    RollTable `json:"mentality"`
	Possessions  RollTable `json:"possessions"`
	Training     RollTable `json:"training"`
}

// ValidFor reports whether the background may be taken by the given origin
func (b *Background) ValidFor(origin Origin) bool {
	if len(b.ValidOrigins) == 0 {
		return true
	}
	for _, o := range b.ValidOrigins {
		if o == origin {
			return true
		}
	}
	return false
}

// Table returns the roll table for the given background table kind
func (b *Background) Table(kind TableKind) RollTable {
	switch kind {
	case TableCapabilities:
		return b.Capabilities
	case TableMentality:
		return b.Mentality
	case TablePossessions:
		return b.Possessions
	case TableTraining:
		return b.Training
	}
	return nil
}

// TableKind identifies one of a background's four roll tables
type TableKind string

const (
	TableCapabilities TableKind = "capabilities"
	TableMentality    TableKind = "mentality"
	TablePossessions  TableKind = "possessions"
	TableTraining     TableKind = "training"
)

// TableKinds returns the background table kinds in creation order
func TableKinds() []TableKind {
	return []TableKind{TableCapabilities, TableMentality, TablePossessions, TableTraining}
}

// Backgrounds returns all backgrounds in rulebook order
func Backgrounds() []*Background {
	return backgrounds
}

// BackgroundByName returns the named background, or nil
func BackgroundByName(name string) *Background {
	for _, b := range backgrounds {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// BackgroundsForOrigin returns the backgrounds the given origin may take
func BackgroundsForOrigin(origin Origin) []*Background {
	var out []*Background
	for _, b := range backgrounds {
		if b.ValidFor(origin) {
			out = append(out, b)
		}
	}
	return out
}

var backgrounds = []*Background{
	{
		Name:         BackgroundTownsfolk,
		Description:  "Humans who tend to have deep pockets.",
		ValidOrigins: []Origin{OriginHuman},
		Capabilities: RollTable{
			{Min: 1, Max: 3, Text: "Agility increase", Delta: Delta{Agility: 1}},
			{Min: 4, Max: 7, Text: "Combat Skill increase", Delta: Delta{CombatSkill: 1}},
			{Min: 8, Max: 11, Text: "Speed increase", Delta: Delta{SpeedBase: 1}},
			{Min: 12, Max: 14, Text: "Toughness increase", Delta: Delta{Toughness: 1}},
			{Min: 15, Max: 17, Text: "Speed and Combat Skill increase", Delta: Delta{SpeedBase: 1, CombatSkill: 1}},
			{Min: 18, Max: 20, Text: "Agility and Speed increase", Delta: Delta{Agility: 1, SpeedBase: 1}},
		},
		Mentality: RollTable{
			{Min: 1, Max: 2, Text: "+1 Will", Delta: Delta{Will: 1}},
			{Min: 3, Max: 4, Text: "+1 Will", Delta: Delta{Will: 1}},
			{Min: 5, Max: 16, Text: "+1 XP", Delta: Delta{XP: 1}},
			{Min: 17, Max: 18, Text: "+1 Luck", Delta: Delta{Luck: 1}},
			{Min: 19, Max: 20, Text: "+2 Luck", Delta: Delta{Luck: 2}},
		},
		Possessions: RollTable{
			{Min: 1, Max: 5, Text: "1 Gold Mark", Delta: Delta{Gold: 1}},
			{Min: 6, Max: 11, Text: "2 Gold Marks", Delta: Delta{Gold: 2}},
			{Min: 12, Max: 14, Text: "Quality weapon", Delta: Delta{Item: ItemQualityWeapon}},
			// "Fine basic weapon" deliberately grants a plain "Basic weapon":
			// the original resolved the shorter phrase first. Preserved until
			// the rules text is clarified.
			{Min: 15, Max: 17, Text: "Fine basic weapon", Delta: Delta{Item: ItemBasicWeapon}},
			{Min: 18, Max: 20, Text: "Item", Delta: Delta{Item: ItemGeneric}},
		},
		Training: RollTable{
			{Min: 1, Max: 7, Text: "1 Skill", Delta: Delta{SkillRolls: 1}},
			{Min: 8, Max: 10, Text: "2 Skills", Delta: Delta{SkillRolls: 2}},
			{Min: 11, Max: 20, Text: "+1 XP", Delta: Delta{XP: 1}},
		},
	},
	{
		Name:         BackgroundZealot,
		Description:  "Humans who are often lucky, as if someone is watching over them.",
		ValidOrigins: []Origin{OriginHuman},
		Capabilities: RollTable{
			{Min: 1, Max: 4, Text: "Agility increase", Delta: Delta{Agility: 1}},
			{Min: 5, Max: 7, Text: "Combat Skill increase", Delta: Delta{CombatSkill: 1}},
			{Min: 8, Max: 11, Text: "Speed increase", Delta: Delta{SpeedBase: 1}},
			{Min: 12, Max: 16, Text: "Toughness increase", Delta: Delta{Toughness: 1}},
			{Min: 17, Max: 18, Text: "Combat Skill and Toughness increase", Delta: Delta{CombatSkill: 1, Toughness: 1}},
			{Min: 19, Max: 20, Text: "Speed and Toughness increase", Delta: Delta{SpeedBase: 1, Toughness: 1}},
		},
		Mentality: RollTable{
			{Min: 1, Max: 2, Text: "+2 Will", Delta: Delta{Will: 2}},
			{Min: 3, Max: 4, Text: "+1 Will", Delta: Delta{Will: 1}},
			{Min: 5, Max: 12, Text: "+1 XP", Delta: Delta{XP: 1}},
			{Min: 13, Max: 16, Text: "+1 Luck", Delta: Delta{Luck: 1}},
			{Min: 17, Max: 18, Text: "+2 Luck", Delta: Delta{Luck: 2}},
			{Min: 19, Max: 20, Text: "+1 Will & +1 Luck", Delta: Delta{Will: 1, Luck: 1}},
		},
		Possessions: RollTable{
			{Min: 1, Max: 6, Text: "1 Gold Mark", Delta: Delta{Gold: 1}},
			{Min: 7, Max: 10, Text: "Basic weapon", Delta: Delta{Item: ItemBasicWeapon}},
			{Min: 11, Max: 12, Text: "Quality weapon", Delta: Delta{Item: ItemQualityWeapon}},
			{Min: 13, Max: 20, Text: "Item", Delta: Delta{Item: ItemGeneric}},
		},
		Training: RollTable{
			{Min: 1, Max: 10, Text: "1 Skill", Delta: Delta{SkillRolls: 1}},
			{Min: 11, Max: 12, Text: "2 Skills", Delta: Delta{SkillRolls: 2}},
			{Min: 13, Max: 20, Text: "+1 XP", Delta: Delta{XP: 1}},
		},
	},
	{
		Name:         BackgroundFrontier,
		Description:  "Humans who are resourceful and skilled in wilderness survival.",
		ValidOrigins: []Origin{OriginHuman},
		Capabilities: RollTable{
			{Min: 1, Max: 5, Text: "Agility increase", Delta: Delta{Agility: 1}},
			{Min: 6, Max: 9, Text: "Combat Skill increase", Delta: Delta{CombatSkill: 1}},
			{Min: 10, Max: 14, Text: "Speed increase", Delta: Delta{SpeedBase: 1}},
			{Min: 15, Max: 17, Text: "Toughness increase", Delta: Delta{Toughness: 1}},
			{Min: 18, Max: 19, Text: "Agility and Combat Skill increase", Delta: Delta{Agility: 1, CombatSkill: 1}},
			{Min: 20, Max: 20, Text: "Speed and Toughness increase", Delta: Delta{SpeedBase: 1, Toughness: 1}},
		},
		Mentality: RollTable{
			{Min: 1, Max: 3, Text: "+1 Will", Delta: Delta{Will: 1}},
			{Min: 4, Max: 14, Text: "+1 XP", Delta: Delta{XP: 1}},
			{Min: 15, Max: 17, Text: "+1 Luck", Delta: Delta{Luck: 1}},
			{Min: 18, Max: 20, Text: "+1 XP & +1 Luck", Delta: Delta{XP: 1, Luck: 1}},
		},
		Possessions: RollTable{
			{Min: 1, Max: 8, Text: "1 Gold Mark", Delta: Delta{Gold: 1}},
			{Min: 9, Max: 12, Text: "Basic weapon", Delta: Delta{Item: ItemBasicWeapon}},
			{Min: 13, Max: 16, Text: "Quality weapon", Delta: Delta{Item: ItemQualityWeapon}},
			{Min: 17, Max: 20, Text: "Item", Delta: Delta{Item: ItemGeneric}},
		},
		Training: RollTable{
			{Min: 1, Max: 12, Text: "1 Skill", Delta: Delta{SkillRolls: 1}},
			{Min: 13, Max: 15, Text: "2 Skills", Delta: Delta{SkillRolls: 2}},
			{Min: 16, Max: 20, Text: "+1 XP", Delta: Delta{XP: 1}},
		},
	},
	{
		Name:        BackgroundMystic,
		Description: "Focused on magic, hampered by intense concentration.",
		// Open to every origin
		Capabilities: RollTable{
			{Min: 1, Max: 5, Text: "Agility increase", Delta: Delta{Agility: 1}},
			{Min: 6, Max: 13, Text: "Casting increase", Delta: Delta{Casting: 1}},
			{Min: 14, Max: 17, Text: "Speed increase", Delta: Delta{SpeedBase: 1}},
			{Min: 18, Max: 20, Text: "Toughness increase", Delta: Delta{Toughness: 1}},
		},
		Mentality: RollTable{
			{Min: 1, Max: 5, Text: "+2 Will", Delta: Delta{Will: 2}},
			{Min: 6, Max: 9, Text: "+1 Will", Delta: Delta{Will: 1}},
			{Min: 10, Max: 20, Text: "+1 XP", Delta: Delta{XP: 1}},
		},
		Possessions: RollTable{
			{Min: 1, Max: 4, Text: "1 Gold Mark", Delta: Delta{Gold: 1}},
			{Min: 5, Max: 14, Text: "Mystic Item", Delta: Delta{Item: ItemMystic}},
			{Min: 15, Max: 20, Text: "Item", Delta: Delta{Item: ItemGeneric}},
		},
		Training: RollTable{
			{Min: 1, Max: 5, Text: "Alchemy skill", Delta: Delta{SkillRolls: 1}},
			{Min: 6, Max: 11, Text: "1 Skill", Delta: Delta{SkillRolls: 1}},
			{Min: 12, Max: 20, Text: "+1 XP", Delta: Delta{XP: 1}},
		},
	},
	{
		Name:         BackgroundNoble,
		Description:  "Humans who are often well-equipped and have connections.",
		ValidOrigins: []Origin{OriginHuman},
		Capabilities: RollTable{
			{Min: 1, Max: 4, Text: "Agility increase", Delta: Delta{Agility: 1}},
			{Min: 5, Max: 8, Text: "Combat Skill increase", Delta: Delta{CombatSkill: 1}},
			{Min: 9, Max: 12, Text: "Speed increase", Delta: Delta{SpeedBase: 1}},
			{Min: 13, Max: 16, Text: "Toughness increase", Delta: Delta{Toughness: 1}},
			{Min: 17, Max: 18, Text: "Combat Skill and Agility increase", Delta: Delta{CombatSkill: 1, Agility: 1}},
			// Casting is excluded from "All stats"
			{Min: 19, Max: 20, Text: "All stats +1", Delta: Delta{Agility: 1, CombatSkill: 1, SpeedBase: 1, Toughness: 1}},
		},
		Mentality: RollTable{
			{Min: 1, Max: 4, Text: "+1 Will", Delta: Delta{Will: 1}},
			{Min: 5, Max: 10, Text: "+1 XP", Delta: Delta{XP: 1}},
			{Min: 11, Max: 15, Text: "+1 Luck", Delta: Delta{Luck: 1}},
			{Min: 16, Max: 18, Text: "+2 Luck", Delta: Delta{Luck: 2}},
			{Min: 19, Max: 20, Text: "+1 Will & +1 Luck", Delta: Delta{Will: 1, Luck: 1}},
		},
		Possessions: RollTable{
			{Min: 1, Max: 4, Text: "3 Gold Marks", Delta: Delta{Gold: 3}},
			{Min: 5, Max: 8, Text: "2 Gold Marks", Delta: Delta{Gold: 2}},
			{Min: 9, Max: 12, Text: "Quality weapon", Delta: Delta{Item: ItemQualityWeapon}},
			{Min: 13, Max: 16, Text: "Fine armor", Delta: Delta{Item: ItemFineArmor}},
			{Min: 17, Max: 20, Text: "Valuable Item", Delta: Delta{Item: ItemValuable}},
		},
		Training: RollTable{
			{Min: 1, Max: 8, Text: "1 Skill", Delta: Delta{SkillRolls: 1}},
			{Min: 9, Max: 12, Text: "2 Skills", Delta: Delta{SkillRolls: 2}},
			{Min: 13, Max: 20, Text: "+1 XP", Delta: Delta{XP: 1}},
		},
	},
}
