package warband

// EquipmentType classifies an equipment item
type EquipmentType string

const (
	EquipmentTypeMelee    EquipmentType = "melee"
	EquipmentTypeRanged   EquipmentType = "ranged"
	EquipmentTypeArmor    EquipmentType = "armor"
	EquipmentTypeCurrency EquipmentType = "currency"
	EquipmentTypeMisc     EquipmentType = "misc"
	EquipmentTypeMystic   EquipmentType = "mystic"
)

// Equipment is a single item a character can carry.
// Items are identified by name; two items with the same name are the same item.
type Equipment struct {
	Name      string        `json:"name"`
	Type      EquipmentType `json:"type"`
	RangeFlag bool          `json:"range_flag,omitempty"`
}

// IsWeapon reports whether the item is a melee or ranged weapon
func (e Equipment) IsWeapon() bool {
	return e.Type == EquipmentTypeMelee || e.Type == EquipmentTypeRanged
}

// Armor item names recognized by the armor score calculation
const (
	ItemPartialArmor = "Partial armor"
	ItemLightArmor   = "Light armor"
	ItemFullArmor    = "Full armor"
	ItemHelmet       = "Helmet"
	ItemShield       = "Shield"
)

// armorValues maps armor piece names to their protection contribution
var armorValues = map[string]int{
	ItemPartialArmor: 1,
	ItemLightArmor:   2,
	ItemFullArmor:    3,
	ItemHelmet:       1,
	ItemShield:       1,
}

// ArmorValue returns the protection contribution of a single item, 0 for non-armor
func ArmorValue(name string) int {
	return armorValues[name]
}
