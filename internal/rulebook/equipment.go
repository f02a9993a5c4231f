package rulebook

import (
	"github.com/fiveleagues/warband-bot/internal/domain/warband"
)

// Granted item names referenced by possessions tables
const (
	ItemQualityWeapon   = "Quality weapon"
	ItemBasicWeapon     = "Basic weapon"
	ItemFineBasicWeapon = "Fine basic weapon"
	ItemMystic          = "Mystic Item"
	ItemValuable        = "Valuable Item"
	ItemFineArmor       = "Fine armor"
	ItemGeneric         = "Item"
)

// Hero starter kit category limits
const (
	MaxQualityWeapons = 2
	MaxBasicWeapons   = 2
	MaxBodyArmor      = 1
	MaxHelmets        = 1
	MaxShields        = 1
)

// Follower category limits
const (
	MaxFollowerWeapons = 1
	MaxFollowerArmor   = 1
)

// QualityWeapons returns the hero starter kit quality weapon choices
func QualityWeapons() []warband.Equipment {
	return qualityWeapons
}

// BasicWeapons returns the basic weapon choices. Heroes pick up to two,
// followers pick their single weapon from this list.
func BasicWeapons() []warband.Equipment {
	return basicWeapons
}

// BodyArmor returns the body armor choices for heroes
func BodyArmor() []warband.Equipment {
	return bodyArmor
}

// Accessories returns the helmet and shield choices
func Accessories() []warband.Equipment {
	return accessories
}

// FollowerArmor returns the armor choices available to followers
func FollowerArmor() []warband.Equipment {
	return followerArmor
}

var qualityWeapons = []warband.Equipment{
	{Name: "Bastard sword", Type: warband.EquipmentTypeMelee},
	{Name: "Crossbow", Type: warband.EquipmentTypeRanged, RangeFlag: true},
	{Name: "Fencing sword", Type: warband.EquipmentTypeMelee},
	{Name: "Longbow", Type: warband.EquipmentTypeRanged, RangeFlag: true},
	{Name: "Throwing knives", Type: warband.EquipmentTypeMelee},
	{Name: "Warhammer", Type: warband.EquipmentTypeMelee},
	{Name: "War spear", Type: warband.EquipmentTypeMelee},
}

var basicWeapons = []warband.Equipment{
	{Name: "Self bow", Type: warband.EquipmentTypeRanged, RangeFlag: true},
	{Name: "Sling", Type: warband.EquipmentTypeRanged},
	{Name: "Standard weapon", Type: warband.EquipmentTypeMelee},
	{Name: "Staff", Type: warband.EquipmentTypeMelee},
	{Name: "Dagger", Type: warband.EquipmentTypeMelee},
	{Name: "Hand axe", Type: warband.EquipmentTypeMelee},
}

var bodyArmor = []warband.Equipment{
	{Name: warband.ItemPartialArmor, Type: warband.EquipmentTypeArmor},
	{Name: warband.ItemLightArmor, Type: warband.EquipmentTypeArmor},
	{Name: warband.ItemFullArmor, Type: warband.EquipmentTypeArmor},
}

var accessories = []warband.Equipment{
	{Name: warband.ItemHelmet, Type: warband.EquipmentTypeArmor},
	{Name: warband.ItemShield, Type: warband.EquipmentTypeArmor},
}

var followerArmor = []warband.Equipment{
	{Name: warband.ItemPartialArmor, Type: warband.EquipmentTypeArmor},
	{Name: warband.ItemLightArmor, Type: warband.EquipmentTypeArmor},
}

// IsQualityWeapon reports whether the named item is in the quality weapon kit
func IsQualityWeapon(name string) bool {
	return containsName(qualityWeapons, name)
}

// IsBasicWeapon reports whether the named item is in the basic weapon kit
func IsBasicWeapon(name string) bool {
	return containsName(basicWeapons, name)
}

// IsBodyArmor reports whether the named item is body armor
func IsBodyArmor(name string) bool {
	return containsName(bodyArmor, name)
}

func containsName(items []warband.Equipment, name string) bool {
	for _, item := range items {
		if item.Name == name {
			return true
		}
	}
	return false
}

// SelectableEquipment returns the full set of items a character of the given
// type may pick from during creation
func SelectableEquipment(characterType warband.CharacterType) []warband.Equipment {
	if characterType == warband.CharacterTypeFollower {
		out := make([]warband.Equipment, 0, len(basicWeapons)+len(followerArmor))
		out = append(out, basicWeapons...)
		out = append(out, followerArmor...)
		return out
	}
	out := make([]warband.Equipment, 0, len(qualityWeapons)+len(basicWeapons)+len(bodyArmor)+len(accessories))
	out = append(out, qualityWeapons...)
	out = append(out, basicWeapons...)
	out = append(out, bodyArmor...)
	out = append(out, accessories...)
	return out
}

// EquipmentByName finds an item in the selectable catalogs by name
func EquipmentByName(name string) (warband.Equipment, bool) {
	for _, item := range SelectableEquipment(warband.CharacterTypeHero) {
		if item.Name == name {
			return item, true
		}
	}
	return warband.Equipment{}, false
}

// GrantedEquipment builds an equipment record for an item granted by a
// possessions roll. Anything named like a weapon is carried as a melee
// weapon, everything else as a miscellaneous item.
func GrantedEquipment(name string) warband.Equipment {
	eqType := warband.EquipmentTypeMisc
	if nameContainsWeapon(name) {
		eqType = warband.EquipmentTypeMelee
	}
	return warband.Equipment{Name: name, Type: eqType}
}
