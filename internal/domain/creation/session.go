// Package creation implements the character creation wizard: a strictly
// ordered sequence of steps that collects selections and table rolls, then
// assembles a finished character. A session is plain mutable state owned by
// a single interaction; callers are responsible for any synchronization.
package creation

import (
	"strings"
	"time"

	"github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/errors"
	"github.com/fiveleagues/warband-bot/internal/rulebook"
)

// RollResult records one resolved background table roll
type RollResult struct {
	Roll int    `json:"roll"`
	Text string `json:"text"`
}

// SkillRoll records one resolved d100 skill roll
type SkillRoll struct {
	Roll  int    `json:"roll"`
	Skill string `json:"skill"`
}

// Session is an in-progress character creation. Nothing is persisted until
// the session completes; cancelling discards it entirely.
type Session struct {
	ID            string                `json:"id"`
	OwnerID       string                `json:"owner_id"`
	WarbandID     string                `json:"warband_id"`
	CharacterType warband.CharacterType `json:"character_type"`

	stepIndex int

	Name       string          `json:"name"`
	Origin     rulebook.Origin `json:"origin"`
	Background string          `json:"background"`

	Rolls      map[rulebook.TableKind]RollResult `json:"rolls"`
	SkillRolls []SkillRoll                       `json:"skill_rolls"`
	Equipment  []warband.Equipment               `json:"equipment"`

	// Accumulated effects of the resolved rolls
	StatDelta    rulebook.Delta `json:"stat_delta"`
	Will         int            `json:"will"`
	Luck         int            `json:"luck"`
	XP           int            `json:"xp"`
	Gold         int            `json:"gold"`
	GrantedItem  string         `json:"granted_item"`
	SkillsToRoll int            `json:"skills_to_roll"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession starts a creation session at the first step
func NewSession(id, ownerID, warbandID string, characterType warband.CharacterType) *Session {
	now := time.Now()
	s := &Session{
		ID:            id,
		OwnerID:       ownerID,
		WarbandID:     warbandID,
		CharacterType: characterType,
		Rolls:         make(map[rulebook.TableKind]RollResult),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if characterType == warband.CharacterTypeFollower {
		s.Origin = rulebook.FollowerOrigin
	}
	return s
}

// Steps returns the session's full step sequence
func (s *Session) Steps() []Step {
	return StepsFor(s.CharacterType)
}

// CurrentStep returns the step the session is on
func (s *Session) CurrentStep() Step {
	return s.Steps()[s.stepIndex]
}

// AtSummary reports whether the session has reached its terminal step
func (s *Session) AtSummary() bool {
	return s.CurrentStep() == StepSummary
}

// StepSatisfied reports whether the given step's completion predicate holds
func (s *Session) StepSatisfied(step Step) bool {
	switch step {
	case StepName, StepEquipment, StepSummary:
		return true
	case StepOrigin:
		return s.Origin != ""
	case StepBackground:
		return s.Background != ""
	case StepSkills:
		return len(s.SkillRolls) == s.SkillsToRoll
	default:
		kind, ok := TableKindFor(step)
		if !ok {
			return false
		}
		_, rolled := s.Rolls[kind]
		return rolled
	}
}

// CanAdvance reports whether forward navigation from the current step is
// allowed
func (s *Session) CanAdvance() bool {
	return !s.AtSummary() && s.StepSatisfied(s.CurrentStep())
}

// Advance moves to the next step. It fails when the current step's
// completion predicate does not hold.
func (s *Session) Advance() error {
	if s.AtSummary() {
		return errors.FailedPrecondition("already at the final step")
	}
	if !s.StepSatisfied(s.CurrentStep()) {
		return errors.FailedPreconditionf("step %s is not complete", s.CurrentStep()).
			WithMeta("step", string(s.CurrentStep()))
	}
	s.stepIndex++
	s.touch()
	return nil
}

// Back moves to the previous step. Collected data is kept.
func (s *Session) Back() error {
	if s.stepIndex == 0 {
		return errors.FailedPrecondition("already at the first step")
	}
	s.stepIndex--
	s.touch()
	return nil
}

// SetName records the character name. Blank is allowed; a default is
// substituted at assembly.
func (s *Session) SetName(name string) {
	s.Name = strings.TrimSpace(name)
	s.touch()
}

// SelectOrigin records the origin choice. If a background was already
// chosen and the new origin no longer qualifies for it, the background
// selection is cleared.
func (s *Session) SelectOrigin(origin rulebook.Origin) error {
	if s.CharacterType == warband.CharacterTypeFollower {
		return errors.FailedPrecondition("followers do not choose an origin")
	}
	if !rulebook.ValidOrigin(origin) {
		return errors.InvalidArgumentf("unknown origin: %s", origin)
	}
	s.Origin = origin
	if s.Background != "" {
		bg := rulebook.BackgroundByName(s.Background)
		if bg == nil || !bg.ValidFor(origin) {
			s.Background = ""
		}
	}
	s.touch()
	return nil
}

// SelectBackground records the background choice. The background must exist
// and be open to the selected origin.
func (s *Session) SelectBackground(name string) error {
	if s.CharacterType == warband.CharacterTypeFollower {
		return errors.FailedPrecondition("followers do not choose a background")
	}
	if s.Origin == "" {
		return errors.FailedPrecondition("select an origin first")
	}
	bg := rulebook.BackgroundByName(name)
	if bg == nil {
		return errors.InvalidArgumentf("unknown background: %s", name)
	}
	if !bg.ValidFor(s.Origin) {
		return errors.InvalidArgumentf("background %s is not available to %s", name, s.Origin).
			WithMeta("origin", string(s.Origin))
	}
	s.Background = name
	s.touch()
	return nil
}

// ApplyRoll resolves a d20 roll against the current step's background table
// and folds the entry's effect into the session. A step can only be rolled
// once, and only while it is the current step.
func (s *Session) ApplyRoll(step Step, roll int) (rulebook.RollTableEntry, error) {
	kind, ok := TableKindFor(step)
	if !ok {
		return rulebook.RollTableEntry{}, errors.InvalidArgumentf("step %s takes no roll", step)
	}
	if s.CurrentStep() != step {
		return rulebook.RollTableEntry{}, errors.FailedPreconditionf("not on the %s step", step)
	}
	if _, rolled := s.Rolls[kind]; rolled {
		return rulebook.RollTableEntry{}, errors.FailedPreconditionf("%s already rolled", step)
	}
	bg := rulebook.BackgroundByName(s.Background)
	if bg == nil {
		return rulebook.RollTableEntry{}, errors.FailedPrecondition("no background selected")
	}
	entry, ok := bg.Table(kind).Resolve(roll)
	if !ok {
		return rulebook.RollTableEntry{}, errors.InvalidArgumentf("roll %d is outside the table", roll)
	}

	s.Rolls[kind] = RollResult{Roll: roll, Text: entry.Text}
	s.fold(kind, entry.Delta)
	s.touch()
	return entry, nil
}

// fold applies one entry's effect. XP accumulates across mentality and
// training; every other field is owned by a single roll and set outright.
func (s *Session) fold(kind rulebook.TableKind, d rulebook.Delta) {
	switch kind {
	case rulebook.TableCapabilities:
		s.StatDelta = d
	case rulebook.TableMentality:
		s.Will = d.Will
		s.Luck = d.Luck
		s.XP += d.XP
	case rulebook.TablePossessions:
		s.Gold = d.Gold
		s.GrantedItem = d.Item
	case rulebook.TableTraining:
		s.SkillsToRoll = d.SkillRolls
		s.XP += d.XP
	}
}

// RollSkill resolves a d100 roll against the skill table and appends the
// skill. Refused once the quota from the training roll is met.
func (s *Session) RollSkill(roll int) (string, error) {
	if s.CurrentStep() != StepSkills {
		return "", errors.FailedPrecondition("not on the skills step")
	}
	if len(s.SkillRolls) >= s.SkillsToRoll {
		return "", errors.FailedPreconditionf("all %d skills already rolled", s.SkillsToRoll)
	}
	skill := rulebook.SkillForRoll(roll)
	s.SkillRolls = append(s.SkillRolls, SkillRoll{Roll: roll, Skill: skill})
	s.touch()
	return skill, nil
}

// ToggleEquipment adds the item if absent or removes it if present.
// Adding past a category cap is a silent no-op. Returns whether the
// selection changed.
func (s *Session) ToggleEquipment(item warband.Equipment) bool {
	for i, selected := range s.Equipment {
		if selected.Name == item.Name {
			s.Equipment = append(s.Equipment[:i], s.Equipment[i+1:]...)
			s.touch()
			return true
		}
	}
	if !s.canAddEquipment(item) {
		return false
	}
	s.Equipment = append(s.Equipment, item)
	s.touch()
	return true
}

func (s *Session) canAddEquipment(item warband.Equipment) bool {
	if s.CharacterType == warband.CharacterTypeFollower {
		if item.IsWeapon() {
			return s.countEquipment(func(e warband.Equipment) bool { return e.IsWeapon() }) < rulebook.MaxFollowerWeapons
		}
		if item.Type == warband.EquipmentTypeArmor {
			if item.Name == warband.ItemFullArmor || item.Name == warband.ItemHelmet || item.Name == warband.ItemShield {
				return false
			}
			return s.countEquipment(func(e warband.Equipment) bool { return e.Type == warband.EquipmentTypeArmor }) < rulebook.MaxFollowerArmor
		}
		return false
	}

	switch {
	case rulebook.IsQualityWeapon(item.Name):
		return s.countEquipment(func(e warband.Equipment) bool { return rulebook.IsQualityWeapon(e.Name) }) < rulebook.MaxQualityWeapons
	case rulebook.IsBasicWeapon(item.Name):
		return s.countEquipment(func(e warband.Equipment) bool { return rulebook.IsBasicWeapon(e.Name) }) < rulebook.MaxBasicWeapons
	case rulebook.IsBodyArmor(item.Name):
		return s.countEquipment(func(e warband.Equipment) bool { return rulebook.IsBodyArmor(e.Name) }) < rulebook.MaxBodyArmor
	case item.Name == warband.ItemHelmet:
		return s.countEquipment(func(e warband.Equipment) bool { return e.Name == warband.ItemHelmet }) < rulebook.MaxHelmets
	case item.Name == warband.ItemShield:
		return s.countEquipment(func(e warband.Equipment) bool { return e.Name == warband.ItemShield }) < rulebook.MaxShields
	}
	return false
}

func (s *Session) countEquipment(match func(warband.Equipment) bool) int {
	count := 0
	for _, e := range s.Equipment {
		if match(e) {
			count++
		}
	}
	return count
}

// HasEquipment reports whether the named item is currently selected
func (s *Session) HasEquipment(name string) bool {
	for _, e := range s.Equipment {
		if e.Name == name {
			return true
		}
	}
	return false
}

// AllStepsSatisfied reports whether every step in the sequence is complete
func (s *Session) AllStepsSatisfied() bool {
	for _, step := range s.Steps() {
		if !s.StepSatisfied(step) {
			return false
		}
	}
	return true
}

// IsMystic reports whether the selected background is the mystic one
func (s *Session) IsMystic() bool {
	return s.Background == rulebook.BackgroundMystic
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
