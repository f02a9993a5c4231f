package creation

import (
	"github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/errors"
	"github.com/fiveleagues/warband-bot/internal/rulebook"
)

const (
	defaultHeroName     = "Unnamed Hero"
	defaultFollowerName = "Unnamed Follower"

	followerNote = "Follower - simplified stats"
)

// Assemble turns a completed session into a finished character.
// It fails if any step's completion predicate was never satisfied; the UI
// flow should make that unreachable.
func Assemble(s *Session, id string) (*warband.Character, error) {
	if !s.AllStepsSatisfied() {
		return nil, errors.FailedPrecondition("creation session is incomplete")
	}
	if s.CharacterType == warband.CharacterTypeFollower {
		return assembleFollower(s, id), nil
	}
	return assembleHero(s, id), nil
}

func assembleHero(s *Session, id string) *warband.Character {
	stats := warband.BaseStats()
	stats.Agility += s.StatDelta.Agility
	stats.CombatSkill += s.StatDelta.CombatSkill
	stats.SpeedBase += s.StatDelta.SpeedBase
	stats.Toughness += s.StatDelta.Toughness
	stats.Casting += s.StatDelta.Casting
	// Will and Luck come whole from the mentality roll
	stats.Will = s.Will
	stats.Luck = s.Luck

	skills := make([]string, 0, len(s.SkillRolls))
	for _, sr := range s.SkillRolls {
		skills = append(skills, sr.Skill)
	}

	equipment := make([]warband.Equipment, 0, len(s.Equipment)+1)
	equipment = append(equipment, s.Equipment...)
	if s.GrantedItem != "" {
		equipment = append(equipment, rulebook.GrantedEquipment(s.GrantedItem))
	}

	name := s.Name
	if name == "" {
		name = defaultHeroName
	}

	return &warband.Character{
		ID:            id,
		Name:          name,
		Origin:        string(s.Origin),
		Background:    s.Background,
		CharacterType: warband.CharacterTypeHero,
		IsMystic:      s.IsMystic(),
		Stats:         stats,
		Skills:        skills,
		Equipment:     equipment,
		XP:            s.XP,
		Gold:          s.Gold,
	}
}

func assembleFollower(s *Session, id string) *warband.Character {
	name := s.Name
	if name == "" {
		name = defaultFollowerName
	}

	equipment := make([]warband.Equipment, len(s.Equipment))
	copy(equipment, s.Equipment)

	return &warband.Character{
		ID:            id,
		Name:          name,
		Origin:        string(rulebook.FollowerOrigin),
		Background:    rulebook.FollowerBackground,
		CharacterType: warband.CharacterTypeFollower,
		Stats:         warband.BaseStats(),
		Equipment:     equipment,
		Notes:         followerNote,
	}
}
