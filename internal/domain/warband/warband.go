// Package warband defines the persistent roster entities: warbands,
// characters, their stats and equipment.
package warband

import (
	"time"
)

// DefaultMaxHeroes is the hero capacity a new warband starts with
const DefaultMaxHeroes = 10

// Warband is a named collection of heroes and followers
type Warband struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	MaxHeroes int          `json:"max_heroes"`
	Heroes    []*Character `json:"heroes"`
	Followers []*Character `json:"followers"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// AtHeroCapacity reports whether the warband cannot take another hero
func (w *Warband) AtHeroCapacity() bool {
	return len(w.Heroes) >= w.MaxHeroes
}

// AddCharacter appends a character to the bucket matching its type
func (w *Warband) AddCharacter(c *Character) {
	if c.CharacterType == CharacterTypeHero {
		w.Heroes = append(w.Heroes, c)
		return
	}
	w.Followers = append(w.Followers, c)
}

// FindCharacter returns the character with the given id from the given
// bucket, or nil if absent
func (w *Warband) FindCharacter(id string, charType CharacterType) *Character {
	for _, c := range w.bucket(charType) {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// RemoveCharacter deletes the character with the given id from the given
// bucket, reporting whether anything was removed
func (w *Warband) RemoveCharacter(id string, charType CharacterType) bool {
	list := w.bucket(charType)
	for i, c := range list {
		if c.ID == id {
			list = append(list[:i], list[i+1:]...)
			if charType == CharacterTypeHero {
				w.Heroes = list
			} else {
				w.Followers = list
			}
			return true
		}
	}
	return false
}

// AllCharacters returns heroes followed by followers, in roster order
func (w *Warband) AllCharacters() []*Character {
	all := make([]*Character, 0, len(w.Heroes)+len(w.Followers))
	all = append(all, w.Heroes...)
	all = append(all, w.Followers...)
	return all
}

func (w *Warband) bucket(charType CharacterType) []*Character {
	if charType == CharacterTypeHero {
		return w.Heroes
	}
	return w.Followers
}
