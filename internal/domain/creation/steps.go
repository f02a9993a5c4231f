package creation

import (
	"github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/rulebook"
)

// Step is a named stage of the creation wizard
type Step string

const (
	StepName         Step = "name"
	StepOrigin       Step = "origin"
	StepBackground   Step = "background"
	StepCapabilities Step = "capabilities"
	StepMentality    Step = "mentality"
	StepPossessions  Step = "possessions"
	StepTraining     Step = "training"
	StepSkills       Step = "skills"
	StepEquipment    Step = "equipment"
	StepSummary      Step = "summary"
)

var heroSteps = []Step{
	StepName,
	StepOrigin,
	StepBackground,
	StepCapabilities,
	StepMentality,
	StepPossessions,
	StepTraining,
	StepSkills,
	StepEquipment,
	StepSummary,
}

// Followers skip origin, background and every roll step
var followerSteps = []Step{
	StepName,
	StepEquipment,
	StepSummary,
}

// StepsFor returns the ordered step sequence for the given character type
func StepsFor(characterType warband.CharacterType) []Step {
	if characterType == warband.CharacterTypeFollower {
		return followerSteps
	}
	return heroSteps
}

// rollSteps maps the four background roll steps to their table kind
var rollSteps = map[Step]rulebook.TableKind{
	StepCapabilities: rulebook.TableCapabilities,
	StepMentality:    rulebook.TableMentality,
	StepPossessions:  rulebook.TablePossessions,
	StepTraining:     rulebook.TableTraining,
}

// TableKindFor returns the background table kind the step rolls on,
// or false for non-roll steps
func TableKindFor(step Step) (rulebook.TableKind, bool) {
	kind, ok := rollSteps[step]
	return kind, ok
}

// StepFor returns the wizard step that rolls on the given table kind
func StepFor(kind rulebook.TableKind) Step {
	for step, k := range rollSteps {
		if k == kind {
			return step
		}
	}
	return ""
}
