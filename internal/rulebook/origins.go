package rulebook

// Origin is a racial category a character can come from
type Origin string

const (
	OriginHuman     Origin = "Human"
	OriginFeyBlood  Origin = "Fey-blood"
	OriginDusklings Origin = "Dusklings"
	OriginFeral     Origin = "Feral"
	OriginHalflings Origin = "Halflings"
	OriginPreen     Origin = "Preen"
)

// FollowerOrigin is the fixed origin of every follower
const FollowerOrigin = OriginHuman

// Origins returns all origins in rulebook order
func Origins() []Origin {
	return []Origin{
		OriginHuman,
		OriginFeyBlood,
		OriginDusklings,
		OriginFeral,
		OriginHalflings,
		OriginPreen,
	}
}

// ValidOrigin reports whether the given value is a known origin
func ValidOrigin(o Origin) bool {
	for _, origin := range Origins() {
		if origin == o {
			return true
		}
	}
	return false
}
