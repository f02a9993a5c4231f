package dice

// Roller provides an interface for drawing random die rolls
// This allows us to inject deterministic implementations for testing
type Roller interface {
	// Roll returns a uniformly distributed integer in [1, sides]
	Roll(sides int) (int, error)
}
