package parameter

// Arena sizing in arena units
const (
	ArenaWidth  = 800.0
	ArenaHeight = 600.0
)

// Population defaults
const (
	// DefaultAgentCount is the population size used when none is configured
	DefaultAgentCount = 100

	// ActiveProbability is the per-agent chance of starting active
	ActiveProbability = 0.7

	// InitialSpeedRange bounds each initial velocity component to [-range, range]
	InitialSpeedRange = 1.0

	// DefaultSeed seeds the population source when none is configured
	DefaultSeed = 0x5eed
)
