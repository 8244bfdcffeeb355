package parameter

// Kinetics reference values, per tick
const (
	// MaxSpeed caps agent speed before integration
	MaxSpeed = 3.0

	// SeekGain is the magnitude of the per-tick pull toward the target
	SeekGain = 0.1

	// SeekDeadZone suppresses seek inside this distance of the target
	SeekDeadZone = 5.0

	// JitterGain scales the zero-mean noise added per axis, drawn from [-gain/2, gain/2]
	JitterGain = 0.1

	// Restitution is the fraction of axis speed kept after a wall bounce
	Restitution = 0.8
)
