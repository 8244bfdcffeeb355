package physics

import "github.com/lixenwraith/nanoswarm/parameter"

// KineticProfile defines the per-tick swarm kinetics parameters
type KineticProfile struct {
	MaxSpeed    float64 // Speed cap applied before integration
	SeekGain    float64 // Target pull per tick (0 = disabled)
	DeadZone    float64 // Distance below which seek is suppressed
	JitterGain  float64 // Noise amplitude, each axis drawn from [-gain/2, gain/2] (0 = disabled)
	Restitution float64 // Axis speed kept after a wall bounce
}

// DefaultProfile returns the reference swarm kinetics
func DefaultProfile() KineticProfile {
	return KineticProfile{
		MaxSpeed:    parameter.MaxSpeed,
		SeekGain:    parameter.SeekGain,
		DeadZone:    parameter.SeekDeadZone,
		JitterGain:  parameter.JitterGain,
		Restitution: parameter.Restitution,
	}
}
