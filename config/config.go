package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/paulmach/orb"

	"github.com/lixenwraith/nanoswarm/parameter"
	"github.com/lixenwraith/nanoswarm/physics"
	"github.com/lixenwraith/nanoswarm/swarm"
)

// Config is the on-disk configuration, decoded over Default()
type Config struct {
	Arena    ArenaConfig    `toml:"arena"`
	Swarm    SwarmConfig    `toml:"swarm"`
	Kinetics KineticsConfig `toml:"kinetics"`
	Driver   DriverConfig   `toml:"driver"`
	Audio    AudioConfig    `toml:"audio"`
}

type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type SwarmConfig struct {
	Agents            int     `toml:"agents"`
	Seed              uint64  `toml:"seed"`
	ActiveProbability float64 `toml:"active_probability"`
}

type KineticsConfig struct {
	MaxSpeed    float64 `toml:"max_speed"`
	SeekGain    float64 `toml:"seek_gain"`
	DeadZone    float64 `toml:"dead_zone"`
	Jitter      float64 `toml:"jitter"`
	Restitution float64 `toml:"restitution"`
}

type DriverConfig struct {
	TickMs int `toml:"tick_ms"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the reference configuration
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  parameter.ArenaWidth,
			Height: parameter.ArenaHeight,
		},
		Swarm: SwarmConfig{
			Agents:            parameter.DefaultAgentCount,
			Seed:              parameter.DefaultSeed,
			ActiveProbability: parameter.ActiveProbability,
		},
		Kinetics: KineticsConfig{
			MaxSpeed:    parameter.MaxSpeed,
			SeekGain:    parameter.SeekGain,
			DeadZone:    parameter.SeekDeadZone,
			Jitter:      parameter.JitterGain,
			Restitution: parameter.Restitution,
		},
		Driver: DriverConfig{
			TickMs: int(parameter.TickInterval / time.Millisecond),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioDefaultVolume,
		},
	}
}

// Load decodes path over the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns the first violated constraint
func (c Config) Validate() error {
	switch {
	case !(c.Arena.Width > 0) || !(c.Arena.Height > 0):
		return errors.New("arena dimensions must be positive")
	case c.Swarm.Agents < 0:
		return errors.New("swarm.agents must not be negative")
	case !(c.Swarm.ActiveProbability >= 0 && c.Swarm.ActiveProbability <= 1):
		return errors.New("swarm.active_probability must be within [0,1]")
	case !(c.Kinetics.MaxSpeed > 0):
		return errors.New("kinetics.max_speed must be positive")
	case c.Kinetics.SeekGain < 0 || c.Kinetics.DeadZone < 0 || c.Kinetics.Jitter < 0:
		return errors.New("kinetics gains must not be negative")
	case !(c.Kinetics.Restitution >= 0 && c.Kinetics.Restitution <= 1):
		return errors.New("kinetics.restitution must be within [0,1]")
	case c.Driver.TickMs <= 0:
		return errors.New("driver.tick_ms must be positive")
	case !(c.Audio.Volume >= 0 && c.Audio.Volume <= 1):
		return errors.New("audio.volume must be within [0,1]")
	}
	return nil
}

// Bound returns the arena rectangle anchored at the origin
func (c Config) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{c.Arena.Width, c.Arena.Height}}
}

// Profile returns the kinetics parameters for the stepper
func (c Config) Profile() physics.KineticProfile {
	return physics.KineticProfile{
		MaxSpeed:    c.Kinetics.MaxSpeed,
		SeekGain:    c.Kinetics.SeekGain,
		DeadZone:    c.Kinetics.DeadZone,
		JitterGain:  c.Kinetics.Jitter,
		Restitution: c.Kinetics.Restitution,
	}
}

// EngineOptions assembles swarm engine options
func (c Config) EngineOptions() swarm.Options {
	return swarm.Options{
		Bound:             c.Bound(),
		Agents:            c.Swarm.Agents,
		ActiveProbability: c.Swarm.ActiveProbability,
		Profile:           c.Profile(),
	}
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Driver.TickMs) * time.Millisecond
}
