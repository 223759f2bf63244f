// Package config provides YAML-based configuration for the snakescript
// simulation, with embedded defaults and a user-overridable search path.
package config

import "time"

// Config is the top-level configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Tick    TickConfig    `yaml:"tick"`
	Script  ScriptConfig  `yaml:"script"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// GridConfig describes the playing field.
type GridConfig struct {
	Size int `yaml:"size"`
}

// TickConfig describes simulation timing.
type TickConfig struct {
	IntervalMS      int `yaml:"interval_ms"`
	GameOverDelayMS int `yaml:"game_over_delay_ms"`
}

// ScriptConfig describes the embedded interpreter limits.
type ScriptConfig struct {
	// ThinkTimeoutMS bounds one think() call. 0 falls back to the
	// package default; -1 disables the bound.
	ThinkTimeoutMS int `yaml:"think_timeout_ms"`
}

// StorageConfig describes the agents/scores database.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// SSHConfig describes the remote-play server.
type SSHConfig struct {
	Address        string `yaml:"address"`
	HostKey        string `yaml:"host_key"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{Size: 32},
		Tick: TickConfig{
			IntervalMS:      150,
			GameOverDelayMS: 3000,
		},
		Script: ScriptConfig{ThinkTimeoutMS: 50},
		Storage: StorageConfig{
			DB: "~/.snakescript/snakescript.db",
		},
		SSH: SSHConfig{
			Address:        ":23235",
			IdleTimeoutMin: 30,
		},
	}
}

// TickInterval returns the tick interval as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Tick.IntervalMS) * time.Millisecond
}

// GameOverDelay returns the post-terminal delay as a duration.
func (c Config) GameOverDelay() time.Duration {
	return time.Duration(c.Tick.GameOverDelayMS) * time.Millisecond
}

// ThinkTimeout returns the per-call script budget as a duration.
// -1 in the file disables the bound.
func (c Config) ThinkTimeout() time.Duration {
	if c.Script.ThinkTimeoutMS < 0 {
		return -1
	}
	return time.Duration(c.Script.ThinkTimeoutMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeoutMin) * time.Minute
}
