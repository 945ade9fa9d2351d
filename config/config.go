// Package config loads optional runtime configuration (default integrator,
// tolerances, logging) from a TOML file, gated behind an environment
// variable so the core packages never perform file I/O of their own
// accord (spec.md §5's no-I/O requirement binds the numerical core, not
// this opt-in ambient configuration layer consumed by cmd/ binaries).
package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// EnvVar is the environment variable naming the directory that holds
// conf.toml, mirroring the teacher's SMD_CONFIG convention.
const EnvVar = "SPACE_MISSIONS_CONFIG"

// Config is the set of values a cmd/ binary may want to override without a
// recompile.
type Config struct {
	DefaultIntegrator string        // "euler", "rk4", "rkf45", "velocity-verlet"
	AdaptiveTol       float64
	MinStep           time.Duration
	MaxStep           time.Duration
	LogLevel          string
}

var (
	once   sync.Once
	loaded Config
	loadErr error
)

// Load reads conf.toml from the directory named by EnvVar. It is safe to
// call repeatedly; the file is read only once per process.
func Load() (Config, error) {
	once.Do(func() {
		loaded, loadErr = load()
	})
	return loaded, loadErr
}

func load() (Config, error) {
	dir := os.Getenv(EnvVar)
	if dir == "" {
		return Config{}, fmt.Errorf("config: environment variable %s is not set", EnvVar)
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(dir)
	viper.SetDefault("propagation.default_integrator", "rk4")
	viper.SetDefault("propagation.adaptive_tol", 1e-9)
	viper.SetDefault("propagation.min_step_seconds", 0.01)
	viper.SetDefault("propagation.max_step_seconds", 60.0)
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: reading %s/conf.toml: %w", dir, err)
	}

	return Config{
		DefaultIntegrator: viper.GetString("propagation.default_integrator"),
		AdaptiveTol:       viper.GetFloat64("propagation.adaptive_tol"),
		MinStep:           time.Duration(viper.GetFloat64("propagation.min_step_seconds") * float64(time.Second)),
		MaxStep:           time.Duration(viper.GetFloat64("propagation.max_step_seconds") * float64(time.Second)),
		LogLevel:          viper.GetString("logging.level"),
	}, nil
}
