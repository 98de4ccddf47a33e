package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

var (
	once sync.Once
	cfg  *Config
	err  error
)

// GetConfig returns the application configuration as a singleton, reading
// config.yaml from the working directory.
func GetConfig() (*Config, error) {
	once.Do(func() {
		cfg, err = LoadConfig("config.yaml")
	})
	return cfg, err
}

// LoadConfig reads and validates the configuration at path, independent of
// the GetConfig singleton; used by tests and by callers with a fixture path.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if readErr := v.ReadInConfig(); readErr != nil {
		return nil, fmt.Errorf("failed to read config file: %s", readErr)
	}

	var c Config
	if unmarshalErr := v.Unmarshal(&c); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %s", unmarshalErr)
	}

	if validateErr := c.Validate(); validateErr != nil {
		return nil, fmt.Errorf("failed to validate config: %s", validateErr)
	}

	return &c, nil
}

// Reset clears the configuration singleton, useful for testing.
func Reset() {
	once = sync.Once{}
	cfg = nil
	err = nil
}

// Validate checks the config for required fields and sane ranges.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return errors.New("app.name is required")
	}

	if c.App.Version == "" {
		return errors.New("app.version is required")
	}

	if c.Logging.Level == "" {
		return errors.New("logging.level is required")
	}

	if c.Engine.MotorDesignation == "" && c.Engine.EngineFile == "" {
		return errors.New("engine.motor_designation or engine.engine_file is required")
	}

	if c.Simulation.Step <= 0 {
		return errors.New("simulation.step must be positive")
	}

	if c.Simulation.MaxTime <= 0 {
		return errors.New("simulation.max_time must be positive")
	}

	if c.Simulation.RTol <= 0 {
		return errors.New("simulation.rtol must be positive")
	}

	if c.Simulation.ATol <= 0 {
		return errors.New("simulation.atol must be positive")
	}

	if c.Launch.Launchrail.Length <= 0 {
		return errors.New("launch.launchrail.length must be positive")
	}

	if c.Launch.Launchrail.Angle <= 0 {
		return errors.New("launch.launchrail.angle is required")
	}

	return nil
}
