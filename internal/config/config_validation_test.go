package config_test

import (
	"testing"

	"github.com/loftwing/launchcore/internal/config"
)

func validConfig() *config.Config {
	return &config.Config{
		App:     config.App{Name: "launchcore", Version: "0.0.1"},
		Logging: config.Logging{Level: "debug"},
		Simulation: config.Simulation{
			Step:    0.01,
			MaxTime: 120,
			RTol:    1e-3,
			ATol:    1e-6,
		},
		Launch: config.Launch{
			Launchrail: config.Launchrail{Length: 1.8, Angle: 84, Azimuth: 0},
			Launchsite: config.Launchsite{Latitude: 34.0522, Longitude: -118.2437, Elevation: 100},
		},
		Engine: config.Engine{MotorDesignation: "F27R"},
	}
}

// TEST: GIVEN an empty config WHEN Validate is called THEN returns an error
func TestConfig_Validate_Empty(t *testing.T) {
	cfg := &config.Config{}

	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate() should return an error for empty config")
	}
}

// TEST: GIVEN a config with missing app name WHEN Validate is called THEN returns an error
func TestConfig_Validate_MissingAppName(t *testing.T) {
	cfg := validConfig()
	cfg.App.Name = ""

	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate() should return an error when app name is missing")
	}
}

// TEST: GIVEN a config with invalid launchrail length WHEN Validate is called THEN returns an error
func TestConfig_Validate_InvalidLaunchrailLength(t *testing.T) {
	cfg := validConfig()
	cfg.Launch.Launchrail.Length = -1.0

	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate() should return an error for invalid launchrail length")
	}
}

// TEST: GIVEN a config missing both motor designation and engine file WHEN Validate is called THEN returns an error
func TestConfig_Validate_MissingEngine(t *testing.T) {
	cfg := validConfig()
	cfg.Engine = config.Engine{}

	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate() should return an error when neither motor_designation nor engine_file is set")
	}
}

// TEST: GIVEN a config with valid parameters WHEN Validate is called THEN does not return an error
func TestConfig_Validate_Valid(t *testing.T) {
	cfg := validConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should not return an error for valid config: %v", err)
	}
}
