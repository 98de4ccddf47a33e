package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TEST: GIVEN a valid config file WHEN LoadConfig is called THEN it should load the config successfully
func TestLoadConfig(t *testing.T) {
	c, loadErr := LoadConfig("../../testdata/test_config.yaml")
	assert.NoError(t, loadErr)
	assert.NotNil(t, c)

	assert.Equal(t, "launchcore", c.App.Name)
	assert.Equal(t, "0.0.1", c.App.Version)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "F27R", c.Engine.MotorDesignation)
	assert.Equal(t, 0.01, c.Simulation.Step)
}

// TEST: GIVEN a non-existent config file WHEN LoadConfig is called THEN it should return an error
func TestLoadConfig_FileNotFound(t *testing.T) {
	_, loadErr := LoadConfig("non_existent_file.yaml")
	assert.Error(t, loadErr)
}

// TEST: GIVEN an invalid config file WHEN LoadConfig is called THEN it should return an error
func TestLoadConfig_InvalidFormat(t *testing.T) {
	_, loadErr := LoadConfig("../../testdata/invalid_config.yaml")
	assert.Error(t, loadErr)
}

// TEST: GIVEN two loads of the same valid config file THEN they should be equal
func TestLoadConfig_Repeatable(t *testing.T) {
	c1, err1 := LoadConfig("../../testdata/test_config.yaml")
	assert.NoError(t, err1)

	c2, err2 := LoadConfig("../../testdata/test_config.yaml")
	assert.NoError(t, err2)

	assert.Equal(t, c1, c2)
}

// TEST: GIVEN GetConfig is called multiple times THEN it should return the same singleton
func TestGetConfig_Singleton(t *testing.T) {
	Reset()
	defer Reset()

	// GetConfig reads config.yaml from the working directory, which this
	// package does not ship; it should fail but still memoize the error.
	_, firstErr := GetConfig()
	_, secondErr := GetConfig()
	assert.Equal(t, firstErr, secondErr)
}
