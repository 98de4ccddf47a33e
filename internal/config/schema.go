package config

// Config is the root application configuration, loaded via viper from a
// YAML file and validated before the simulation is built.
type Config struct {
	App        App        `mapstructure:"app"`
	Logging    Logging    `mapstructure:"logging"`
	Simulation Simulation `mapstructure:"simulation"`
	Launch     Launch     `mapstructure:"launch"`
	Engine     Engine     `mapstructure:"engine"`
}

// App carries product identity used in log banners and reports.
type App struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// Logging configures the zerodha/logf singleton in internal/logger.
type Logging struct {
	Level string `mapstructure:"level"`
}

// Simulation drives the RKF45 integrator in pkg/flight.
type Simulation struct {
	Step    float64 `mapstructure:"step"`
	MaxTime float64 `mapstructure:"max_time"`
	RTol    float64 `mapstructure:"rtol"`
	ATol    float64 `mapstructure:"atol"`
}

// Launchrail describes the guide the rocket rides before free flight.
type Launchrail struct {
	Length  float64 `mapstructure:"length"`
	Angle   float64 `mapstructure:"angle"`
	Azimuth float64 `mapstructure:"azimuth"`
}

// Launchsite records where the rocket is launched from. The atmosphere model
// does not read it: pkg/flight queries the atmosphere at the state's Zp.
type Launchsite struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
	Elevation float64 `mapstructure:"elevation"`
}

// Launch groups everything about where and at what attitude the rocket
// leaves the pad.
type Launch struct {
	Launchrail Launchrail `mapstructure:"launchrail"`
	Launchsite Launchsite `mapstructure:"launchsite"`
}

// Engine names the motor to fly, as a designation or as a direct path to a
// .eng file; Validate requires one of the two. Nothing in this module
// resolves a designation to a thrust curve, and cmd/launchrail reads the
// .eng files named by its built-in scenarios instead of this section.
type Engine struct {
	MotorDesignation string `mapstructure:"motor_designation"`
	EngineFile       string `mapstructure:"engine_file"`
}
