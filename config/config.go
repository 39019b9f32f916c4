package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig indicates a value that cannot be parsed or is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment keys.
const (
	KeyMapSize       = "EXPLORE_MAP_SIZE"
	KeyCellSize      = "EXPLORE_CELL_SIZE"
	KeySensorRange   = "EXPLORE_SENSOR_RANGE"
	KeyMaxTicks      = "EXPLORE_MAX_TICKS"
	KeyAgentSpeed    = "EXPLORE_AGENT_SPEED"
	KeyArrivalRadius = "EXPLORE_ARRIVAL_RADIUS"
	KeyProbeStep     = "EXPLORE_PROBE_STEP"
)

// Config holds the parameters of one exploration run.
type Config struct {
	MapSize       int     // cells per side
	CellSize      float64 // world units per cell
	SensorRange   float64 // ray length in world units
	MaxTicks      int     // tick budget of a simulated run
	AgentSpeed    float64 // world units per tick
	ArrivalRadius float64 // distance at which the agent touches a marker
	ProbeStep     float64 // ray sampling interval of the simulated sensor
}

// Default returns the stock parameters.
func Default() Config {
	return Config{
		MapSize:       10,
		CellSize:      8,
		SensorRange:   11,
		MaxTicks:      5000,
		AgentSpeed:    4,
		ArrivalRadius: 1,
		ProbeStep:     0.25,
	}
}

// Load reads the given .env files (".env" when none are named), then
// overlays the environment on Default. Missing files are not an error.
// Variables already set in the environment win over file entries.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[CONFIG] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg := Default()
	var err error
	if cfg.MapSize, err = intEnv(KeyMapSize, cfg.MapSize); err != nil {
		return Config{}, err
	}
	if cfg.MaxTicks, err = intEnv(KeyMaxTicks, cfg.MaxTicks); err != nil {
		return Config{}, err
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{KeyCellSize, &cfg.CellSize},
		{KeySensorRange, &cfg.SensorRange},
		{KeyAgentSpeed, &cfg.AgentSpeed},
		{KeyArrivalRadius, &cfg.ArrivalRadius},
		{KeyProbeStep, &cfg.ProbeStep},
	}
	for _, f := range floats {
		if *f.dst, err = floatEnv(f.key, *f.dst); err != nil {
			return Config{}, err
		}
	}
	return cfg, cfg.Validate()
}

// Validate rejects non-positive parameters.
func (c Config) Validate() error {
	switch {
	case c.MapSize <= 0:
		return fmt.Errorf("%w: %s=%d", ErrInvalidConfig, KeyMapSize, c.MapSize)
	case c.MaxTicks <= 0:
		return fmt.Errorf("%w: %s=%d", ErrInvalidConfig, KeyMaxTicks, c.MaxTicks)
	case !(c.CellSize > 0):
		return fmt.Errorf("%w: %s=%g", ErrInvalidConfig, KeyCellSize, c.CellSize)
	case !(c.SensorRange > 0):
		return fmt.Errorf("%w: %s=%g", ErrInvalidConfig, KeySensorRange, c.SensorRange)
	case !(c.AgentSpeed > 0):
		return fmt.Errorf("%w: %s=%g", ErrInvalidConfig, KeyAgentSpeed, c.AgentSpeed)
	case !(c.ArrivalRadius > 0):
		return fmt.Errorf("%w: %s=%g", ErrInvalidConfig, KeyArrivalRadius, c.ArrivalRadius)
	case !(c.ProbeStep > 0):
		return fmt.Errorf("%w: %s=%g", ErrInvalidConfig, KeyProbeStep, c.ProbeStep)
	}
	return nil
}

func intEnv(key string, def int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return v, nil
}

func floatEnv(key string, def float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %v", ErrInvalidConfig, key, err)
	}
	return v, nil
}
