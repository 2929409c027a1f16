package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP                  string        // Host IP for the server
	RESTPort                int           // Port for the REST API
	GinMode                 string        // Mode for the Gin framework (e.g., release, debug, test)
	LogLevel                string        // Minimum level written by the loggers
	LogColors               bool          // Whether log level tags are colored
	MinMazeDimension        int           // Smallest accepted maze width or height
	MaxMazeDimension        int           // Largest accepted maze width or height
	CycleDivisor            int           // One default extra cycle per this many cells
	MazeSeed                int64         // Generator seed; 0 draws fresh entropy
	GenerationFrameInterval time.Duration // Delay between wall-removal replay frames
	SearchFrameInterval     time.Duration // Delay between search replay frames
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		logrus.Infof("[APP] .env file not found or could not be loaded: %v", err)
	}

	c, err := Load()
	if err != nil {
		logrus.Fatalf("[APP] %v", err)
	}
	return c
}

// Load reads the configuration from the process environment, falling back to
// defaults for unset variables. Malformed values are reported as errors.
func Load() (Config, error) {
	var (
		c   Config
		err error
	)

	c.HostIP = getEnvWithDefault("HOST_IP", "0.0.0.0")
	c.GinMode = getEnvWithDefault("GIN_MODE", "release")
	c.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")

	if c.RESTPort, err = getEnvAsInt("REST_PORT", 8080); err != nil {
		return Config{}, err
	}
	if c.LogColors, err = getEnvAsBool("LOG_COLORS", true); err != nil {
		return Config{}, err
	}
	if c.MinMazeDimension, err = getEnvAsInt("MAZE_MIN_DIMENSION", 5); err != nil {
		return Config{}, err
	}
	if c.MaxMazeDimension, err = getEnvAsInt("MAZE_MAX_DIMENSION", 50); err != nil {
		return Config{}, err
	}
	if c.CycleDivisor, err = getEnvAsInt("MAZE_CYCLE_DIVISOR", 20); err != nil {
		return Config{}, err
	}
	seed, err := getEnvAsInt("MAZE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	c.MazeSeed = int64(seed)
	if c.GenerationFrameInterval, err = getEnvAsDuration("GENERATION_FRAME_INTERVAL", 10*time.Millisecond); err != nil {
		return Config{}, err
	}
	if c.SearchFrameInterval, err = getEnvAsDuration("SEARCH_FRAME_INTERVAL", 50*time.Millisecond); err != nil {
		return Config{}, err
	}

	if c.MinMazeDimension < 1 || c.MaxMazeDimension < c.MinMazeDimension {
		return Config{}, fmt.Errorf("maze dimension limits %d..%d are invalid", c.MinMazeDimension, c.MaxMazeDimension)
	}
	if c.CycleDivisor < 1 {
		return Config{}, fmt.Errorf("MAZE_CYCLE_DIVISOR must be positive, got %d", c.CycleDivisor)
	}

	return c, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, or defaultValue if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvAsBool retrieves an environment variable as a boolean, or defaultValue if not set.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return value, nil
}

// getEnvAsDuration retrieves an environment variable as a duration ("10ms"), or defaultValue if not set.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a duration: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("environment variable %s must be positive, got %s", key, value)
	}
	return value, nil
}
