package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string  // Host IP for the server
	RESTPort         int     // Port for the REST API
	GinMode          string  // Mode for the Gin framework (e.g., release, debug, test)
	MazeWidth        int     // Default maze width when a request omits it
	MazeHeight       int     // Default maze height when a request omits it
	LoopProb         float64 // Default loop probability
	MaxBlockAttempts int     // Default wall budget for unsolvable mazes
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:           getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:         getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		MazeWidth:        getEnvAsIntWithDefault("MAZE_WIDTH", 20),
		MazeHeight:       getEnvAsIntWithDefault("MAZE_HEIGHT", 10),
		LoopProb:         getEnvAsFloatWithDefault("MAZE_LOOP_PROB", 0.05),
		MaxBlockAttempts: getEnvAsIntWithDefault("MAZE_MAX_BLOCK_ATTEMPTS", 200),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, logging a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsFloatWithDefault retrieves a float environment variable, logging a fatal error if it cannot be parsed.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}
