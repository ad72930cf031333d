// Package config provides configuration management for the load plan service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/loadplan-service/internal/domain/model"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig
	Optimizer OptimizerConfig
	Cache     CacheConfig
	Database  DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// OptimizerConfig holds the recommendation engine configuration.
type OptimizerConfig struct {
	// Workers bounds the optimizer worker pool. Zero means GOMAXPROCS.
	Workers int
	// TimeBudget bounds the wall clock per optimization sweep.
	TimeBudget time.Duration
	// ScoringWeights are the composite-score weights (volume, cost, weight,
	// handling), configured as a comma-separated list.
	ScoringWeights model.ScoringWeights
	// MaxAlternatives caps the alternative recommendations returned.
	MaxAlternatives int
	// MaxFallbackContainers caps the multi-container fallback.
	MaxFallbackContainers int
}

// CacheConfig holds catalog cache configuration.
type CacheConfig struct {
	CatalogTTL time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	HistoryTTL   time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Optimizer: OptimizerConfig{
			Workers:               getEnvInt("OPTIMIZER_WORKERS", 0),
			TimeBudget:            getEnvDuration("OPTIMIZER_TIME_BUDGET", 2*time.Second),
			ScoringWeights:        parseScoringWeights(os.Getenv("SCORING_WEIGHTS")),
			MaxAlternatives:       getEnvInt("MAX_ALTERNATIVES", 3),
			MaxFallbackContainers: getEnvInt("MAX_FALLBACK_CONTAINERS", 5),
		},
		Cache: CacheConfig{
			CatalogTTL: getEnvDuration("CATALOG_CACHE_TTL", 30*time.Second),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "loadplan_service"),
			HistoryTTL:                     getEnvDuration("MONGODB_HISTORY_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseScoringWeights parses "volume,cost,weight,handling" into weights.
// Malformed input falls back to the defaults.
func parseScoringWeights(s string) model.ScoringWeights {
	defaults := model.DefaultScoringWeights()
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return defaults
	}
	values := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 {
			return defaults
		}
		values[i] = v
	}
	w := model.ScoringWeights{Volume: values[0], Cost: values[1], Weight: values[2], Handling: values[3]}
	if !w.Valid() {
		return defaults
	}
	return w
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
