package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Firestore   FirestoreConfig
}

// FirestoreConfig holds document store configuration
type FirestoreConfig struct {
	// CredentialsJSON is the JSON-encoded service-account credential. A
	// missing or malformed credential is a fatal startup condition.
	CredentialsJSON string

	// Endpoint optionally overrides the Firestore endpoint URL.
	Endpoint string

	// Collection is the capture collection name.
	Collection string
}

// Load loads configuration from environment variables and an optional .env
// file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CAPTURE_COLLECTION", "captured_requests")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		Firestore: FirestoreConfig{
			CredentialsJSON: viper.GetString("FIREBASE_SERVICE_ACCOUNT"),
			Endpoint:        viper.GetString("FIRESTORE_ENDPOINT"),
			Collection:      viper.GetString("CAPTURE_COLLECTION"),
		},
	}

	return config, nil
}

// Validate checks the fatal startup conditions. It does not verify that the
// credential actually authenticates; that happens on the first connection.
func (c *Config) Validate() error {
	if c.Firestore.CredentialsJSON == "" {
		return fmt.Errorf("FIREBASE_SERVICE_ACCOUNT is not set")
	}
	if c.Firestore.Collection == "" {
		return fmt.Errorf("capture collection name is empty")
	}
	return nil
}

// SetupLogging configures the global logrus logger from the config
func SetupLogging(c *Config) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.Environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
