package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	JWTSecret      string
	CapacityPolicy string
	Environment    string
	LogLevel       string
}

// LoadConfig reads the configuration from the environment. Values in envFile
// are loaded first without overriding variables that are already set; a
// missing file is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      getEnv("DB_SSLMODE", "disable"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		CapacityPolicy: getEnv("CAPACITY_POLICY", "committed"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}
	return cfg, nil
}

// Validate reports the settings the HTTP service cannot start without.
func (c Config) Validate() error {
	var secretErr error
	if c.JWTSecret == "" {
		secretErr = errors.New("JWT_SECRET is not set")
	}
	return errors.Join(c.ValidateDB(), secretErr)
}

// ValidateDB covers the settings needed to reach the database.
func (c Config) ValidateDB() error {
	var userErr, nameErr error
	if c.DBUser == "" {
		userErr = errors.New("DB_USER is not set")
	}
	if c.DBName == "" {
		nameErr = errors.New("DB_NAME is not set")
	}
	return errors.Join(userErr, nameErr)
}

// DSN is the libpq connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
