package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	Port string

	// JWTSecret is the HMAC key bearer tokens are verified with. JWTIssuer,
	// when set, must match the token's iss claim.
	JWTSecret string
	JWTIssuer string

	OperatorWorkers int
	MigrateOnStart  bool
	LogLevel        string
}

// ProcessEnvironmentVariables loads an optional .env file and then reads the
// process environment on top of the docker compose defaults.
func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		Port:             "5000",
		OperatorWorkers:  4,
		LogLevel:         "info",
	}

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.Port, "PORT")
	setString(&env.JWTSecret, "JWT_SECRET")
	setString(&env.JWTIssuer, "JWT_ISSUER")
	setString(&env.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q: %w", v, err)
		}
		env.OperatorWorkers = workers
	}

	if v := os.Getenv("MIGRATE_ON_START"); len(v) != 0 {
		migrate, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MIGRATE_ON_START %q: %w", v, err)
		}
		env.MigrateOnStart = migrate
	}

	return &env, nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*dst = v
	}
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator worker count %d: must be at least 1", c.OperatorWorkers))
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is not set: every bearer token would be rejected")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// PostgresURL is the connection string shared by storage and migrations.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
