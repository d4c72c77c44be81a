package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	Database string
}

// Access gate configuration
type AccessConfig struct {
	// AllowList entries are textual address prefixes; entries containing
	// a "/" are interpreted as CIDR ranges.
	AllowList []string
	BasicUser string
	BasicPass string
}

// SuperUser configuration holds the static reset-password secrets.
type SuperUserConfig struct {
	Email    string
	Password string
}

// Config holds all application configuration
type Config struct {
	Env       string
	Server    ServerConfig
	Mongo     MongoConfig
	Access    AccessConfig
	SuperUser SuperUserConfig
}

// Default configuration values
const (
	DefaultEnv           = "dev"
	DefaultServerPort    = "7023"
	DefaultServerHost    = ""
	DefaultMongoDevHost  = "localhost"
	DefaultMongoDevPort  = "27017"
	DefaultMongoDocHost  = "mongodb"
	DefaultMongoDocPort  = "27017"
	DefaultMongoDatabase = "peoplecount"
	DefaultAllowList     = "::1,127.0.0.1,::ffff:127.0.0.1,192.168.,10."
)

// New returns a new Config with values sourced from the environment.
// The ENV profile selects which Mongo host/port pair is used: "dev" reads
// MONGO_DEV_HOST/MONGO_DEV_PORT, anything else reads the docker pair.
func New() *Config {
	env := getEnv("ENV", DefaultEnv)

	mongoHost := getEnv("MONGO_DOCKER_HOST", DefaultMongoDocHost)
	mongoPort := getEnv("MONGO_DOCKER_PORT", DefaultMongoDocPort)
	if env == "dev" {
		mongoHost = getEnv("MONGO_DEV_HOST", DefaultMongoDevHost)
		mongoPort = getEnv("MONGO_DEV_PORT", DefaultMongoDevPort)
	}

	return &Config{
		Env: env,
		Server: ServerConfig{
			Port: getEnv("EXPRESS_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			Username: getEnv("MONGO_INITDB_ROOT_USERNAME", ""),
			Password: getEnv("MONGO_INITDB_ROOT_PASSWORD", ""),
			Host:     mongoHost,
			Port:     mongoPort,
			Database: getEnv("MONGO_DB", DefaultMongoDatabase),
		},
		Access: AccessConfig{
			AllowList: splitList(getEnv("ACCESS_ALLOWLIST", DefaultAllowList)),
			BasicUser: getEnv("EXPRESS_USER", ""),
			BasicPass: getEnv("EXPRESS_PASS", ""),
		},
		SuperUser: SuperUserConfig{
			Email:    getEnv("SUPERUSER_EMAIL", ""),
			Password: getEnv("SUPERUSER_PASSWORD", ""),
		},
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// URI builds the MongoDB connection string. Credentials are URL-escaped so
// passwords with reserved characters survive.
func (m *MongoConfig) URI() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/?authSource=admin",
		url.QueryEscape(m.Username), url.QueryEscape(m.Password), m.Host, m.Port)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
