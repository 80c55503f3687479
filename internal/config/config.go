package config // package config loads application configuration from environment variables

import (
	"fmt"     // fmt builds configuration errors
	"os"      // os provides access to environment variables
	"strings" // strings splits list-valued variables
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Nothing is required: an empty environment
// gives an in-memory server on port 4000 reading config/tenants.json.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	DatabaseURL    string        // storage connection string; empty selects in-memory mode
	DBUser         string        // database username (used when DATABASE_URL is empty)
	DBPass         string        // database password (optional)
	DBHost         string        // database host address; setting it selects MySQL
	DBPort         string        // database port number
	DBName         string        // database name
	TenantsConfig  string        // path of the static tenants document
	PasswordMode   string        // "plain" or "bcrypt"
	BcryptCost     int           // bcrypt cost when PasswordMode is bcrypt
	CORSOrigins    []string      // allowed CORS origins
	RequestTimeout time.Duration // per-request storage deadline
	LogLevel       string        // zap level name
	LogFormat      string        // "console" or "json"
}

// Load reads configuration values from environment variables and returns a
// Config.  It fails on values that cannot be used.
func Load() (Config, error) {
	cfg := Config{
		Env:            envStr("APP_ENV", "dev"),
		Port:           port(),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBUser:         envStr("DB_USER", "root"),
		DBPass:         os.Getenv("DB_PASS"), // empty allowed
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         envStr("DB_PORT", "3306"),
		DBName:         envStr("DB_NAME", "storefront"),
		TenantsConfig:  envStr("TENANTS_CONFIG", "config/tenants.json"),
		PasswordMode:   strings.ToLower(envStr("PASSWORD_MODE", "plain")),
		BcryptCost:     envInt("BCRYPT_COST", 10),
		CORSOrigins:    splitList(envStr("CORS_ORIGINS", "*")),
		RequestTimeout: envDur("REQUEST_TIMEOUT", 5*time.Second),
		LogLevel:       envStr("LOG_LEVEL", "info"),
		LogFormat:      envStr("LOG_FORMAT", "console"),
	}
	if cfg.PasswordMode != "plain" && cfg.PasswordMode != "bcrypt" {
		return cfg, fmt.Errorf("invalid PASSWORD_MODE %q: want plain or bcrypt", cfg.PasswordMode)
	}
	return cfg, nil
}

// Persistent reports whether a storage connection is configured.  The
// answer is fixed for the life of the process.
func (c Config) Persistent() bool { return c.DatabaseURL != "" || c.DBHost != "" }

// port prefers APP_PORT, then PORT, then 4000.
func port() string {
	if v := os.Getenv("APP_PORT"); v != "" {
		return v
	}
	return envStr("PORT", "4000")
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
