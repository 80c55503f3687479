package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// KeyStrategy names the request attributes that share a rate-limit
// bucket, joined by underscores: "ip", "user_route", "ip_user_route".
type KeyStrategy string

// Attributes a KeyStrategy may combine.
const (
	KeyIP    = "ip"
	KeyUser  = "user"
	KeyRoute = "route"
)

const DefaultKeyStrategy KeyStrategy = "ip_user"

// Parse validates s and returns its attributes in canonical order.
func (s KeyStrategy) Parse() ([]string, error) {
	seen := map[string]bool{}
	for _, p := range strings.Split(strings.ToLower(string(s)), "_") {
		switch p {
		case KeyIP, KeyUser, KeyRoute:
			seen[p] = true
		default:
			return nil, fmt.Errorf("invalid rate limit key strategy %q", s)
		}
	}
	var out []string
	for _, p := range []string{KeyIP, KeyUser, KeyRoute} {
		if seen[p] {
			out = append(out, p)
		}
	}
	return out, nil
}

// Uses reports whether the strategy includes attribute part.  Invalid
// strategies use nothing.
func (s KeyStrategy) Uses(part string) bool {
	parts, err := s.Parse()
	if err != nil {
		return false
	}
	for _, p := range parts {
		if p == part {
			return true
		}
	}
	return false
}

// RateLimitConfig drives the Redis token bucket on the tenant API.
//
// Buckets are scoped by tenant unless SharedAcrossTenants is set, so one
// storefront cannot exhaust another's budget.  With a user-based
// strategy, requests without a session are keyed by client ip when
// AnonymousByIP is set; otherwise every anonymous caller of a tenant
// shares a single bucket.
type RateLimitConfig struct {
	Enabled             bool
	Capacity            int
	RefillTokens        int
	RefillInterval      time.Duration
	TTL                 time.Duration
	KeyStrategy         KeyStrategy
	Prefix              string
	SharedAcrossTenants bool
	AnonymousByIP       bool
	Debug               bool
}

// LoadRateLimitConfig reads the RATE_LIMIT_* variables.  Out of range
// numbers are clamped; an unknown key strategy is an error.
func LoadRateLimitConfig() (RateLimitConfig, error) {
	cfg := RateLimitConfig{
		Enabled:             envBool("RATE_LIMIT_ENABLED", true),
		Capacity:            envInt("RATE_LIMIT_CAPACITY", 60),
		RefillTokens:        envInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval:      envDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:                 envDur("RATE_LIMIT_TTL", 10*time.Minute),
		KeyStrategy:         KeyStrategy(envStr("RATE_LIMIT_KEY_STRATEGY", string(DefaultKeyStrategy))),
		Prefix:              envStr("RATE_LIMIT_PREFIX", "rl"),
		SharedAcrossTenants: envBool("RATE_LIMIT_SHARED_ACROSS_TENANTS", false),
		AnonymousByIP:       envBool("RATE_LIMIT_ANONYMOUS_BY_IP", true),
		Debug:               envBool("RATE_LIMIT_DEBUG", false),
	}
	if _, err := cfg.KeyStrategy.Parse(); err != nil {
		return cfg, err
	}
	cfg.Capacity = max(cfg.Capacity, 1)
	cfg.RefillTokens = max(cfg.RefillTokens, 1)
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	// keep idle buckets long enough to refill completely
	cfg.TTL = max(cfg.TTL, 5*cfg.RefillInterval)
	return cfg, nil
}

func envStr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(k))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k))); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	if dur, err := time.ParseDuration(strings.TrimSpace(os.Getenv(k))); err == nil {
		return dur
	}
	return d
}
