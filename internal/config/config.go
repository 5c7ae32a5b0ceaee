package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SessionTTL        time.Duration // lifetime of a login session (default: 720h)
	BcryptCost        int           // bcrypt cost for stored secrets
	LongPressHold     time.Duration // hold duration entering reorder mode (default: 500ms)
	NoticeDuration    time.Duration // notification auto-dismiss delay (default: 3s)
	ScreenGCInterval  time.Duration // interval between idle-screen sweeps (default: 10m)
	ScreenIdleTTL     time.Duration // idle duration after which a screen is evicted (default: 30m)
	SeedFile          string        // path to an optional YAML seed file (empty = disabled)
	LoginRateBurst    int           // login rate-limit burst per IP
	LoginRatePerMin   int           // login rate-limit refill per IP per minute

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict probe access to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LINKDECK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LINKDECK_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LINKDECK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKDECK_PRETTY_LOG", true),

		// Sessions and screens
		SessionTTL:       mustDuration("LINKDECK_SESSION_TTL", 30*24*time.Hour),
		BcryptCost:       getenvInt("LINKDECK_BCRYPT_COST", bcrypt.DefaultCost),
		LongPressHold:    mustDuration("LINKDECK_LONGPRESS_HOLD", 500*time.Millisecond),
		NoticeDuration:   mustDuration("LINKDECK_NOTICE_DURATION", 3*time.Second),
		ScreenGCInterval: mustDuration("LINKDECK_SCREEN_GC_INTERVAL", 10*time.Minute),
		ScreenIdleTTL:    mustDuration("LINKDECK_SCREEN_IDLE_TTL", 30*time.Minute),
		SeedFile:         getenv("LINKDECK_SEED_FILE", ""),
		LoginRateBurst:   getenvInt("LINKDECK_LOGIN_RATE_BURST", 5),
		LoginRatePerMin:  getenvInt("LINKDECK_LOGIN_RATE_PER_MIN", 10),

		// Redis settings
		RedisAddr:             requireEnv("LINKDECK_REDIS_ADDR"),
		RedisUser:             getenv("LINKDECK_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("LINKDECK_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("LINKDECK_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("LINKDECK_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("LINKDECK_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("LINKDECK_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("LINKDECK_TRUST_PROXY", false),
	}

	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("FATAL: LINKDECK_REDIS_PASSWORD is required when LINKDECK_REDIS_PASSWORD_REQUIRED=true")
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
