package deps

import (
	"time"

	"linkdeck/internal/auth"
	"linkdeck/internal/httpserver/mw"
	"linkdeck/internal/logger"
	"linkdeck/internal/notify"
	"linkdeck/internal/screen"
	redisstore "linkdeck/internal/store/redis"
)

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time   // for testing, defaults to time.Now
	AllowedHosts   []string           // Host headers allowed to access the server
	AllowedCIDRS   []string           // IPs allowed to access healthz/readyz endpoints
	TrustProxy     bool               // true if running behind a trusted reverse proxy
	Store          *redisstore.Store  // link/user/session persistence
	Auth           *auth.Provider     // sign-in-or-provision session provider
	Notifier       *notify.Center     // single-slot notification channel
	Screens        *screen.Registry   // per-session list screens
	LoginRateLimit mw.RateLimitConfig // brute-force protection on login
}
