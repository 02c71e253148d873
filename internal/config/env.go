package config

import (
	"os"
	"strings"
	"time"
)

const (
	defaultAppAddr  = ":8080"
	defaultLogLevel = "warn"
)

type Env struct {
	AppAddr       string
	GinMode       string
	LogLevel      string
	VoucherSecret string
	VoucherTTL    time.Duration
	ConfigFile    string
	CORSOrigins   []string
}

// LoadEnv reads process environment. Unset or malformed values fall back to defaults;
// a zero VoucherTTL means "use the kiosk file value".
func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = defaultAppAddr
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	var ttl time.Duration
	if v := strings.TrimSpace(os.Getenv("VOUCHER_TTL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}

	var origins []string
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		LogLevel:      logLevel,
		VoucherSecret: os.Getenv("VOUCHER_SECRET"),
		VoucherTTL:    ttl,
		ConfigFile:    strings.TrimSpace(os.Getenv("KIOSK_CONFIG")),
		CORSOrigins:   origins,
	}
}
