package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/regform/internal/form"
	"github.com/sandeepkv93/regform/internal/model"
)

type RuntimeConfig struct {
	DBPath            string
	CatalogPath       string
	StrictZip         bool
	DefaultPayment    string
	DebugLogPath      string
	NotificationLimit int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:            "regform.db",
		CatalogPath:       "",
		StrictZip:         false,
		DefaultPayment:    string(model.PaymentCreditCard),
		DebugLogPath:      "",
		NotificationLimit: 40,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("REGFORM_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("REGFORM_CATALOG"); ok {
		cfg.CatalogPath = v
	}
	if v, ok := getEnvBool("REGFORM_STRICT_ZIP"); ok {
		cfg.StrictZip = v
	}
	if v, ok := getEnvString("REGFORM_DEFAULT_PAYMENT"); ok {
		if p, err := model.ParsePaymentMethod(v); err == nil {
			cfg.DefaultPayment = string(p)
		}
	}
	if v, ok := getEnvString("REGFORM_DEBUG_LOG"); ok {
		cfg.DebugLogPath = v
	}
	if v, ok := getEnvInt("REGFORM_NOTIFICATION_LIMIT"); ok && v > 0 {
		cfg.NotificationLimit = v
	}
	return cfg
}

// FormConfig converts the runtime settings into controller options. An
// unknown payment method falls back to credit card.
func (c RuntimeConfig) FormConfig() form.Config {
	out := form.DefaultConfig()
	out.StrictZip = c.StrictZip
	if p, err := model.ParsePaymentMethod(c.DefaultPayment); err == nil {
		out.DefaultPayment = p
	}
	return out
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
