package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// KioskConfig holds display and voucher settings. Fares are not configurable.
type KioskConfig struct {
	Name             string        `yaml:"kiosk_name"`
	BoardColumns     int           `yaml:"board_columns"`
	BoardColumnWidth int           `yaml:"board_column_width"`
	RuleWidth        int           `yaml:"rule_width"`
	VoucherTTL       time.Duration `yaml:"voucher_ttl"`
}

func DefaultKioskConfig() KioskConfig {
	return KioskConfig{
		Name:             "CTA",
		BoardColumns:     3,
		BoardColumnWidth: 18,
		RuleWidth:        70,
		VoucherTTL:       24 * time.Hour,
	}
}

// LoadKioskConfig decodes a YAML file over the defaults. An empty path returns the defaults.
func LoadKioskConfig(path string) (KioskConfig, error) {
	cfg := DefaultKioskConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return KioskConfig{}, errors.Wrapf(err, "reading kiosk config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return KioskConfig{}, errors.Wrapf(err, "parsing kiosk config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return KioskConfig{}, errors.Wrapf(err, "kiosk config %s", path)
	}
	return cfg, nil
}

func (c KioskConfig) Validate() error {
	switch {
	case c.Name == "":
		return errors.New("kiosk_name must not be empty")
	case c.BoardColumns < 1:
		return errors.New("board_columns should be greater than 0")
	case c.BoardColumnWidth < 1:
		return errors.New("board_column_width should be greater than 0")
	case c.RuleWidth < 1:
		return errors.New("rule_width should be greater than 0")
	case c.VoucherTTL <= 0:
		return errors.New("voucher_ttl should be greater than 0")
	}
	return nil
}

// Config is the resolved runtime configuration.
type Config struct {
	Env   Env
	Kiosk KioskConfig
}

// Load reads the environment, then the kiosk file it points to. Env values win.
func Load() (Config, error) {
	env := LoadEnv()
	kiosk, err := LoadKioskConfig(env.ConfigFile)
	if err != nil {
		return Config{}, err
	}
	if env.VoucherTTL > 0 {
		kiosk.VoucherTTL = env.VoucherTTL
	}
	return Config{Env: env, Kiosk: kiosk}, nil
}
