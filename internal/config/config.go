package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Poll     PollConfig     `mapstructure:"poll"`
	Feeds    FeedsConfig    `mapstructure:"feeds"`
	Lag      LagConfig      `mapstructure:"lag"`
	Live     LiveConfig     `mapstructure:"live"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

// UpstreamConfig points at the trading data-plane API. BaseURL and APIKey
// have no defaults on purpose: a gateway that cannot reach its upstream
// is misconfigured, and that must surface at boot, not per request.
type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// PollConfig holds the refresh interval per data source. The timers are
// deliberately independent; nothing synchronizes them.
type PollConfig struct {
	Stats      time.Duration `mapstructure:"stats"`
	StreamLag  time.Duration `mapstructure:"stream_lag"`
	Strategies time.Duration `mapstructure:"strategies"`
	Events     time.Duration `mapstructure:"events"`
}

type FeedsConfig struct {
	Limit int `mapstructure:"limit"`
}

// LagConfig carries the injectable lag-banding thresholds.
type LagConfig struct {
	WarnAfter time.Duration `mapstructure:"warn_after"`
	BadAfter  time.Duration `mapstructure:"bad_after"`
}

type LiveConfig struct {
	PushInterval time.Duration `mapstructure:"push_interval"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	// Empty defaults register the keys so env-only values are seen by
	// Unmarshal; validation still rejects them when left blank.
	v.SetDefault("upstream.base_url", "")
	v.SetDefault("upstream.api_key", "")
	v.SetDefault("upstream.timeout", "15s")
	v.SetDefault("poll.stats", "10m")
	v.SetDefault("poll.stream_lag", "30s")
	v.SetDefault("poll.strategies", "15s")
	v.SetDefault("poll.events", "10s")
	v.SetDefault("feeds.limit", 20)
	v.SetDefault("lag.warn_after", "5s")
	v.SetDefault("lag.bad_after", "120s")
	v.SetDefault("live.push_interval", "1s")

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Upstream.BaseURL) == "" {
		return fmt.Errorf("upstream.base_url is required (MD_UPSTREAM_BASE_URL)")
	}
	if strings.TrimSpace(c.Upstream.APIKey) == "" {
		return fmt.Errorf("upstream.api_key is required (MD_UPSTREAM_API_KEY)")
	}
	if c.Lag.WarnAfter <= 0 || c.Lag.BadAfter <= c.Lag.WarnAfter {
		return fmt.Errorf("lag thresholds must satisfy 0 < warn_after < bad_after")
	}
	return nil
}
