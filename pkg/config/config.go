package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the static application configuration. Runtime user settings
// (credentials, layout slots, reminder presets) live in the Store instead.
type Config struct {
	Server struct {
		Enabled bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable the local status/control API"`
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=127.0.0.1:8845,description=Status API listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Status API configuration"`

	Data struct {
		Dir string `yaml:"dir" json:"dir" jsonschema:"default=config,description=Directory for settings and cache files"`
	} `yaml:"data" json:"data" jsonschema:"description=Data directory configuration"`

	Behavior BehaviorConfig `yaml:"behavior" json:"behavior" jsonschema:"description=Pet behavior tuning"`

	Steam SteamConfig `yaml:"steam" json:"steam" jsonschema:"description=Steam WebAPI configuration"`

	Epic EpicConfig `yaml:"epic" json:"epic" jsonschema:"description=Epic free games configuration"`

	News NewsConfig `yaml:"news" json:"news" jsonschema:"description=News feed configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM defaults; runtime settings override endpoint and key"`

	Schedule struct {
		NewsCron  string        `yaml:"news_cron" json:"news_cron" jsonschema:"default=0 9 * * *,description=Cron spec for the daily news refresh"`
		EpicEvery time.Duration `yaml:"epic_every" json:"epic_every" jsonschema:"default=6h,description=Epic free games refresh interval"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Background refresh schedule"`
}

// BehaviorConfig exposes the pet state machine knobs. The idle-speak chance
// is 1/SpeakChanceDenominator per tick, gated by MinPushGap since the last
// push; the tick period itself belongs to the renderer.
type BehaviorConfig struct {
	TickInterval           time.Duration `yaml:"tick_interval" json:"tick_interval" jsonschema:"default=100ms,description=Behavior engine tick period"`
	SpeakChanceDenominator int           `yaml:"speak_chance_denominator" json:"speak_chance_denominator" jsonschema:"default=3000,description=Idle-to-speaking chance is 1/N per tick"`
	MinPushGap             time.Duration `yaml:"min_push_gap" json:"min_push_gap" jsonschema:"default=60s,description=Minimum gap between spontaneous pushes"`
	SpeakTicks             int           `yaml:"speak_ticks" json:"speak_ticks" jsonschema:"default=300,description=Ticks before SPEAKING returns to IDLE"`
}

// SteamConfig holds Steam WebAPI endpoints and timeouts
type SteamConfig struct {
	APIBase      string        `yaml:"api_base" json:"api_base" jsonschema:"default=https://api.steampowered.com,description=Steam WebAPI base URL"`
	StoreBase    string        `yaml:"store_base" json:"store_base" jsonschema:"default=https://store.steampowered.com,description=Steam store API base URL"`
	Country      string        `yaml:"country" json:"country" jsonschema:"default=CN,description=Country code for store prices and wishlist"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=WebAPI request timeout"`
	StoreTimeout time.Duration `yaml:"store_timeout" json:"store_timeout" jsonschema:"default=5s,description=Store price request timeout"`
}

// EpicConfig holds Epic promotions endpoint parameters
type EpicConfig struct {
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://store-site-backend-static-ipv4.ak.epicgames.com,description=Epic promotions API base URL"`
	Locale  string        `yaml:"locale" json:"locale" jsonschema:"default=zh-CN,description=Locale for promotion titles"`
	Country string        `yaml:"country" json:"country" jsonschema:"default=CN,description=Country for promotion pricing"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
}

// Feed is one configured news source
type Feed struct {
	Name string `yaml:"name" json:"name" jsonschema:"required,description=Source name shown with items"`
	URL  string `yaml:"url" json:"url" jsonschema:"required,description=RSS/Atom feed URL"`
}

// NewsConfig holds news fetching configuration
type NewsConfig struct {
	Feeds       []Feed        `yaml:"feeds" json:"feeds" jsonschema:"description=News feed sources"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per-feed fetch timeout"`
	MaxBodySize int64         `yaml:"max_body_size" json:"max_body_size" jsonschema:"default=2097152,description=Response body size cap in bytes"`
	UserAgent   string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=steampet/1.0,description=User agent for feed requests"`
	MaxItems    int           `yaml:"max_items" json:"max_items" jsonschema:"default=30,description=Maximum merged items kept per day"`
}

// LLMConfig holds LLM generation defaults. Endpoint, key and model may be
// overridden by the runtime settings store.
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=300,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = "127.0.0.1:8845"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Data.Dir == "" {
		c.Data.Dir = "config"
	}

	// set defaults for behavior
	if c.Behavior.TickInterval == 0 {
		c.Behavior.TickInterval = 100 * time.Millisecond
	}
	if c.Behavior.SpeakChanceDenominator == 0 {
		c.Behavior.SpeakChanceDenominator = 3000
	}
	if c.Behavior.MinPushGap == 0 {
		c.Behavior.MinPushGap = 60 * time.Second
	}
	if c.Behavior.SpeakTicks == 0 {
		c.Behavior.SpeakTicks = 300
	}

	// set defaults for steam
	if c.Steam.APIBase == "" {
		c.Steam.APIBase = "https://api.steampowered.com"
	}
	if c.Steam.StoreBase == "" {
		c.Steam.StoreBase = "https://store.steampowered.com"
	}
	if c.Steam.Country == "" {
		c.Steam.Country = "CN"
	}
	if c.Steam.Timeout == 0 {
		c.Steam.Timeout = 10 * time.Second
	}
	if c.Steam.StoreTimeout == 0 {
		c.Steam.StoreTimeout = 5 * time.Second
	}

	// set defaults for epic
	if c.Epic.BaseURL == "" {
		c.Epic.BaseURL = "https://store-site-backend-static-ipv4.ak.epicgames.com"
	}
	if c.Epic.Locale == "" {
		c.Epic.Locale = "zh-CN"
	}
	if c.Epic.Country == "" {
		c.Epic.Country = "CN"
	}
	if c.Epic.Timeout == 0 {
		c.Epic.Timeout = 10 * time.Second
	}

	// set defaults for news
	if c.News.Timeout == 0 {
		c.News.Timeout = 10 * time.Second
	}
	if c.News.MaxBodySize == 0 {
		c.News.MaxBodySize = 2 << 20
	}
	if c.News.UserAgent == "" {
		c.News.UserAgent = "steampet/1.0"
	}
	if c.News.MaxItems == 0 {
		c.News.MaxItems = 30
	}

	// set defaults for llm
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 300
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}

	// set defaults for schedule
	if c.Schedule.NewsCron == "" {
		c.Schedule.NewsCron = "0 9 * * *"
	}
	if c.Schedule.EpicEvery == 0 {
		c.Schedule.EpicEvery = 6 * time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.Behavior.SpeakChanceDenominator < 1 {
		return fmt.Errorf("behavior.speak_chance_denominator must be at least 1")
	}
	if cfg.Behavior.SpeakTicks < 1 {
		return fmt.Errorf("behavior.speak_ticks must be at least 1")
	}
	if cfg.Server.Enabled && cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	for _, f := range cfg.News.Feeds {
		if f.URL == "" {
			return fmt.Errorf("news feed %q has no url", f.Name)
		}
	}
	return nil
}

// GetServerConfig returns status API listen address and timeout
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetFeeds returns configured news sources
func (c *Config) GetFeeds() []Feed {
	return c.News.Feeds
}
