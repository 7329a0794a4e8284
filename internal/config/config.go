// Package config loads service and CLI configuration from files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonathan/legaldoc/internal/cache"
	"github.com/jonathan/legaldoc/internal/emit"
	"github.com/jonathan/legaldoc/internal/logging"
	"github.com/jonathan/legaldoc/internal/rendering"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. LEGALDOC_SERVER_ADDRESS.
const EnvPrefix = "LEGALDOC"

// Config is the full configuration. Every field is optional; Load fills gaps
// from Defaults.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" json:"server"`
	Database DatabaseConfig `mapstructure:"database" json:"database"`
	Redis    RedisConfig    `mapstructure:"redis" json:"redis"`
	PDF      PDFConfig      `mapstructure:"pdf" json:"pdf"`
	Render   RenderConfig   `mapstructure:"render" json:"render"`
	Page     emit.PageSetup `mapstructure:"page" json:"page"`
	Logging  LoggingConfig  `mapstructure:"logging" json:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Address        string        `mapstructure:"address" json:"address"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout" json:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" json:"write_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins" json:"allowed_origins"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes" json:"max_body_bytes"`
}

// DatabaseConfig configures correction persistence. An empty URL disables it.
type DatabaseConfig struct {
	URL          string `mapstructure:"url" json:"url"`
	EnsureSchema bool   `mapstructure:"ensure_schema" json:"ensure_schema"`
}

// RedisConfig configures the PDF cache. An empty address disables it.
type RedisConfig struct {
	Address  string        `mapstructure:"address" json:"address"`
	Password string        `mapstructure:"password" json:"-"`
	DB       int           `mapstructure:"db" json:"db"`
	TTL      time.Duration `mapstructure:"ttl" json:"ttl"`
}

// PDFConfig configures the headless browser used for PDF export.
type PDFConfig struct {
	ChromePath string        `mapstructure:"chrome_path" json:"chrome_path"`
	Timeout    time.Duration `mapstructure:"timeout" json:"timeout"`
}

// RenderConfig overrides the locale tables used by the renderers.
type RenderConfig struct {
	BoldTriggers  []string            `mapstructure:"bold_triggers" json:"bold_triggers"`
	KindTriggers  map[string][]string `mapstructure:"kind_triggers" json:"kind_triggers"`
	Ordinals      []string            `mapstructure:"ordinals" json:"ordinals"`
	OrdinalSuffix string              `mapstructure:"ordinal_suffix" json:"ordinal_suffix"`
}

// LoggingConfig selects the zap level and encoding.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	render := rendering.DefaultOptions()
	return Config{
		Server: ServerConfig{
			Address:      ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		Redis: RedisConfig{TTL: 24 * time.Hour},
		PDF:   PDFConfig{Timeout: 30 * time.Second},
		Render: RenderConfig{
			BoldTriggers:  render.DefaultBoldTriggers,
			Ordinals:      render.OrdinalTable,
			OrdinalSuffix: render.OrdinalSuffix,
		},
		Page:    emit.DefaultPageSetup(),
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads configuration from path (JSON, YAML or TOML by extension) and
// LEGALDOC_* environment variables. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)
	v.SetDefault("database.url", d.Database.URL)
	v.SetDefault("database.ensure_schema", d.Database.EnsureSchema)
	v.SetDefault("redis.address", d.Redis.Address)
	v.SetDefault("redis.password", d.Redis.Password)
	v.SetDefault("redis.db", d.Redis.DB)
	v.SetDefault("redis.ttl", d.Redis.TTL)
	v.SetDefault("pdf.chrome_path", d.PDF.ChromePath)
	v.SetDefault("pdf.timeout", d.PDF.Timeout)
	v.SetDefault("render.bold_triggers", d.Render.BoldTriggers)
	v.SetDefault("render.ordinals", d.Render.Ordinals)
	v.SetDefault("render.ordinal_suffix", d.Render.OrdinalSuffix)
	v.SetDefault("page.size", string(d.Page.Size))
	v.SetDefault("page.width_in", d.Page.WidthIn)
	v.SetDefault("page.height_in", d.Page.HeightIn)
	v.SetDefault("page.margin_in", d.Page.MarginIn)
	v.SetDefault("page.font_family", d.Page.FontFamily)
	v.SetDefault("page.font_size_pt", d.Page.FontSizePt)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("config error: server timeouts must be non-negative")
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("config error: 'server.max_body_bytes' must be non-negative")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("config error: 'redis.db' must be non-negative")
	}
	if c.Redis.TTL < 0 {
		return fmt.Errorf("config error: 'redis.ttl' must be non-negative")
	}
	if c.PDF.Timeout < 0 {
		return fmt.Errorf("config error: 'pdf.timeout' must be non-negative")
	}
	if c.PDF.ChromePath != "" {
		if _, err := os.Stat(c.PDF.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome executable not found: %s", c.PDF.ChromePath)
		}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	for kind := range c.Render.KindTriggers {
		if !knownKind(kind) {
			return fmt.Errorf("config error: unknown section kind %q in 'render.kind_triggers'", kind)
		}
	}
	if err := c.RenderOptions().Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := c.Page.Validate(); err != nil {
		return fmt.Errorf("config error: page: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Server.Address == "" {
		result.Server.Address = defaults.Server.Address
	}
	if result.Server.ReadTimeout == 0 {
		result.Server.ReadTimeout = defaults.Server.ReadTimeout
	}
	if result.Server.WriteTimeout == 0 {
		result.Server.WriteTimeout = defaults.Server.WriteTimeout
	}
	if result.Server.MaxBodyBytes == 0 {
		result.Server.MaxBodyBytes = defaults.Server.MaxBodyBytes
	}
	if len(result.Server.AllowedOrigins) == 0 {
		result.Server.AllowedOrigins = defaults.Server.AllowedOrigins
	}
	if result.Database.URL == "" {
		result.Database.URL = defaults.Database.URL
	}
	if result.Redis.Address == "" {
		result.Redis.Address = defaults.Redis.Address
	}
	if result.Redis.TTL == 0 {
		result.Redis.TTL = defaults.Redis.TTL
	}
	if result.PDF.ChromePath == "" {
		result.PDF.ChromePath = defaults.PDF.ChromePath
	}
	if result.PDF.Timeout == 0 {
		result.PDF.Timeout = defaults.PDF.Timeout
	}
	if len(result.Render.BoldTriggers) == 0 {
		result.Render.BoldTriggers = defaults.Render.BoldTriggers
	}
	if len(result.Render.Ordinals) == 0 {
		result.Render.Ordinals = defaults.Render.Ordinals
	}
	if result.Render.OrdinalSuffix == "" {
		result.Render.OrdinalSuffix = defaults.Render.OrdinalSuffix
	}
	result.Page = mergePage(result.Page, defaults.Page)
	if result.Logging.Level == "" {
		result.Logging.Level = defaults.Logging.Level
	}
	if result.Logging.Format == "" {
		result.Logging.Format = defaults.Logging.Format
	}

	// Bool fields cannot distinguish unset from false, so they are not merged.

	return result
}

func mergePage(page, defaults emit.PageSetup) emit.PageSetup {
	if page.Size == "" {
		page.Size = defaults.Size
	}
	if page.WidthIn == 0 {
		page.WidthIn = defaults.WidthIn
	}
	if page.HeightIn == 0 {
		page.HeightIn = defaults.HeightIn
	}
	if page.MarginIn == 0 {
		page.MarginIn = defaults.MarginIn
	}
	if page.FontFamily == "" {
		page.FontFamily = defaults.FontFamily
	}
	if page.FontSizePt == 0 {
		page.FontSizePt = defaults.FontSizePt
	}
	return page
}

// RenderOptions converts the render section into renderer options.
func (c *Config) RenderOptions() rendering.Options {
	opts := rendering.Options{
		DefaultBoldTriggers: c.Render.BoldTriggers,
		OrdinalTable:        c.Render.Ordinals,
		OrdinalSuffix:       c.Render.OrdinalSuffix,
	}
	if len(c.Render.KindTriggers) > 0 {
		opts.BoldTriggers = make(map[rendering.SectionKind][]string, len(c.Render.KindTriggers))
		for kind, phrases := range c.Render.KindTriggers {
			opts.BoldTriggers[rendering.SectionKind(kind)] = phrases
		}
	}
	return opts
}

// CacheOptions converts the redis section into cache options.
func (c *Config) CacheOptions() cache.Options {
	return cache.Options{
		Address:  c.Redis.Address,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
		TTL:      c.Redis.TTL,
	}
}

// PageFor returns the configured page resized to size. An empty size keeps
// the configured paper.
func (c *Config) PageFor(size string) (emit.PageSetup, error) {
	if size == "" {
		return c.Page, nil
	}
	sized, err := emit.PageSetupFor(size)
	if err != nil {
		return emit.PageSetup{}, err
	}
	page := c.Page
	page.Size = sized.Size
	page.WidthIn = sized.WidthIn
	page.HeightIn = sized.HeightIn
	return page, nil
}

func knownKind(kind string) bool {
	for _, k := range rendering.SectionKinds() {
		if string(k) == kind {
			return true
		}
	}
	return false
}
