package config

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seo-pages-go/pkg/slug"
)

// EnvPrefix prefixes every environment override (SEOPAGES_HALOSCAN_API_KEY, ...).
const EnvPrefix = "SEOPAGES"

type manager struct {
	mu     sync.RWMutex
	config *Config
	viper  *viper.Viper
}

func NewManager() Manager {
	m := &manager{viper: viper.New()}
	m.setDefaults()
	return m
}

// BindFlags binds command-line flags to configuration keys. Flags that were
// not set on the command line leave the configured value alone.
func (m *manager) BindFlags(flags *pflag.FlagSet, bindings map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("unknown flag %q for key %q", name, key)
		}
		if err := m.viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads configPath (optional), applies environment overrides and
// validates the result.
func (m *manager) Load(configPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setupViper()

	if configPath != "" {
		m.viper.SetConfigFile(configPath)
		if err := m.viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return &config, nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) setupViper() {
	m.viper.SetEnvPrefix(EnvPrefix)
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()
}

func (m *manager) setDefaults() {
	v := m.viper

	v.SetDefault("output.data_dir", "output/poubelles")
	v.SetDefault("output.pages_file", "pages.json")
	v.SetDefault("output.csv_file", "pages.csv")
	v.SetDefault("output.log_file", "progress.log")
	v.SetDefault("output.sitemap_file", "sitemap.xml")
	v.SetDefault("output.metrics_file", "metrics.prom")

	v.SetDefault("haloscan.mode", ModeCommand)
	v.SetDefault("haloscan.command", []string{"python3", "scripts/haloscan.py"})
	v.SetDefault("haloscan.endpoint", "")
	v.SetDefault("haloscan.api_key", "")
	v.SetDefault("haloscan.timeout", 30*time.Second)
	v.SetDefault("haloscan.delay", 500*time.Millisecond)
	v.SetDefault("haloscan.checkpoint_every", 20)
	v.SetDefault("haloscan.limit", 300)

	v.SetDefault("slug.transliteration", string(slug.ModeLegacy))

	v.SetDefault("site.base_url", "")
	v.SetDefault("site.max_urls_per_sitemap", 50000)
	v.SetDefault("site.deploy_slugs", DefaultDeploySlugs)

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.reload_debounce", 2*time.Second)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.time_format", "15:04:05")
}

func validateConfig(config *Config) error {
	if config.Output.DataDir == "" {
		return fmt.Errorf("output.data_dir cannot be empty")
	}
	if config.Output.PagesFile == "" {
		return fmt.Errorf("output.pages_file cannot be empty")
	}
	if config.Output.CSVFile == "" {
		return fmt.Errorf("output.csv_file cannot be empty")
	}

	h := config.Haloscan
	switch h.Mode {
	case ModeCommand:
		if len(h.Command) == 0 || strings.TrimSpace(h.Command[0]) == "" {
			return fmt.Errorf("haloscan.command cannot be empty in %s mode", ModeCommand)
		}
	case ModeHTTP:
		if h.Endpoint == "" {
			return fmt.Errorf("haloscan.endpoint is required in %s mode", ModeHTTP)
		}
		if _, err := url.ParseRequestURI(h.Endpoint); err != nil {
			return fmt.Errorf("invalid haloscan.endpoint: %w", err)
		}
	default:
		return fmt.Errorf("unknown haloscan.mode %q", h.Mode)
	}
	if h.Timeout <= 0 {
		return fmt.Errorf("haloscan.timeout must be positive")
	}
	if h.Delay < 0 {
		return fmt.Errorf("haloscan.delay cannot be negative")
	}
	if h.CheckpointEvery <= 0 {
		return fmt.Errorf("haloscan.checkpoint_every must be positive")
	}
	if h.Limit < 0 {
		return fmt.Errorf("haloscan.limit cannot be negative")
	}

	if _, err := slug.ParseMode(config.Slug.Transliteration); err != nil {
		return err
	}

	if config.Site.BaseURL != "" {
		u, err := url.Parse(config.Site.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid site.base_url %q", config.Site.BaseURL)
		}
	}
	if config.Site.MaxURLsPerSitemap <= 0 {
		return fmt.Errorf("site.max_urls_per_sitemap must be positive")
	}

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	return nil
}
