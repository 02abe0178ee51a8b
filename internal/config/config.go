package config

import (
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Haloscan HaloscanConfig `mapstructure:"haloscan"`
	Slug     SlugConfig     `mapstructure:"slug"`
	Site     SiteConfig     `mapstructure:"site"`
	Server   ServerConfig   `mapstructure:"server"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

type OutputConfig struct {
	DataDir     string `mapstructure:"data_dir"`
	PagesFile   string `mapstructure:"pages_file"`
	CSVFile     string `mapstructure:"csv_file"`
	LogFile     string `mapstructure:"log_file"`
	SitemapFile string `mapstructure:"sitemap_file"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// Path resolves name inside the data directory. Absolute names and the empty
// string are returned unchanged.
func (o OutputConfig) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.DataDir, name)
}

type HaloscanConfig struct {
	Mode            string        `mapstructure:"mode"`
	Command         []string      `mapstructure:"command"`
	Endpoint        string        `mapstructure:"endpoint"`
	APIKey          string        `mapstructure:"api_key"`
	Timeout         time.Duration `mapstructure:"timeout"`
	Delay           time.Duration `mapstructure:"delay"`
	CheckpointEvery int           `mapstructure:"checkpoint_every"`
	Limit           int           `mapstructure:"limit"`
}

type SlugConfig struct {
	Transliteration string `mapstructure:"transliteration"`
}

type SiteConfig struct {
	BaseURL           string   `mapstructure:"base_url"`
	MaxURLsPerSitemap int      `mapstructure:"max_urls_per_sitemap"`
	DeploySlugs       []string `mapstructure:"deploy_slugs"`
}

type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	ReloadDebounce time.Duration `mapstructure:"reload_debounce"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"time_format"`
}

const (
	ModeCommand = "command"
	ModeHTTP    = "http"
)

// DefaultDeploySlugs are the pages published first.
var DefaultDeploySlugs = []string{
	"cache-poubelle",
	"cache-poubelle-exterieur",
	"cache-poubelle-jardin",
	"abri-poubelle",
	"poubelle-cuisine",
	"poubelle-salle-de-bain",
	"poubelle-bureau",
	"poubelle-tri-selectif",
	"poubelle-compost",
	"composteur-appartement",
	"poubelle-automatique",
	"poubelle-50l-cuisine",
}

type Manager interface {
	BindFlags(flags *pflag.FlagSet, bindings map[string]string) error
	Load(configPath string) (*Config, error)
	GetConfig() *Config
}
