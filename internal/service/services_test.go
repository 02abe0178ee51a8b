package service

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-pages-go/internal/config"
	"seo-pages-go/pkg/api"
	"seo-pages-go/pkg/logger"
)

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.NewManager().Load("")
	require.NoError(t, err)
	cfg.Output.DataDir = filepath.Join(t.TempDir(), "data")
	return cfg
}

func TestNew(t *testing.T) {
	cfg := loadConfig(t)

	s, err := New(cfg)
	require.NoError(t, err)
	defer s.Close()

	assert.DirExists(t, cfg.Output.DataDir)
	assert.Equal(t, filepath.Join(cfg.Output.DataDir, "pages.json"), s.Store.Path())
	assert.Nil(t, s.Sitemap, "no base URL, no sitemap")
	assert.Equal(t, "poubelle-salle-de-bain", s.Slugs.Make("poubelle", "salle de bain"))
}

func TestNew_WithSitemap(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Site.BaseURL = "https://www.example.fr"

	s, err := New(cfg)
	require.NoError(t, err)
	assert.NotNil(t, s.Sitemap)
}

func TestKeywordClient(t *testing.T) {
	cfg := loadConfig(t)
	s, err := New(cfg)
	require.NoError(t, err)

	c, err := s.KeywordClient(cfg.Haloscan)
	require.NoError(t, err)
	assert.IsType(t, &api.CommandClient{}, c)

	cfg.Haloscan.Mode = config.ModeHTTP
	cfg.Haloscan.Endpoint = "http://127.0.0.1:1/keywords"
	c, err = s.KeywordClient(cfg.Haloscan)
	require.NoError(t, err)
	assert.IsType(t, &api.HTTPClient{}, c)
	s.Close()

	cfg.Haloscan.Mode = "grpc"
	_, err = s.KeywordClient(cfg.Haloscan)
	assert.Error(t, err)
}

func TestLogConfig_MasksSecrets(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Haloscan.APIKey = "super-secret-key"
	cfg.Haloscan.Endpoint = "https://api.haloscan.com/api/keywords/overview?token=abc"

	var buf bytes.Buffer
	LogConfig(cfg, logger.NewWithWriter(&buf, "info"))

	out := buf.String()
	assert.NotContains(t, out, "super-secret-key")
	assert.NotContains(t, out, "token=abc")
	assert.Contains(t, out, "api.haloscan.com")
}
