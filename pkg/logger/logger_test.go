package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AppendsToLogFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "progress.log")
	require.NoError(t, os.WriteFile(logFile, []byte("previous run\n"), 0644))

	l := New(Config{
		Level:      "info",
		Format:     "console",
		Output:     filepath.Join(dir, "stdout.log"),
		File:       logFile,
		TimeFormat: "15:04:05",
	})
	l.WithField("component", "test").Info("generation finished")
	l.Debug("hidden at info level")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "previous run\n"))
	assert.Contains(t, content, "generation finished")
	assert.Contains(t, content, "component=test")
	assert.NotContains(t, content, "hidden at info level")
	assert.NotContains(t, content, "\x1b[", "file output must not carry colour codes")
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug")
	l.WithFields(map[string]interface{}{"slug": "poubelle-cuisine"}).Warn("lookup failed")

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"slug":"poubelle-cuisine"`)
}

func TestSetLogger_RoutesZerologGlobal(t *testing.T) {
	prev, prevZ := GetLogger(), zlog.Logger
	t.Cleanup(func() {
		SetLogger(prev)
		zlog.Logger = prevZ
	})

	var buf bytes.Buffer
	SetLogger(NewWithWriter(&buf, "info").WithField("run", "r1"))

	zlog.Info().Msg("from zerolog")
	GetLogger().Info("from logger")

	assert.Contains(t, buf.String(), "from zerolog")
	assert.Contains(t, buf.String(), "from logger")
	assert.Equal(t, 2, strings.Count(buf.String(), `"run":"r1"`))
}

func TestSecurityLogger_Masking(t *testing.T) {
	var buf bytes.Buffer
	sl := NewSecurityLogger(NewWithWriter(&buf, "info"))

	assert.Regexp(t, `^api\.haloscan\.com/api#[0-9a-f]{8}$`, sl.MaskAPIEndpoint("https://api.haloscan.com/api/keywords/overview?x=1"))
	assert.Regexp(t, `^secret#[0-9a-f]{8}$`, sl.MaskSecret("s3cr3t"))
	assert.Empty(t, sl.MaskSecret(""))

	masked := sl.MaskSensitiveData(map[string]interface{}{
		"api_key":  "s3cr3t",
		"endpoint": "https://api.haloscan.com/x",
		"limit":    300,
	})
	assert.NotEqual(t, "s3cr3t", masked["api_key"])
	assert.Equal(t, 300, masked["limit"])

	sl.SafeInfo("using token=abcdef", map[string]interface{}{"api_key": "s3cr3t"})
	assert.NotContains(t, buf.String(), "s3cr3t")
	assert.NotContains(t, buf.String(), "abcdef")
}

func TestProgressReporter(t *testing.T) {
	var buf bytes.Buffer
	pr := NewProgressReporter(2, "Keyword enrichment", NewWithWriter(&buf, "info"))

	pr.Update(1)
	pr.Update(1)
	current, total := pr.GetProgress()
	assert.Equal(t, 2, current)
	assert.Equal(t, 2, total)
	assert.Contains(t, buf.String(), "Keyword enrichment: 2/2 (100.0%)")
}
