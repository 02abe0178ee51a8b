package api

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHaloscan writes an executable shell script standing in for the
// Haloscan wrapper and returns its path.
func fakeHaloscan(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "haloscan.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestCommandClient_Lookup(t *testing.T) {
	// echoes its arguments into the cpc field to check the call shape
	script := fakeHaloscan(t, `
[ "$1" = "keyword" ] && [ "$2" = "Poubelle bambou" ] && [ "$3" = "highlights" ] || { echo "bad args: $*" >&2; exit 2; }
echo '{"results":[{"volume":1200,"allintitle":45,"cpc":0.8}]}'`)

	c, err := NewCommandClient([]string{"/bin/sh", script}, 5*time.Second)
	require.NoError(t, err)

	m, err := c.Lookup(context.Background(), "Poubelle bambou")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 1200.0, *m.Volume)
	assert.Equal(t, 45.0, *m.AllInTitle)
	assert.Equal(t, 0.8, *m.CPC)
}

func TestCommandClient_NoResults(t *testing.T) {
	script := fakeHaloscan(t, `echo '{"results":[]}'`)
	c, err := NewCommandClient([]string{"/bin/sh", script}, 5*time.Second)
	require.NoError(t, err)

	m, err := c.Lookup(context.Background(), "Poubelle zinc")
	assert.NoError(t, err)
	assert.Nil(t, m)
}

func TestCommandClient_NonZeroExit(t *testing.T) {
	script := fakeHaloscan(t, `echo "quota exceeded" >&2; exit 3`)
	c, err := NewCommandClient([]string{"/bin/sh", script}, 5*time.Second)
	require.NoError(t, err)

	_, err = c.Lookup(context.Background(), "x")
	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestCommandClient_Malformed(t *testing.T) {
	script := fakeHaloscan(t, `echo 'Traceback (most recent call last)'`)
	c, err := NewCommandClient([]string{"/bin/sh", script}, 5*time.Second)
	require.NoError(t, err)

	_, err = c.Lookup(context.Background(), "x")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCommandClient_Timeout(t *testing.T) {
	script := fakeHaloscan(t, `exec sleep 5`)
	c, err := NewCommandClient([]string{"/bin/sh", script}, 100*time.Millisecond)
	require.NoError(t, err)

	start := time.Now()
	_, err = c.Lookup(context.Background(), "x")
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, OutcomeTimeout, ClassifyError(err))
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestCommandClient_Canceled(t *testing.T) {
	script := fakeHaloscan(t, `echo '{}'`)
	c, err := NewCommandClient([]string{"/bin/sh", script}, time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Lookup(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewCommandClient_Validation(t *testing.T) {
	_, err := NewCommandClient(nil, time.Second)
	assert.Error(t, err)
	_, err = NewCommandClient([]string{" "}, time.Second)
	assert.Error(t, err)
	_, err = NewCommandClient([]string{"python3"}, 0)
	assert.Error(t, err)
}
