package logger

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"DebugConsole", Config{Level: "debug", Format: "console"}},
		{"InfoJSON", Config{Level: "info", Format: "json"}},
		{"UnknownLevel", Config{Level: "chatty", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNewChangeLog_AppendsTimestampedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "change.log")
	cfg := &Config{ChangeLog: path}

	first, err := NewChangeLog(cfg)
	require.NoError(t, err)
	first.Info("merging duplicate group", zap.String("key", "_id"))
	_ = first.Sync()

	second, err := NewChangeLog(cfg)
	require.NoError(t, err)
	second.Info("field updated", zap.String("field", "name"))
	_ = second.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2, "the second logger appends instead of truncating")

	stamp := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}`)
	assert.Regexp(t, stamp, lines[0])
	assert.Contains(t, lines[0], "merging duplicate group")
	assert.Contains(t, lines[1], "field updated")
}

// swapStreams points os.Stdout and os.Stderr at files for the rest of the test.
func swapStreams(t *testing.T) (stdout, stderr string) {
	dir := t.TempDir()
	stdout = filepath.Join(dir, "stdout")
	stderr = filepath.Join(dir, "stderr")

	out, err := os.Create(stdout)
	require.NoError(t, err)
	errf, err := os.Create(stderr)
	require.NoError(t, err)

	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = out, errf
	t.Cleanup(func() {
		os.Stdout, os.Stderr = origOut, origErr
		_ = out.Close()
		_ = errf.Close()
	})
	return stdout, stderr
}

func TestNewChangeLog_MirrorStream(t *testing.T) {
	tests := []struct {
		name       string
		mirrorTo   string
		wantStdout bool
	}{
		{"Default", "", true},
		{"Stdout", "stdout", true},
		{"Stderr", "stderr", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := swapStreams(t)
			cfg := &Config{
				ChangeLog: filepath.Join(t.TempDir(), "change.log"),
				Mirror:    true,
				MirrorTo:  tt.mirrorTo,
			}

			l, err := NewChangeLog(cfg)
			require.NoError(t, err)
			l.Info("merging duplicate group")
			_ = l.Sync()

			outData, err := os.ReadFile(stdout)
			require.NoError(t, err)
			errData, err := os.ReadFile(stderr)
			require.NoError(t, err)

			if tt.wantStdout {
				assert.Contains(t, string(outData), "merging duplicate group")
				assert.Empty(t, errData)
			} else {
				assert.Empty(t, outData)
				assert.Contains(t, string(errData), "merging duplicate group")
			}
		})
	}
}

func TestNewChangeLog_InvalidMirror(t *testing.T) {
	_, err := NewChangeLog(&Config{
		ChangeLog: filepath.Join(t.TempDir(), "change.log"),
		Mirror:    true,
		MirrorTo:  "syslog",
	})
	assert.ErrorContains(t, err, "invalid change log mirror")
}
