package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/settings/internal/config"
	"github.com/idilsaglam/settings/internal/settings"
	"github.com/idilsaglam/settings/internal/ui"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("SETTINGS_LOG_LEVEL", "")
	t.Setenv("SETTINGS_THEME", "")
	t.Cleanup(func() { ui.SetTheme("classic") })
	return dir
}

func execute(t *testing.T, runTUI func(*settings.Screen) error, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(runTUI)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList_DefaultSeed(t *testing.T) {
	isolate(t)
	out, err := execute(t, nil, "list", "--no-color", "--theme", "mono")
	require.NoError(t, err)
	for _, s := range []string{"General", "About", "Privacy and Security", "Health", "2 sections", "4 items"} {
		assert.Contains(t, out, s)
	}
}

func TestList_Filter(t *testing.T) {
	isolate(t)
	out, err := execute(t, nil, "list", "--no-color", "--filter", "HEAL")
	require.NoError(t, err)
	assert.Contains(t, out, "Health")
	assert.Contains(t, out, "filter: HEAL")
	assert.NotContains(t, out, "General")
	assert.NotContains(t, out, "Privacy")
}

func TestList_SeedFromConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	data := "sections:\n  - - title: Network\n    - title: Wi-Fi\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	out, err := execute(t, nil, "list", "--no-color", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Network")
	assert.Contains(t, out, "Wi-Fi")
	assert.NotContains(t, out, "General")
}

func TestList_BadConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("filter_mode: regex\n"), 0o600))

	_, err := execute(t, nil, "list", "--config", path)
	assert.Error(t, err)
}

func TestRoot_LaunchesTUIWithSeededScreen(t *testing.T) {
	isolate(t)
	var got *settings.Screen
	_, err := execute(t, func(s *settings.Screen) error {
		got = s
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	secs, items := got.Counts()
	assert.Equal(t, 2, secs)
	assert.Equal(t, 4, items)
}

func TestRoot_LogLevelWritesLogFile(t *testing.T) {
	isolate(t)
	_, err := execute(t, func(*settings.Screen) error { return nil }, "--log-level", "debug")
	require.NoError(t, err)

	d, err := config.Dir()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(d, "settings.log"))
	assert.NoError(t, err)
}

func TestRoot_TUIErrorIsLogged(t *testing.T) {
	isolate(t)
	boom := errors.New("terminal went away")
	_, err := execute(t, func(*settings.Screen) error { return boom }, "--log-level", "error")
	assert.ErrorIs(t, err, boom)

	d, err := config.Dir()
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(d, "settings.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "tui exited with error")
	assert.Contains(t, string(b), "terminal went away")
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "settings ")
}

func TestList_ColorFlagForcesColourWhenPiped(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	_, err := execute(t, nil, "list", "--color")
	require.NoError(t, err)
	assert.Equal(t, termenv.ANSI256, lipgloss.ColorProfile())

	// Test output is not a terminal, so plain output is picked without --color.
	_, err = execute(t, nil, "list")
	require.NoError(t, err)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}
