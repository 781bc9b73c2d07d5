package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/dropbot/config"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func loadConfig(t *testing.T, args ...string) (*config.Config, []string) {
	cfg := &config.Config{}
	rest, err := cfg.Load(args)
	require.NoError(t, err)
	return cfg, rest
}

func TestSolveCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
width: 10
height: 20
field: "`+strings.Repeat("0,0,0,0,0,0,0,0,0,0;", 20)+`"
current: I
next: O
`), 0o644))

	cfg, rest := loadConfig(t, "--plies", "1", "solve", path)
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, rest, &out))
	assert.Equal(t, "right,right,right,drop\n", out.String())
}

func TestAutoplayCommand(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "games.csv")
	cfg, rest := loadConfig(t, "autoplay",
		"--autoplay-games", "3", "--autoplay-threads", "2",
		"--autoplay-max-pieces", "10", "--autoplay-output", logPath)
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, rest, &out))
	assert.Contains(t, out.String(), "Games played: 3")

	out.Reset()
	require.NoError(t, run(context.Background(), cfg, []string{"analyze", logPath}, &out))
	assert.Contains(t, out.String(), "Games played: 3")
}

func TestBadCommands(t *testing.T) {
	cfg := config.DefaultConfig()
	for _, args := range [][]string{
		nil,
		{"fly"},
		{"solve"},
		{"solve", filepath.Join(t.TempDir(), "missing.yaml")},
		{"analyze"},
	} {
		assert.Error(t, run(context.Background(), &cfg, args, &bytes.Buffer{}), "%v", args)
	}
}
