package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/bnbtree/bnb"
	"github.com/katalvlaran/bnbtree/catalog"
	"github.com/katalvlaran/bnbtree/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lectureYAML = `
capacity: 20
items:
  - {id: A, weight: 10, value: 25}
  - {id: B, weight: 7, value: 21}
  - {id: C, weight: 5, value: 30}
  - {id: D, weight: 4, value: 8}
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	s, err := cfg.ParsedStrategy()
	require.NoError(t, err)
	assert.Equal(t, bnb.OnesFirst, s)
}

func TestLoad_FileAndEnv(t *testing.T) {
	p := writeFile(t, "bnbtree.yaml", "strategy: zeroes-first\noutput:\n  format: yaml\nlogging:\n  level: debug\n")

	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "zeroes-first", cfg.Strategy)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Indent, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)

	t.Setenv(config.EnvFormat, config.FormatJSON)
	t.Setenv(config.EnvStrategy, "ones-first")
	t.Setenv(config.EnvLogLevel, "warn")
	cfg, err = config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.Equal(t, "ones-first", cfg.Strategy)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeFile(t, "bad.yaml", "strategy: [unclosed"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "s.yaml", "strategy: breadth-first\n"))
	assert.ErrorIs(t, err, bnb.ErrUnknownStrategy)

	_, err = config.Load(writeFile(t, "f.yaml", "output:\n  format: xml\n"))
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestParseInstance(t *testing.T) {
	in, err := config.ParseInstance([]byte(lectureYAML))
	require.NoError(t, err)
	assert.Equal(t, 20.0, in.Capacity)
	require.Len(t, in.Items, 4)
	assert.Equal(t, catalog.NewItem("C", 5, 30), in.Items[2])

	cat, err := in.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Position("C"))
}

func TestParseInstance_Errors(t *testing.T) {
	_, err := config.ParseInstance([]byte("capacity: 3\nitems: []\n"))
	assert.ErrorIs(t, err, config.ErrNoItems)

	_, err = config.ParseInstance([]byte("capacity: 3\nitems:\n  - {id: A, weight: 0, value: 1}\n"))
	assert.ErrorIs(t, err, catalog.ErrInvalidItem)

	_, err = config.ParseInstance([]byte("capacity: 3\nstrategy: random\nitems:\n  - {id: A, weight: 1, value: 1}\n"))
	assert.ErrorIs(t, err, bnb.ErrUnknownStrategy)

	_, err = config.LoadInstance(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInstance(t *testing.T) {
	in, err := config.LoadInstance(writeFile(t, "inst.yaml", lectureYAML))
	require.NoError(t, err)
	assert.Len(t, in.Items, 4)
}
