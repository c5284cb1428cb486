package wander

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/gdamore/tcell/v2"
)

const openerTOML = `
[openers.go]
opener = "vim"
color = "cyan"

[openers.md]
opener = "glow"
color = "green"

[openers.pdf]
opener = "zathura"
color = "nosuchcolor"
`

func writeOpenerConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "opener.toml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOpenerConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		config, err := LoadOpenerConfig(writeOpenerConfig(t, openerTOML))
		assert.NoError(t, err)
		assert.Equal(t, 3, len(config.Openers))
		assert.Equal(t, "vim", config.Openers["go"].Opener)
		assert.Equal(t, "green", config.Openers["md"].Color)
	})

	t.Run("missing_file_is_empty_config", func(t *testing.T) {
		config, err := LoadOpenerConfig(filepath.Join(t.TempDir(), "none.toml"))
		assert.NoError(t, err)
		assert.NotZero(t, config)
		assert.Equal(t, 0, len(config.Openers))
	})

	t.Run("invalid_toml", func(t *testing.T) {
		_, err := LoadOpenerConfig(writeOpenerConfig(t, "[openers\nbroken"))
		assert.Error(t, err)
	})
}

func TestOpenerOpen(t *testing.T) {
	config, err := LoadOpenerConfig(writeOpenerConfig(t, openerTOML))
	assert.NoError(t, err)

	t.Run("configured", func(t *testing.T) {
		old := startCommand
		defer func() { startCommand = old }()
		var gotName string
		var gotArgs []string
		startCommand = func(name string, args ...string) error {
			gotName, gotArgs = name, args
			return nil
		}

		assert.NoError(t, config.Open("/tmp/a.go"))
		assert.Equal(t, "vim", gotName)
		assert.Equal(t, []string{"/tmp/a.go"}, gotArgs)
	})

	t.Run("unconfigured_extension", func(t *testing.T) {
		err := config.Open("/tmp/a.xyz")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no opener configured")
	})

	t.Run("spawn_failure", func(t *testing.T) {
		old := startCommand
		defer func() { startCommand = old }()
		startCommand = func(string, ...string) error {
			return errors.New("exec format error")
		}
		assert.Error(t, config.Open("/tmp/a.go"))
	})
}

func TestOpenerColorFor(t *testing.T) {
	config, err := LoadOpenerConfig(writeOpenerConfig(t, openerTOML))
	assert.NoError(t, err)

	t.Run("directory", func(t *testing.T) {
		assert.Equal(t, tcell.ColorLightBlue, config.ColorFor("src", true))
	})
	t.Run("configured", func(t *testing.T) {
		assert.Equal(t, tcell.ColorGreen, config.ColorFor("readme.md", false))
	})
	t.Run("unknown_color_name", func(t *testing.T) {
		assert.Equal(t, tcell.ColorWhiteSmoke, config.ColorFor("doc.pdf", false))
	})
	t.Run("unconfigured", func(t *testing.T) {
		assert.Equal(t, tcell.ColorWhiteSmoke, config.ColorFor("a.xyz", false))
	})
	t.Run("no_extension", func(t *testing.T) {
		assert.Equal(t, tcell.ColorWhiteSmoke, config.ColorFor("Makefile", false))
	})
}
