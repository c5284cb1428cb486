package wander

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// OpenerConfig maps file extensions to the command that opens them and
// the color their names are shown in. Loaded from opener.toml:
//
//	[openers]
//	[openers.go]
//	opener = "vim"
//	color = "cyan"
type OpenerConfig struct {
	Openers map[string]OpenerEntry `toml:"openers"`
}

type OpenerEntry struct {
	Opener string `toml:"opener"`
	Color  string `toml:"color"`
}

var startCommand = func(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	return cmd.Start()
}

// LoadOpenerConfig reads the opener table. A missing file yields an
// empty config; running without openers only disables the Enter key.
func LoadOpenerConfig(path string) (*OpenerConfig, error) {
	config := &OpenerConfig{Openers: map[string]OpenerEntry{}}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to parse opener config %s: %w", path, err)
	}
	if config.Openers == nil {
		config.Openers = map[string]OpenerEntry{}
	}
	return config, nil
}

func extensionOf(name string) string {
	return strings.TrimPrefix(filepath.Ext(name), ".")
}

// Open spawns the configured opener for the file, detached from the
// navigator's terminal.
func (c *OpenerConfig) Open(filePath string) error {
	ext := extensionOf(filePath)
	entry, ok := c.Openers[ext]
	if !ok || entry.Opener == "" {
		return fmt.Errorf("no opener configured for .%s files", ext)
	}
	if err := startCommand(entry.Opener, filePath); err != nil {
		return fmt.Errorf("failed to open %s with %s: %w", filePath, entry.Opener, err)
	}
	return nil
}

// ColorFor tints an entry name: directories a fixed color, files per
// the opener table, everything else the default text color.
func (c *OpenerConfig) ColorFor(name string, isDir bool) tcell.Color {
	if isDir {
		return tcell.ColorLightBlue
	}
	if entry, ok := c.Openers[extensionOf(name)]; ok {
		if color, ok := namedColors[entry.Color]; ok {
			return color
		}
	}
	return tcell.ColorWhiteSmoke
}

var namedColors = map[string]tcell.Color{
	"green":       tcell.ColorGreen,
	"blue":        tcell.ColorBlue,
	"red":         tcell.ColorRed,
	"cyan":        tcell.ColorDarkCyan,
	"magenta":     tcell.ColorDarkMagenta,
	"yellow":      tcell.ColorYellow,
	"orange":      tcell.ColorOrange,
	"purple":      tcell.ColorPurple,
	"pink":        tcell.ColorPink,
	"brown":       tcell.ColorBrown,
	"gray":        tcell.ColorGray,
	"darkgray":    tcell.ColorDarkGray,
	"lightblue":   tcell.ColorLightBlue,
	"lightgreen":  tcell.ColorLightGreen,
	"lightyellow": tcell.ColorLightYellow,
	"lightcyan":   tcell.ColorLightCyan,
	"lightgray":   tcell.ColorLightGray,
	"white":       tcell.ColorWhite,
	"whitesmoke":  tcell.ColorWhiteSmoke,
}
