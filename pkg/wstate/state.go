// Package wstate persists the navigator's position between runs and
// writes the final working directory to the --cwd-file target on exit.
package wstate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/wanderfs/wander/pkg/fsutils"
)

const defaultSettingsDir = "~/.wander"
const stateFileName = "state.json"

var settingsDirPath = fsutils.ExpandHome(defaultSettingsDir)

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

// State is what survives between runs.
type State struct {
	CurrentDir string `json:"current_dir,omitempty"`
	ShowHidden bool   `json:"show_hidden,omitempty"`
}

func stateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

func Load() (*State, error) {
	var state State
	return &state, readJSON(stateFilePath(), false, &state)
}

// Save overwrites the persisted state. Persistence failures are not
// fatal to navigation, so the error is the caller's to log.
func Save(state State) error {
	return writeJSON(stateFilePath(), state)
}

// ReadCwdFile returns the directory stored in a cwd file, or "" when
// the file is missing or does not name an existing directory.
func ReadCwdFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	dir := strings.TrimSpace(string(data))
	if dir == "" {
		return ""
	}
	if exists, err := fsutils.DirExists(dir); err != nil || !exists {
		return ""
	}
	return dir
}

// WriteCwdFile writes dir, and nothing else, to path.
func WriteCwdFile(path, dir string) error {
	return os.WriteFile(path, []byte(dir), 0o644)
}
