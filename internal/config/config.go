package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Config is resolved once at startup. There is no config file: the
// editor comes from the environment and the start directory from the
// command line or the working directory.
type Config struct {
	StartDir string // absolute
	Editor   string // may be empty; reported when first needed
}

func Load(startDir string) (*Config, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		startDir = wd
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}

	return &Config{StartDir: abs, Editor: editorFromEnv()}, nil
}

// EditorCommand builds the command that opens path in the configured
// editor. The editor value may carry arguments, e.g. "code --wait".
func (c *Config) EditorCommand(path string) (*exec.Cmd, error) {
	parts := strings.Fields(c.Editor)
	if len(parts) == 0 {
		return nil, errors.New("no editor configured — set $EDITOR (e.g. export EDITOR=vim)")
	}
	args := append(parts[1:], path)
	return exec.Command(parts[0], args...), nil
}

func editorFromEnv() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return os.Getenv("VISUAL")
}
