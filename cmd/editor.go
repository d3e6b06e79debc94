package cmd

import (
	"os"

	"burrow/internal/config"
)

// launchEditor hands the terminal to the configured editor and blocks
// until it exits.
func launchEditor(cfg *config.Config, path string) error {
	c, err := cfg.EditorCommand(path)
	if err != nil {
		return err
	}
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
