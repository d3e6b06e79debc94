package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"burrow/internal/config"
	"burrow/internal/explorer"
)

var newCmd = &cobra.Command{
	Use:     "new <title>",
	Aliases: []string{"n"},
	Short:   "Create a markdown note and open it in your editor",
	Long: `Creates an empty note in the current directory, named after the
sanitized title, and opens it in $EDITOR. A name collision gets a
numeric suffix instead of clobbering the existing note.`,
	Example: "  burrow new shopping list",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		path, err := explorer.CreateNote(cfg.StartDir, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return launchEditor(cfg, path)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
