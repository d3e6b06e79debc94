package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"burrow/internal/config"
	"burrow/internal/explorer"
)

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Open today's daily note in your editor",
	Long: `Opens the date-named note for today (e.g. 2024-03-07.md) in the
current directory, creating it empty first if it does not exist.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		path, err := explorer.EnsureDailyNote(cfg.StartDir, time.Now())
		if err != nil {
			return err
		}
		return launchEditor(cfg, path)
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
