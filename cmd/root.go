package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"burrow/internal/config"
	"burrow/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "burrow [directory]",
	Short: "Browse and open text files from the terminal",
	Long: `burrow is a small terminal file browser for text files.

Navigate with the arrow keys, filter the listing with /, open the
selected file in $EDITOR with Enter. Ctrl+N creates a titled markdown
note, Ctrl+D opens today's daily note.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := ""
		if len(args) == 1 {
			start = args[0]
		}
		cfg, err := config.Load(start)
		if err != nil {
			return err
		}
		p := tea.NewProgram(ui.New(cfg), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "burrow:", err)
		os.Exit(1)
	}
}
