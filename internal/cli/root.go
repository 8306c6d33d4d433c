package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	optionsFile string
	dryRun      bool
	version     = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "repoagent",
	Short: "AI issue-evaluation bot for GitHub",
	Long: `repoagent evaluates GitHub issues as engineering user stories using a
language model and posts the result as a comment. Follow-up comment commands
(/apply, /review, /usage, /disable) drive further actions.

Designed to run inside a GitHub Actions workflow, one issue event per run.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&optionsFile, "options", "", "options file path")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "skip all GitHub writes")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("repoagent version %s\n", version)
		},
	}
}
