package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwestend/pswatch/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "pswatch <name>",
	Short: "Watch memory, CPU, and disk I/O for processes matching a name",
	Long: `Watch memory, CPU, and disk I/O for processes matching the given name.

Every matching process gets a header and live charts of its metric
history. Processes that exit stay on screen, dimmed and condensed.

Keys:
  q, ctrl+c   quit
  r           reset all entries
  E           expand all entries
  C           condense all entries`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.Run(args[0])
	},
}

// SetVersionInfo wires build-time version metadata into --version.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

// Execute runs the root command, printing any failure to stderr and
// exiting nonzero. A user-initiated quit exits zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
