package cli

import (
	"github.com/michael140711/enhanced-lrc-maker/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lrcmaker",
	Short: "Word-level lyric timing and Enhanced LRC conversion",
	Long: `Lrcmaker converts song lyrics between plain text, classic LRC,
Enhanced LRC and a JSON snapshot, keeping per-word timestamps in
non-decreasing order.

Words the source leaves untimed get their times estimated by interpolating
between the nearest timed neighbors.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
