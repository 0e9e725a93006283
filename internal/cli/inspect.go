package cli

import (
	"fmt"
	"math"

	"github.com/fatih/color"
	"github.com/michael140711/enhanced-lrc-maker/internal/lyrics"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [lyrics_file]",
	Short: "Show per-word timing for a lyrics file",
	Long: `Print every word of a lyrics file with its timestamp.

Explicit timestamps are shown in yellow. Words the file leaves untimed get
an estimate interpolated between the nearest timed neighbors, shown in cyan
with a leading ~. Estimating past the last timed word needs the media
length, so pass --duration for partially timed files.

Examples:
  lrcmaker inspect lyrics.elrc
  lrcmaker inspect lyrics.json --duration 215.5`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().
		Float64P("duration", "d", 0, "Media duration in seconds, for sources that carry none")
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	duration, _ := cmd.Flags().GetFloat64("duration")

	timeline, err := lyrics.OpenFile(inputPath, duration)
	if err != nil {
		return fmt.Errorf("failed to load lyrics: %w", err)
	}

	logger.Debugw("Loaded lyrics",
		"input", inputPath,
		"words", timeline.Len(),
	)

	timedText := color.New(color.FgYellow).SprintFunc()
	approxText := color.New(color.FgCyan).SprintFunc()
	wordText := color.New(color.FgHiGreen).SprintFunc()

	timed := 0
	line := 1
	fmt.Printf("---------- LINE %d ----------\n", line)
	for i, w := range timeline.Words() {
		var stamp string
		switch approx, err := timeline.ApproximateTime(i); {
		case w.Timed:
			stamp = " " + timedText(lyrics.FormatTimer(w.Time, false))
			timed++
		case err == nil:
			stamp = approxText("~" + lyrics.FormatTimer(approx, false))
		default:
			stamp = " " + lyrics.FormatTimer(math.NaN(), false)
		}
		fmt.Printf("|%4d %s %s\n", i, stamp, wordText(w.DisplayText()))

		if w.HasBreak() && i < timeline.Len()-1 {
			line++
			fmt.Printf("---------- LINE %d ----------\n", line)
		}
	}
	fmt.Println("---------- END ----------")

	fmt.Printf("Words: %d (%d timed, %d untimed)\n",
		timeline.Len(), timed, timeline.Len()-timed)
	if d, ok := timeline.Duration(); ok {
		fmt.Printf("Duration: %s\n", lyrics.FormatTimer(d, false))
	}

	return nil
}
