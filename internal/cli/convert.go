package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/michael140711/enhanced-lrc-maker/internal/lyrics"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [lyrics_file]",
	Short: "Convert a lyrics file to Enhanced LRC or JSON",
	Long: `Convert lyrics between the supported formats.

The input format is chosen from the file extension: plain text (.txt),
classic or Enhanced LRC (.lrc, .elrc), or a JSON snapshot (.json). Plain
text sources carry no timing, so pass the media length with --duration if
it is known.

Examples:
  lrcmaker convert lyrics.lrc
  lrcmaker convert lyrics.txt --duration 215.5 -o lyrics.elrc
  lrcmaker convert lyrics.elrc -f json`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "elrc", "Output format (elrc, json)")
	convertCmd.Flags().
		Float64P("duration", "d", 0, "Media duration in seconds, for sources that carry none")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	duration, _ := cmd.Flags().GetFloat64("duration")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	var outputExt string
	switch strings.ToLower(formatStr) {
	case "elrc":
		outputExt = ".elrc"
	case "json":
		outputExt = ".json"
	default:
		return fmt.Errorf("unsupported format %q: use elrc or json", formatStr)
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + outputExt
	}

	logger.Infow("Converting lyrics",
		"input", inputPath,
		"output", outputPath,
		"format", formatStr,
		"duration", duration,
	)

	timeline, err := lyrics.OpenFile(inputPath, duration)
	if err != nil {
		return fmt.Errorf("failed to load lyrics: %w", err)
	}

	switch outputExt {
	case ".elrc":
		err = lyrics.WriteELRC(timeline, outputPath)
	case ".json":
		err = lyrics.WriteJSON(timeline, outputPath)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Lyrics converted successfully: %s\n", absOutput)
	fmt.Printf("  Words: %d\n", timeline.Len())

	return nil
}
