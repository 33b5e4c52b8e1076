package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wavebatch/converter-api/internal/converter"
	"github.com/wavebatch/converter-api/pkg/config"
	"github.com/wavebatch/converter-api/pkg/ffmpeg"
)

var convertDestDir string

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert audio files to WAV from the command line",
	Long: `Convert one or more audio files to 16-bit PCM WAV without starting
the API server. Files are converted one at a time, in the order given,
and a failing file never stops the rest of the batch.

Example:
  converter-api convert song.m4a other.m4a
  converter-api convert --dest ./out *.m4a`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertDestDir, "dest", "", "destination directory (defaults to processing.output_dir)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	destDir := convertDestDir
	if destDir == "" {
		destDir = cfg.Processing.OutputDir
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("cannot create destination directory %s: %w", destDir, err)
	}

	ff := ffmpeg.New(cfg.Processing.FFmpegPath, cfg.Processing.FFprobePath, cfg.Processing.FFmpegTimeout)
	if err := ff.ValidateBinaries(); err != nil {
		return fmt.Errorf("ffmpeg unavailable: %w", err)
	}

	conv := converter.New(ff)

	out := cmd.OutOrStdout()
	var failures int
	finished := make(chan struct{})

	conv.RegisterObserver(converter.ObserverFunc(func(event converter.Event) {
		switch event.Type {
		case converter.EventJobStarted:
			fmt.Fprintf(out, "Converting %s\n", event.SourcePath)
		case converter.EventJobSucceeded:
			fmt.Fprintf(out, "  done: %s\n", event.DestinationPath)
		case converter.EventJobFailed:
			failures++
			fmt.Fprintf(out, "  FAILED (%s): %s\n", event.Reason, event.SourcePath)
		case converter.EventBatchProgress:
			fmt.Fprintf(out, "Progress: %d/%d\n", event.Completed, event.Total)
		case converter.EventBatchFinished:
			close(finished)
		}
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conv.Start(ctx)
	defer conv.Stop()

	if _, err := conv.Submit(args, destDir); err != nil {
		return fmt.Errorf("failed to submit batch: %w", err)
	}

	<-finished

	if failures > 0 {
		return fmt.Errorf("%d of %d file(s) failed to convert", failures, len(args))
	}

	fmt.Fprintf(out, "Converted %d file(s) to %s\n", len(args), destDir)
	return nil
}
