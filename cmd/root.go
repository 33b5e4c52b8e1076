package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wavebatch/converter-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "converter-api",
	Short: "Batch audio conversion API server",
	Long: `Batch Converter API - background batch audio conversion to WAV

Conversions run one at a time on a background worker, in submission
order. Progress and per-file results are reported through an ordered
event stream, and every successful conversion is remembered in a
converted-files cache.

Features:
  • FIFO batch conversion of M4A (and other ffmpeg-readable) sources
  • Per-file failure isolation: one bad file never aborts a batch
  • Waveform peak extraction for converted files
  • Durable conversion records with metadata probed from the output`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig initializes configuration for commands that need it
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
