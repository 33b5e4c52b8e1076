package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wavebatch/converter-api/api"
	"github.com/wavebatch/converter-api/api/types"
	"github.com/wavebatch/converter-api/internal/converter"
	"github.com/wavebatch/converter-api/internal/database"
	"github.com/wavebatch/converter-api/internal/models"
	conversionsService "github.com/wavebatch/converter-api/internal/services/conversions"
	"github.com/wavebatch/converter-api/internal/services/waveforms"
	"github.com/wavebatch/converter-api/internal/services/workers"
	"github.com/wavebatch/converter-api/pkg/config"
	"github.com/wavebatch/converter-api/pkg/download"
	"github.com/wavebatch/converter-api/pkg/ffmpeg"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Batch Converter API server with the configured settings.

The server accepts conversion batches, runs them one at a time on a
background worker, and exposes batch progress, conversion records,
waveforms and the converted-files cache over HTTP.

Example:
  converter-api serve
  converter-api serve --port 9090
  converter-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	// Database
	var db *database.DB
	if cfg.Database.Path != "" {
		db, err = database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		if err := db.AutoMigrate(&models.Conversion{}, &models.Waveform{}); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	} else {
		log.Printf("[WARN] No database configured; conversions will not be persisted")
	}

	// Transcoding
	ff := ffmpeg.New(cfg.Processing.FFmpegPath, cfg.Processing.FFprobePath, cfg.Processing.FFmpegTimeout)
	if err := ff.ValidateBinaries(); err != nil {
		return fmt.Errorf("ffmpeg unavailable: %w", err)
	}

	conv := converter.New(ff)

	// Post-processing runs only with a database to write to
	var postWorker *workers.Worker
	deps := &types.Dependencies{
		DB:        db,
		Converter: conv,
		OutputDir: cfg.Processing.OutputDir,
		Downloader: download.NewDownloader(download.Options{
			TempDir:       cfg.Processing.TempDir,
			MaxSize:       cfg.Download.MaxSize,
			Timeout:       cfg.Download.Timeout,
			UserAgent:     cfg.Download.UserAgent,
			ValidateAudio: true,
		}),
	}

	if db != nil {
		conversionService := conversionsService.NewService(conversionsService.NewRepository(db.DB))
		waveformService := waveforms.NewService(waveforms.NewRepository(db.DB))
		deps.ConversionService = conversionService
		deps.WaveformService = waveformService

		options := ffmpeg.ProcessingOptions{
			WaveformResolution: cfg.Processing.WaveformResolution,
			MaxDuration:        cfg.Processing.MaxDuration,
			TempDir:            cfg.Processing.TempDir,
		}
		postWorker = workers.NewWorker(
			workers.NewConversionRecorder(conversionService, ff),
			workers.NewWaveformProcessor(conversionService, waveformService, ff, options),
		)
		conv.RegisterObserver(postWorker)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conv.Start(ctx)
	defer conv.Stop()

	if postWorker != nil {
		postWorker.Start(ctx)
		defer postWorker.Stop()
	}

	addr := fmt.Sprintf("%s:%d", serverHost, serverPort)
	srv, err := api.NewServer(addr, deps)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s\n", addr)

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
