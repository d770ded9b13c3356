// Package main is the entrypoint of tubaudio.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tubaudio/internal/app"
	"tubaudio/internal/cfg"
	"tubaudio/internal/domain/keys"
	"tubaudio/internal/domain/paths"
	"tubaudio/internal/utils/logging"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const timeFormat = "2006-01-02 15:04:05.00 MST"

func main() {
	os.Exit(run())
}

// run executes the program and returns the exit code.
func run() int {
	startTime := time.Now()

	if err := paths.InitProgFilesDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "tubaudio exiting with error: %v\n", err)
		return 1
	}

	runID := uuid.NewString()
	logCloser, err := logging.SetupLogging(paths.LogFilePath, runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not set up logging, proceeding without: %v\n", err)
	} else {
		defer logCloser.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cfg.InitCommands(); err != nil {
		logging.E(0, "Error initializing commands: %v", err)
		return 1
	}
	if err := cfg.Execute(ctx); err != nil {
		logging.E(0, "Error: %v", err)
		return 1
	}
	if !viper.GetBool(keys.RunDownloader) {
		return 0
	}

	logging.I("tubaudio (run %s) started at: %v", runID, startTime.Format(timeFormat))
	logging.D(1, "Program files in %s (log: %s)", paths.HomeTubaudioDir, paths.LogFilePath)
	defer func() {
		end := time.Now()
		logging.I("tubaudio finished at: %v\n\nTime elapsed: %.2f seconds\n",
			end.Format(timeFormat), end.Sub(startTime).Seconds())
	}()

	s, err := cfg.LoadSettings()
	if err != nil {
		logging.E(0, "Invalid settings: %v", err)
		return 1
	}

	dl, cleanup, err := initializeDownloader(s, runID)
	if err != nil {
		logging.E(0, "Error initializing downloader: %v", err)
		return 1
	}
	defer cleanup()

	if err := app.NewRunner(dl, os.Stdin, os.Stdout, s).Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logging.I("Interrupted, exiting")
			return 0
		}
		logging.E(0, "Error: %v", err)
		return 1
	}
	return 0
}
