// Package app drives downloads from the batch file and then from the interactive prompt.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"tubaudio/internal/domain/consts"
	"tubaudio/internal/file"
	"tubaudio/internal/models"
	"tubaudio/internal/utils/logging"
)

const (
	promptMsg  = "\nEnter video URL (or 'quit' to exit): "
	invalidMsg = "Please enter a valid video URL (must start with %q).\n"
)

// Downloader processes a single URL.
type Downloader interface {
	Download(ctx context.Context, url string) models.Outcome
}

// Runner runs the batch phase followed by the interactive phase.
type Runner struct {
	dl        Downloader
	in        *bufio.Scanner
	out       io.Writer
	batchFile string
	urlPrefix string
}

// NewRunner returns a Runner reading prompt input from in and writing prompts to out.
func NewRunner(dl Downloader, in io.Reader, out io.Writer, s *models.Settings) *Runner {
	return &Runner{
		dl:        dl,
		in:        bufio.NewScanner(in),
		out:       out,
		batchFile: s.BatchFile,
		urlPrefix: s.URLPrefix,
	}
}

// Run processes the batch file, then prompts until "quit", EOF, or cancellation.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.RunBatch(ctx); err != nil {
		return err
	}
	return r.RunInteractive(ctx)
}

// RunBatch downloads every URL in the batch file in order, whatever each outcome.
//
// Batch URLs are not checked against the URL prefix.
func (r *Runner) RunBatch(ctx context.Context) error {
	urls, err := file.ReadURLFile(r.batchFile)
	if err != nil {
		return fmt.Errorf("failed to read batch file %q: %w", r.batchFile, err)
	}
	if len(urls) == 0 {
		return nil
	}

	logging.I("Found %d URLs in %s. Processing...", len(urls), r.batchFile)
	for _, u := range urls {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.P("\nProcessing: %s", u)
		r.dl.Download(ctx, u)
	}
	logging.I("\nFinished processing URLs from file.")
	return nil
}

// RunInteractive prompts for URLs until the user quits.
//
// Cancelling ctx ends the session even while waiting for input.
func (r *Runner) RunInteractive(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Stops the reader once the session ends, whatever ends it.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := r.readLines(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(r.out, promptMsg)
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return ctx.Err()

		case l, ok := <-lines:
			if !ok {
				// EOF ends the session like "quit"
				fmt.Fprintln(r.out)
				return r.in.Err()
			}
			line = l
		}

		input := strings.TrimSpace(line)
		if strings.EqualFold(input, consts.QuitCommand) {
			return nil
		}

		if !strings.HasPrefix(input, r.urlPrefix) {
			fmt.Fprintf(r.out, invalidMsg, r.urlPrefix)
			continue
		}

		r.dl.Download(ctx, input)
	}
}

// readLines feeds input lines to the returned channel, closing it at EOF.
func (r *Runner) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for r.in.Scan() {
			select {
			case lines <- r.in.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
