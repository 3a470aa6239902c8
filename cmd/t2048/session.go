package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// localSession holds the stores and logger shared by play and menu.
type localSession struct {
	opts    tui.Options
	logFile *os.File
	closer  io.Closer
}

// newLogger builds the CLI logger. The terminal belongs to the game, so
// logs go to --log or nowhere.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// openLocalSession opens the scores database and the record store. Both
// are optional: the game runs without them.
func openLocalSession() *localSession {
	s := &localSession{}

	var w io.Writer = io.Discard
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			s.logFile, w = f, f
		}
	}
	logger := newLogger(w)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	records, closer := tui.OpenRecords(flagRedisURL, store, logger)
	s.closer = closer
	s.opts = tui.Options{
		Scores:  store,
		Records: records,
		Logger:  logger,
	}
	return s
}

// Close releases the session's stores.
func (s *localSession) Close() {
	if s.closer != nil {
		s.closer.Close()
	}
	if s.opts.Scores != nil {
		s.opts.Scores.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
