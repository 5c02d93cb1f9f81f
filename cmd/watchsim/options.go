package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

type Options struct {
	Width        int16  `long:"width" env:"WATCHSIM_WIDTH" default:"144" description:"Panel width in pixels"`
	Height       int16  `long:"height" env:"WATCHSIM_HEIGHT" default:"168" description:"Panel height in pixels"`
	Battery      int    `long:"battery" env:"WATCHSIM_BATTERY" default:"100" description:"Initial battery level (1-100)"`
	Disconnected bool   `long:"disconnected" env:"WATCHSIM_DISCONNECTED" description:"Start with the phone disconnected"`
	Quiet        bool   `long:"quiet" env:"WATCHSIM_QUIET" description:"Start in quiet time"`
	Clock12h     bool   `long:"12h" env:"WATCHSIM_12H" description:"Use a 12-hour clock"`
	Seed         uint64 `long:"seed" env:"WATCHSIM_SEED" description:"Random seed for the time label; 0 picks one"`
	LogFile      string `long:"log-file" env:"WATCHSIM_LOG_FILE" description:"Write logs to this file"`
	Debug        bool   `long:"debug" env:"WATCHSIM_DEBUG" description:"Enable debug logging"`
}

func parseOptions(args []string) (Options, error) {
	_ = godotenv.Load()
	opts := Options{}
	if _, err := flags.ParseArgs(&opts, args); err != nil {
		return Options{}, err
	}
	if err := validate(opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func validate(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return errors.New("panel size must be positive")
	}
	if opts.Battery < 1 || opts.Battery > 100 {
		return fmt.Errorf("battery level %d out of range 1-100", opts.Battery)
	}
	return nil
}

// newLogger returns a logger writing to opts.LogFile, or discarding everything
// when no file is set. The terminal belongs to the UI.
func newLogger(opts Options) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	if opts.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f.Close, nil
}
