// Command watchsim runs the watchface in a terminal, with keys standing in for
// the battery, the phone link, the quiet-time setting and the passage of time.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	flags "github.com/jessevdk/go-flags"

	"github.com/ardnew/watchface/display"
	"github.com/ardnew/watchface/host"
	"github.com/ardnew/watchface/model"
	"github.com/ardnew/watchface/run"
)

func main() {
	if err := runMain(os.Args[1:]); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runMain(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frames := newMailbox()
	fb := display.NewFramebuffer(opts.Width, opts.Height)
	fb.OnDisplay = frames.put

	var p *tea.Program
	sim := host.NewSim(host.SimConfig{
		Battery:      opts.Battery,
		Disconnected: opts.Disconnected,
		Quiet:        opts.Quiet,
		Is24h:        !opts.Clock12h,
		OnVibrate: func(pat model.Pattern) {
			go p.Send(vibrateMsg{pattern: pat})
		},
	})
	disp := display.New(fb, display.Config{}, sim)
	face := model.New(newRand(opts.Seed))

	p = tea.NewProgram(newUI(sim), tea.WithAltScreen(), tea.WithContext(ctx))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go sim.Start(ctx)
	go frames.forward(ctx, p)

	done := make(chan error, 1)
	go func() { done <- run.Run(ctx, sim, disp, face, logger) }()

	_, err = p.Run()
	cancel()
	if runErr := <-done; runErr != nil {
		logger.Error("watchface stopped", "error", runErr)
	}
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}

func newRand(seed uint64) model.Rand {
	if seed == 0 {
		return model.DefaultRand
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// mailbox holds the most recent frame. The watchface never waits on the UI;
// frames the UI has not yet picked up are replaced.
type mailbox struct {
	ch chan *image.RGBA
}

func newMailbox() mailbox {
	return mailbox{ch: make(chan *image.RGBA, 1)}
}

func (b mailbox) put(img *image.RGBA) {
	for {
		select {
		case b.ch <- img:
			return
		default:
		}
		select {
		case <-b.ch:
		default:
		}
	}
}

func (b mailbox) forward(ctx context.Context, p *tea.Program) {
	for {
		select {
		case <-ctx.Done():
			return
		case img := <-b.ch:
			p.Send(frameMsg{img: img})
		}
	}
}
