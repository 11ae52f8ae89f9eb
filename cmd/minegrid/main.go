// Command minegrid plays the grid-reveal puzzle in the terminal.
//
// Usage:
//
//	minegrid [--size 20] [--difficulty 1] [--seed N] [--config minegrid.yaml]
//
// Keys: arrows/wasd/hjkl move, space or enter reveals, f flags, q quits.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/minegrid/board"
	"github.com/katalvlaran/minegrid/config"
	"github.com/katalvlaran/minegrid/tui"
)

var log = logrus.New()

func main() {
	fs := pflag.NewFlagSet("minegrid", pflag.ExitOnError)
	config.Flags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	code := run(cfg)
	closeLog()
	os.Exit(code)
}

func run(cfg *config.Config) int {
	opts := []board.Option{board.WithLogger(log)}
	if cfg.Seed != 0 {
		opts = append(opts, board.WithSeed(cfg.Seed))
	}
	b, err := board.New(cfg.Board(), opts...)
	if err != nil {
		log.WithError(err).Error("board setup failed")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Error("screen setup failed")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Error("screen init failed")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := tui.NewSession(screen, b, log)
	outcome, err := sess.Run(ctx)
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("session ended abnormally")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log.WithFields(logrus.Fields{
		"outcome": outcome.String(),
		"turns":   sess.Turns(),
	}).Info("session finished")

	switch outcome {
	case tui.Won, tui.Lost:
		fmt.Print(b.Dump(true))
		fmt.Printf("You %s after %d turns.\n", outcome, sess.Turns())
	case tui.Quit:
		fmt.Println("Bye.")
	}
	return 0
}

// setupLogging applies level and destination; tcell owns the terminal, so
// without a log file output is discarded.
func setupLogging(cfg *config.Config) (func(), error) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.Log.File == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }, nil
}
