package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bytebeat/internal/app"
	"bytebeat/internal/config"
	"bytebeat/internal/synth"
)

func main() {
	opts, err := config.Parse(os.Args[1:], os.Getenv, os.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	switch opts.Mode {
	case config.ModeRender:
		if err := render(opts); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
	case config.ModeTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := app.RunTerminal(ctx, opts.Config); err != nil {
			fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
			os.Exit(1)
		}
	default:
		app.RunDesktop(opts.Config)
	}
}

func render(opts config.Options) error {
	eng := synth.NewEngine(opts.SampleRate, nil)
	if opts.Preset {
		eng.PlayPreset()
	} else if err := eng.Play(opts.Expression); err != nil {
		return &synth.CompileError{Source: opts.Expression, Err: err}
	}
	if err := synth.RenderFile(opts.RenderPath, eng, opts.Frames()); err != nil {
		return err
	}
	fmt.Printf("wrote %d frames at %d Hz to %s\n", opts.Frames(), opts.SampleRate, opts.RenderPath)
	return nil
}
