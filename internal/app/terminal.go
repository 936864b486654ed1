//go:build unix

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"bytebeat/internal/config"
	"bytebeat/internal/synth"
	"bytebeat/internal/ui"
)

var errQuit = errors.New("quit")

// RunTerminal drives a session from single keystrokes on a raw-mode
// terminal and redraws a one-line status until q is pressed.
func RunTerminal(ctx context.Context, cfg config.Config) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	eng := synth.NewEngine(cfg.SampleRate, nil)
	dev, err := OpenDevice(cfg, synth.NewStream(eng))
	if err != nil {
		return err
	}
	defer dev.Close()
	sess := synth.NewSession(eng, dev, cfg.Expression)

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)
	if err := syscall.SetNonblock(fd, true); err != nil {
		return fmt.Errorf("nonblocking stdin: %w", err)
	}
	defer syscall.SetNonblock(fd, false)

	fmt.Printf("bytebeat: %s\r\n%s\r\n", cfg.Expression, ui.TerminalHelp)

	g, ctx := errgroup.WithContext(ctx)
	keys := make(chan byte, 16)

	g.Go(func() error {
		defer close(keys)
		return readKeys(ctx, fd, keys)
	})

	g.Go(func() error {
		bus := ui.NewEventBus()
		ui.BindSession(ctx, bus, sess)
		quit := false
		bus.Subscribe(ui.EventQuit, func(ui.Event) { quit = true })

		if cfg.Preset {
			bus.Emit(ui.Event{Type: ui.EventPreset})
		}

		tick := time.NewTicker(100 * time.Millisecond)
		defer tick.Stop()
		defer fmt.Print("\r\n")
		for {
			select {
			case <-ctx.Done():
				return nil
			case b, ok := <-keys:
				if !ok {
					return nil
				}
				if ev, ok := ui.TerminalEvent(b); ok {
					bus.Emit(ev)
				}
				if quit {
					return errQuit
				}
			case <-tick.C:
			}
			fmt.Printf("\r\x1b[K%s", ui.StatusLine(sess))
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// readKeys polls the nonblocking fd until ctx ends or stdin closes.
func readKeys(ctx context.Context, fd int, keys chan<- byte) error {
	buf := make([]byte, 16)
	for {
		if ctx.Err() != nil {
			return nil
		}
		n, err := syscall.Read(fd, buf)
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK || err == syscall.EINTR {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		if n == 0 {
			return nil
		}
		for _, b := range buf[:n] {
			select {
			case keys <- b:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
