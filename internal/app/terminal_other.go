//go:build !unix

package app

import (
	"context"
	"errors"

	"bytebeat/internal/config"
)

// RunTerminal needs raw nonblocking stdin, which is only wired up on unix.
func RunTerminal(ctx context.Context, cfg config.Config) error {
	return errors.New("terminal mode is not supported on this platform")
}
