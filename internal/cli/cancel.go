package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// WithInterrupt returns a context cancelled on the first Ctrl+C or SIGTERM.
// A second signal exits the process.
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
			signal.Stop(sigCh)
			return
		}
		// Second signal: hard exit.
		<-sigCh
		os.Exit(1)
	}()

	return ctx, cancel
}

// RunUntilInterrupt runs fn until it returns or the user stops it with
// Ctrl+C, or with ESC when in is a terminal. A stop is not an error.
func RunUntilInterrupt(ctx context.Context, in *os.File, fn func(ctx context.Context) error) error {
	ctx, cancel := WithInterrupt(ctx)
	defer cancel()

	if in != nil {
		restore := watchESC(in, cancel)
		defer restore()
	}

	err := fn(ctx)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// watchESC puts in into raw mode and cancels on ESC or Ctrl+C. The returned
// func restores the terminal.
func watchESC(in *os.File, cancel context.CancelFunc) func() {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return func() {}
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}
	}

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := in.Read(buf)
			if err != nil || n == 0 {
				return
			}
			if buf[0] == 0x1b || buf[0] == 0x03 { // ESC, Ctrl+C in raw mode
				cancel()
				return
			}
		}
	}()
	return func() { term.Restore(fd, oldState) }
}

// Stopped prints the message shown when a long-running command is stopped.
func Stopped(out io.Writer, what string) {
	fmt.Fprintln(out, Muted(fmt.Sprintf("Stopped %s.", what)))
}
