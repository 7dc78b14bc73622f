package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-units"
)

type codeSource interface {
	Code() (string, error)
	Remaining() time.Duration
}

// codeLoop prints the current code, then waits for the next tick or for ctx
// to end. Cancellation is a normal exit.
func (a *App) codeLoop(ctx context.Context, src codeSource) error {
	ticker := time.NewTicker(a.config.CodeInterval)
	defer ticker.Stop()

	for {
		code, err := src.Code()
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		if err := a.printCode(code, src.Remaining()); err != nil {
			return err
		}
		if a.config.Once {
			a.endLine()
			return nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			a.endLine()
			return nil
		}
	}
}

func (a *App) printCode(code string, remaining time.Duration) error {
	switch {
	case a.config.JSON:
		return writeCodeJSON(a.out, code, remaining)
	case a.tty:
		// \r plus erase-line keeps the code on a single terminal row.
		_, err := fmt.Fprintf(a.out, "\r\033[KCurrent Code: %s (valid for %s)", code, units.HumanDuration(remaining))
		return err
	default:
		_, err := fmt.Fprintf(a.out, "Current Code: %s\n", code)
		return err
	}
}

func (a *App) endLine() {
	if a.tty && !a.config.JSON {
		fmt.Fprintln(a.out)
	}
}
