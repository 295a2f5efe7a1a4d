package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// spinnerEnabled reports whether a spinner may draw. Debug logging writes to the same
// terminal, so verbose runs and non-TTY runs execute the action directly.
func spinnerEnabled() bool {
	return IsTTY() && logger.GetLevel() > log.DebugLevel
}

// RunWithSpinner executes an action while showing a spinner.
// Returns the action's error if any.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if !spinnerEnabled() {
		return action()
	}

	return runWhile(ctx, action, func(wait func()) error {
		return spinner.New().
			Title(cfg.title).
			Action(wait).
			Run()
	})
}

// runWhile runs action in a goroutine while show draws. show returns once
// wait returns, which happens when the action finishes or ctx is canceled.
// runWhile itself always waits for the action: it owns the filesystem until
// it returns.
func runWhile(ctx context.Context, action func() error, show func(wait func()) error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- action()
	}()

	var actionErr error
	done := false

	showErr := show(func() {
		select {
		case actionErr = <-errCh:
			done = true
		case <-ctx.Done():
		}
	})

	if !done {
		actionErr = <-errCh
	}
	if actionErr != nil {
		return actionErr
	}
	if showErr != nil {
		return fmt.Errorf("spinner error: %w", showErr)
	}
	return nil
}
