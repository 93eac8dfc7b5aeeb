package form

import (
	"io"
	"log/slog"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes engine diagnostics to logger. Nil keeps the discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithSubmitResult registers an observer invoked once per submit attempt
// after the attempt settled. It runs outside the engine lock.
func WithSubmitResult(fn func(Result)) Option {
	return func(e *Engine) {
		e.onResult = fn
	}
}

// WithStrictErrors makes the submit guard treat any errors entry as a
// failure, including entries with an empty message.
func WithStrictErrors() Option {
	return func(e *Engine) {
		e.strictErrors = true
	}
}

// WithHoldSubmittingOnInvalid leaves IsSubmitting raised after a submit that
// was rejected by the validation guard.
func WithHoldSubmittingOnInvalid() Option {
	return func(e *Engine) {
		e.holdOnInvalid = true
	}
}

// WithInputFilter transforms values received through HandleChange before
// they reach the engine. Change and SetField are not filtered.
func WithInputFilter(fn func(string) string) Option {
	return func(e *Engine) {
		e.inputFilter = fn
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
