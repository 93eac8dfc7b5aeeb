package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/schema"
)

// Session binds the fields of a definition to terminal prompts and drives a
// form engine: each answer is fed through the engine's change and blur
// handlers, then the form is submitted. Fields still invalid after a submit
// attempt are prompted again.
type Session struct {
	driver       PromptDriver
	theme        Theme
	maxAttempts  int
	confirmRetry bool
	logger       *slog.Logger
}

// New constructs a session with defaults (survey driver, unlimited attempts).
func New(options ...Option) *Session {
	s := &Session{
		driver: newSurveyDriver(),
		theme: Theme{
			ErrorPrefix: "✗ ",
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Run prompts for every field of def, in declaration order, and submits
// engine until the submission settles as submitted or failed. The engine
// must have been built for def.
func (s *Session) Run(ctx context.Context, def schema.Definition, engine *form.Engine) (form.Result, error) {
	if ctx == nil {
		return form.Result{}, errors.New("tui: context is required")
	}
	if engine == nil {
		return form.Result{}, errors.New("tui: engine is required")
	}

	pending := def.Order()
	for attempt := 1; ; attempt++ {
		for _, name := range pending {
			field, _ := def.Field(name)
			if err := s.promptField(ctx, field, engine); err != nil {
				return form.Result{}, err
			}
		}

		res, err := engine.Submit(ctx).Wait(ctx)
		if err != nil {
			return form.Result{}, err
		}
		log := s.logger.With(slog.String("submission", res.ID.String()), slog.Int("attempt", attempt))

		switch res.Outcome {
		case form.OutcomeSubmitted:
			log.Debug("tui form submitted")
			return res, nil
		case form.OutcomeFailed:
			log.Warn("tui form submit failed", slog.Any("error", res.Err))
			_ = s.driver.Info(ctx, s.theme.ErrorPrefix+res.Err.Error())
			return res, res.Err
		}

		visible := engine.State().VisibleErrors()
		pending = pending[:0]
		for _, name := range def.Order() {
			msg, ok := visible[name]
			if !ok {
				continue
			}
			field, _ := def.Field(name)
			_ = s.driver.Info(ctx, fmt.Sprintf("%s%s: %s", s.theme.ErrorPrefix, field.DisplayLabel(), msg))
			pending = append(pending, name)
		}
		log.Debug("tui form invalid", slog.Int("fields", len(pending)))

		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return res, ErrTooManyAttempts
		}
		if len(pending) == 0 {
			// only hidden (empty) messages block the submit; nothing to fix
			return res, ErrTooManyAttempts
		}
		if s.confirmRetry {
			retry, err := s.driver.Confirm(ctx, ConfirmConfig{
				Message: "Fix the highlighted fields?",
				Default: true,
			})
			if err != nil {
				return res, err
			}
			if !retry {
				return res, ErrAborted
			}
		}
	}
}

func (s *Session) promptField(ctx context.Context, field schema.Field, engine *form.Engine) error {
	current := engine.Values()[field.Name]
	label := field.DisplayLabel()

	var (
		answer string
		err    error
	)
	switch {
	case field.Secret:
		answer, err = s.driver.Password(ctx, InputConfig{Message: label, Default: current, Help: field.Help})
	case field.Multiline:
		answer, err = s.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: current, Help: field.Help})
	default:
		answer, err = s.driver.Input(ctx, InputConfig{Message: label, Default: current, Help: field.Help})
	}
	if err != nil {
		return err
	}

	if err := engine.HandleChange(field.Name)(form.Event{Value: answer}); err != nil {
		return fmt.Errorf("tui: field %q: %w", field.Name, err)
	}
	if err := engine.HandleBlur(field.Name)(form.Event{Value: answer}); err != nil {
		return fmt.Errorf("tui: field %q: %w", field.Name, err)
	}

	if msg, ok := engine.State().VisibleErrors()[field.Name]; ok && s.theme.InfoPrefix != "" {
		_ = s.driver.Info(ctx, fmt.Sprintf("%s%s: %s", s.theme.InfoPrefix, label, msg))
	}
	return nil
}
