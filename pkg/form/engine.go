package form

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// ValidateFunc computes the errors for values by writing into errs. errs is
// always a fresh, empty map and values a private copy. A non-nil error aborts
// the transition that triggered validation. It runs without the engine lock
// held and may read the engine; if another change is committed meanwhile,
// validation is repeated against the newer values.
type ValidateFunc func(values Values, errs Errors) error

// SubmitFunc is a synchronous submit callback. IsSubmitting is lowered as
// soon as it returns.
type SubmitFunc func(ctx context.Context, values Values) error

// AsyncSubmitFunc is an awaitable submit callback. The returned channel
// settles by delivering one error (nil on success) or by being closed; a nil
// channel counts as settled immediately.
type AsyncSubmitFunc func(ctx context.Context, values Values) <-chan error

// Config describes a form. InitialValues fixes the set of fields for the
// lifetime of the engine.
type Config struct {
	InitialValues Values
	Validate      ValidateFunc
	OnSubmit      SubmitFunc
	OnSubmitAsync AsyncSubmitFunc
}

// Engine owns the state of one form. All entry points are serialised by an
// internal mutex; callbacks run without the mutex held so they may call back
// into the engine.
type Engine struct {
	mu    sync.Mutex
	state State
	// rev counts committed value changes.
	rev uint64

	validate      ValidateFunc
	onSubmit      SubmitFunc
	onSubmitAsync AsyncSubmitFunc

	logger        *slog.Logger
	onResult      func(Result)
	strictErrors  bool
	holdOnInvalid bool
	inputFilter   func(string) string
}

// New builds an engine and runs validation once against the initial values.
// No field starts touched.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.OnSubmit != nil && cfg.OnSubmitAsync != nil {
		return nil, fmt.Errorf("%w: OnSubmit and OnSubmitAsync are mutually exclusive", ErrConfig)
	}

	e := &Engine{
		state:         initialState(cfg.InitialValues),
		validate:      cfg.Validate,
		onSubmit:      cfg.OnSubmit,
		onSubmitAsync: cfg.OnSubmitAsync,
		logger:        discardLogger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(e)
	}

	errs, err := e.runValidate(e.state.Values)
	if err != nil {
		return nil, err
	}
	e.state = Reduce(e.state, Validated(errs))

	e.logger.Debug("form initialised",
		slog.Int("fields", len(e.state.Values)),
		slog.Int("errors", len(e.state.Errors)),
	)
	return e, nil
}

// State returns a snapshot of the whole form.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Values returns a snapshot of the field values.
func (e *Engine) Values() Values {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Values.Clone()
}

// Errors returns a snapshot of the validation errors.
func (e *Engine) Errors() Errors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Errors.Clone()
}

// Touched returns a snapshot of the touched flags.
func (e *Engine) Touched() Touched {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Touched.Clone()
}

// IsSubmitting reports whether a submit is in flight. The flag is advisory;
// the engine does not block a second Submit while it is raised.
func (e *Engine) IsSubmitting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.IsSubmitting
}

// Fields returns the configured field keys in lexical order.
func (e *Engine) Fields() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Values.Keys()
}

// Change stores value for field and revalidates synchronously.
func (e *Engine) Change(field, value string) error {
	return e.apply(Change(field, value))
}

// SetField is the programmatic twin of Change.
func (e *Engine) SetField(field, value string) error {
	return e.apply(Change(field, value))
}

// Blur marks field as touched. Values and errors are left alone.
func (e *Engine) Blur(field string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkField(field); err != nil {
		return err
	}
	e.state = Reduce(e.state, Blur(field))
	e.logger.Debug("form field blurred", slog.String("field", field))
	return nil
}

func (e *Engine) apply(action Action) error {
	for {
		e.mu.Lock()
		if err := e.checkField(action.Field); err != nil {
			e.mu.Unlock()
			return err
		}
		rev := e.rev
		values := Reduce(e.state, action).Values
		e.mu.Unlock()

		errs, err := e.runValidate(values)
		if err != nil {
			return err
		}

		e.mu.Lock()
		if e.rev != rev {
			e.mu.Unlock()
			continue
		}
		e.state = Reduce(Reduce(e.state, action), Validated(errs))
		e.rev++
		count := len(e.state.Errors)
		e.mu.Unlock()

		e.logger.Debug("form field changed",
			slog.String("field", action.Field),
			slog.Int("errors", count),
		)
		return nil
	}
}

func (e *Engine) checkField(field string) error {
	if _, ok := e.state.Values[field]; !ok {
		return &FieldError{Field: field}
	}
	return nil
}

// runValidate must be called without the lock held.
func (e *Engine) runValidate(values Values) (Errors, error) {
	errs := make(Errors)
	if e.validate == nil {
		return errs, nil
	}
	if err := e.validate(values.Clone(), errs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidate, err)
	}
	for field := range errs {
		if _, ok := values[field]; !ok {
			e.logger.Warn("form validate reported unknown field", slog.String("field", field))
			delete(errs, field)
		}
	}
	return errs, nil
}
