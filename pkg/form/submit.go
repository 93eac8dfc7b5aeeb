package form

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// Outcome classifies how a submit attempt ended.
type Outcome string

const (
	// OutcomeInvalid means the validation guard rejected the attempt and the
	// submit callback was not invoked.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeSubmitted means the callback settled successfully, or no
	// callback was configured.
	OutcomeSubmitted Outcome = "submitted"
	// OutcomeFailed means the callback failed; Result.Err holds a *SubmitError.
	OutcomeFailed Outcome = "failed"
)

// Result describes a settled submit attempt.
type Result struct {
	ID      uuid.UUID
	Outcome Outcome
	Values  Values
	Err     error
}

// Submission is the handle for one submit attempt. It settles exactly once.
type Submission struct {
	id     uuid.UUID
	values Values

	once   sync.Once
	done   chan struct{}
	result Result
}

func newSubmission(values Values) *Submission {
	return &Submission{
		id:     uuid.New(),
		values: values,
		done:   make(chan struct{}),
	}
}

// ID identifies the attempt in logs and results.
func (s *Submission) ID() uuid.UUID {
	return s.id
}

// Values returns the snapshot the attempt was started with.
func (s *Submission) Values() Values {
	return s.values.Clone()
}

// Done is closed once the attempt settled.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Result returns the outcome when the attempt already settled.
func (s *Submission) Result() (Result, bool) {
	select {
	case <-s.done:
		return s.result, true
	default:
		return Result{}, false
	}
}

// Wait blocks until the attempt settles or ctx is done. Cancelling ctx only
// stops waiting; the attempt itself cannot be cancelled.
func (s *Submission) Wait(ctx context.Context) (Result, error) {
	select {
	case <-s.done:
		return s.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

func (s *Submission) settle(outcome Outcome, err error) Result {
	s.once.Do(func() {
		s.result = Result{
			ID:      s.id,
			Outcome: outcome,
			Values:  s.values.Clone(),
			Err:     err,
		}
		close(s.done)
	})
	return s.result
}

// DefaultPreventer is satisfied by host events whose default action can be
// suppressed, such as a browser form submission.
type DefaultPreventer interface {
	PreventDefault()
}

// HandleSubmit suppresses the default action of ev, when given, and submits.
// A nil ev, including a nil pointer wrapped in the interface, is skipped.
func (e *Engine) HandleSubmit(ctx context.Context, ev DefaultPreventer) *Submission {
	if !isNilEvent(ev) {
		ev.PreventDefault()
	}
	return e.Submit(ctx)
}

func isNilEvent(ev DefaultPreventer) bool {
	if ev == nil {
		return true
	}
	v := reflect.ValueOf(ev)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Submit touches every field and raises IsSubmitting, then invokes the
// submit callback when no validation errors are present. The values handed
// to the callback are captured at the moment of the call. Callback failures
// are reported through the returned handle and the result observer.
func (e *Engine) Submit(ctx context.Context) *Submission {
	e.mu.Lock()
	e.state = Reduce(e.state, Action{Type: ActionSubmitStart})
	sub := newSubmission(e.state.Values.Clone())
	invalid := e.state.HasErrors(e.strictErrors)
	if invalid && !e.holdOnInvalid {
		e.state = Reduce(e.state, Action{Type: ActionSubmitSettled})
	}
	syncFn, asyncFn := e.onSubmit, e.onSubmitAsync
	e.mu.Unlock()

	log := e.logger.With(slog.String("submission", sub.id.String()))

	if invalid {
		log.Debug("form submit rejected by validation")
		e.finish(sub, OutcomeInvalid, nil)
		return sub
	}

	switch {
	case asyncFn != nil:
		ch := callAsync(ctx, asyncFn, sub.Values())
		if ch == nil {
			e.settle(log, sub, nil)
			break
		}
		log.Debug("form submit pending")
		go func() {
			err := <-ch
			e.settle(log, sub, err)
		}()
	case syncFn != nil:
		e.settle(log, sub, callSync(ctx, syncFn, sub.Values()))
	default:
		e.settle(log, sub, nil)
	}

	return sub
}

// settle lowers IsSubmitting and reports the attempt. It never touches
// values or errors, which may have moved on since the attempt started.
func (e *Engine) settle(log *slog.Logger, sub *Submission, cbErr error) {
	e.mu.Lock()
	e.state = Reduce(e.state, Action{Type: ActionSubmitSettled})
	e.mu.Unlock()

	if cbErr != nil {
		err := &SubmitError{ID: sub.id, Err: cbErr}
		log.Error("form submit failed", slog.Any("error", cbErr))
		e.finish(sub, OutcomeFailed, err)
		return
	}
	log.Debug("form submitted")
	e.finish(sub, OutcomeSubmitted, nil)
}

func (e *Engine) finish(sub *Submission, outcome Outcome, err error) {
	res := sub.settle(outcome, err)
	if e.onResult != nil {
		e.onResult(res)
	}
}

func callSync(ctx context.Context, fn SubmitFunc, values Values) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx, values)
}

func callAsync(ctx context.Context, fn AsyncSubmitFunc, values Values) (ch <-chan error) {
	defer func() {
		if r := recover(); r != nil {
			settled := make(chan error, 1)
			settled <- fmt.Errorf("panic: %v", r)
			ch = settled
		}
	}()
	return fn(ctx, values)
}
