package form

import (
	"maps"
	"slices"
)

// Values maps field keys to their current textual contents.
type Values map[string]string

// Errors maps field keys to validation messages. Only invalid fields appear.
type Errors map[string]string

// Touched records fields that were blurred or revealed by a submit attempt.
// Absent keys are equivalent to false.
type Touched map[string]bool

// Clone returns an independent copy of the values.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	maps.Copy(out, v)
	return out
}

// Keys returns the field keys in lexical order.
func (v Values) Keys() []string {
	return slices.Sorted(maps.Keys(v))
}

// Clone returns an independent copy of the errors.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	maps.Copy(out, e)
	return out
}

// Clone returns an independent copy of the touched flags.
func (t Touched) Clone() Touched {
	out := make(Touched, len(t))
	maps.Copy(out, t)
	return out
}

// State is a snapshot of the form. Snapshots handed out by the Engine never
// alias its internal maps.
type State struct {
	Values       Values
	Errors       Errors
	Touched      Touched
	IsSubmitting bool
}

// Clone deep copies the state.
func (s State) Clone() State {
	return State{
		Values:       s.Values.Clone(),
		Errors:       s.Errors.Clone(),
		Touched:      s.Touched.Clone(),
		IsSubmitting: s.IsSubmitting,
	}
}

// HasErrors reports whether the submit guard should reject the state. With
// strict set any entry counts, otherwise entries with an empty message are
// treated as valid.
func (s State) HasErrors(strict bool) bool {
	if strict {
		return len(s.Errors) > 0
	}
	for _, msg := range s.Errors {
		if msg != "" {
			return true
		}
	}
	return false
}

// ErrorFor returns the message recorded for field, if any.
func (s State) ErrorFor(field string) (string, bool) {
	msg, ok := s.Errors[field]
	return msg, ok
}

// VisibleErrors returns the errors of touched fields only. Presentation code
// uses it to keep messages hidden until a field was blurred or a submit was
// attempted.
func (s State) VisibleErrors() Errors {
	out := make(Errors)
	for field, msg := range s.Errors {
		if msg == "" || !s.Touched[field] {
			continue
		}
		out[field] = msg
	}
	return out
}
