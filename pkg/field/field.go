// Package field holds the value of a single controlled input. It stores the
// last value it was given and nothing else.
package field

import (
	"sync"

	"github.com/goliatone/go-formstate/pkg/form"
)

// Field is a controlled value holder. The zero value holds "".
type Field struct {
	mu    sync.RWMutex
	value string
}

// New returns a holder seeded with the first initial value, or "".
func New(initial ...string) *Field {
	f := &Field{}
	if len(initial) > 0 {
		f.value = initial[0]
	}
	return f
}

// Value returns the last stored value.
func (f *Field) Value() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Set stores value.
func (f *Field) Set(value string) {
	f.mu.Lock()
	f.value = value
	f.mu.Unlock()
}

// OnChange stores the value carried by ev. It has the form.EventHandler
// signature so a holder can be bound like any form field.
func (f *Field) OnChange(ev form.Event) error {
	f.Set(ev.Value)
	return nil
}
