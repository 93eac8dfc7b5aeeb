package form

// Event is the notification a host control emits on change or focus loss.
type Event struct {
	Value string
}

// EventHandler consumes host events for a bound field.
type EventHandler func(Event) error

// HandleChange returns a handler that feeds ev.Value into Change for field,
// after the configured input filter.
func (e *Engine) HandleChange(field string) EventHandler {
	return func(ev Event) error {
		value := ev.Value
		if e.inputFilter != nil {
			value = e.inputFilter(value)
		}
		return e.Change(field, value)
	}
}

// HandleBlur returns a handler that marks field as touched. The event value
// is ignored.
func (e *Engine) HandleBlur(field string) EventHandler {
	return func(Event) error {
		return e.Blur(field)
	}
}
