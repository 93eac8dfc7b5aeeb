package form

// ActionType identifies a transition applied by Reduce.
type ActionType string

const (
	// ActionChange overwrites the value of a single field.
	ActionChange ActionType = "change"
	// ActionBlur marks a single field as touched.
	ActionBlur ActionType = "blur"
	// ActionValidated replaces the errors with a freshly computed mapping.
	ActionValidated ActionType = "validated"
	// ActionSubmitStart touches every field and raises IsSubmitting.
	ActionSubmitStart ActionType = "submit_start"
	// ActionSubmitSettled lowers IsSubmitting.
	ActionSubmitSettled ActionType = "submit_settled"
)

// Action is the input of Reduce. Field and Value are used by change and blur,
// Errors by validated.
type Action struct {
	Type   ActionType
	Field  string
	Value  string
	Errors Errors
}

// Change builds an ActionChange.
func Change(field, value string) Action {
	return Action{Type: ActionChange, Field: field, Value: value}
}

// Blur builds an ActionBlur.
func Blur(field string) Action {
	return Action{Type: ActionBlur, Field: field}
}

// Validated builds an ActionValidated.
func Validated(errs Errors) Action {
	return Action{Type: ActionValidated, Errors: errs}
}

// Reduce applies action to state and returns the next state. It never
// mutates its input and the result shares no maps with it. Keys outside
// state.Values are ignored so the set of fields stays fixed.
func Reduce(state State, action Action) State {
	next := state.Clone()

	switch action.Type {
	case ActionChange:
		if _, ok := next.Values[action.Field]; ok {
			next.Values[action.Field] = action.Value
		}
	case ActionBlur:
		if _, ok := next.Values[action.Field]; ok {
			next.Touched[action.Field] = true
		}
	case ActionValidated:
		errs := make(Errors, len(action.Errors))
		for field, msg := range action.Errors {
			if _, ok := next.Values[field]; ok {
				errs[field] = msg
			}
		}
		next.Errors = errs
	case ActionSubmitStart:
		for field := range next.Values {
			next.Touched[field] = true
		}
		next.IsSubmitting = true
	case ActionSubmitSettled:
		next.IsSubmitting = false
	}

	return next
}

func initialState(values Values) State {
	return State{
		Values:  values.Clone(),
		Errors:  make(Errors),
		Touched: make(Touched),
	}
}
