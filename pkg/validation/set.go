package validation

import "github.com/goliatone/go-formstate/pkg/form"

type fieldRules struct {
	name  string
	rules []Rule
}

// Set groups rules per field and evaluates them in registration order. The
// first failing rule of a field decides its message.
type Set struct {
	fields []fieldRules
	index  map[string]int
}

// New returns an empty rule set.
func New() *Set {
	return &Set{index: make(map[string]int)}
}

// Field appends rules for name. Calling it again for the same name extends
// the existing rule list.
func (s *Set) Field(name string, rules ...Rule) *Set {
	if idx, ok := s.index[name]; ok {
		s.fields[idx].rules = append(s.fields[idx].rules, rules...)
		return s
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, fieldRules{name: name, rules: rules})
	return s
}

// Fields returns the field names that carry rules, in registration order.
func (s *Set) Fields() []string {
	out := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, f.name)
	}
	return out
}

// Validate has the form.ValidateFunc signature. Fields missing from values
// are skipped.
func (s *Set) Validate(values form.Values, errs form.Errors) error {
	for _, f := range s.fields {
		value, ok := values[f.name]
		if !ok {
			continue
		}
		for _, rule := range f.rules {
			if rule == nil {
				continue
			}
			if msg, valid := rule(value, values); !valid {
				errs[f.name] = msg
				break
			}
		}
	}
	return nil
}
