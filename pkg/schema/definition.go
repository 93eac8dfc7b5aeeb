package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/validation"
)

var (
	// ErrInvalidDefinition signals a definition that cannot back a form.
	ErrInvalidDefinition = errors.New("schema: invalid definition")
	// ErrOperationNotFound is returned by FromOpenAPI for unknown operation ids.
	ErrOperationNotFound = errors.New("schema: operation not found")
)

// Messages overrides the default validation messages of a field.
type Messages struct {
	Required  string `json:"required,omitempty" yaml:"required,omitempty"`
	MinLength string `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength string `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Markup    string `json:"markup,omitempty" yaml:"markup,omitempty"`
	Equals    string `json:"equals,omitempty" yaml:"equals,omitempty"`
}

// Field describes a single text field and its constraints.
type Field struct {
	Name      string   `json:"name" yaml:"name"`
	Label     string   `json:"label,omitempty" yaml:"label,omitempty"`
	Help      string   `json:"help,omitempty" yaml:"help,omitempty"`
	Default   string   `json:"default,omitempty" yaml:"default,omitempty"`
	Secret    bool     `json:"secret,omitempty" yaml:"secret,omitempty"`
	Multiline bool     `json:"multiline,omitempty" yaml:"multiline,omitempty"`
	Required  bool     `json:"required,omitempty" yaml:"required,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	NoMarkup  bool     `json:"noMarkup,omitempty" yaml:"noMarkup,omitempty"`
	Equals    string   `json:"equals,omitempty" yaml:"equals,omitempty"`
	Messages  Messages `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// DisplayLabel returns the label, falling back to the field name.
func (f Field) DisplayLabel() string {
	if label := strings.TrimSpace(f.Label); label != "" {
		return label
	}
	return f.Name
}

// Definition is a declarative form: ordered fields with initial values and
// validation constraints.
type Definition struct {
	ID     string  `json:"id,omitempty" yaml:"id,omitempty"`
	Title  string  `json:"title,omitempty" yaml:"title,omitempty"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Check verifies names are present and unique, patterns compile and Equals
// references point at known fields.
func (d Definition) Check() error {
	if len(d.Fields) == 0 {
		return fmt.Errorf("%w: no fields", ErrInvalidDefinition)
	}
	seen := make(map[string]struct{}, len(d.Fields))
	for i, f := range d.Fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidDefinition, i)
		}
		if name != f.Name {
			return fmt.Errorf("%w: field name %q has surrounding whitespace", ErrInvalidDefinition, f.Name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidDefinition, name)
		}
		seen[name] = struct{}{}
		if f.Pattern != "" {
			if _, err := regexp.Compile(f.Pattern); err != nil {
				return fmt.Errorf("%w: field %q pattern: %v", ErrInvalidDefinition, name, err)
			}
		}
		if f.MinLength != nil && f.MaxLength != nil && *f.MinLength > *f.MaxLength {
			return fmt.Errorf("%w: field %q minLength exceeds maxLength", ErrInvalidDefinition, name)
		}
	}
	for _, f := range d.Fields {
		if f.Equals == "" {
			continue
		}
		if _, ok := seen[f.Equals]; !ok || f.Equals == f.Name {
			return fmt.Errorf("%w: field %q equals unknown field %q", ErrInvalidDefinition, f.Name, f.Equals)
		}
	}
	return nil
}

// Order returns field names in declaration order.
func (d Definition) Order() []string {
	out := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		out = append(out, f.Name)
	}
	return out
}

// Field looks up a field by name.
func (d Definition) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// InitialValues returns the defaults of every field.
func (d Definition) InitialValues() form.Values {
	values := make(form.Values, len(d.Fields))
	for _, f := range d.Fields {
		values[f.Name] = f.Default
	}
	return values
}

// Validator translates field constraints into a rule set. Rules are applied
// in a fixed order: required, minLength, maxLength, pattern, markup, equals.
func (d Definition) Validator() (*validation.Set, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	set := validation.New()
	for _, f := range d.Fields {
		var rules []validation.Rule
		if f.Required {
			rules = append(rules, validation.Required(f.Messages.Required))
		}
		if f.MinLength != nil {
			rules = append(rules, validation.MinLength(*f.MinLength, f.Messages.MinLength))
		}
		if f.MaxLength != nil {
			rules = append(rules, validation.MaxLength(*f.MaxLength, f.Messages.MaxLength))
		}
		if f.Pattern != "" {
			rules = append(rules, validation.Pattern(regexp.MustCompile(f.Pattern), f.Messages.Pattern))
		}
		if f.NoMarkup {
			rules = append(rules, validation.NoMarkup(f.Messages.Markup))
		}
		if f.Equals != "" {
			rules = append(rules, validation.Equals(f.Equals, f.Messages.Equals))
		}
		set.Field(f.Name, rules...)
	}
	return set, nil
}

// Config builds an engine configuration with the definition's defaults and
// rules. submit may be nil.
func (d Definition) Config(submit form.SubmitFunc) (form.Config, error) {
	set, err := d.Validator()
	if err != nil {
		return form.Config{}, err
	}
	return form.Config{
		InitialValues: d.InitialValues(),
		Validate:      set.Validate,
		OnSubmit:      submit,
	}, nil
}

// NewEngine is shorthand for Config followed by form.New.
func (d Definition) NewEngine(submit form.SubmitFunc, opts ...form.Option) (*form.Engine, error) {
	cfg, err := d.Config(submit)
	if err != nil {
		return nil, err
	}
	return form.New(cfg, opts...)
}
