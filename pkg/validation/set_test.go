package validation_test

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/validation"
)

func loginRules() *validation.Set {
	return validation.New().
		Field("username", validation.Required("Username Required")).
		Field("password",
			validation.Required("Password Required"),
			validation.MinLength(4, "Password must be at least 4 characters"),
		)
}

func TestSet_FirstFailingRuleWins(t *testing.T) {
	tests := []struct {
		name   string
		values form.Values
		want   form.Errors
	}{
		{
			name:   "empty",
			values: form.Values{"username": "", "password": ""},
			want:   form.Errors{"username": "Username Required", "password": "Password Required"},
		},
		{
			name:   "short password",
			values: form.Values{"username": "", "password": "www"},
			want:   form.Errors{"username": "Username Required", "password": "Password must be at least 4 characters"},
		},
		{
			name:   "valid",
			values: form.Values{"username": "hello", "password": "world"},
			want:   form.Errors{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := form.Errors{}
			if err := loginRules().Validate(tt.values, errs); err != nil {
				t.Fatalf("validate: %v", err)
			}
			if diff := cmp.Diff(tt.want, errs); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSet_SkipsMissingFields(t *testing.T) {
	errs := form.Errors{}
	if err := loginRules().Validate(form.Values{"username": "x"}, errs); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestSet_FieldExtendsRules(t *testing.T) {
	set := validation.New().
		Field("code", validation.Required("")).
		Field("code", validation.MaxLength(2, ""))

	if diff := cmp.Diff([]string{"code"}, set.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	errs := form.Errors{}
	_ = set.Validate(form.Values{"code": "abc"}, errs)
	if diff := cmp.Diff(form.Errors{"code": "max length 2"}, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestRules(t *testing.T) {
	values := form.Values{"password": "secret"}
	tests := []struct {
		name    string
		rule    validation.Rule
		value   string
		wantMsg string
		valid   bool
	}{
		{"required blank", validation.Required(""), "   ", "required", false},
		{"required set", validation.Required(""), "x", "", true},
		{"min length counts runes", validation.MinLength(3, ""), "äöü", "", true},
		{"min length short", validation.MinLength(3, ""), "ab", "min length 3", false},
		{"min length empty passes", validation.MinLength(3, ""), "", "", true},
		{"max length", validation.MaxLength(2, "too long"), "abc", "too long", false},
		{"pattern match", validation.Pattern(regexp.MustCompile(`^\d+$`), ""), "123", "", true},
		{"pattern miss", validation.Pattern(regexp.MustCompile(`^\d+$`), ""), "12a", "does not match required pattern", false},
		{"equals", validation.Equals("password", ""), "secret", "", true},
		{"equals differs", validation.Equals("password", ""), "other", "must match password", false},
		{"func", validation.Func("odd", func(v string) bool { return len(v)%2 == 0 }), "abc", "odd", false},
		{"no markup plain", validation.NoMarkup(""), "Tom & Jerry", "", true},
		{"no markup tags", validation.NoMarkup(""), "<b>hi</b>", "must not contain markup", false},
		{"no markup literal entity and bracket", validation.NoMarkup(""), "x &amp; y <", "", true},
		{"no markup comparison", validation.NoMarkup(""), "a < b && b > c", "", true},
		{"no markup comment", validation.NoMarkup(""), "hi <!-- there -->", "must not contain markup", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, valid := tt.rule(tt.value, values)
			if valid != tt.valid || msg != tt.wantMsg {
				t.Fatalf("got (%q, %v), want (%q, %v)", msg, valid, tt.wantMsg, tt.valid)
			}
		})
	}
}

func TestStripMarkup(t *testing.T) {
	if got := validation.StripMarkup("<script>alert(1)</script>hello <b>world</b>"); got != "hello world" {
		t.Fatalf("unexpected stripped value %q", got)
	}
	if got := validation.StripMarkup("plain"); got != "plain" {
		t.Fatalf("unexpected value %q", got)
	}
	if got := validation.StripMarkup("x &amp; y <"); got != "x &amp; y <" {
		t.Fatalf("text without markup must be kept verbatim, got %q", got)
	}
}

func TestSet_DrivesEngine(t *testing.T) {
	engine, err := form.New(form.Config{
		InitialValues: form.Values{"username": "", "password": ""},
		Validate:      loginRules().Validate,
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := engine.Change("password", "www"); err != nil {
		t.Fatalf("change: %v", err)
	}
	want := form.Errors{
		"username": "Username Required",
		"password": "Password must be at least 4 characters",
	}
	if diff := cmp.Diff(want, engine.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}
