package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formstate/pkg/form"
)

// Rule checks one field value. It returns the message to record and false
// when the value is invalid. values is the full form snapshot so rules can
// compare fields.
type Rule func(value string, values form.Values) (string, bool)

// Required rejects blank values.
func Required(message string) Rule {
	message = orDefault(message, "required")
	return func(value string, _ form.Values) (string, bool) {
		if strings.TrimSpace(value) == "" {
			return message, false
		}
		return "", true
	}
}

// MinLength rejects values shorter than n characters. Empty values pass so
// the rule composes with Required.
func MinLength(n int, message string) Rule {
	message = orDefault(message, fmt.Sprintf("min length %d", n))
	return func(value string, _ form.Values) (string, bool) {
		if value == "" || utf8.RuneCountInString(value) >= n {
			return "", true
		}
		return message, false
	}
}

// MaxLength rejects values longer than n characters.
func MaxLength(n int, message string) Rule {
	message = orDefault(message, fmt.Sprintf("max length %d", n))
	return func(value string, _ form.Values) (string, bool) {
		if utf8.RuneCountInString(value) <= n {
			return "", true
		}
		return message, false
	}
}

// Pattern rejects non-empty values that do not match re.
func Pattern(re *regexp.Regexp, message string) Rule {
	message = orDefault(message, "does not match required pattern")
	return func(value string, _ form.Values) (string, bool) {
		if value == "" || re.MatchString(value) {
			return "", true
		}
		return message, false
	}
}

// Equals rejects values that differ from the value of other, e.g. password
// confirmation fields.
func Equals(other, message string) Rule {
	message = orDefault(message, fmt.Sprintf("must match %s", other))
	return func(value string, values form.Values) (string, bool) {
		if value == values[other] {
			return "", true
		}
		return message, false
	}
}

// Func adapts a plain predicate into a Rule.
func Func(message string, ok func(value string) bool) Rule {
	message = orDefault(message, "invalid")
	return func(value string, _ form.Values) (string, bool) {
		if ok(value) {
			return "", true
		}
		return message, false
	}
}

func orDefault(message, fallback string) string {
	if strings.TrimSpace(message) == "" {
		return fallback
	}
	return message
}
