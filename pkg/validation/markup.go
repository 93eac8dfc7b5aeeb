package validation

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/goliatone/go-formstate/pkg/form"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// hasMarkup reports whether value contains an HTML element, comment or
// doctype. Stray angle brackets and entities typed as text do not count.
func hasMarkup(value string) bool {
	if !strings.ContainsRune(value, '<') {
		return false
	}
	z := html.NewTokenizer(strings.NewReader(value))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken,
			html.CommentToken, html.DoctypeToken:
			return true
		}
	}
}

// StripMarkup removes HTML elements from value and returns plain text. Values
// without markup are returned unchanged. It is meant to be used as an input
// filter (form.WithInputFilter).
func StripMarkup(value string) string {
	if !hasMarkup(value) {
		return value
	}
	return html.UnescapeString(textSanitizer().Sanitize(value))
}

// NoMarkup rejects values that contain HTML elements.
func NoMarkup(message string) Rule {
	message = orDefault(message, "must not contain markup")
	return func(value string, _ form.Values) (string, bool) {
		if hasMarkup(value) {
			return message, false
		}
		return "", true
	}
}
