package tui

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-formstate/pkg/form"
)

// OutputFormat controls how submitted values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits one key=value line per field.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat validates a format name. An empty name selects JSON.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(raw))); format {
	case "":
		return OutputFormatJSON, nil
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
		return format, nil
	default:
		return "", fmt.Errorf("tui: unknown output format %q", raw)
	}
}

// ContentType reports the media type produced by Encode.
func (f OutputFormat) ContentType() string {
	switch f {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Encode serializes values. order fixes the line order of the pretty format;
// keys missing from order follow in lexical order.
func Encode(values form.Values, format OutputFormat, order []string) ([]byte, error) {
	switch format {
	case OutputFormatFormURLEncoded:
		encoded := url.Values{}
		for key, value := range values {
			encoded.Set(key, value)
		}
		return []byte(encoded.Encode()), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values, order)), nil
	default:
		return json.Marshal(map[string]string(values))
	}
}

func prettyPrint(values form.Values, order []string) string {
	var b strings.Builder
	seen := make(map[string]struct{}, len(values))
	write := func(key string) {
		if _, done := seen[key]; done {
			return
		}
		value, ok := values[key]
		if !ok {
			return
		}
		seen[key] = struct{}{}
		fmt.Fprintf(&b, "%s=%s\n", key, value)
	}
	for _, key := range order {
		write(key)
	}
	for _, key := range values.Keys() {
		write(key)
	}
	return b.String()
}
