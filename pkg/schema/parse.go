package schema

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML or JSON definition and checks it.
func Parse(data []byte) (Definition, error) {
	var def Definition
	if len(bytes.TrimSpace(data)) == 0 {
		return def, fmt.Errorf("%w: document is empty", ErrInvalidDefinition)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("schema: decode definition: %w", err)
	}
	if err := def.Check(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Load reads and parses the definition stored at path.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("schema: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("schema: %s: %w", path, err)
	}
	return def, nil
}

// ParseValues decodes a flat YAML or JSON mapping of field values. Scalars
// are converted to their textual form.
func ParseValues(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("schema: decode values: %w", err)
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		switch typed := value.(type) {
		case nil:
			out[key] = ""
		case string:
			out[key] = typed
		case map[string]any, []any:
			return nil, fmt.Errorf("schema: value for %q is not a scalar", key)
		default:
			out[key] = fmt.Sprint(typed)
		}
	}
	return out, nil
}
