package msgs

import (
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// ToMap converts a message struct into a nested map keyed by the message's
// wire field names.
func ToMap(msg any) (map[string]any, error) {
	raw, err := msgpack.Marshal(msg)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := msgpack.Unmarshal(raw, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Flatten converts a nested document into a flat one whose keys are the
// dot-joined paths of the leaves. Arrays are leaves.
func Flatten(data map[string]any) map[string]any {
	flat := map[string]any{}
	flattenInto(flat, "", data)
	return flat
}

func flattenInto(flat map[string]any, prefix string, data map[string]any) {
	for key, value := range data {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			flattenInto(flat, path, nested)
			continue
		}

		flat[path] = value
	}
}

// SetPath writes a value into a nested document at a dot-joined path,
// creating intermediate maps as needed.
func SetPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	for _, part := range parts[:len(parts)-1] {
		nested, ok := data[part].(map[string]any)
		if !ok {
			nested = map[string]any{}
			data[part] = nested
		}
		data = nested
	}

	data[parts[len(parts)-1]] = value
}

// Nest rebuilds a nested document from a flat one produced by Flatten.
func Nest(flat map[string]any) map[string]any {
	data := map[string]any{}
	for path, value := range flat {
		SetPath(data, path, value)
	}
	return data
}
