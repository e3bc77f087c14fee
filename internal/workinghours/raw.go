package workinghours

import (
	"encoding/json"
	"strings"
)

// toGeneric brings a Go-typed value (struct, typed slice, typed map) to the shape
// encoding/json produces for interface{}: map[string]interface{}, []interface{},
// string, float64, bool or nil. Values that cannot be marshalled are returned as-is
// and later fall through to the defaults.
func toGeneric(raw interface{}) interface{} {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return v
	case []byte:
		return string(v)
	case json.RawMessage:
		return string(v)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return raw
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return raw
	}
	return out
}

// parseJSONString decodes s as JSON. ok is false when s is not valid JSON.
func parseJSONString(s string) (interface{}, bool) {
	var out interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &out); err != nil {
		return nil, false
	}
	return out, true
}
