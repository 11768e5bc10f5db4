package api

import (
	"bytes"
	"fmt"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// Object is a generic JSON object with typed field extraction. Responses
// from Caller.CallAPI are delivered as Objects; extraction failures report
// the offending key so each layer can classify them (missing field during
// rehydration is invalid data, missing field in a fresh server response is
// a protocol violation by the far side).
type Object map[string]interface{}

// FieldError reports a field that is absent or carries the wrong type.
type FieldError struct {
	Key    string
	Reason string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q %s", e.Key, e.Reason)
}

func missing(key string) *FieldError {
	return &FieldError{Key: key, Reason: "not found"}
}

func mistyped(key, want string, got interface{}) *FieldError {
	return &FieldError{Key: key, Reason: fmt.Sprintf("is %T, expected %s", got, want)}
}

// ParseObject decodes a JSON document into an Object. Numbers are decoded
// as json.Number so 64-bit ids survive intact.
func ParseObject(data []byte) (Object, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var obj Object
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Encode returns the wire string form of the object.
func (o Object) Encode() (string, error) {
	b, err := gojson.Marshal(o)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// String extracts a string field.
func (o Object) String(key string) (string, error) {
	v, ok := o[key]
	if !ok {
		return "", missing(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", mistyped(key, "string", v)
	}
	return s, nil
}

// Int64 extracts an integer field.
func (o Object) Int64(key string) (int64, error) {
	v, ok := o[key]
	if !ok {
		return 0, missing(key)
	}
	switch n := v.(type) {
	case gojson.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, mistyped(key, "integer", v)
		}
		return i, nil
	case float64:
		return int64(n), nil
	default:
		return 0, mistyped(key, "integer", v)
	}
}

// Object extracts a nested object field.
func (o Object) Object(key string) (Object, error) {
	v, ok := o[key]
	if !ok {
		return nil, missing(key)
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, mistyped(key, "object", v)
	}
	return Object(m), nil
}

// ObjectArray extracts an array-of-objects field.
func (o Object) ObjectArray(key string) ([]Object, error) {
	v, ok := o[key]
	if !ok {
		return nil, missing(key)
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil, mistyped(key, "array", v)
	}
	items := make([]Object, 0, len(raw))
	for i, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			return nil, &FieldError{
				Key:    key,
				Reason: fmt.Sprintf("element %d is %T, expected object", i, entry),
			}
		}
		items = append(items, Object(m))
	}
	return items, nil
}

// StringMap extracts an object field and coerces its scalar values to
// strings. Null values are skipped; nested containers are rejected.
func (o Object) StringMap(key string) (map[string]string, error) {
	obj, err := o.Object(key)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(obj))
	for k, v := range obj {
		switch val := v.(type) {
		case string:
			out[k] = val
		case gojson.Number:
			out[k] = val.String()
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		case nil:
			// skip
		default:
			return nil, &FieldError{
				Key:    key,
				Reason: fmt.Sprintf("value %q is %T, expected a scalar", k, v),
			}
		}
	}
	return out, nil
}
