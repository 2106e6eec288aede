package envelope

import (
	"bytes"
	"encoding/json"
)

// Param is a single named command parameter.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered set of command parameters. It encodes to a JSON object
// whose keys appear in insertion order.
type Params []Param

// With returns p with key set to value. An existing key keeps its position
// and gets the new value; a new key is appended.
func (p Params) With(key string, value any) Params {
	for i := range p {
		if p[i].Key == key {
			out := make(Params, len(p))
			copy(out, p)
			out[i].Value = value
			return out
		}
	}

	out := make(Params, len(p), len(p)+1)
	copy(out, p)
	return append(out, Param{Key: key, Value: value})
}

// Get returns the value stored under key.
func (p Params) Get(key string) (any, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present. A key set to nil is present.
func (p Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Keys returns the parameter names in order.
func (p Params) Keys() []string {
	keys := make([]string, len(p))
	for i, kv := range p {
		keys[i] = kv.Key
	}
	return keys
}

// MarshalJSON implements json.Marshaler. Nil or empty params encode as {}.
func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.writeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p Params) writeTo(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, kv := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(buf, kv.Key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeValue(buf, kv.Value); err != nil {
			return &EncodeError{Key: kv.Key, Err: err}
		}
	}
	buf.WriteByte('}')
	return nil
}

// encodeValue appends the JSON form of v without HTML escaping.
func encodeValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encoder terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
