package envelope

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrUnknownMethod is returned when serializing an envelope whose method
	// the hub does not accept.
	ErrUnknownMethod = errors.New("envelope: unknown method")

	// ErrEncodeParams is returned when a parameter value cannot be encoded.
	ErrEncodeParams = errors.New("envelope: failed to encode params")
)

// EncodeError reports the parameter whose value failed to encode.
type EncodeError struct {
	Key string
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s: param %q: %v", ErrEncodeParams, e.Key, e.Err)
}

func (e *EncodeError) Unwrap() []error {
	return []error{ErrEncodeParams, e.Err}
}

// Envelope is one hub API command.
type Envelope struct {
	Method Method
	Params Params
}

// New builds an envelope for method with params.
func New(method Method, params Params) Envelope {
	return Envelope{Method: method, Params: params}
}

// Marshal returns the canonical serialization of e. Identical method and
// params always produce identical bytes.
func (e Envelope) Marshal() ([]byte, error) {
	if !e.Method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, e.Method)
	}

	var buf bytes.Buffer
	buf.WriteString(`{"method":`)
	if err := encodeValue(&buf, string(e.Method)); err != nil {
		return nil, err
	}
	buf.WriteString(`,"params":`)
	if err := e.Params.writeTo(&buf); err != nil {
		return nil, err
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler using the canonical form.
func (e Envelope) MarshalJSON() ([]byte, error) {
	return e.Marshal()
}
