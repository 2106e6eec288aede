package hub

import (
	"encoding/json"
	"errors"
)

// Result is the outcome of every hub command.
//
// On HTTP success Error is the hub-reported error (nil if none) and Body the
// reply body. On queue success both are nil. On failure Error matches
// ErrTransport and Body is the JSON encoding of the request params, so the
// call can be inspected or retried.
type Result struct {
	Method string
	Error  error
	Body   json.RawMessage
}

// OK reports whether the command succeeded without a hub error.
func (r Result) OK() bool {
	return r.Error == nil
}

// Failed reports whether the command never reached the hub.
func (r Result) Failed() bool {
	return errors.Is(r.Error, ErrTransport)
}

// Decode unmarshals Body into v. A nil body leaves v untouched.
func (r Result) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// MarshalJSON renders the result as {"method", "error", "body"} with the
// error as its message or null.
func (r Result) MarshalJSON() ([]byte, error) {
	var errMsg *string
	if r.Error != nil {
		msg := r.Error.Error()
		errMsg = &msg
	}

	body := r.Body
	if len(body) == 0 {
		body = json.RawMessage("null")
	}

	return json.Marshal(struct {
		Method string          `json:"method"`
		Error  *string         `json:"error"`
		Body   json.RawMessage `json:"body"`
	}{
		Method: r.Method,
		Error:  errMsg,
		Body:   body,
	})
}
