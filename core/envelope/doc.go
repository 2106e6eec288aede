// Package envelope builds the {method, params} command envelope sent to the
// Centrifugo hub and serializes it to a canonical byte form.
//
// The serialized bytes are both signed and transmitted, so the encoding is
// deterministic: "method" is written before "params", and params keep the
// order in which they were added rather than Go's map order.
//
//	params := envelope.Params{}.
//		With("channel", "news").
//		With("data", map[string]any{"title": "hello"})
//
//	body, err := envelope.New(envelope.MethodPublish, params).Marshal()
//	// {"method":"publish","params":{"channel":"news","data":{"title":"hello"}}}
//
// Values are encoded with encoding/json with HTML escaping disabled. Map
// values are written with sorted keys, which is stable across calls.
package envelope
