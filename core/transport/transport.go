package transport

import (
	"context"
	"encoding/json"

	"github.com/dmitrymomot/centrifuge/core/envelope"
)

// Transport delivers a single envelope to the hub.
type Transport interface {
	Send(ctx context.Context, env envelope.Envelope) (Reply, error)
}

// Reply is what a transport learned from a successful delivery.
type Reply struct {
	// Error is the hub-reported error, nil when the hub reported none or the
	// transport cannot observe replies.
	Error error

	// Body is the raw reply body, nil for JSON null or queue delivery.
	Body json.RawMessage

	// Route is the URL or queue key the envelope was delivered to.
	Route string
}
