package hub

import (
	"errors"

	"github.com/dmitrymomot/centrifuge/core/transport"
)

var (
	// ErrInvalidConfig is returned by New and ConfigFromMap for unusable settings.
	ErrInvalidConfig = errors.New("hub: invalid config")

	// ErrTransport matches every delivery failure carried in Result.Error.
	ErrTransport = transport.ErrTransport
)
