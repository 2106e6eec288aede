package broadcaster

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/centrifuge/core/hub"
	"github.com/dmitrymomot/centrifuge/core/logger"
)

const (
	eventKey  = "event"
	socketKey = "socket"
)

// Hub is the part of *hub.Client the broadcaster depends on.
type Hub interface {
	Broadcast(ctx context.Context, channels []string, data any, opts ...hub.PublishOption) hub.Result
	GenerateChannelSign(client, channel, info string) string
}

// Broadcaster publishes application events through the hub.
type Broadcaster struct {
	hub    Hub
	logger *slog.Logger
}

// Option configures a Broadcaster.
type Option func(*Broadcaster)

// WithLogger sets the logger for broadcast failures and auth decisions.
func WithLogger(l *slog.Logger) Option {
	return func(b *Broadcaster) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a Broadcaster on top of h.
func New(h Hub, opts ...Option) *Broadcaster {
	b := &Broadcaster{
		hub:    h,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Broadcast sends payload with the event name into channels. A string
// "socket" entry is removed from the payload and excludes that connection.
// The caller's map is not modified.
func (b *Broadcaster) Broadcast(ctx context.Context, channels []string, event string, payload map[string]any) error {
	data := make(map[string]any, len(payload)+1)
	maps.Copy(data, payload)
	data[eventKey] = event

	var opts []hub.PublishOption
	if socket, ok := data[socketKey]; ok {
		delete(data, socketKey)
		if id, ok := socket.(string); ok && id != "" {
			opts = append(opts, hub.WithClient(id))
		}
	}

	res := b.hub.Broadcast(ctx, channels, data, opts...)
	if res.Error != nil {
		b.logger.ErrorContext(ctx, "broadcast failed",
			logger.Component("broadcaster"),
			logger.Event(event),
			logger.Channels(channels),
			logger.Error(res.Error),
		)
		return fmt.Errorf("%w: %w", ErrBroadcastFailed, res.Error)
	}
	return nil
}
