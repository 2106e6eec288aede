package hub

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/centrifuge/core/transport"
)

type options struct {
	doer           transport.Doer
	httpTransport  transport.Transport
	pusher         transport.Pusher
	queueTransport transport.Transport
	shardPicker    func(n int) int
	logger         *slog.Logger
	now            func() time.Time
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient sets the client used by the HTTP transport, replacing the
// default *http.Client built from Config.HTTPTimeout.
func WithHTTPClient(doer transport.Doer) Option {
	return func(o *options) {
		o.doer = doer
	}
}

// WithHTTPTransport replaces the HTTP transport entirely.
func WithHTTPTransport(t transport.Transport) Option {
	return func(o *options) {
		o.httpTransport = t
	}
}

// WithRedis enables the queue transport on top of a Redis client.
// Queue delivery is still used only when Config.RedisAPI is true.
func WithRedis(p transport.Pusher) Option {
	return func(o *options) {
		o.pusher = p
	}
}

// WithQueueTransport replaces the queue transport entirely.
func WithQueueTransport(t transport.Transport) Option {
	return func(o *options) {
		o.queueTransport = t
	}
}

// WithShardPicker sets the shard selection used by the queue transport built
// from WithRedis.
func WithShardPicker(fn func(n int) int) Option {
	return func(o *options) {
		o.shardPicker = fn
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock sets the time source for connection timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
