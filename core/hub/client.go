package hub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/centrifuge/core/envelope"
	"github.com/dmitrymomot/centrifuge/core/logger"
	"github.com/dmitrymomot/centrifuge/core/transport"
	"github.com/dmitrymomot/centrifuge/pkg/signer"
)

const (
	transportHTTP  = "http"
	transportQueue = "queue"
)

// Client sends commands to the hub and signs tokens for its clients.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	cfg    Config
	signer *signer.Signer
	http   transport.Transport
	queue  transport.Transport
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Client. Configuration defects, including an empty secret,
// are returned as errors wrapping ErrInvalidConfig.
//
// Example:
//
//	client, err := hub.New(cfg,
//		hub.WithRedis(redisClient),
//		hub.WithLogger(log),
//	)
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	s, err := signer.New(cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	c := &Client{
		cfg:    cfg,
		signer: s,
		http:   o.httpTransport,
		queue:  o.queueTransport,
		logger: o.logger,
		now:    o.now,
	}

	if c.http == nil {
		doer := o.doer
		if doer == nil {
			doer = &http.Client{Timeout: cfg.HTTPTimeout}
		}
		ht, err := transport.NewHTTP(cfg.URL, s, transport.WithDoer(doer))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		c.http = ht
	}

	if c.queue == nil && o.pusher != nil {
		qt, err := transport.NewQueue(o.pusher, cfg.RedisPrefix, cfg.RedisNumShards,
			transport.WithShardPicker(o.shardPicker))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		c.queue = qt
	}

	return c, nil
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Dispatch sends method with params and never fails: delivery errors are
// folded into the returned Result.
//
// The queue transport is used when Config.RedisAPI is set, a queue transport
// is configured and the method is queue eligible. Everything else goes over HTTP.
func (c *Client) Dispatch(ctx context.Context, method envelope.Method, params envelope.Params) Result {
	start := time.Now()
	t, name := c.route(method)

	reply, err := safeSend(ctx, t, envelope.New(method, params))
	if err != nil {
		c.logger.ErrorContext(ctx, "hub command failed",
			logger.HubMethod(method.String()),
			logger.Transport(name),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		return failedResult(method, params, err)
	}

	c.logger.DebugContext(ctx, "hub command sent",
		logger.HubMethod(method.String()),
		logger.Transport(name),
		logger.Route(reply.Route),
		logger.Duration(time.Since(start)),
		logger.Error(reply.Error),
	)

	return Result{
		Method: method.String(),
		Error:  reply.Error,
		Body:   reply.Body,
	}
}

func (c *Client) route(method envelope.Method) (transport.Transport, string) {
	if c.cfg.RedisAPI && c.queue != nil && method.QueueEligible() {
		return c.queue, transportQueue
	}
	return c.http, transportHTTP
}

// safeSend makes every failure, including a panic, match ErrTransport.
func safeSend(ctx context.Context, t transport.Transport, env envelope.Envelope) (reply transport.Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s panicked: %v", ErrTransport, env.Method, r)
		}
	}()

	reply, err = t.Send(ctx, env)
	if err != nil && !errors.Is(err, ErrTransport) {
		err = fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return reply, err
}

// failedResult echoes params as the body. Params that cannot be encoded
// leave the body empty.
func failedResult(method envelope.Method, params envelope.Params, err error) Result {
	body, mErr := params.MarshalJSON()
	if mErr != nil {
		body = nil
	}
	return Result{
		Method: method.String(),
		Error:  err,
		Body:   body,
	}
}
