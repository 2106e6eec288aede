package hub

import (
	"context"

	"github.com/dmitrymomot/centrifuge/core/envelope"
)

// PublishOption adds optional params to publish and broadcast.
type PublishOption func(envelope.Params) envelope.Params

// WithClient excludes the client connection id from receiving the message.
func WithClient(id string) PublishOption {
	return func(p envelope.Params) envelope.Params {
		return p.With("client", id)
	}
}

// UnsubscribeOption adds optional params to unsubscribe.
type UnsubscribeOption func(envelope.Params) envelope.Params

// WithChannel limits unsubscribe to one channel instead of all of them.
func WithChannel(channel string) UnsubscribeOption {
	return func(p envelope.Params) envelope.Params {
		return p.With("channel", channel)
	}
}

// Publish sends data into channel.
func (c *Client) Publish(ctx context.Context, channel string, data any, opts ...PublishOption) Result {
	params := envelope.Params{}.
		With("channel", channel).
		With("data", data)
	for _, opt := range opts {
		params = opt(params)
	}
	return c.Dispatch(ctx, envelope.MethodPublish, params)
}

// Broadcast sends data into several channels at once.
func (c *Client) Broadcast(ctx context.Context, channels []string, data any, opts ...PublishOption) Result {
	if channels == nil {
		channels = []string{}
	}
	params := envelope.Params{}.
		With("channels", channels).
		With("data", data)
	for _, opt := range opts {
		params = opt(params)
	}
	return c.Dispatch(ctx, envelope.MethodBroadcast, params)
}

// Presence returns the clients currently subscribed to channel.
func (c *Client) Presence(ctx context.Context, channel string) Result {
	return c.Dispatch(ctx, envelope.MethodPresence, envelope.Params{}.With("channel", channel))
}

// History returns the last messages sent into channel.
func (c *Client) History(ctx context.Context, channel string) Result {
	return c.Dispatch(ctx, envelope.MethodHistory, envelope.Params{}.With("channel", channel))
}

// Unsubscribe removes user from every channel, or from one with WithChannel.
func (c *Client) Unsubscribe(ctx context.Context, user string, opts ...UnsubscribeOption) Result {
	params := envelope.Params{}.With("user", user)
	for _, opt := range opts {
		params = opt(params)
	}
	return c.Dispatch(ctx, envelope.MethodUnsubscribe, params)
}

// Disconnect drops every connection of user.
func (c *Client) Disconnect(ctx context.Context, user string) Result {
	return c.Dispatch(ctx, envelope.MethodDisconnect, envelope.Params{}.With("user", user))
}

// Channels returns the currently active channels.
func (c *Client) Channels(ctx context.Context) Result {
	return c.Dispatch(ctx, envelope.MethodChannels, envelope.Params{})
}

// Stats returns statistics about the running hub nodes.
func (c *Client) Stats(ctx context.Context) Result {
	return c.Dispatch(ctx, envelope.MethodStats, envelope.Params{})
}
