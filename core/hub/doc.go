// Package hub is a client for the Centrifugo real-time messaging server API.
//
// A Client exposes one method per API command (Publish, Broadcast, Presence,
// History, Unsubscribe, Disconnect, Channels, Stats) and dispatches each over
// one of two transports:
//
//   - HTTP: a signed POST to "<url>/api/", synchronous, returns the hub reply.
//   - Redis queue: an RPUSH onto "<prefix>.api[.<shard>]", fire-and-forget.
//
// The queue is used only when Config.RedisAPI is true, a Redis client was
// given with WithRedis, and the command does not need a reply (publish,
// broadcast, unsubscribe, disconnect). Presence, history, channels and stats
// always use HTTP.
//
// # Results
//
// Commands never return an error. Every call yields a Result whose Error is
// nil on success, a hub-reported *transport.APIError, or a delivery failure
// matching ErrTransport. On delivery failure Body holds the request params.
//
//	res := client.Publish(ctx, "news", map[string]any{"title": "hello"})
//	if res.Error != nil {
//		log.Error("publish failed", logger.Error(res.Error))
//	}
//
//	var presence struct {
//		Channel string         `json:"channel"`
//		Data    map[string]any `json:"data"`
//	}
//	if res := client.Presence(ctx, "news"); res.OK() {
//		_ = res.Decode(&presence)
//	}
//
// # Tokens
//
// GenerateToken signs connection tokens (user, timestamp, info) and private
// channel signs (client, channel, info). Connection builds complete browser
// connection settings.
//
// # Configuration
//
// Config carries env tags for core/config and can also be built from a
// loosely typed map with ConfigFromMap. An empty secret is rejected by New.
package hub
