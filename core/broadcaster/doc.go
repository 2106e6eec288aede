// Package broadcaster adapts a hub client to an application event bus.
//
// Broadcast publishes a named event into several channels, excluding the
// originating connection when the payload carries a "socket" id:
//
//	b := broadcaster.New(hubClient, broadcaster.WithLogger(log))
//	err := b.Broadcast(ctx, []string{"orders"}, "order.created", map[string]any{
//		"id":     42,
//		"socket": clientID,
//	})
//
// AuthHandler signs private channel subscriptions for authenticated users:
//
//	r.Post("/broadcasting/auth", b.AuthHandler(currentUser, canAccess).ServeHTTP)
//
// Channels prefixed with "$" are checked without the prefix but signed with it.
package broadcaster
