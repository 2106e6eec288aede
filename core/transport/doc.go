// Package transport delivers hub command envelopes either synchronously over
// the hub's HTTP API or asynchronously through a Redis list the hub consumes.
//
// Both implementations satisfy Transport. The HTTP transport signs the exact
// request body with the API secret and decodes the hub's single-element reply
// array. The queue transport RPUSHes the same body onto "<prefix>.api",
// optionally spread over "<prefix>.api.<n>" shards, and never observes the
// hub's response.
//
//	s := signer.MustNew(secret)
//	httpT, err := transport.NewHTTP("http://localhost:8000", s)
//	if err != nil {
//		return err
//	}
//	reply, err := httpT.Send(ctx, envelope.New(envelope.MethodStats, nil))
//
//	queueT, err := transport.NewQueue(redisClient, "centrifugo", 4)
//	if err != nil {
//		return err
//	}
//	_, err = queueT.Send(ctx, envelope.New(envelope.MethodPublish, params))
//
// Network, status, decode and push failures are returned as errors matching
// ErrTransport. An error reported by the hub itself is not a transport
// failure: it is carried in Reply.Error as an *APIError.
package transport
