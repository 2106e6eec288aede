// Package redis connects to the Redis instance the hub consumes its API queue
// from, with retries and a health check.
//
// Connect validates the URL, retries the initial ping with exponential
// backoff and returns a ready *redis.Client:
//
//	cfg := redis.Config{
//		ConnectionURL:  "redis://localhost:6379/0",
//		RetryAttempts:  3,
//		RetryInterval:  time.Second,
//		ConnectTimeout: 30 * time.Second,
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	hubClient, err := hub.New(hubCfg, hub.WithRedis(client))
//
// Healthcheck returns a func(context.Context) error suitable for
// core/health.Readiness.
//
// Errors can be checked with errors.Is: ErrEmptyConnectionURL,
// ErrFailedToParseRedisConnString, ErrRedisNotReady and ErrHealthcheckFailed.
package redis
