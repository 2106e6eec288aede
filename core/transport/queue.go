package transport

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/centrifuge/core/envelope"
)

// KeySuffix is appended to the queue prefix to form the API list key.
const KeySuffix = ".api"

// Pusher appends values to the tail of a Redis list.
// redis.Cmdable (and so *redis.Client) satisfies it.
type Pusher interface {
	RPush(ctx context.Context, key string, values ...any) *redis.IntCmd
}

// Compile-time check that Queue implements Transport.
var _ Transport = (*Queue)(nil)

// Queue pushes envelopes onto the Redis list the hub reads API commands from.
// Delivery is fire-and-forget: a successful push is all it can report.
type Queue struct {
	pusher Pusher
	key    string
	shards int
	pick   func(n int) int
}

// QueueOption configures a Queue transport.
type QueueOption func(*Queue)

// WithShardPicker sets the function choosing a shard in [0, n).
// Defaults to uniform random selection.
func WithShardPicker(fn func(n int) int) QueueOption {
	return func(q *Queue) {
		if fn != nil {
			q.pick = fn
		}
	}
}

// NewQueue creates a queue transport writing to "<prefix>.api", or to one of
// shards keys "<prefix>.api.<n>" when shards > 0.
func NewQueue(p Pusher, prefix string, shards int, opts ...QueueOption) (*Queue, error) {
	if p == nil {
		return nil, ErrNilPusher
	}
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if shards < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShards, shards)
	}

	q := &Queue{
		pusher: p,
		key:    prefix + KeySuffix,
		shards: shards,
		pick:   rand.IntN,
	}
	for _, opt := range opts {
		opt(q)
	}

	return q, nil
}

// Key returns the list key for the next push. With shards configured, the
// shard is picked per call with no affinity between calls for one channel.
// Picker results outside [0, shards) are wrapped into range.
func (q *Queue) Key() string {
	if q.shards <= 0 {
		return q.key
	}
	n := q.pick(q.shards) % q.shards
	if n < 0 {
		n += q.shards
	}
	return q.key + "." + strconv.Itoa(n)
}

// Send RPUSHes the serialized envelope. The returned reply never carries a
// hub error or body.
func (q *Queue) Send(ctx context.Context, env envelope.Envelope) (Reply, error) {
	body, err := env.Marshal()
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	key := q.Key()
	if err := q.pusher.RPush(ctx, key, string(body)).Err(); err != nil {
		return Reply{}, fmt.Errorf("%w: rpush %s: %w", ErrTransport, key, err)
	}

	return Reply{Route: key}, nil
}
