// Package telemetry streams simulation snapshots to external consumers.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/redis/go-redis/v9"

	"github.com/olivierh59500/nbody-trails/simulation"
)

// DefaultChannel is the pub/sub channel snapshots are published on.
const DefaultChannel = "nbody.snapshot"

// Publisher receives the world state after a tick.
type Publisher interface {
	Publish(ctx context.Context, w *simulation.World) error
	Close() error
}

// Nop discards everything.
type Nop struct{}

func (Nop) Publish(context.Context, *simulation.World) error { return nil }
func (Nop) Close() error                                       { return nil }

// redisClient is the subset of *redis.Client used here.
type redisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Close() error
}

// RedisOptions configure a RedisPublisher.
type RedisOptions struct {
	Addr    string
	Channel string
	Every   uint64 // publish one tick out of Every
	Trails  bool   // include trails in the payload
}

// RedisPublisher publishes JSON snapshots on a Redis channel.
type RedisPublisher struct {
	client redisClient
	opts   RedisOptions
	logger log.Logger
}

// NewRedisPublisher connects to Redis and checks the connection.
func NewRedisPublisher(ctx context.Context, opts RedisOptions, logger log.Logger) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{Addr: opts.Addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}
	return newRedisPublisher(client, opts, logger), nil
}

func newRedisPublisher(client redisClient, opts RedisOptions, logger log.Logger) *RedisPublisher {
	if opts.Channel == "" {
		opts.Channel = DefaultChannel
	}
	if opts.Every == 0 {
		opts.Every = 1
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &RedisPublisher{
		client: client,
		opts:   opts,
		logger: log.With(logger, "component", "telemetry", "channel", opts.Channel),
	}
}

// Publish sends the snapshot of w when its tick falls on the configured
// cadence.
func (p *RedisPublisher) Publish(ctx context.Context, w *simulation.World) error {
	if w.Ticks%p.opts.Every != 0 {
		return nil
	}
	payload, err := json.Marshal(w.Snapshot(p.opts.Trails))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	receivers, err := p.client.Publish(ctx, p.opts.Channel, payload).Result()
	if err != nil {
		return fmt.Errorf("publish tick %d: %w", w.Ticks, err)
	}
	level.Debug(p.logger).Log("msg", "snapshot published", "tick", w.Ticks, "bytes", len(payload), "receivers", receivers)
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
