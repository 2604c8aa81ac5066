package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "hrdash:changes"

// Notification is the wire form of an Event. The collection snapshot is left
// out; subscribers refetch what they need.
type Notification struct {
	Collection Collection `json:"collection"`
	Action     Action     `json:"action"`
	RecordID   string     `json:"recordId,omitempty"`
	At         time.Time  `json:"at"`
}

func Encode(e Event) ([]byte, error) {
	return json.Marshal(Notification{
		Collection: e.Collection,
		Action:     e.Action,
		RecordID:   e.RecordID,
		At:         e.At.UTC(),
	})
}

// NewRedisClient connects to redis with short timeouts.
func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
}

// RedisPublisher forwards events to a redis pub/sub channel. Observe never
// blocks: events go through a bounded queue drained by one worker, and are
// dropped with a warning when the queue is full.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	queue   chan Event
	logger  *slog.Logger
	done    chan struct{}
}

func NewRedisPublisher(client *redis.Client, channel string, size int, logger *slog.Logger) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	if size <= 0 {
		size = 128
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisPublisher{
		client:  client,
		channel: channel,
		queue:   make(chan Event, size),
		logger:  logger,
		done:    make(chan struct{}),
	}
}

func (p *RedisPublisher) Observe(e Event) {
	select {
	case p.queue <- e:
	default:
		p.logger.Warn("change queue full", "collection", e.Collection, "action", e.Action, "recordId", e.RecordID)
	}
}

// Start runs the worker until ctx is done. Wait blocks until it has exited.
func (p *RedisPublisher) Start(ctx context.Context) {
	go p.worker(ctx)
}

func (p *RedisPublisher) Wait() {
	<-p.done
}

func (p *RedisPublisher) worker(ctx context.Context) {
	defer close(p.done)
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-p.queue:
			if err := p.publish(ctx, e); err != nil {
				p.logger.Warn("change publish failed", "channel", p.channel, "collection", e.Collection, "err", err)
			}
		}
	}
}

func (p *RedisPublisher) publish(ctx context.Context, e Event) error {
	payload, err := Encode(e)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, payload).Err()
}

// Healthy verifies redis connectivity.
func (p *RedisPublisher) Healthy(ctx context.Context) bool {
	if p == nil || p.client == nil {
		return false
	}
	return p.client.Ping(ctx).Err() == nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
