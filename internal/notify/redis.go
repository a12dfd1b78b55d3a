package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher fans notifications out on a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher connects to Redis and checks the connection.
func NewRedisPublisher(ctx context.Context, addr, password string, db int, channel string) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisPublisher{client: client, channel: channel}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, n Notification) error {
	msg, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, msg).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// Subscribe opens a subscription on the notification channel.
func (p *RedisPublisher) Subscribe(ctx context.Context) *redis.PubSub {
	return p.client.Subscribe(ctx, p.channel)
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
