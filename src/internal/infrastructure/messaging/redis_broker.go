package messaging

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/infrastructure/logger"
)

// Publisher *goredis.Client 的發布子集
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *goredis.IntCmd
}

// RedisOptions Redis 連線設定
type RedisOptions struct {
	Addr          string
	Password      string
	DB            int
	ChannelPrefix string
}

// RedisBroker 以 Redis Pub/Sub 發布整合事件
//
// 頻道名稱為 ChannelPrefix + 事件名稱。
type RedisBroker struct {
	log    *logger.Logger
	client Publisher
	prefix string
}

// NewRedisBroker 包裝既有的發布端
func NewRedisBroker(client Publisher, prefix string, log *logger.Logger) *RedisBroker {
	return &RedisBroker{
		log:    log.Component("redis_broker"),
		client: client,
		prefix: prefix,
	}
}

// DialRedis 建立 Redis 連線並確認可用
func DialRedis(opts RedisOptions) (*goredis.Client, error) {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Channel 事件對應的頻道
func (b *RedisBroker) Channel(eventName string) string {
	return b.prefix + eventName
}

// PublishEvent 實現 events.MessageBroker
func (b *RedisBroker) PublishEvent(ctx context.Context, event shared.IntegrationEvent) error {
	if b == nil || b.client == nil {
		return fmt.Errorf("redis broker not initialized")
	}

	raw, err := NewEnvelope(event).Encode()
	if err != nil {
		return fmt.Errorf("encode event %s: %w", event.EventID(), err)
	}

	channel := b.Channel(event.EventName())
	receivers, err := b.client.Publish(ctx, channel, raw).Result()
	if err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}

	b.log.Debug("integration event published",
		"channel", channel,
		"event_id", event.EventID(),
		"receivers", receivers,
	)
	return nil
}
