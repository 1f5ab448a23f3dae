package message

import (
	"context"
	"encoding/json"
	"fmt"

	"ptstudio/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Broker fans new messages out to the open streams of a user.
type Broker interface {
	Publish(ctx context.Context, userID int, m Message) error
	Subscribe(ctx context.Context, userID int) (<-chan Message, func() error)
}

func Channel(userID int) string {
	return fmt.Sprintf("messages:%d", userID)
}

type RedisBroker struct {
	redis *redis.Client
}

func NewRedisBroker(rdb *redis.Client) *RedisBroker {
	return &RedisBroker{redis: rdb}
}

func (b *RedisBroker) Publish(ctx context.Context, userID int, m Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return b.redis.Publish(ctx, Channel(userID), string(data)).Err()
}

// Subscribe delivers messages until ctx is done or the returned close func
// is called. The channel is closed when delivery stops.
func (b *RedisBroker) Subscribe(ctx context.Context, userID int) (<-chan Message, func() error) {
	ps := b.redis.Subscribe(ctx, Channel(userID))
	out := make(chan Message)

	go func() {
		defer close(out)
		in := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case raw, ok := <-in:
				if !ok {
					return
				}
				var m Message
				if err := json.Unmarshal([]byte(raw.Payload), &m); err != nil {
					logger.Warn("dropping malformed message payload", "channel", raw.Channel, "error", err)
					continue
				}
				select {
				case out <- m:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, ps.Close
}
