package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"ptstudio/internal/errreport"
	"ptstudio/internal/logger"

	"github.com/segmentio/kafka-go"
)

const (
	TopicBookings = "bookings"
	TopicCredits  = "credits"
	TopicTraining = "training"
)

const (
	BookingCreated       = "booking.created"
	BookingCancelled     = "booking.cancelled"
	BookingLateCancelled = "booking.late_cancelled"
	BookingCompleted     = "booking.completed"
	BookingNoShow        = "booking.no_show"
	CreditsChanged       = "credits.changed"
	PackPurchased        = "pack.purchased"
	ProgrammeAssigned    = "programme.assigned"
)

type Event struct {
	Type       string    `json:"type"`
	UserID     int       `json:"user_id"`
	EntityID   int       `json:"entity_id"`
	Amount     int       `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, topic string, ev Event) error
	Close() error
}

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer writer
}

func NewKafkaPublisher(broker string) (*KafkaPublisher, error) {
	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	conn.Close()

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(broker),
			Balancer:               &kafka.Hash{},
			BatchTimeout:           50 * time.Millisecond,
			AllowAutoTopicCreation: true,
			Async:                  true,
			Completion:             reportDelivery,
		},
	}, nil
}

// reportDelivery receives the result of each async batch. Publish returns
// before delivery, so failures surface here.
func reportDelivery(msgs []kafka.Message, err error) {
	if err == nil {
		return
	}
	topic := ""
	if len(msgs) > 0 {
		topic = msgs[0].Topic
	}
	logger.Warn("failed to deliver events", "topic", topic, "messages", len(msgs), "error", err)
	errreport.Capture(err, map[string]interface{}{"topic": topic, "messages": len(msgs)})
}

// Publish keys messages by user so one client's events stay ordered. The
// writer is async, so a nil error means the message was queued.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, ev Event) error {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(strconv.Itoa(ev.UserID)),
		Value: value,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type Noop struct{}

func (Noop) Publish(ctx context.Context, topic string, ev Event) error { return nil }
func (Noop) Close() error                                              { return nil }

// Emit publishes ev and only logs a failure. Domain writes have already
// committed by the time events go out.
func Emit(ctx context.Context, p Publisher, topic string, ev Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, topic, ev); err != nil {
		logger.Warn("failed to publish event", "topic", topic, "type", ev.Type, "error", err)
		errreport.Capture(err, map[string]interface{}{"topic": topic, "type": ev.Type, "user_id": ev.UserID})
	}
}
