package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	err := p.Publish(context.Background(), TopicBookings, Event{Type: BookingCreated, UserID: 7, EntityID: 42})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, TopicBookings, msg.Topic)
	assert.Equal(t, []byte("7"), msg.Key)

	var ev Event
	require.NoError(t, json.Unmarshal(msg.Value, &ev))
	assert.Equal(t, BookingCreated, ev.Type)
	assert.Equal(t, 42, ev.EntityID)
	assert.False(t, ev.OccurredAt.IsZero())
}

type failingPublisher struct{ calls int }

func (f *failingPublisher) Publish(ctx context.Context, topic string, ev Event) error {
	f.calls++
	return errors.New("broker down")
}

func (f *failingPublisher) Close() error { return nil }

func TestEmit_SwallowsErrors(t *testing.T) {
	p := &failingPublisher{}
	Emit(context.Background(), p, TopicCredits, Event{Type: CreditsChanged})
	assert.Equal(t, 1, p.calls)

	Emit(context.Background(), nil, TopicCredits, Event{Type: CreditsChanged})
	assert.NoError(t, Noop{}.Publish(context.Background(), TopicCredits, Event{}))
}

func recordSentry(t *testing.T) func() []*sentry.Event {
	var (
		mu   sync.Mutex
		sent []*sentry.Event
	)
	require.NoError(t, sentry.Init(sentry.ClientOptions{
		BeforeSend: func(ev *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			mu.Lock()
			sent = append(sent, ev)
			mu.Unlock()
			return nil
		},
	}))
	t.Cleanup(func() { sentry.CurrentHub().BindClient(nil) })
	return func() []*sentry.Event {
		mu.Lock()
		defer mu.Unlock()
		return append([]*sentry.Event(nil), sent...)
	}
}

func TestEmit_ReportsFailure(t *testing.T) {
	sent := recordSentry(t)

	Emit(context.Background(), &failingPublisher{}, TopicBookings, Event{Type: BookingCreated, UserID: 7})

	got := sent()
	require.Len(t, got, 1)
	assert.Equal(t, TopicBookings, got[0].Extra["topic"])
	assert.Equal(t, BookingCreated, got[0].Extra["type"])
}

func TestReportDelivery(t *testing.T) {
	sent := recordSentry(t)

	reportDelivery([]kafka.Message{{Topic: TopicCredits}}, nil)
	assert.Empty(t, sent())

	reportDelivery([]kafka.Message{{Topic: TopicCredits}, {Topic: TopicCredits}}, errors.New("leader not available"))
	got := sent()
	require.Len(t, got, 1)
	assert.Equal(t, TopicCredits, got[0].Extra["topic"])
	assert.Equal(t, 2, got[0].Extra["messages"])
}
