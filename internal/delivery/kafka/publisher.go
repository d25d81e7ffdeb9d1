package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gocartvn/checkout-api/internal/usecase"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Publisher emits checkout events, keyed by user id so one shopper's events
// stay ordered within a partition.
type Publisher struct {
	client *kgo.Client
}

func NewPublisher(client *kgo.Client) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) OrderCreated(ctx context.Context, event usecase.OrderCreatedEvent) error {
	ids := make([]string, 0, len(event.OrderIDs))
	for _, id := range event.OrderIDs {
		ids = append(ids, id.String())
	}

	msg := OrderCreatedMessage{
		SchemaVersion: 1,
		OrderIDs:      ids,
		UserID:        event.UserID,
		GrandTotal:    event.GrandTotal,
		Currency:      event.Currency,
		PaymentMethod: string(event.PaymentMethod),
		CreatedAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal order created event: %w", err)
	}

	record := &kgo.Record{
		Topic: TopicOrderCreated,
		Key:   []byte(event.UserID),
		Value: payload,
	}
	return p.client.ProduceSync(ctx, record).FirstErr()
}

var _ usecase.EventPublisher = (*Publisher)(nil)
