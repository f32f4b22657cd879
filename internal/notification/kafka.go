package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const confirmationsTopic = "order-confirmations"

// messageWriter is the slice of kafka.Writer the notifier needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaNotifier struct {
	writer messageWriter
}

// NewKafkaNotifier publishes order confirmations to the notification topic,
// where the mailer workers pick them up.
func NewKafkaNotifier(brokers ...string) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  confirmationsTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaNotifier{writer: w}
}

func (n *KafkaNotifier) SendOrderConfirmation(ctx context.Context, confirmation Confirmation) (Receipt, error) {
	payload, err := json.Marshal(confirmation)
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to marshal confirmation: %w", err)
	}

	messageID := uuid.New().String()
	msg := kafka.Message{
		Key:   []byte(confirmation.OrderID), // order_id for ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "message_id", Value: []byte(messageID)},
			{Key: "event_type", Value: []byte("order-confirmation")},
		},
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return Receipt{}, fmt.Errorf("failed to publish confirmation: %w", err)
	}

	return Receipt{Success: true, MessageID: messageID}, nil
}

// Close flushes pending messages and releases the writer's connections.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
