// Package events publishes committed order changes to RabbitMQ for downstream consumers
// such as kitchen displays.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/nikolayk812/canteen/internal/port"
	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

// Channel is the subset of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	mu       sync.Mutex
	ch       Channel
	conn     io.Closer
	exchange string
}

var _ port.OrderEventPublisher = (*Publisher)(nil)

// Dial connects to the broker at url and declares a durable topic exchange.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp.Dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("conn.Channel: %w", err)
	}

	p, err := NewPublisher(ch, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("NewPublisher: %w", err)
	}

	p.conn = conn
	return p, nil
}

func NewPublisher(ch Channel, exchange string) (*Publisher, error) {
	if ch == nil {
		return nil, errors.New("channel is nil")
	}
	if exchange == "" {
		return nil, errors.New("exchange is empty")
	}

	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("ch.ExchangeDeclare: %w", err)
	}

	return &Publisher{ch: ch, exchange: exchange}, nil
}

type orderEventMessage struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"total_amount"`
	Currency    string    `json:"currency"`
	ItemCount   int       `json:"item_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	body, err := json.Marshal(orderEventMessage{
		Type:        string(event.Type),
		OrderID:     event.OrderID.String(),
		UserID:      event.UserID,
		Status:      string(event.Status),
		TotalAmount: event.Total.String(),
		Currency:    event.Total.Currency.String(),
		ItemCount:   event.ItemCount,
		OccurredAt:  event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(event), false, false, msg); err != nil {
		return fmt.Errorf("ch.PublishWithContext: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}

// RoutingKey is order.created for new orders and order.status.<status> for status changes.
func RoutingKey(event domain.OrderEvent) string {
	switch event.Type {
	case domain.OrderEventCreated:
		return "order.created"
	case domain.OrderEventStatusChanged:
		return "order.status." + string(event.Status)
	default:
		return "order." + string(event.Type)
	}
}

// Noop drops every event. It is used when publishing is disabled.
type Noop struct{}

func (Noop) PublishOrderEvent(context.Context, domain.OrderEvent) error {
	return nil
}
