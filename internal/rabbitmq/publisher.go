// Package rabbitmq публикует события витрины во внешний конвейер
// уведомлений через rabbitmq.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"

	"github.com/colddogs/storefront/internal/services/order"
)

const (
	exchangeName    = "storefront"
	orderQueueName  = "storefront.orders"
	orderRoutingKey = "order.created"
)

// Publisher отправляет события о заказах в rabbitmq.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Connect подключается к rabbitmq с несколькими попытками.
func Connect(connection string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "rabbitmq.Connect"
	var conn *amqp.Connection
	var err error

	for range retries {
		conn, err = amqp.Dial(connection)
		if err == nil {
			return conn, nil
		}
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}

// NewPublisher объявляет обменник и очередь заказов и возвращает издателя.
func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	const op = "rabbitmq.NewPublisher"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.ExchangeDeclare(
		exchangeName,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	_, err = ch.QueueDeclare(
		orderQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.QueueBind(orderQueueName, orderRoutingKey, exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Publisher{conn: conn, ch: ch}, nil
}

// PublishOrderCreated отправляет событие о созданном заказе.
func (p *Publisher) PublishOrderCreated(_ context.Context, event order.CreatedEvent) error {
	const op = "rabbitmq.PublishOrderCreated"

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	err = p.ch.Publish(
		exchangeName,
		orderRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает канал и соединение.
func (p *Publisher) Close() error {
	const op = "rabbitmq.Close"
	if err := p.ch.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
