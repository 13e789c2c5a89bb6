// Package amqp publishes ledger events to a RabbitMQ exchange.
package amqp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"bilancio/internal/log"
)

var ErrNotConnected = errors.New("amqp channel not open")

type Client struct {
	conn           *amqp091.Connection
	channel        *amqp091.Channel
	exchangeName   string
	queueName      string
	publishTimeout time.Duration
	logger         *log.Logger
}

func NewClient(url, exchangeName, queueName string, publishTimeout time.Duration, logger *log.Logger) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := newClient(exchangeName, queueName, publishTimeout, logger)
	client.conn = conn
	client.channel = channel

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func newClient(exchangeName, queueName string, publishTimeout time.Duration, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Discard()
	}
	if publishTimeout <= 0 {
		publishTimeout = 5 * time.Second
	}
	return &Client{
		exchangeName:   exchangeName,
		queueName:      queueName,
		publishTimeout: publishTimeout,
		logger:         logger.WithComponent(log.ComponentAMQP),
	}
}

func (c *Client) setup() error {
	// Declare exchange
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	// Declare queue
	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// Bind queue to exchange
	err = c.channel.QueueBind(
		c.queueName,    // queue name
		c.queueName,    // routing key (same as queue name for direct exchange)
		c.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishEvent publishes a persistent JSON ledger event.
func (c *Client) PublishEvent(ctx context.Context, ev *LedgerEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.channel == nil {
		return ErrNotConnected
	}

	body, err := ev.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		c.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Type:         ev.Type,
			Timestamp:    ev.Timestamp,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	c.logger.DebugContext(ctx, "Published ledger event",
		log.FieldEvent, ev.Type,
		log.FieldRecords, ev.Records,
		"exchange", c.exchangeName,
		"queue", c.queueName)

	return nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
