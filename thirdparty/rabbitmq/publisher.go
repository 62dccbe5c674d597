package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	matchExchange   = "match_notification_exchange"
	matchQueue      = "match_notification_queue"
	matchRoutingKey = "match_notification"
)

// MatchNotification tells a need owner that a nearby donor offered
// something they asked for.
type MatchNotification struct {
	NeedID         string    `json:"need_id"`
	NeedOwnerID    string    `json:"need_owner_id"`
	ResourceID     string    `json:"resource_id"`
	DonorID        string    `json:"donor_id"`
	Category       string    `json:"category"`
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	IsUnopened     bool      `json:"is_unopened"`
	DistanceMeters float64   `json:"distance_meters"`
	CreatedAt      time.Time `json:"created_at"`
}

type MatchPublisher interface {
	PublishMatchNotification(ctx context.Context, msg MatchNotification) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dsn(host string, port int, user, password string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
}

// declare sets up the exchange, queue and binding shared by publisher and
// consumer.
func declare(channel *amqp091.Channel) error {
	if err := channel.ExchangeDeclare(
		matchExchange, // name
		"direct",      // type
		true,          // durable
		false,         // auto-delete
		false,         // internal
		false,         // no-wait
		nil,           // arguments
	); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := channel.QueueDeclare(
		matchQueue, // name
		true,       // durable
		false,      // auto-delete
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := channel.QueueBind(
		matchQueue,      // queue name
		matchRoutingKey, // routing key
		matchExchange,   // exchange
		false,           // no-wait
		nil,             // arguments
	); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, err := amqp091.Dial(dsn(host, port, user, password))
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declare(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishMatchNotification(ctx context.Context, msg MatchNotification) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		matchExchange,   // exchange
		matchRoutingKey, // routing key
		false,           // mandatory
		false,           // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.CreatedAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
