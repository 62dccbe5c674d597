package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/resource-matcher/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Consumer struct {
	conn        *amqp091.Connection
	channel     *amqp091.Channel
	notifierURL string
	apiKey      string
	client      *http.Client
}

func NewConsumer(host string, port int, user, password, notifierURL, apiKey string) (*Consumer, error) {
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

	return &Consumer{
		conn:        conn,
		channel:     channel,
		notifierURL: notifierURL,
		apiKey:      apiKey,
		client:      &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		matchQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var notification MatchNotification
	if err := json.Unmarshal(msg.Body, &notification); err != nil {
		logger.Error("[Consumer] unmarshal match notification", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := Forward(ctx, c.client, c.notifierURL, c.apiKey, notification); err != nil {
		logger.Error("[Consumer] forward match notification",
			zap.String("need_id", notification.NeedID),
			zap.String("error", err.Error()))
		// requeue; the notifier may be briefly down
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] match notification forwarded",
		zap.String("need_id", notification.NeedID),
		zap.String("resource_id", notification.ResourceID))
}

// Forward posts a notification to the external notifier. Client errors
// (4xx) are not retried.
func Forward(ctx context.Context, client *http.Client, notifierURL, apiKey string, notification MatchNotification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, notifierURL+"/notifications/match", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "match-notification-consumer")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 500 {
		return fmt.Errorf("notifier returned status %d: %s", resp.StatusCode, string(respBody))
	}
	if resp.StatusCode >= 400 {
		logger.Warn("[Consumer] notifier rejected notification",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)))
	}
	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
