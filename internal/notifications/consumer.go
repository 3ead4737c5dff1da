package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"stagepass/pkg/logger"
)

// Consumer interface defines the contract for delivering ticket confirmations
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

// ConsumerConfig contains configuration for the Kafka consumer group
type ConsumerConfig struct {
	Brokers        []string
	GroupID        string
	Topic          string
	SessionTimeout time.Duration
	OffsetOldest   bool
}

// DefaultConsumerConfig returns a default consumer configuration
func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:        []string{"localhost:9092"},
		GroupID:        "stagepass-notifications",
		Topic:          "ticket-confirmations",
		SessionTimeout: 30 * time.Second,
		OffsetOldest:   false,
	}
}

type kafkaConsumer struct {
	group  sarama.ConsumerGroup
	config *ConsumerConfig
	log    *logger.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

// NewKafkaConsumer creates a new Kafka confirmation consumer
func NewKafkaConsumer(config *ConsumerConfig) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = config.SessionTimeout
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	group, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}

	return &kafkaConsumer{
		group:  group,
		config: config,
		log:    logger.GetDefault(),
		done:   make(chan struct{}),
	}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		defer close(c.done)
		for {
			if err := c.group.Consume(ctx, []string{c.config.Topic}, c); err != nil {
				c.log.Error("Consumer group error", slog.Any("error", err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	return nil
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
		<-c.done
	}
	return c.group.Close()
}

// Setup implements sarama.ConsumerGroupHandler
func (c *kafkaConsumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup implements sarama.ConsumerGroupHandler
func (c *kafkaConsumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim implements sarama.ConsumerGroupHandler
func (c *kafkaConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		notification, err := FromJSON(message.Value)
		if err != nil {
			c.log.Error("Skipping malformed notification", slog.Any("error", err))
			session.MarkMessage(message, "")
			continue
		}

		c.deliver(notification)
		session.MarkMessage(message, "")
	}
	return nil
}

// deliver hands the confirmation to the SMS gateway. There is no real
// gateway here, so delivery is a structured log line.
func (c *kafkaConsumer) deliver(n *TicketNotification) {
	n.Status = NotificationStatusSent
	c.log.Info("SMS confirmation delivered",
		slog.String("notification_id", n.ID.String()),
		slog.String("type", string(n.Type)),
		slog.String("phone_number", n.PhoneNumber),
		slog.Uint64("ticket_id", uint64(n.TicketID)),
		slog.Float64("amount", n.Amount),
	)
}
