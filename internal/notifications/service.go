package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"stagepass/internal/shared/config"
	"stagepass/internal/tickets"
	"stagepass/pkg/logger"
)

// Service wires the confirmation producer and consumer together and adapts
// them to the booking service's Notifier interface. Publishing is best
// effort: a broker outage must never fail a purchase.
type Service struct {
	producer Producer
	consumer Consumer
	log      *logger.Logger
}

// NewService creates the confirmation pipeline from configuration
func NewService(cfg config.KafkaConfig) (*Service, error) {
	producerConfig := DefaultProducerConfig()
	producerConfig.Brokers = cfg.Brokers
	producerConfig.Topic = cfg.Topic

	producer, err := NewKafkaProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create confirmation producer: %w", err)
	}

	consumerConfig := DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Brokers
	consumerConfig.Topic = cfg.Topic
	consumerConfig.GroupID = cfg.ConsumerGroup

	consumer, err := NewKafkaConsumer(consumerConfig)
	if err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to create confirmation consumer: %w", err)
	}

	return &Service{
		producer: producer,
		consumer: consumer,
		log:      logger.GetDefault(),
	}, nil
}

// Start begins delivering queued confirmations
func (s *Service) Start(ctx context.Context) error {
	return s.consumer.Start(ctx)
}

// Stop shuts the pipeline down
func (s *Service) Stop() error {
	if err := s.consumer.Stop(); err != nil {
		s.producer.Close()
		return err
	}
	return s.producer.Close()
}

// TicketSold implements tickets.Notifier
func (s *Service) TicketSold(ctx context.Context, ticket *tickets.Ticket) {
	s.publish(ctx, NotificationTypePurchaseConfirmed, ticket)
}

// TicketReturned implements tickets.Notifier
func (s *Service) TicketReturned(ctx context.Context, ticket *tickets.Ticket) {
	s.publish(ctx, NotificationTypeRefundConfirmed, ticket)
}

func (s *Service) publish(ctx context.Context, notificationType NotificationType, ticket *tickets.Ticket) {
	notification := &TicketNotification{
		ID:            uuid.New(),
		Type:          notificationType,
		Status:        NotificationStatusPending,
		PhoneNumber:   ticket.PhoneNumber,
		TicketID:      ticket.ID,
		PerformanceID: ticket.PerformanceID,
		ScheduleID:    ticket.ScheduleID,
		SeatID:        ticket.SeatID,
		Amount:        ticket.Price,
		OccurredAt:    ticket.PurchaseDate,
		CreatedAt:     time.Now(),
	}

	if err := s.producer.Publish(ctx, notification); err != nil {
		s.log.Error("Failed to publish ticket confirmation",
			slog.String("type", string(notificationType)),
			slog.Uint64("ticket_id", uint64(ticket.ID)),
			slog.Any("error", err),
		)
	}
}
