package notification

import (
	"context"
	"fmt"

	"quickbite/internal/logger"
	"quickbite/internal/messaging"
	"quickbite/internal/models"
)

// Subscriber consumes order status notifications and surfaces them in a
// human-readable form.
type Subscriber struct {
	consumer *messaging.Consumer
	logger   *logger.Logger
}

// NewSubscriber creates a new notification subscriber
func NewSubscriber(consumer *messaging.Consumer, log *logger.Logger) *Subscriber {
	return &Subscriber{
		consumer: consumer,
		logger:   log,
	}
}

// Start consumes notifications until the context is cancelled.
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()
	s.logger.Info("service_started", "Notification subscriber started", requestID, nil)

	err := s.consumer.StartConsuming(ctx, s.handleNotification)
	if err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// handleNotification processes an incoming status update
func (s *Subscriber) handleNotification(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var update models.StatusUpdateMessage
	if err := messaging.ParseMessage(body, &update); err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse notification message", requestID, err, nil)
		return fmt.Errorf("failed to parse notification: %w", err)
	}

	fmt.Println(s.formatNotification(&update))

	s.logger.Info("notification_displayed", "Notification displayed", requestID, map[string]interface{}{
		"order_id":   update.OrderID,
		"old_status": update.OldStatus,
		"new_status": update.NewStatus,
	})
	return nil
}

// formatNotification creates a human-readable notification line
func (s *Subscriber) formatNotification(update *models.StatusUpdateMessage) string {
	timestamp := update.Timestamp.Format("2006-01-02 15:04:05")

	switch models.OrderStatus(update.NewStatus) {
	case models.StatusConfirmed:
		return fmt.Sprintf("[%s] Order %d has been confirmed by the restaurant.", timestamp, update.OrderID)
	case models.StatusPreparing:
		return fmt.Sprintf("[%s] Order %d is being prepared.", timestamp, update.OrderID)
	case models.StatusOutForDelivery:
		return fmt.Sprintf("[%s] Order %d is out for delivery.", timestamp, update.OrderID)
	case models.StatusDelivered:
		return fmt.Sprintf("[%s] Order %d has been delivered. Enjoy your meal!", timestamp, update.OrderID)
	case models.StatusCancelled:
		return fmt.Sprintf("[%s] Order %d has been cancelled.", timestamp, update.OrderID)
	default:
		return fmt.Sprintf("[%s] Order %d status changed from %s to %s.",
			timestamp, update.OrderID, update.OldStatus, update.NewStatus)
	}
}

// Close stops the subscriber's consumer.
func (s *Subscriber) Close() error {
	if s.consumer != nil {
		return s.consumer.Close()
	}
	return nil
}
