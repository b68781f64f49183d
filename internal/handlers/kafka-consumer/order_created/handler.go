package order_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"laundry-admin/pkg/logger"
)

type Handler struct {
	log                      handlerLogger
	ordersService            OrdersService
	view                     ViewEngine
	broadcaster              Broadcaster
	messageProcessingTimeout time.Duration
}

func New(
	log handlerLogger,
	ordersService OrdersService,
	view ViewEngine,
	broadcaster Broadcaster,
	timeout time.Duration,
) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:                      handlerLog,
		ordersService:            ordersService,
		view:                     view,
		broadcaster:              broadcaster,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.created: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.created: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event createdEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.created handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.created processing")

	err = h.ordersService.Refresh(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler context cancelled, message will be reprocessed")
			return true
		}

		// Снапшот остался прежним, подсветку всё равно запрашиваем.
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.created handler failed to refresh orders")
	}

	if event.OrderID != 0 {
		h.view.RequestHighlight(event.OrderID)
	}
	h.broadcaster.BroadcastNewOrder(event.Message, event.OrderID)

	msgLog.Info("order.created: processed")

	sess.MarkMessage(message, "")
	return false
}
