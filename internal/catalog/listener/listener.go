package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Heybro1122/ShopHub/internal/catalog"
	"github.com/Heybro1122/ShopHub/pkg/broker"
	"github.com/Heybro1122/ShopHub/pkg/logger"
	"go.uber.org/zap"
)

// CatalogListener consumes order events and keeps product stock and sales
// counters in line with fulfilled orders.
type CatalogListener struct {
	consumer *broker.KafkaConsumer
	repo     catalog.Repository
	logger   logger.ZapLogger
}

func NewCatalogListener(consumer *broker.KafkaConsumer, repo catalog.Repository, log logger.ZapLogger) *CatalogListener {
	return &CatalogListener{
		consumer: consumer,
		repo:     repo,
		logger:   log,
	}
}

func (l *CatalogListener) Start(ctx context.Context) {
	l.logger.Info("Starting catalog order listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping catalog order listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				// Don't log context canceled error as error
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type OrderDeliveredEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID    string             `json:"id"`
	Items []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (l *CatalogListener) processMessage(ctx context.Context, value []byte) {
	var event OrderDeliveredEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != "OrderDelivered" {
		return
	}

	l.logger.Info("Processing OrderDelivered event", zap.String("order_id", event.Payload.ID))

	for _, item := range event.Payload.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			continue
		}

		if err := l.repo.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			l.logger.Error("Failed to adjust stock for order item",
				zap.String("order_id", event.Payload.ID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			continue
		}
		if err := l.repo.IncrementSales(ctx, item.ProductID, item.Quantity); err != nil {
			l.logger.Error("Failed to increment sales for order item",
				zap.String("order_id", event.Payload.ID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
		}
	}
}
