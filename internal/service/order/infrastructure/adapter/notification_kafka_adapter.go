// internal/service/order/infrastructure/adapter/notification_kafka_adapter.go
package adapter

import (
	"context"
	"encoding/json"

	pkgerrors "github.com/pkg/errors"
	"github.com/segmentio/kafka-go"

	"signcraft/internal/pkg/mq"
	"signcraft/internal/service/order/domain"
	"signcraft/internal/service/order/port"
)

// NotificationKafkaAdapter 把订单事件发往 Kafka。
// 消息按 userId 做 key，同一用户的通知落在同一分区、保序消费。
type NotificationKafkaAdapter struct {
	writer *kafka.Writer
}

func NewNotificationKafkaAdapter(writer *kafka.Writer) *NotificationKafkaAdapter {
	return &NotificationKafkaAdapter{writer: writer}
}

var _ port.NotificationProducer = (*NotificationKafkaAdapter)(nil)

func (a *NotificationKafkaAdapter) SendOrderPlaced(ctx context.Context, event *domain.OrderPlaced) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to marshal order placed event")
	}
	if err := mq.ProduceMessage(ctx, a.writer, []byte(event.UserID), payload); err != nil {
		return pkgerrors.Wrap(err, "failed to produce order placed event")
	}
	return nil
}
