// internal/service/notification/kafka_producer.go
package notification

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"

	"sebshop/internal/pkg/mq"
)

// KafkaProducer 实现了 Producer 接口，把通知事件写入 notifications topic。
// 以用户 ID 作为分区键，保证同一用户看到的通知满足 FIFO。
type KafkaProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer 创建一个新的通知生产者适配器。
func NewKafkaProducer(writer *kafka.Writer) *KafkaProducer {
	return &KafkaProducer{writer: writer}
}

// Send 序列化事件并发送，追踪上下文会被注入消息头。
func (p *KafkaProducer) Send(ctx context.Context, event Event) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal notification event")
	}
	if err := mq.ProduceMessage(ctx, p.writer, []byte(event.UserID), eventBytes); err != nil {
		return errors.Wrap(err, "failed to produce notification message")
	}
	return nil
}

// Close 关闭底层的 Kafka writer。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
