package kafka

import (
	"context"
	"encoding/json"
	"log"

	"admin-service/models"

	"github.com/segmentio/kafka-go"
)

// ProducerAPI lets services publish order events without knowing about the
// underlying writer.
type ProducerAPI interface {
	SendOrderEvent(event models.OrderEvent) error
}

type OrderEventProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	log.Printf("[AdminService][KafkaProducer] initialized topic=%s brokers=%v", topic, brokers)
	return &OrderEventProducer{writer: w, topic: topic}
}

func (p *OrderEventProducer) SendOrderEvent(event models.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	})
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
