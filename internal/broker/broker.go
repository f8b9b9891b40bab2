// Package broker publishes domain events to Kafka.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"

	"bloodlink/internal/config"
)

// EventEmergencyRequest is emitted after an emergency blood request is stored.
const EventEmergencyRequest = "blood_request.emergency"

// Event is a single message to publish. Key selects the partition.
type Event struct {
	Type string
	Key  string
	Data any
}

// envelope is the wire form of an Event.
type envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// Publisher sends events without waiting for broker acknowledgement.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// KafkaPublisher publishes events through a sarama AsyncProducer. Delivery
// failures are reported asynchronously and logged.
type KafkaPublisher struct {
	producer sarama.AsyncProducer
	topic    string
	log      *logrus.Entry
	now      func() time.Time
	wg       sync.WaitGroup
}

// NewKafka creates a publisher for cfg. With no brokers configured it returns a Noop publisher.
func NewKafka(cfg config.KafkaConfig, logger *logrus.Logger) (Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return Noop{}, nil
	}

	sc := sarama.NewConfig()
	sc.ClientID = "bloodlink"
	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Return.Errors = true

	producer, err := sarama.NewAsyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return newKafkaPublisher(producer, cfg.EmergencyTopic, logger), nil
}

func newKafkaPublisher(producer sarama.AsyncProducer, topic string, logger *logrus.Logger) *KafkaPublisher {
	p := &KafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      logger.WithFields(logrus.Fields{"component": "broker", "topic": topic}),
		now:      time.Now,
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for perr := range producer.Errors() {
			p.log.WithError(perr.Err).Error("event_publish_failed")
		}
	}()

	return p
}

// Publish encodes e and hands it to the producer.
func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	body, err := json.Marshal(envelope{Type: e.Type, OccurredAt: p.now().UTC(), Data: e.Data})
	if err != nil {
		return fmt.Errorf("encode event %s: %w", e.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(e.Type)},
		},
	}
	if e.Key != "" {
		msg.Key = sarama.StringEncoder(e.Key)
	}

	select {
	case p.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes buffered messages and waits for the error drain to finish.
func (p *KafkaPublisher) Close() error {
	p.producer.AsyncClose()
	p.wg.Wait()
	return nil
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
