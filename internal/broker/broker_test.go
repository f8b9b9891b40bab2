package broker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/config"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := mocks.NewAsyncProducer(t, nil)
	logger, _ := test.NewNullLogger()

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	producer.ExpectInputWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "blood-requests.emergency" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "req-1" {
			return errors.New("unexpected key " + string(key))
		}
		raw, _ := msg.Value.Encode()
		var env map[string]any
		if err := json.Unmarshal(raw, &env); err != nil {
			return err
		}
		if env["type"] != EventEmergencyRequest || env["occurred_at"] != "2026-01-02T03:04:05Z" {
			return errors.New("unexpected envelope " + string(raw))
		}
		return nil
	})

	p := newKafkaPublisher(producer, "blood-requests.emergency", logger)
	p.now = func() time.Time { return fixed }

	err := p.Publish(context.Background(), Event{
		Type: EventEmergencyRequest,
		Key:  "req-1",
		Data: map[string]any{"blood_type": "O-"},
	})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_DeliveryFailureIsLogged(t *testing.T) {
	producer := mocks.NewAsyncProducer(t, nil)
	logger, hook := test.NewNullLogger()

	producer.ExpectInputAndFail(sarama.ErrOutOfBrokers)

	p := newKafkaPublisher(producer, "t", logger)
	require.NoError(t, p.Publish(context.Background(), Event{Type: EventEmergencyRequest}))
	require.NoError(t, p.Close())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "event_publish_failed", entry.Message)
}

func TestKafkaPublisher_EncodeError(t *testing.T) {
	producer := mocks.NewAsyncProducer(t, nil)
	logger, _ := test.NewNullLogger()
	p := newKafkaPublisher(producer, "t", logger)

	err := p.Publish(context.Background(), Event{Type: EventEmergencyRequest, Data: make(chan int)})

	assert.ErrorContains(t, err, "encode event blood_request.emergency")
	require.NoError(t, p.Close())
}

func TestNewKafka_Disabled(t *testing.T) {
	logger, _ := test.NewNullLogger()
	p, err := NewKafka(config.KafkaConfig{}, logger)
	require.NoError(t, err)
	assert.IsType(t, Noop{}, p)
	assert.NoError(t, p.Publish(context.Background(), Event{}))
}
