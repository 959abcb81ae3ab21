package kafka_storage

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/azizazlan/multi-sig-wallet/storage"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	kafkaMinBytes    = 10
	kafkaMaxBytes    = 10e6
	kafkaMaxAttempts = 16
)

type KafkaAuthCredentials struct {
	Username string
	Password string
}

func (c *KafkaAuthCredentials) Mechanism() *plain.Mechanism {
	if c == nil {
		return nil
	}
	return &plain.Mechanism{
		Username: c.Username,
		Password: c.Password,
	}
}

var _ storage.Storage = (*KafkaStorage)(nil)

// KafkaStorage journals wallet records to a kafka topic.
type KafkaStorage struct {
	reader *kafka.Reader
	writer *kafka.Writer

	tlsConfig                    *tls.Config
	producerCreds, consumerCreds *plain.Mechanism

	brokerEndpoint, consumerGroup, topic string
	timeout                              time.Duration
}

func NewKafkaStorage(
	brokerEndpoint,
	topic,
	consumerGroup string,
	tlsConfig *tls.Config,
	producerCreds,
	consumerCreds *KafkaAuthCredentials,
	timeout time.Duration,
) (*KafkaStorage, error) {
	ks := &KafkaStorage{
		brokerEndpoint: brokerEndpoint,
		topic:          topic,
		consumerGroup:  consumerGroup,
		tlsConfig:      tlsConfig,
		producerCreds:  producerCreds.Mechanism(),
		consumerCreds:  consumerCreds.Mechanism(),
		timeout:        timeout,
	}
	if err := ks.reset(); err != nil {
		return nil, fmt.Errorf("failed to create a NewKafkaStorage: %w", err)
	}

	return ks, nil
}

func (ks *KafkaStorage) Close() error {
	if ks.reader != nil {
		if err := ks.reader.Close(); err != nil {
			return fmt.Errorf("failed to Close reader: %w", err)
		}
	}

	if ks.writer != nil {
		if err := ks.writer.Close(); err != nil {
			return fmt.Errorf("failed to Close writer: %w", err)
		}
	}

	return nil
}

func (ks *KafkaStorage) Send(records ...storage.Record) error {
	kafkaMessages := make([]kafka.Message, len(records))
	for i, r := range records {
		r.ID = uuid.New().String()
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal a record %v: %v", r, err)
		}
		kafkaMessages[i] = kafka.Message{Key: []byte(r.ID), Value: data}
	}

	if err := ks.writer.WriteMessages(context.Background(), kafkaMessages...); err != nil {
		return fmt.Errorf("failed to WriteMessages: %w", err)
	}

	return nil
}

// GetRecords drains the topic through the consumer group; the broker tracks
// the group's position, so the offset argument only filters what came back.
func (ks *KafkaStorage) GetRecords(offset uint64) ([]storage.Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	var records []storage.Record
	for {
		kafkaMessage, err := ks.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				break
			}
			return nil, fmt.Errorf("failed to ReadMessage: %w", err)
		}

		var record storage.Record
		if err = json.Unmarshal(kafkaMessage.Value, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal a record %s: %v",
				string(kafkaMessage.Value), err)
		}

		record.Offset = uint64(kafkaMessage.Offset)
		if record.Offset >= offset {
			records = append(records, record)
		}
	}

	return records, nil
}

func (ks *KafkaStorage) reset() error {
	if err := ks.Close(); err != nil {
		return fmt.Errorf("failed to Close connections: %w", err)
	}

	dialer := &kafka.Dialer{
		Timeout:   ks.timeout,
		DualStack: true,
		TLS:       ks.tlsConfig,
	}
	if ks.consumerCreds != nil {
		dialer.SASLMechanism = ks.consumerCreds
	}

	ks.reader = kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{ks.brokerEndpoint},
		GroupID:     ks.consumerGroup,
		Topic:       ks.topic,
		MinBytes:    kafkaMinBytes,
		MaxBytes:    kafkaMaxBytes,
		MaxAttempts: kafkaMaxAttempts,
		Dialer:      dialer,
	})

	transport := &kafka.Transport{
		Dial: (&net.Dialer{
			Timeout: ks.timeout,
		}).DialContext,
		TLS: ks.tlsConfig,
	}
	if ks.producerCreds != nil {
		transport.SASL = ks.producerCreds
	}

	ks.writer = &kafka.Writer{
		Addr:         kafka.TCP(ks.brokerEndpoint),
		Topic:        ks.topic,
		Balancer:     &kafka.LeastBytes{},
		MaxAttempts:  kafkaMaxAttempts,
		BatchTimeout: ks.timeout,
		ReadTimeout:  ks.timeout,
		WriteTimeout: ks.timeout,
		Transport:    transport,
	}

	return nil
}
