package kafkabus

import (
	"context"
	"errors"

	"github.com/QuangTung97/finledger/config"
	"github.com/QuangTung97/finledger/pkg/bus"
	"github.com/segmentio/kafka-go"
)

// Publisher writes to kafka with acknowledgement from all in-sync replicas.
// The hash balancer keeps every message of a key on one partition.
type Publisher struct {
	writer *kafka.Writer
}

var _ bus.Publisher = &Publisher{}

// NewPublisher ...
func NewPublisher(conf config.KafkaConfig) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(conf.Brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			BatchTimeout:           conf.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish ...
func (p *Publisher) Publish(ctx context.Context, msg bus.Message) error {
	return p.writer.WriteMessages(ctx, toKafkaMessage(msg))
}

// Close ...
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Subscriber consumes topics as a member of a consumer group.
// Offsets are committed only after the handler succeeded.
type Subscriber struct {
	reader *kafka.Reader
}

var _ bus.Subscriber = &Subscriber{}

// NewSubscriber ...
func NewSubscriber(conf config.KafkaConfig, topics []string) *Subscriber {
	return &Subscriber{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     conf.Brokers,
			GroupID:     conf.GroupID,
			GroupTopics: topics,
			MinBytes:    conf.MinBytes,
			MaxBytes:    conf.MaxBytes,
		}),
	}
}

// Subscribe ...
func (s *Subscriber) Subscribe(ctx context.Context, handler bus.Handler) error {
	for {
		m, err := s.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if err := handler(ctx, fromKafkaMessage(m)); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if err := s.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

// Close ...
func (s *Subscriber) Close() error {
	return s.reader.Close()
}

func toKafkaMessage(msg bus.Message) kafka.Message {
	headers := make([]kafka.Header, 0, len(msg.Headers))
	for k, v := range msg.Headers {
		headers = append(headers, kafka.Header{
			Key:   k,
			Value: []byte(v),
		})
	}
	return kafka.Message{
		Topic:   msg.Topic,
		Key:     []byte(msg.Key),
		Value:   msg.Value,
		Headers: headers,
	}
}

func fromKafkaMessage(m kafka.Message) bus.Message {
	var headers map[string]string
	if len(m.Headers) > 0 {
		headers = make(map[string]string, len(m.Headers))
		for _, h := range m.Headers {
			headers[h.Key] = string(h.Value)
		}
	}
	return bus.Message{
		Topic:   m.Topic,
		Key:     string(m.Key),
		Value:   m.Value,
		Headers: headers,
	}
}
