package eventbus

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	evport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/event"
)

// RelayListenerName identifies the Kafka relay on the bus
const RelayListenerName = "kafka-relay"

// KafkaOptions configures the relay writer
type KafkaOptions struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	WriteTimeout time.Duration
}

// messageWriter is the part of *kafka.Writer the relay uses
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaRelay forwards ledger events to a Kafka topic so other processes can follow them
type KafkaRelay struct {
	writer       messageWriter
	writeTimeout time.Duration
	logger       coreport.Logger
	subscription evport.Subscription
}

// NewKafkaRelay creates a relay backed by a kafka.Writer
func NewKafkaRelay(opts KafkaOptions, logger coreport.Logger) *KafkaRelay {
	if opts.BatchTimeout <= 0 {
		opts.BatchTimeout = 10 * time.Millisecond
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(opts.Brokers...),
		Topic:        opts.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    10,
		BatchTimeout: opts.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
	}

	return newKafkaRelay(writer, opts.WriteTimeout, logger)
}

func newKafkaRelay(writer messageWriter, writeTimeout time.Duration, logger coreport.Logger) *KafkaRelay {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &KafkaRelay{
		writer:       writer,
		writeTimeout: writeTimeout,
		logger:       logger,
	}
}

// Attach subscribes the relay to bus
func (r *KafkaRelay) Attach(subscriber evport.Subscriber) {
	r.subscription = subscriber.Subscribe(RelayListenerName, r.handle)
}

// Close detaches the relay and flushes the writer
func (r *KafkaRelay) Close() error {
	if r.subscription != nil {
		r.subscription.Unsubscribe()
	}
	return r.writer.Close()
}

func (r *KafkaRelay) handle(ctx context.Context, evt entity.LedgerEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.writeTimeout)
	defer cancel()

	// Keyed by user so one user's events stay ordered within a partition
	message := kafka.Message{
		Key:   []byte(evt.UserID),
		Value: data,
		Time:  evt.OccurredAt,
	}
	if err := r.writer.WriteMessages(writeCtx, message); err != nil {
		return fmt.Errorf("failed to relay ledger event: %w", err)
	}

	r.logger.Debug("Ledger event relayed", map[string]any{
		"event_id": evt.ID,
		"user_id":  evt.UserID,
		"action":   string(evt.Action),
	})
	return nil
}
