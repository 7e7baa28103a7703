package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/logger"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaRelay_ForwardsEvents(t *testing.T) {
	bus, _ := newTestBus(t)
	writer := &fakeWriter{}
	relay := newKafkaRelay(writer, 0, logger.NewNoopLogger())
	relay.Attach(bus)

	evt := testEvent("u1")
	bus.Publish(context.Background(), evt)

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, []byte("u1"), msg.Key)
	assert.Equal(t, evt.OccurredAt, msg.Time)

	var decoded entity.LedgerEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, evt.ID, decoded.ID)
	assert.Equal(t, evt.Action, decoded.Action)
	assert.Equal(t, evt.UserID, decoded.UserID)
	assert.True(t, evt.OccurredAt.Equal(decoded.OccurredAt))
}

func TestKafkaRelay_WriteFailureIsCounted(t *testing.T) {
	bus, metrics := newTestBus(t)
	metrics.EXPECT().RecordListenerFailure(RelayListenerName).Return().Once()

	writer := &fakeWriter{err: errors.New("broker unavailable")}
	relay := newKafkaRelay(writer, 0, logger.NewNoopLogger())
	relay.Attach(bus)

	bus.Publish(context.Background(), testEvent("u1"))

	assert.Empty(t, writer.messages)
}

func TestKafkaRelay_Close(t *testing.T) {
	bus, _ := newTestBus(t)
	writer := &fakeWriter{}
	relay := newKafkaRelay(writer, 0, logger.NewNoopLogger())
	relay.Attach(bus)

	require.NoError(t, relay.Close())

	assert.True(t, writer.closed)
	assert.Equal(t, 0, bus.Len())
}
