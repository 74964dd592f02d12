package events_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/adapters/events"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func sampleEvents() []domain.RateChangedEvent {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.RateChangedEvent{
		{BaseCurrency: "USD", CurrencyCode: "EUR", PreviousRate: decimal.RequireFromString("0.90"),
			NewRate: decimal.RequireFromString("1.00"), RelativeDeviation: decimal.RequireFromString("0.1111"), Provider: "openerapi", FetchedAt: at},
		{BaseCurrency: "USD", CurrencyCode: "JPY", PreviousRate: decimal.RequireFromString("150"),
			NewRate: decimal.RequireFromString("141"), RelativeDeviation: decimal.RequireFromString("0.06"), Provider: "openerapi", FetchedAt: at},
	}
}

func TestKafkaRateEventPublisher_OneMessagePerCurrency(t *testing.T) {
	w := &recordingWriter{}
	p := events.NewKafkaRateEventPublisherWithWriter(w)

	require.NoError(t, p.PublishRateChanges(context.Background(), sampleEvents()))

	require.Len(t, w.msgs, 2)
	assert.Equal(t, "EUR", string(w.msgs[0].Key))
	assert.Equal(t, "JPY", string(w.msgs[1].Key))

	var decoded domain.RateChangedEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, "USD", decoded.BaseCurrency)
	assert.True(t, decoded.NewRate.Equal(decimal.NewFromInt(1)))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaRateEventPublisher_NoEventsNoWrite(t *testing.T) {
	w := &recordingWriter{err: errors.New("must not be called")}
	p := events.NewKafkaRateEventPublisherWithWriter(w)

	assert.NoError(t, p.PublishRateChanges(context.Background(), nil))
}

func TestKafkaRateEventPublisher_WriteError(t *testing.T) {
	w := &recordingWriter{err: kafka.LeaderNotAvailable}
	p := events.NewKafkaRateEventPublisherWithWriter(w)

	err := p.PublishRateChanges(context.Background(), sampleEvents())

	assert.ErrorIs(t, err, kafka.LeaderNotAvailable)
}

func TestLogRateEventPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := events.NewLogRateEventPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, p.PublishRateChanges(context.Background(), sampleEvents()))

	assert.Contains(t, buf.String(), `"currency":"EUR"`)
	assert.Contains(t, buf.String(), `"new_rate":"141"`)
}
