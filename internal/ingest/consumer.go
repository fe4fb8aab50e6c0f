package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
	"github.com/teeraphat-m/maritime-fleet-api/internal/service"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/config"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/logger"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/telemetry"
)

// PositionMessage is a single AIS position report from the feed.
type PositionMessage struct {
	MMSI      string    `json:"mmsi"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Speed     float64   `json:"speed"`
	Heading   float64   `json:"heading"`
	Timestamp time.Time `json:"timestamp"`
}

// Consumer consumes AIS position reports from Kafka and applies them to
// vessel records and the position cache. Messages for unknown MMSIs and
// messages with out-of-range coordinates are dropped, not retried.
type Consumer struct {
	client    *kgo.Client
	vessels   repository.VesselRepository
	positions service.PositionCache
	log       *logger.Logger

	received *telemetry.Counter
	applied  *telemetry.Counter
	dropped  *telemetry.Counter
}

// NewConsumer creates a Kafka consumer for the AIS position topic.
func NewConsumer(cfg *config.KafkaConfig, vessels repository.VesselRepository, positions service.PositionCache, log *logger.Logger) (*Consumer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumerGroup(cfg.ConsumerGroup),
		kgo.ConsumeTopics(cfg.PositionTopic),
		kgo.ClientID(cfg.ClientID),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	received, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "ais_messages_received_total",
		Description: "AIS position messages consumed from the feed",
	})
	if err != nil {
		return nil, err
	}
	applied, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "ais_positions_applied_total",
		Description: "AIS positions applied to a vessel record",
	})
	if err != nil {
		return nil, err
	}
	dropped, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "ais_messages_dropped_total",
		Description: "AIS messages dropped as invalid or unmatched",
	})
	if err != nil {
		return nil, err
	}

	return &Consumer{
		client:    client,
		vessels:   vessels,
		positions: positions,
		log:       log,
		received:  received,
		applied:   applied,
		dropped:   dropped,
	}, nil
}

// Run polls the feed until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info("AIS consumer started")
	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			c.log.Error("AIS fetch error",
				zap.String("topic", topic),
				zap.Int32("partition", partition),
				zap.Error(err),
			)
		})

		fetches.EachRecord(func(rec *kgo.Record) {
			c.received.Inc(ctx)
			if err := c.handle(ctx, rec.Value); err != nil {
				c.dropped.Inc(ctx)
				c.log.WarnContext(ctx, "AIS message dropped", zap.Error(err))
			}
		})
	}
}

func (c *Consumer) handle(ctx context.Context, raw []byte) error {
	var msg PositionMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}

	if !domain.ValidMMSI(msg.MMSI) {
		return fmt.Errorf("invalid mmsi %q", msg.MMSI)
	}

	pos := &domain.Position{
		Lat:       msg.Lat,
		Lon:       msg.Lon,
		Speed:     msg.Speed,
		Heading:   msg.Heading,
		Timestamp: msg.Timestamp,
	}
	if pos.Timestamp.IsZero() {
		pos.Timestamp = time.Now()
	}
	if !pos.Valid() {
		return fmt.Errorf("coordinates out of range: lat=%v lon=%v", msg.Lat, msg.Lon)
	}

	vessel, err := c.vessels.GetByMMSI(ctx, msg.MMSI)
	if err != nil {
		return fmt.Errorf("lookup vessel by mmsi: %w", err)
	}
	if vessel == nil {
		return fmt.Errorf("no vessel registered for mmsi %s", msg.MMSI)
	}

	if err := c.vessels.UpdatePosition(ctx, vessel.ID, pos); err != nil {
		return fmt.Errorf("store position: %w", err)
	}

	// Cache write failures degrade map reads but must not drop the message.
	if c.positions.Available() {
		if err := c.positions.Set(ctx, vessel.ID, pos); err != nil {
			c.log.WarnContext(ctx, "position cache write failed",
				zap.String("vessel_id", vessel.ID),
				zap.Error(err),
			)
		}
	}

	c.applied.Inc(ctx, telemetry.VesselIDAttr(vessel.ID))
	return nil
}

// Close shuts down the Kafka client.
func (c *Consumer) Close() {
	c.client.Close()
}
