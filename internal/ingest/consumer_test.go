package ingest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/logger"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/telemetry"
)

type fakeVesselStore struct {
	vessels   map[string]*domain.Vessel
	positions map[string]*domain.Position
}

func newFakeVesselStore() *fakeVesselStore {
	return &fakeVesselStore{
		vessels:   make(map[string]*domain.Vessel),
		positions: make(map[string]*domain.Position),
	}
}

func (f *fakeVesselStore) Create(ctx context.Context, v *domain.Vessel) error {
	f.vessels[v.ID] = v
	return nil
}

func (f *fakeVesselStore) GetByID(ctx context.Context, orgID, id string) (*domain.Vessel, error) {
	return f.vessels[id], nil
}

func (f *fakeVesselStore) GetByIMO(ctx context.Context, orgID, imo string) (*domain.Vessel, error) {
	return nil, nil
}

func (f *fakeVesselStore) GetByMMSI(ctx context.Context, mmsi string) (*domain.Vessel, error) {
	for _, v := range f.vessels {
		if v.MMSI == mmsi {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVesselStore) ListByOrg(ctx context.Context, orgID string) ([]*domain.Vessel, error) {
	return nil, nil
}

func (f *fakeVesselStore) Update(ctx context.Context, v *domain.Vessel) error {
	return nil
}

func (f *fakeVesselStore) UpdatePosition(ctx context.Context, id string, pos *domain.Position) error {
	f.positions[id] = pos
	return nil
}

func (f *fakeVesselStore) Delete(ctx context.Context, orgID, id string) (bool, error) {
	return false, nil
}

func (f *fakeVesselStore) CountByOrg(ctx context.Context, orgID string) (int, error) {
	return len(f.vessels), nil
}

type fakePositionCache struct {
	positions map[string]*domain.Position
	down      bool
}

func newFakePositionCache() *fakePositionCache {
	return &fakePositionCache{positions: make(map[string]*domain.Position)}
}

func (f *fakePositionCache) Set(ctx context.Context, vesselID string, pos *domain.Position) error {
	f.positions[vesselID] = pos
	return nil
}

func (f *fakePositionCache) Get(ctx context.Context, vesselID string) (*domain.Position, error) {
	return f.positions[vesselID], nil
}

func (f *fakePositionCache) Nearby(ctx context.Context, lat, lon, radiusKm float64) ([]string, error) {
	return nil, nil
}

func (f *fakePositionCache) Remove(ctx context.Context, vesselID string) error {
	delete(f.positions, vesselID)
	return nil
}

func (f *fakePositionCache) Available() bool {
	return !f.down
}

func setupConsumer(t *testing.T) (*Consumer, *fakeVesselStore, *fakePositionCache) {
	t.Helper()

	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}

	store := newFakeVesselStore()
	cache := newFakePositionCache()

	received, _ := telemetry.NewCounter(telemetry.MetricOpts{Name: "test_received"})
	applied, _ := telemetry.NewCounter(telemetry.MetricOpts{Name: "test_applied"})
	dropped, _ := telemetry.NewCounter(telemetry.MetricOpts{Name: "test_dropped"})

	c := &Consumer{
		vessels:   store,
		positions: cache,
		log:       log,
		received:  received,
		applied:   applied,
		dropped:   dropped,
	}
	return c, store, cache
}

func addTrackedVessel(t *testing.T, store *fakeVesselStore, mmsi string) *domain.Vessel {
	t.Helper()

	v, err := domain.NewVessel("org-ingest", "MV Test "+mmsi, "9074729", mmsi, domain.VesselTypeTanker, "Panama")
	if err != nil {
		t.Fatalf("create vessel: %v", err)
	}
	store.vessels[v.ID] = v
	return v
}

func encodeMessage(t *testing.T, msg PositionMessage) []byte {
	t.Helper()

	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal message: %v", err)
	}
	return raw
}

func TestHandle_AppliesPosition(t *testing.T) {
	c, store, cache := setupConsumer(t)
	vessel := addTrackedVessel(t, store, "215678901")

	ts := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	raw := encodeMessage(t, PositionMessage{
		MMSI:      "215678901",
		Lat:       1.2897,
		Lon:       103.8501,
		Speed:     12.4,
		Heading:   271,
		Timestamp: ts,
	})

	if err := c.handle(context.Background(), raw); err != nil {
		t.Fatalf("handle: %v", err)
	}

	pos := store.positions[vessel.ID]
	if pos == nil {
		t.Fatal("expected stored position")
	}
	if pos.Lat != 1.2897 || pos.Lon != 103.8501 {
		t.Errorf("unexpected coordinates: %+v", pos)
	}
	if !pos.Timestamp.Equal(ts) {
		t.Errorf("expected timestamp %v, got %v", ts, pos.Timestamp)
	}
	if cache.positions[vessel.ID] == nil {
		t.Error("expected cached position")
	}
}

func TestHandle_UnknownMMSI(t *testing.T) {
	c, store, _ := setupConsumer(t)

	raw := encodeMessage(t, PositionMessage{MMSI: "215678901", Lat: 1, Lon: 1})
	if err := c.handle(context.Background(), raw); err == nil {
		t.Fatal("expected error for unregistered mmsi")
	}
	if len(store.positions) != 0 {
		t.Errorf("expected no stored positions, got %d", len(store.positions))
	}
}

func TestHandle_RejectsInvalidInput(t *testing.T) {
	c, store, _ := setupConsumer(t)
	addTrackedVessel(t, store, "215678901")

	tests := []struct {
		name string
		raw  []byte
	}{
		{"malformed json", []byte(`{not json`)},
		{"short mmsi", encodeMessage(t, PositionMessage{MMSI: "1234", Lat: 1, Lon: 1})},
		{"latitude out of range", encodeMessage(t, PositionMessage{MMSI: "215678901", Lat: 95, Lon: 1})},
		{"longitude out of range", encodeMessage(t, PositionMessage{MMSI: "215678901", Lat: 1, Lon: -200})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.handle(context.Background(), tt.raw); err == nil {
				t.Error("expected error")
			}
		})
	}

	if len(store.positions) != 0 {
		t.Errorf("expected no stored positions, got %d", len(store.positions))
	}
}

func TestHandle_CacheOutageDoesNotDropMessage(t *testing.T) {
	c, store, cache := setupConsumer(t)
	vessel := addTrackedVessel(t, store, "215678901")
	cache.down = true

	raw := encodeMessage(t, PositionMessage{MMSI: "215678901", Lat: 1, Lon: 1})
	if err := c.handle(context.Background(), raw); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if store.positions[vessel.ID] == nil {
		t.Error("expected stored position despite cache outage")
	}
}
