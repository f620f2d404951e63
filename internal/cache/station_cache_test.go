package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/istanbulev/stationfinder/internal/config"
	"github.com/istanbulev/stationfinder/internal/models"
)

// fakeClock implements a mock time source for testing
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// recordingStore wraps a Store and lets tests inject failures
type recordingStore struct {
	Store
	getErr  error
	putErr  error
	deletes []string
}

func (s *recordingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.Store.Get(ctx, key)
}

func (s *recordingStore) Put(ctx context.Context, key string, value []byte) error {
	if s.putErr != nil {
		return s.putErr
	}
	return s.Store.Put(ctx, key, value)
}

func (s *recordingStore) Delete(ctx context.Context, key string) error {
	s.deletes = append(s.deletes, key)
	return s.Store.Delete(ctx, key)
}

func newTestCache(t *testing.T) (*StationCache, *recordingStore, *fakeClock) {
	t.Helper()

	mem, err := NewMemoryStore(4)
	require.NoError(t, err)

	store := &recordingStore{Store: mem}
	clk := &fakeClock{now: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}

	c := NewStationCache(store, config.DefaultCacheConfig())
	c.clock = clk
	return c, store, clk
}

func createTestStations() []models.Station {
	return []models.Station{
		{
			Coordinates: models.Coordinate{Latitude: 41.0422, Longitude: 29.0083},
			Name:        "Besiktas Sarj",
			Address:     "Besiktas, Istanbul",
		},
		{
			Coordinates: models.Coordinate{Latitude: 40.9923, Longitude: 29.0244},
			Name:        "Kadikoy Sarj",
			Address:     "Kadikoy, Istanbul",
		},
	}
}

func TestStationCacheRoundTrip(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()

	want := createTestStations()
	Write(ctx, c, "stations", want)

	got, ok := Read[[]models.Station](ctx, c, "stations")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestStationCacheMiss(t *testing.T) {
	c, _, _ := newTestCache(t)

	got, ok := Read[[]models.Station](context.Background(), c, "stations")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStationCacheExpiry(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		wantHit bool
	}{
		{name: "fresh", advance: 0, wantHit: true},
		{name: "just under ttl", advance: 30*time.Minute - time.Millisecond, wantHit: true},
		{name: "exactly ttl", advance: 30 * time.Minute, wantHit: false},
		{name: "well past ttl", advance: 2 * time.Hour, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, store, clk := newTestCache(t)
			ctx := context.Background()

			Write(ctx, c, "stations", createTestStations())
			clk.Advance(tt.advance)

			_, ok := Read[[]models.Station](ctx, c, "stations")
			assert.Equal(t, tt.wantHit, ok)

			if !tt.wantHit {
				assert.Equal(t, []string{"stations"}, store.deletes, "stale entry should be evicted")
			}
		})
	}
}

func TestStationCacheExpiredEntryStaysGone(t *testing.T) {
	c, store, clk := newTestCache(t)
	ctx := context.Background()

	Write(ctx, c, "stations", createTestStations())
	clk.Advance(31 * time.Minute)

	_, ok := Read[[]models.Station](ctx, c, "stations")
	require.False(t, ok)

	// Moving the clock back must not resurrect the evicted entry
	clk.Advance(-31 * time.Minute)
	_, ok = Read[[]models.Station](ctx, c, "stations")
	assert.False(t, ok)

	_, err := store.Store.Get(ctx, "stations")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStationCacheWriteReplacesEntry(t *testing.T) {
	c, _, clk := newTestCache(t)
	ctx := context.Background()

	Write(ctx, c, "stations", createTestStations())
	clk.Advance(20 * time.Minute)

	replacement := createTestStations()[:1]
	Write(ctx, c, "stations", replacement)
	clk.Advance(20 * time.Minute)

	// 40 minutes after the first write, but only 20 after the second
	got, ok := Read[[]models.Station](ctx, c, "stations")
	require.True(t, ok)
	assert.Equal(t, replacement, got)
}

func TestStationCacheCorruptedEntries(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
	}{
		{name: "not json", value: []byte("not json at all")},
		{name: "missing data", value: []byte(`{"timestamp": 1736942400000}`)},
		{name: "payload of wrong type", value: []byte(`{"data": {"name": "x"}, "timestamp": 1736942400000}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, store, _ := newTestCache(t)
			ctx := context.Background()

			require.NoError(t, store.Store.Put(ctx, "stations", tt.value))

			_, ok := Read[[]models.Station](ctx, c, "stations")
			assert.False(t, ok)
			assert.Equal(t, []string{"stations"}, store.deletes)

			_, err := store.Store.Get(ctx, "stations")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStationCacheSwallowsStoreErrors(t *testing.T) {
	c, store, _ := newTestCache(t)
	ctx := context.Background()

	store.putErr = errors.New("quota exceeded")
	assert.NotPanics(t, func() {
		Write(ctx, c, "stations", createTestStations())
	})

	store.putErr = nil
	store.getErr = errors.New("disk I/O error")
	_, ok := Read[[]models.Station](ctx, c, "stations")
	assert.False(t, ok)
}

func TestStationCacheWriteUnencodablePayload(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()

	Write(ctx, c, "bad", func() {})

	_, ok := Read[json.RawMessage](ctx, c, "bad")
	assert.False(t, ok)
}

func TestStationCacheRawPayload(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()

	raw := json.RawMessage(`{"type":"FeatureCollection","features":[]}`)
	Write(ctx, c, "stations", raw)

	got, ok := Read[json.RawMessage](ctx, c, "stations")
	require.True(t, ok)
	assert.JSONEq(t, string(raw), string(got))
}

func TestStationCacheConcurrentAccess(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Write(ctx, c, "stations", createTestStations())
		}()
		go func() {
			defer wg.Done()
			if got, ok := Read[[]models.Station](ctx, c, "stations"); ok {
				assert.Len(t, got, 2)
			}
		}()
	}
	wg.Wait()
}
