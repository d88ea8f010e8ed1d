package usage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker(100)

	tracker.Track("list_guests")
	tracker.Track("list_guests")
	tracker.Track("get_guest_stats")

	snapshot := tracker.Snapshot()

	assert.Equal(t, int64(3), snapshot.Total)
	assert.Equal(t, int64(2), snapshot.ByOperation["list_guests"])
	assert.Equal(t, int64(1), snapshot.ByOperation["get_guest_stats"])
	assert.False(t, snapshot.NearLimit)
}

func TestTracker_NearLimit(t *testing.T) {
	tracker := NewTracker(10)

	for i := 0; i < 7; i++ {
		tracker.Track("list_guests")
	}
	assert.False(t, tracker.Snapshot().NearLimit)

	// 8 из 10 - порог 80% достигнут
	tracker.Track("list_guests")
	assert.True(t, tracker.Snapshot().NearLimit)
}

func TestTracker_NoLimit(t *testing.T) {
	tracker := NewTracker(0)

	for i := 0; i < 1000; i++ {
		tracker.Track("list_guests")
	}

	snapshot := tracker.Snapshot()
	assert.Equal(t, int64(1000), snapshot.Total)
	assert.False(t, snapshot.NearLimit)
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker(10)

	for i := 0; i < 9; i++ {
		tracker.Track("list_guests")
	}
	require.True(t, tracker.Snapshot().NearLimit)

	tracker.Reset()

	snapshot := tracker.Snapshot()
	assert.Equal(t, int64(0), snapshot.Total)
	assert.Empty(t, snapshot.ByOperation)
	assert.False(t, snapshot.NearLimit)
	assert.Equal(t, int64(10), snapshot.Limit)
}

func TestTracker_SnapshotIsolated(t *testing.T) {
	tracker := NewTracker(100)
	tracker.Track("list_guests")

	snapshot := tracker.Snapshot()
	snapshot.ByOperation["list_guests"] = 999

	assert.Equal(t, int64(1), tracker.Snapshot().ByOperation["list_guests"])
}

func TestTracker_Concurrent(t *testing.T) {
	tracker := NewTracker(0)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tracker.Track("list_bookings")
			}
		}()
	}
	wg.Wait()

	snapshot := tracker.Snapshot()
	assert.Equal(t, int64(1000), snapshot.Total)
	assert.Equal(t, int64(1000), snapshot.ByOperation["list_bookings"])
}
