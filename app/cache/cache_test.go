package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func countingThunk(calls *atomic.Int64, result *domain.QueryResult, err error) Thunk {
	return func(ctx context.Context) (*domain.QueryResult, error) {
		calls.Add(1)
		return result, err
	}
}

func TestFetchWithCache_ReusesWithinTTL(t *testing.T) {
	c := New(testLogger())
	var calls atomic.Int64
	thunk := countingThunk(&calls, &domain.QueryResult{Data: []domain.Row{{"id": "1"}}}, nil)

	first := c.FetchWithCache(context.Background(), "k", thunk, FetchOptions{})
	second := c.FetchWithCache(context.Background(), "k", thunk, FetchOptions{})

	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, first, second)
	require.NoError(t, first.Err)
	assert.Len(t, first.Data, 1)
}

func TestFetchWithCache_ForceRefreshBypasses(t *testing.T) {
	c := New(testLogger())
	var calls atomic.Int64
	thunk := countingThunk(&calls, &domain.QueryResult{Data: []domain.Row{{"id": "1"}}}, nil)

	c.FetchWithCache(context.Background(), "k", thunk, FetchOptions{})
	c.FetchWithCache(context.Background(), "k", thunk, FetchOptions{ForceRefresh: true})

	assert.Equal(t, int64(2), calls.Load())
}

func TestFetchWithCache_ExpiredEntryRefetches(t *testing.T) {
	c := NewWithTTL(30*time.Second, testLogger())
	var calls atomic.Int64
	thunk := countingThunk(&calls, &domain.QueryResult{Data: []domain.Row{{"id": "1"}}}, nil)

	c.FetchWithCache(context.Background(), "k", thunk, FetchOptions{})

	// Age the entry past the TTL.
	base := time.Now()
	c.now = func() time.Time { return base.Add(31 * time.Second) }

	c.FetchWithCache(context.Background(), "k", thunk, FetchOptions{})
	assert.Equal(t, int64(2), calls.Load())
}

func TestFetchWithCache_CustomTTL(t *testing.T) {
	c := New(testLogger())
	var calls atomic.Int64
	thunk := countingThunk(&calls, &domain.QueryResult{Data: []domain.Row{{"id": "1"}}}, nil)

	c.FetchWithCache(context.Background(), "k", thunk, FetchOptions{TTL: time.Minute})

	base := time.Now()
	c.now = func() time.Time { return base.Add(45 * time.Second) }

	// Still fresh under the one-minute TTL even though the default expired.
	c.FetchWithCache(context.Background(), "k", thunk, FetchOptions{TTL: time.Minute})
	assert.Equal(t, int64(1), calls.Load())
}

func TestFetchWithCache_ErrorAbsorbed(t *testing.T) {
	c := New(testLogger())
	boom := errors.New("connection refused")
	var calls atomic.Int64

	res := c.FetchWithCache(context.Background(), "k", countingThunk(&calls, nil, boom), FetchOptions{})

	assert.Nil(t, res.Data)
	assert.ErrorIs(t, res.Err, boom)
	assert.Equal(t, 0, c.Len(), "errored results must not be cached")
}

func TestFetchWithCache_PanicAbsorbed(t *testing.T) {
	c := New(testLogger())

	res := c.FetchWithCache(context.Background(), "k", func(ctx context.Context) (*domain.QueryResult, error) {
		panic("bad thunk")
	}, FetchOptions{})

	assert.Nil(t, res.Data)
	assert.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "bad thunk")
}

func TestFetchWithCache_ErrorResultNotCached(t *testing.T) {
	c := New(testLogger())
	var calls atomic.Int64
	thunk := countingThunk(&calls, &domain.QueryResult{Err: errors.New("table missing")}, nil)

	c.FetchWithCache(context.Background(), "k", thunk, FetchOptions{})
	c.FetchWithCache(context.Background(), "k", thunk, FetchOptions{})

	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, 0, c.Len())
}

func TestClear_SingleKey(t *testing.T) {
	c := New(testLogger())
	var callsA, callsB atomic.Int64
	thunkA := countingThunk(&callsA, &domain.QueryResult{Data: []domain.Row{{"id": "a"}}}, nil)
	thunkB := countingThunk(&callsB, &domain.QueryResult{Data: []domain.Row{{"id": "b"}}}, nil)

	c.FetchWithCache(context.Background(), "a", thunkA, FetchOptions{})
	c.FetchWithCache(context.Background(), "b", thunkB, FetchOptions{})

	c.Clear("a")

	c.FetchWithCache(context.Background(), "a", thunkA, FetchOptions{})
	c.FetchWithCache(context.Background(), "b", thunkB, FetchOptions{})

	assert.Equal(t, int64(2), callsA.Load(), "cleared key must refetch")
	assert.Equal(t, int64(1), callsB.Load(), "other keys must stay cached")
}

func TestClear_All(t *testing.T) {
	c := New(testLogger())
	var calls atomic.Int64
	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("k%d", i)
		c.FetchWithCache(context.Background(), key, countingThunk(&calls, &domain.QueryResult{Data: []domain.Row{{}}}, nil), FetchOptions{})
	}
	require.Equal(t, 3, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())

	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("k%d", i)
		c.FetchWithCache(context.Background(), key, countingThunk(&calls, &domain.QueryResult{Data: []domain.Row{{}}}, nil), FetchOptions{})
	}
	assert.Equal(t, int64(6), calls.Load())
}

func TestClear_AbsentKeyIsNoOp(t *testing.T) {
	c := New(testLogger())
	assert.NotPanics(t, func() { c.Clear("missing") })
}

func TestFetchWithCache_SingleFlight(t *testing.T) {
	c := New(testLogger())
	var calls atomic.Int64
	release := make(chan struct{})

	thunk := func(ctx context.Context) (*domain.QueryResult, error) {
		calls.Add(1)
		<-release
		return &domain.QueryResult{Data: []domain.Row{{"id": "1"}}}, nil
	}

	var wg sync.WaitGroup
	results := make([]*domain.QueryResult, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.FetchWithCache(context.Background(), "k", thunk, FetchOptions{})
		}(i)
	}

	// Give all callers time to join the in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load(), "concurrent identical-key fetches must share one invocation")
	for _, res := range results {
		require.NotNil(t, res)
		assert.NoError(t, res.Err)
	}
}
