package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_CreatesDirectory(t *testing.T) {
	s := openTestStore(t)
	assert.FileExists(t, s.Path())
}

func TestAdd_AssignsIDAndTimestamp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	r, err := s.Add(ctx, Record{Kind: KindCalc, Input: "divide 1 2", Output: "0.5"})
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.False(t, r.CreatedAt.IsZero())

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecent_NewestFirstWithLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, in := range []string{"first", "second", "third"} {
		_, err := s.Add(ctx, Record{
			Kind:      KindSort,
			Input:     in,
			Output:    "ok",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Input)
	assert.Equal(t, "second", recent[1].Input)
	assert.Equal(t, KindSort, recent[0].Kind)
	assert.True(t, recent[0].CreatedAt.Equal(base.Add(2*time.Minute)))

	all, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRecord_ErrorRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, Record{Kind: KindCalc, Input: "divide 1 0", Error: "division by zero is not allowed"})
	require.NoError(t, err)

	recent, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "division by zero is not allowed", recent[0].Error)
	assert.Empty(t, recent[0].Output)
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := s.Add(ctx, Record{Kind: KindAccumulate, Input: "add 1", Output: "1"})
		require.NoError(t, err)
	}

	removed, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReopen_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Add(ctx, Record{Kind: KindSort, Input: "3 1 2", Output: "1 2 3"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
