package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/kriuke-snack/internal/config"
)

type failingKV struct{ *MemoryKV }

func (f failingKV) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func TestLoad_MissingKeySeedsDefault(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	st := New(kv, nil)

	got := Load(ctx, st, KeyCategories, func() []string { return []string{"Manis", "Gurih"} })
	assert.Equal(t, []string{"Manis", "Gurih"}, got)

	raw, err := kv.Get(ctx, KeyCategories)
	require.NoError(t, err)
	assert.JSONEq(t, `["Manis","Gurih"]`, string(raw))
}

func TestLoad_StoredValueWins(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, KeySession, []byte("true")))
	st := New(kv, nil)

	assert.True(t, Load(ctx, st, KeySession, func() bool { return false }))
}

func TestLoad_CorruptValueFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, KeyLiked, []byte(`{"not":"a list"`)))
	st := New(kv, nil)

	got := Load(ctx, st, KeyLiked, func() []string { return []string{} })
	assert.Empty(t, got)

	// the unreadable value is left alone until the next write
	raw, _ := kv.Get(ctx, KeyLiked)
	assert.Equal(t, `{"not":"a list"`, string(raw))
}

func TestLoad_ReadErrorFallsBack(t *testing.T) {
	st := New(failingKV{NewMemoryKV()}, nil)
	got := Load(context.Background(), st, KeyCart, func() []int { return []int{1} })
	assert.Equal(t, []int{1}, got)
}

func TestSlice_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := New(NewMemoryKV(), nil)
	s := NewSlice(st, KeyLiked, func() []string { return []string{} })

	require.NoError(t, s.Set(ctx, []string{"p1", "p3"}))
	assert.Equal(t, []string{"p1", "p3"}, s.Get(ctx))
	assert.Equal(t, KeyLiked, s.Key())
}

func TestSnapshot_SkipsUnwrittenKeys(t *testing.T) {
	ctx := context.Background()
	st := New(NewMemoryKV(), nil)
	require.NoError(t, Save(ctx, st, KeySession, true))

	snap, err := st.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap, 1)
	assert.JSONEq(t, "true", string(snap[KeySession]))
}

func TestFileKV(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	_, err = kv.Get(ctx, KeyProducts)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, KeyProducts, []byte(`[]`)))
	require.NoError(t, kv.Set(ctx, KeyProducts, []byte(`[{"id":"p1"}]`)))

	got, err := kv.Get(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1"}]`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Driver: "sqlite"})
	assert.Error(t, err)
}
