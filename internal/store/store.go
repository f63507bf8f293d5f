package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Keys of the persisted storefront slices.
const (
	KeyProducts   = "kriuke_products"
	KeyCategories = "kriuke_categories"
	KeyCart       = "kriuke_cart"
	KeyLiked      = "kriuke_liked"
	KeySession    = "kriuke_isLoggedIn"
	KeyLiveLinks  = "kriuke_live_links"
)

// Keys lists every slice in a stable order.
var Keys = []string{KeyProducts, KeyCategories, KeyCart, KeyLiked, KeySession, KeyLiveLinks}

var ErrNotFound = errors.New("key not found")

// KV is the raw byte storage behind a Store. Get returns ErrNotFound when
// nothing is stored under key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// BatchGetter is implemented by backends that can read several keys in one
// round trip. Missing keys are absent from the result.
type BatchGetter interface {
	GetMany(ctx context.Context, keys []string) (map[string][]byte, error)
}

// Store owns the persisted slices. Values are JSON encoded and written
// through on every Set. Lock serializes read-modify-write sequences that span
// one or more slices.
type Store struct {
	mu  sync.Mutex
	kv  KV
	log *zap.Logger
}

func New(kv KV, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log}
}

func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

func (s *Store) Close() error { return s.kv.Close() }

// Load returns the value stored under key. When nothing is stored the default
// is returned and written back so the next read sees it. A failed read or a
// value that no longer decodes yields the default without touching storage.
func Load[T any](ctx context.Context, s *Store, key string, def func() T) T {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		v := def()
		if err := Save(ctx, s, key, v); err != nil {
			s.log.Warn("store: seeding default failed", zap.String("key", key), zap.Error(err))
		}
		return v
	}
	if err != nil {
		s.log.Warn("store: read failed, using default", zap.String("key", key), zap.Error(err))
		return def()
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn("store: stored value unreadable, using default", zap.String("key", key), zap.Error(err))
		return def()
	}
	return v
}

func Save[T any](ctx context.Context, s *Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Snapshot returns the raw stored value of every slice. Slices that were never
// written are omitted.
func (s *Store) Snapshot(ctx context.Context) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(Keys))
	if bg, ok := s.kv.(BatchGetter); ok {
		values, err := bg.GetMany(ctx, Keys)
		if err != nil {
			return nil, fmt.Errorf("snapshot: %w", err)
		}
		for k, v := range values {
			out[k] = json.RawMessage(v)
		}
		return out, nil
	}

	for _, k := range Keys {
		raw, err := s.kv.Get(ctx, k)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", k, err)
		}
		out[k] = json.RawMessage(raw)
	}
	return out, nil
}

// Slice is a typed handle on one key of a Store.
type Slice[T any] struct {
	st  *Store
	key string
	def func() T
}

func NewSlice[T any](st *Store, key string, def func() T) *Slice[T] {
	return &Slice[T]{st: st, key: key, def: def}
}

func (s *Slice[T]) Key() string { return s.key }

func (s *Slice[T]) Get(ctx context.Context) T { return Load(ctx, s.st, s.key, s.def) }

func (s *Slice[T]) Set(ctx context.Context, v T) error { return Save(ctx, s.st, s.key, v) }
