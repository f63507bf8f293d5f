package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockKV(t *testing.T) (*PostgresKV, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresKV(sqlx.NewDb(db, "pgx")), mock
}

func TestPostgresKV_Get(t *testing.T) {
	kv, mock := newMockKV(t)

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[{"id":"p1","quantity":2}]`))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value::text FROM kv_store WHERE key = $1")).
		WithArgs(KeyCart).WillReturnRows(rows)

	got, err := kv.Get(context.Background(), KeyCart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `[{"id":"p1","quantity":2}]` {
		t.Fatalf("unexpected value %s", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresKV_GetMissing(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectQuery("FROM kv_store").WithArgs(KeyLiked).WillReturnRows(sqlmock.NewRows([]string{"value"}))

	if _, err := kv.Get(context.Background(), KeyLiked); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresKV_Set(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_store")).
		WithArgs(KeySession, "true").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := kv.Set(context.Background(), KeySession, []byte("true")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresKV_SnapshotUsesBatchRead(t *testing.T) {
	kv, mock := newMockKV(t)

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow(KeySession, []byte("false")).
		AddRow(KeyCategories, []byte(`["Manis"]`))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE key = ANY($1)")).WithArgs(sqlmock.AnyArg()).WillReturnRows(rows)

	snap, err := New(kv, nil).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap) != 2 || string(snap[KeyCategories]) != `["Manis"]` {
		t.Fatalf("unexpected snapshot %v", snap)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresKV_LoadFallsBackOnQueryError(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectQuery("FROM kv_store").WithArgs(KeyProducts).WillReturnError(errors.New("relation does not exist"))

	got := Load(context.Background(), New(kv, nil), KeyProducts, func() []string { return []string{"seed"} })
	if len(got) != 1 || got[0] != "seed" {
		t.Fatalf("expected default, got %v", got)
	}
}
