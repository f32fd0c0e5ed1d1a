package postgres

import (
	"database/sql"
	"errors"
	"testing"
	"time"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if isNotFound(errors.New("pq: connection refused")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestNullInt64ToIntPtr(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		got := nullInt64ToIntPtr(sql.NullInt64{Int64: 85, Valid: true})
		if got == nil || *got != 85 {
			t.Fatalf("expected 85, got %v", got)
		}
	})

	t.Run("null value", func(t *testing.T) {
		if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}

func TestIntPtrToNullInt64(t *testing.T) {
	minute := 90
	got := intPtrToNullInt64(&minute)
	if !got.Valid || got.Int64 != 90 {
		t.Fatalf("unexpected null int: %+v", got)
	}
	if intPtrToNullInt64(nil).Valid {
		t.Fatalf("expected invalid null int for nil pointer")
	}
}

func TestNullTimeToTimePtr(t *testing.T) {
	now := time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC)
	got := nullTimeToTimePtr(sql.NullTime{Time: now, Valid: true})
	if got == nil || !got.Equal(now) {
		t.Fatalf("unexpected time: %v", got)
	}
	if nullTimeToTimePtr(sql.NullTime{}) != nil {
		t.Fatalf("expected nil for null time")
	}
}
