package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Harshitk-cp/ellipsis/internal/domain"
	"github.com/google/uuid"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	session := &domain.Session{}
	if err := s.Create(ctx, session); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if session.ID == uuid.Nil {
		t.Fatal("Create did not assign an ID")
	}
	if session.State == nil {
		t.Fatal("Create did not attach a fresh state")
	}

	got, err := s.GetByID(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got != session {
		t.Fatal("GetByID returned a different session")
	}

	if n, _ := s.Count(ctx); n != 1 {
		t.Fatalf("Count = %d, want 1", n)
	}

	if err := s.Delete(ctx, session.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.GetByID(ctx, session.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID after delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, session.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete = %v, want ErrNotFound", err)
	}
}
