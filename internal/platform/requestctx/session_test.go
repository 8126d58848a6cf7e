package requestctx

import (
	"context"
	"testing"
)

func TestSessionFromContextRoundTrip(t *testing.T) {
	ctx := WithSession(context.Background(), Session{ID: "s-42", AdminName: "Root"})
	got, ok := SessionFromContext(ctx)
	if !ok {
		t.Fatal("expected session in context")
	}
	if got.ID != "s-42" || got.AdminName != "Root" {
		t.Fatalf("SessionFromContext = %+v", got)
	}
	if id := SessionIDFromContext(ctx); id != "s-42" {
		t.Fatalf("SessionIDFromContext = %q, want %q", id, "s-42")
	}
}

func TestSessionFromContextEmpty(t *testing.T) {
	if _, ok := SessionFromContext(context.Background()); ok {
		t.Fatal("expected no session")
	}
	if id := SessionIDFromContext(context.Background()); id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}
}

func TestSessionFromContextNil(t *testing.T) {
	if _, ok := SessionFromContext(nil); ok {
		t.Fatal("expected no session for nil context")
	}
}

func TestSessionWithoutIDIsIgnored(t *testing.T) {
	ctx := WithSession(context.Background(), Session{AdminName: "ghost"})
	if _, ok := SessionFromContext(ctx); ok {
		t.Fatal("expected session without id to be ignored")
	}
}
