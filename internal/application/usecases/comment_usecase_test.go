package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aarlint/wokeometer-api/internal/domain/entities"
)

func TestCommentCreateAndList(t *testing.T) {
	uc := NewCommentUseCase(newMemCommentRepo())

	created, err := uc.Create(context.Background(), verifiedUser, "Show X", "  surprisingly based  ")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Comment != "surprisingly based" {
		t.Fatalf("comment text not trimmed: %q", created.Comment)
	}
	if created.UserID != verifiedUser.ID {
		t.Fatalf("wrong owner: %q", created.UserID)
	}

	comments, err := uc.ListByTitle(context.Background(), "Show X")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
}

func TestCommentCreateValidation(t *testing.T) {
	uc := NewCommentUseCase(newMemCommentRepo())

	if _, err := uc.Create(context.Background(), nil, "Show X", "hi"); !errors.Is(err, entities.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := uc.Create(context.Background(), unverified, "Show X", "hi"); !errors.Is(err, entities.ErrUnverified) {
		t.Fatalf("expected ErrUnverified, got %v", err)
	}
	if _, err := uc.Create(context.Background(), verifiedUser, "", "hi"); !errors.Is(err, entities.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing title, got %v", err)
	}
	if _, err := uc.Create(context.Background(), verifiedUser, "Show X", "   "); !errors.Is(err, entities.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank comment, got %v", err)
	}
	long := strings.Repeat("x", maxCommentLength+1)
	if _, err := uc.Create(context.Background(), verifiedUser, "Show X", long); !errors.Is(err, entities.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized comment, got %v", err)
	}
}

func TestCommentDeleteOwnerScoped(t *testing.T) {
	repo := newMemCommentRepo()
	uc := NewCommentUseCase(repo)

	created, err := uc.Create(context.Background(), verifiedUser, "Show X", "mine")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := uc.Delete(context.Background(), otherUser, created.ID); !errors.Is(err, entities.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := uc.Delete(context.Background(), verifiedUser, created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatal("comment not removed")
	}
}
