package ownership

import (
	"testing"

	"salonhub_backend/platform/apperr"

	"github.com/google/uuid"
)

func TestAuthorizeOwner(t *testing.T) {
	owner := uuid.New()
	if err := Authorize("category.update", owner, owner); err != nil {
		t.Fatalf("expected no error for matching owner, got %v", err)
	}
}

func TestAuthorizeMismatch(t *testing.T) {
	err := Authorize("category.update", uuid.New(), uuid.New())
	if err == nil {
		t.Fatal("expected error for mismatched owner")
	}
	if apperr.GetKind(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden kind, got %v", apperr.GetKind(err))
	}
	if err.(*apperr.Error).Message != "Not authorized" {
		t.Fatalf("unexpected message: %v", err)
	}
}
