package favorites

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/chainsafe/marketplace-favorites/pkg/app/errors"
)

func TestToServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.Category
	}{
		{"list not found", &ListNotFoundError{ListID: "l"}, apperrors.CategoryResourceNotFound},
		{"lists not found", &ListsNotFoundError{ListIDs: []string{"a", "b"}}, apperrors.CategoryResourceNotFound},
		{"pick not found", &PickNotFoundError{ListID: "l", ItemID: "i"}, apperrors.CategoryResourceNotFound},
		{"access not found", &AccessNotFoundError{ListID: "l", Permission: PermissionView, Grantee: Everyone}, apperrors.CategoryResourceNotFound},
		{"item not found", &ItemNotFoundError{ItemID: "i"}, apperrors.CategoryResourceNotFound},
		{"duplicated list", &DuplicatedListError{Name: "n"}, apperrors.CategoryDataConflict},
		{"pick exists", &PickAlreadyExistsError{ListID: "l", ItemID: "i"}, apperrors.CategoryDataConflict},
		{"duplicated access", &DuplicatedAccessError{ListID: "l", Permission: PermissionEdit, Grantee: "g"}, apperrors.CategoryDataConflict},
		{"query failure", &QueryFailureError{Message: "down"}, apperrors.CategoryDependencyFailure},
		{"wrapped domain error", fmt.Errorf("ctx: %w", &ListNotFoundError{ListID: "l"}), apperrors.CategoryResourceNotFound},
		{"generic failure", fmt.Errorf("%w: %w", ErrPickCreation, errors.New("connection reset")), apperrors.CategoryGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToServiceError(tt.err)
			if !apperrors.Is(got, tt.want) {
				t.Fatalf("expected category %s, got %v", tt.want, got)
			}
			if !errors.Is(got, tt.err) {
				t.Fatalf("expected %v to stay reachable from %v", tt.err, got)
			}
		})
	}
}

func TestToServiceError_PassThrough(t *testing.T) {
	if ToServiceError(nil) != nil {
		t.Fatal("expected nil for nil")
	}
	svcErr := apperrors.BadRequestError(nil, "bad")
	if got := ToServiceError(svcErr); got != svcErr {
		t.Fatalf("expected service error unchanged, got %v", got)
	}
}

func TestToServiceError_HidesGenericCause(t *testing.T) {
	got := ToServiceError(fmt.Errorf("%w: %w", ErrListCreation, errors.New("pq: secret detail")))

	var svcErr *apperrors.ServiceError
	if !errors.As(got, &svcErr) {
		t.Fatalf("expected service error, got %v", got)
	}
	if svcErr.Message != "Internal Server Error" {
		t.Fatalf("expected opaque message, got %q", svcErr.Message)
	}
	if !errors.Is(got, ErrListCreation) {
		t.Fatal("expected ErrListCreation to stay reachable")
	}
}
