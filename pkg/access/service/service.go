package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

// Store is the narrow data-access interface for the access service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateAccess(ctx context.Context, access favorites.Access) error
	DeleteAccess(ctx context.Context, access favorites.Access, owner string) error
}

// ListResolver resolves a list for a caller.
//
//go:generate mockery --name ListResolver --output mocks --outpkg mocks --filename mock_list_resolver.go --with-expecter
type ListResolver interface {
	GetList(ctx context.Context, listID string, opts favorites.GetListOptions) (*favorites.List, error)
}

// Service defines the interface for granting and revoking access on lists
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	CreateAccess(ctx context.Context, access favorites.Access, owner string) error
	DeleteAccess(ctx context.Context, access favorites.Access, owner string) error
}

type accessService struct {
	store  Store
	lists  ListResolver
	logger *zap.Logger
}

// NewService creates a new access service
func NewService(store Store, lists ListResolver, logger *zap.Logger) Service {
	return &accessService{
		store:  store,
		lists:  lists,
		logger: logger,
	}
}

// CreateAccess grants access on a list owned by owner. Granting an existing
// access is a no-op.
func (s *accessService) CreateAccess(ctx context.Context, access favorites.Access, owner string) error {
	list, err := s.lists.GetList(ctx, access.ListID, favorites.GetListOptions{
		UserAddress:         owner,
		ExcludeDefaultOwner: true,
		RequiredPermission:  favorites.PermissionNone,
	})
	if err != nil {
		return favorites.ToServiceError(err)
	}
	if !favorites.HasAccess(list, owner, favorites.PermissionNone, false) {
		return favorites.ToServiceError(&favorites.ListNotFoundError{ListID: access.ListID})
	}

	return favorites.ToServiceError(s.store.CreateAccess(ctx, access))
}

// DeleteAccess revokes a grant on a list owned by owner.
func (s *accessService) DeleteAccess(ctx context.Context, access favorites.Access, owner string) error {
	return favorites.ToServiceError(s.store.DeleteAccess(ctx, access, owner))
}
