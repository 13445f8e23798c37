package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

const serviceName = "AccessService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the access Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// CreateAccess wraps the service method with logging
func (ls *logService) CreateAccess(ctx context.Context, access favorites.Access, owner string) (err error) {
	return ls.call(ctx, "CreateAccess", access, owner, ls.svc.CreateAccess)
}

// DeleteAccess wraps the service method with logging
func (ls *logService) DeleteAccess(ctx context.Context, access favorites.Access, owner string) (err error) {
	return ls.call(ctx, "DeleteAccess", access, owner, ls.svc.DeleteAccess)
}

func (ls *logService) call(
	ctx context.Context,
	method string,
	access favorites.Access,
	owner string,
	fn func(context.Context, favorites.Access, string) error,
) (err error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("list_id", access.ListID),
		zap.String("permission", string(access.Permission)),
		zap.String("grantee", access.Grantee),
		zap.String("user_address", owner),
	}

	ls.logger.Info(method+" started", fields...)

	defer func() {
		fields = append(fields, zap.Duration("duration", time.Since(start)))
		if err != nil {
			ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info(method+" completed", fields...)
	}()

	return fn(ctx, access, owner)
}
