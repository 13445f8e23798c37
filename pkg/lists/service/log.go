package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/marketplace-favorites/pkg/app/errors"
	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

const serviceName = "ListsService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the lists Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// finish logs the outcome of method. Client errors are logged at Warn.
func (ls *logService) finish(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	switch {
	case err == nil:
		ls.logger.Info(method+" completed", fields...)
	case apperrors.IsInternalError(err):
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
	default:
		ls.logger.Warn(method+" failed", append(fields, zap.Error(err))...)
	}
}

func (ls *logService) started(method string, fields ...zap.Field) {
	ls.logger.Debug(method+" started", append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
	)...)
}

// GetList wraps the service method with logging
func (ls *logService) GetList(ctx context.Context, listID string, opts favorites.GetListOptions) (list *favorites.List, err error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("list_id", listID),
		zap.String("user_address", opts.UserAddress),
		zap.String("required_permission", string(opts.RequiredPermission)),
	}
	ls.started("GetList", fields...)
	defer func() { ls.finish("GetList", start, err, fields...) }()

	return ls.svc.GetList(ctx, listID, opts)
}

// GetLists wraps the service method with logging
func (ls *logService) GetLists(ctx context.Context, opts favorites.ListsOptions) (page *favorites.Page[*favorites.List], err error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("user_address", opts.UserAddress),
		zap.Int("limit", opts.Limit),
		zap.Int("offset", opts.Offset),
	}
	ls.started("GetLists", fields...)
	defer func() {
		if err == nil {
			fields = append(fields, zap.Int("total", page.Total))
		}
		ls.finish("GetLists", start, err, fields...)
	}()

	return ls.svc.GetLists(ctx, opts)
}

// AddList wraps the service method with logging
func (ls *logService) AddList(ctx context.Context, list favorites.NewList) (created *favorites.List, err error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("user_address", list.UserAddress),
		zap.String("name", list.Name),
		zap.Bool("private", list.Private),
	}
	ls.started("AddList", fields...)
	defer func() {
		if err == nil {
			fields = append(fields, zap.String("list_id", created.ID))
		}
		ls.finish("AddList", start, err, fields...)
	}()

	return ls.svc.AddList(ctx, list)
}

// UpdateList wraps the service method with logging
func (ls *logService) UpdateList(ctx context.Context, listID, owner string, upd favorites.ListUpdate) (list *favorites.List, err error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("list_id", listID),
		zap.String("user_address", owner),
		zap.Bool("updates_columns", upd.UpdatesColumns()),
		zap.Boolp("private", upd.Private),
	}
	ls.started("UpdateList", fields...)
	defer func() { ls.finish("UpdateList", start, err, fields...) }()

	return ls.svc.UpdateList(ctx, listID, owner, upd)
}

// DeleteList wraps the service method with logging
func (ls *logService) DeleteList(ctx context.Context, listID, owner string) (err error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("list_id", listID),
		zap.String("user_address", owner),
	}
	ls.started("DeleteList", fields...)
	defer func() { ls.finish("DeleteList", start, err, fields...) }()

	return ls.svc.DeleteList(ctx, listID, owner)
}

// AddPickToList wraps the service method with logging
func (ls *logService) AddPickToList(ctx context.Context, listID, itemID, caller string) (pick *favorites.Pick, err error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("list_id", listID),
		zap.String("item_id", itemID),
		zap.String("user_address", caller),
	}
	ls.started("AddPickToList", fields...)
	defer func() { ls.finish("AddPickToList", start, err, fields...) }()

	return ls.svc.AddPickToList(ctx, listID, itemID, caller)
}

// DeletePickInList wraps the service method with logging
func (ls *logService) DeletePickInList(ctx context.Context, listID, itemID, caller string) (err error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("list_id", listID),
		zap.String("item_id", itemID),
		zap.String("user_address", caller),
	}
	ls.started("DeletePickInList", fields...)
	defer func() { ls.finish("DeletePickInList", start, err, fields...) }()

	return ls.svc.DeletePickInList(ctx, listID, itemID, caller)
}

// GetPicksByListID wraps the service method with logging
func (ls *logService) GetPicksByListID(ctx context.Context, listID string, opts favorites.PicksOptions) (page *favorites.Page[*favorites.Pick], err error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("list_id", listID),
		zap.String("user_address", opts.UserAddress),
		zap.Int("limit", opts.Limit),
		zap.Int("offset", opts.Offset),
	}
	ls.started("GetPicksByListID", fields...)
	defer func() {
		if err == nil {
			fields = append(fields, zap.Int("total", page.Total))
		}
		ls.finish("GetPicksByListID", start, err, fields...)
	}()

	return ls.svc.GetPicksByListID(ctx, listID, opts)
}

// CheckNonEditableLists wraps the service method with logging
func (ls *logService) CheckNonEditableLists(ctx context.Context, listIDs []string, caller string) (err error) {
	start := time.Now()
	fields := []zap.Field{
		zap.Strings("list_ids", listIDs),
		zap.String("user_address", caller),
	}
	ls.started("CheckNonEditableLists", fields...)
	defer func() { ls.finish("CheckNonEditableLists", start, err, fields...) }()

	return ls.svc.CheckNonEditableLists(ctx, listIDs, caller)
}
