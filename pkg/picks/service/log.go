package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/marketplace-favorites/pkg/app/errors"
	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

const serviceName = "PicksService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the picks Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// GetPicksStats wraps the service method with logging
func (ls *logService) GetPicksStats(ctx context.Context, itemIDs []string, opts favorites.StatsOptions) (stats []*favorites.PickStats, err error) {
	start := time.Now()

	ls.logger.Debug("GetPicksStats started",
		zap.String("service", serviceName),
		zap.String("method", "GetPicksStats"),
		zap.Int("items", len(itemIDs)),
		zap.String("user_address", opts.UserAddress),
		zap.Int64("power", opts.Threshold()),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("GetPicksStats failed",
				zap.String("service", serviceName),
				zap.String("method", "GetPicksStats"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("GetPicksStats completed",
			zap.String("service", serviceName),
			zap.String("method", "GetPicksStats"),
			zap.Int("items", len(stats)),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.GetPicksStats(ctx, itemIDs, opts)
}

// GetPicksByItemID wraps the service method with logging
func (ls *logService) GetPicksByItemID(ctx context.Context, itemID string, opts favorites.PickersOptions) (page *favorites.Page[*favorites.Picker], err error) {
	start := time.Now()

	ls.logger.Debug("GetPicksByItemID started",
		zap.String("service", serviceName),
		zap.String("method", "GetPicksByItemID"),
		zap.String("item_id", itemID),
		zap.String("user_address", opts.UserAddress),
		zap.Int64("power", opts.Threshold()),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("GetPicksByItemID failed",
				zap.String("service", serviceName),
				zap.String("method", "GetPicksByItemID"),
				zap.String("item_id", itemID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("GetPicksByItemID completed",
			zap.String("service", serviceName),
			zap.String("method", "GetPicksByItemID"),
			zap.String("item_id", itemID),
			zap.Int("total", page.Total),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.GetPicksByItemID(ctx, itemID, opts)
}

// PickAndUnpickInBulk wraps the service method with logging
func (ls *logService) PickAndUnpickInBulk(ctx context.Context, itemID string, bulk favorites.BulkPick, caller string) (err error) {
	start := time.Now()

	ls.logger.Info("PickAndUnpickInBulk started",
		zap.String("service", serviceName),
		zap.String("method", "PickAndUnpickInBulk"),
		zap.String("item_id", itemID),
		zap.String("user_address", caller),
		zap.Strings("picked_for", bulk.PickedFor),
		zap.Strings("unpicked_from", bulk.UnpickedFrom),
	)

	defer func() {
		duration := time.Since(start)
		switch {
		case err == nil:
			ls.logger.Info("PickAndUnpickInBulk completed",
				zap.String("service", serviceName),
				zap.String("method", "PickAndUnpickInBulk"),
				zap.String("item_id", itemID),
				zap.String("user_address", caller),
				zap.Duration("duration", duration),
			)
		case apperrors.IsInternalError(err):
			ls.logger.Error("PickAndUnpickInBulk failed",
				zap.String("service", serviceName),
				zap.String("method", "PickAndUnpickInBulk"),
				zap.String("item_id", itemID),
				zap.String("user_address", caller),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		default:
			ls.logger.Warn("PickAndUnpickInBulk rejected",
				zap.String("service", serviceName),
				zap.String("method", "PickAndUnpickInBulk"),
				zap.String("item_id", itemID),
				zap.String("user_address", caller),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.PickAndUnpickInBulk(ctx, itemID, bulk, caller)
}
