package service

import (
	"context"

	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/pagination"

	"go.uber.org/zap"
)

// RecordsService is the read/delete surface over reconciled records.
// Deleting plants the tombstone the reconciler honors on later syncs.
type RecordsService struct {
	records ExternalRecordRepository
	logger  *zap.Logger
}

// NewRecordsService creates the records service.
func NewRecordsService(records ExternalRecordRepository, logger *zap.Logger) *RecordsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordsService{records: records, logger: logger}
}

// List returns the user's non-deleted records, newest transaction first.
// recordType filters to "order" or "invoice" when non-empty.
func (s *RecordsService) List(ctx context.Context, userID int64, recordType string, params pagination.PaginationParams) ([]ExternalRecord, *pagination.PaginationResult, error) {
	return s.records.List(ctx, userID, recordType, params)
}

// Delete soft-deletes a record. The row stays as a tombstone so a later
// sync cannot resurrect it. Returns false when no live record matched.
func (s *RecordsService) Delete(ctx context.Context, userID, id int64) (bool, error) {
	deleted, err := s.records.SoftDelete(ctx, userID, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("record soft-deleted",
			zap.Int64("user_id", userID),
			zap.Int64("record_id", id))
	}
	return deleted, nil
}
