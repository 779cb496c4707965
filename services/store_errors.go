package services

import (
	apperrors "github.com/postboard/postboard-backend/errors"
	"github.com/postboard/postboard-backend/internal/store"
	"github.com/postboard/postboard-backend/logger"
	"github.com/postboard/postboard-backend/metrics"
)

// translateStoreError converts a store failure into a DatabaseError, counts it and logs the
// underlying driver error. The driver text never leaves this function.
func translateStoreError(resource, operation string, err error) *apperrors.AppError {
	appErr := store.TranslateError(err)

	code := appErr.Code
	if code == "" {
		code = "unknown"
	}
	metrics.StoreErrors.WithLabelValues(resource, operation, code).Inc()

	logger.GetLogger().Warnw("Store operation failed",
		"resource", resource,
		"operation", operation,
		"code", appErr.Code,
		"message", appErr.Message,
		"error", err,
	)
	return appErr
}
