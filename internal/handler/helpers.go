package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
	"github.com/vcscsvcscs/dosewise/internal/service"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"go.uber.org/zap"
)

// Helper functions for type conversions between API types and internal models

// stringPtr creates a pointer to a string
func stringPtr(s string) *string {
	return &s
}

// intPtr creates a pointer to an int
func intPtr(i int) *int {
	return &i
}

// boolPtr creates a pointer to a bool
func boolPtr(b bool) *bool {
	return &b
}

// timePtr creates a pointer to a time.Time
func timePtr(t time.Time) *time.Time {
	return &t
}

// uuidToString converts types.UUID to string
func uuidToString(u types.UUID) string {
	return uuid.UUID(u).String()
}

// stringToUUID converts string to types.UUID pointer
func stringToUUID(s string) *types.UUID {
	u, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	apiUUID := types.UUID(u)
	return &apiUUID
}

// dateToTime converts types.Date to time.Time
func dateToTime(d types.Date) time.Time {
	return d.Time
}

// timeToDate converts time.Time to types.Date pointer
func timeToDate(t time.Time) *types.Date {
	return &types.Date{Time: t}
}

// timePtrToDate converts *time.Time to *types.Date
func timePtrToDate(t *time.Time) *types.Date {
	if t == nil {
		return nil
	}
	return &types.Date{Time: *t}
}

// bindJSON decodes the request body and writes a validation error on failure
func bindJSON(c *gin.Context, logger *zap.Logger, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		logger.Warn("invalid request body", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    api.VALIDATIONERROR,
			Message: "Invalid request body",
			Details: stringPtr(err.Error()),
		})
		return false
	}
	return true
}

// writeServiceError maps a service error onto the standard error body.
// Validation failures become 400, missing resources 404 and everything else 500.
func writeServiceError(c *gin.Context, logger *zap.Logger, err error, message string, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))

	switch {
	case errors.Is(err, service.ErrValidation):
		logger.Warn(message, fields...)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    api.VALIDATIONERROR,
			Message: message,
			Details: stringPtr(err.Error()),
		})
	case errors.Is(err, service.ErrNotFound):
		logger.Info(message, fields...)
		c.JSON(http.StatusNotFound, api.ErrorResponse{
			Code:    api.NOTFOUND,
			Message: message,
			Details: stringPtr(err.Error()),
		})
	default:
		logger.Error(message, fields...)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Code:    api.INTERNALERROR,
			Message: message,
			Details: stringPtr(err.Error()),
		})
	}
}
