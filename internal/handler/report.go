package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime/types"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// ReportGenerator builds and serves adherence reports
type ReportGenerator interface {
	GenerateAdherenceReport(ctx context.Context, userID string, from, to time.Time) (*model.Report, error)
	GetReport(ctx context.Context, userID, reportID string) ([]byte, error)
}

// ReportHandler implements report API endpoints
type ReportHandler struct {
	service ReportGenerator
	logger  *zap.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service ReportGenerator, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger,
	}
}

// PostApiV1ReportsGenerate generates an adherence report
func (h *ReportHandler) PostApiV1ReportsGenerate(c *gin.Context, params api.PostApiV1ReportsGenerateParams) {
	var req api.PostApiV1ReportsGenerateJSONRequestBody
	if !bindJSON(c, h.logger, &req) {
		return
	}
	userID := uuidToString(params.UserId)

	report, err := h.service.GenerateAdherenceReport(c.Request.Context(), userID, dateToTime(req.StartDate), dateToTime(req.EndDate))
	if err != nil {
		writeServiceError(c, h.logger, err, "Failed to generate report", zap.String("user_id", userID))
		return
	}

	h.logger.Info("report generated",
		zap.String("report_id", report.ID),
		zap.String("user_id", userID),
	)

	downloadURL := fmt.Sprintf("/api/v1/reports/%s?user_id=%s", report.ID, userID)
	c.JSON(http.StatusCreated, toAPIReport(report, downloadURL))
}

// GetApiV1ReportsId downloads a report
func (h *ReportHandler) GetApiV1ReportsId(c *gin.Context, id types.UUID, params api.GetApiV1ReportsIdParams) {
	reportID := uuidToString(id)

	pdfBytes, err := h.service.GetReport(c.Request.Context(), uuidToString(params.UserId), reportID)
	if err != nil {
		writeServiceError(c, h.logger, err, "Report not available", zap.String("report_id", reportID))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=adherence_report_%s.pdf", reportID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)

	h.logger.Info("report downloaded",
		zap.String("report_id", reportID),
		zap.Int("size_bytes", len(pdfBytes)),
	)
}
