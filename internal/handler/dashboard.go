package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vcscsvcscs/dosewise/internal/service"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"go.uber.org/zap"
)

// DashboardProvider aggregates the dashboard of a user
type DashboardProvider interface {
	GetSummary(ctx context.Context, userID string) (*service.DashboardSummary, error)
}

// DashboardHandler implements dashboard API endpoints
type DashboardHandler struct {
	service DashboardProvider
	logger  *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service DashboardProvider, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger,
	}
}

// GetApiV1DashboardSummary retrieves the adherence dashboard
func (h *DashboardHandler) GetApiV1DashboardSummary(c *gin.Context, params api.GetApiV1DashboardSummaryParams) {
	userID := uuidToString(params.UserId)

	summary, err := h.service.GetSummary(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.logger, err, "Failed to get dashboard summary", zap.String("user_id", userID))
		return
	}

	upcoming := toAPIOccurrences(summary.UpcomingDoses)
	missed := toAPIOccurrences(summary.MissedDoses)
	recent := toAPIDoseLogs(summary.RecentActivity)
	achievements := toAPIAchievements(summary.Achievements)
	fresh := toAPIAchievements(summary.NewAchievements)

	response := api.DashboardSummaryResponse{
		Kpis: &api.DashboardKPIs{
			AdherenceWeekly: intPtr(summary.KPIs.AdherenceWeekly),
			CurrentStreak:   intPtr(summary.KPIs.CurrentStreak),
			UpcomingToday:   intPtr(summary.KPIs.UpcomingToday),
		},
		UpcomingDoses:   &upcoming,
		MissedDoses:     &missed,
		RecentActivity:  &recent,
		Achievements:    &achievements,
		NewAchievements: &fresh,
	}

	h.logger.Info("dashboard summary retrieved",
		zap.String("user_id", userID),
		zap.Int("adherence_weekly", summary.KPIs.AdherenceWeekly),
		zap.Int("current_streak", summary.KPIs.CurrentStreak),
	)

	c.JSON(http.StatusOK, response)
}
