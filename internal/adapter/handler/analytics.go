package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/analytics"
)

// Analytics serves the dashboard data
type Analytics struct {
	svc    *analytics.Service
	logger *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(svc *analytics.Service, logger *zap.Logger) *Analytics {
	return &Analytics{svc: svc, logger: logger}
}

// FrequencyResponse pairs weekday names with meeting counts
type FrequencyResponse struct {
	Days   []string `json:"days"`
	Counts []int    `json:"counts"`
	Total  int      `json:"total"`
}

// Dashboard returns workloads, task completion and meeting frequency
// @Summary      Analytics dashboard
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Param        request  body      dto.DashboardRequest  true  "Current action groups"
// @Success      200      {object}  common.SuccessResponse{data=analytics.Dashboard}
// @Failure      500      {object}  common.ErrorResponse
// @Router       /analytics/dashboard [post]
func (h *Analytics) Dashboard(c echo.Context) error {
	var req dto.DashboardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	d, err := h.svc.Dashboard(c.Request().Context(), req.ActionGroups)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrCacheFailed("dashboard", err))
	}
	return HandleSuccess(h.logger, c, d)
}

// Frequency returns the number of meetings held on each weekday
// @Summary      Meeting frequency
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=FrequencyResponse}
// @Failure      500  {object}  common.ErrorResponse
// @Router       /analytics/frequency [get]
func (h *Analytics) Frequency(c echo.Context) error {
	freq, err := h.svc.Frequency(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrCacheFailed("frequency", err))
	}

	resp := FrequencyResponse{
		Days:   make([]string, len(freq)),
		Counts: freq[:],
		Total:  freq.Total(),
	}
	for i := range freq {
		resp.Days[i] = time.Weekday(i).String()
	}
	return HandleSuccess(h.logger, c, resp)
}
