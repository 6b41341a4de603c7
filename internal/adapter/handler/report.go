package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/export"
	"github.com/johnquangdev/meeting-summarizer/pkg/metrics"
)

// Report handles exports of finished notes
type Report struct {
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(m *metrics.Metrics, logger *zap.Logger) *Report {
	return &Report{metrics: m, logger: logger}
}

// CalendarLink is a prefilled calendar event for one task
type CalendarLink struct {
	Assignee string `json:"assignee"`
	TaskID   string `json:"taskId"`
	Task     string `json:"task"`
	URL      string `json:"url"`
}

// ExportPDF renders the notes and suggestions as a PDF download
// @Summary      Export PDF report
// @Tags         Reports
// @Accept       json
// @Produce      application/pdf
// @Param        request  body      dto.ExportRequest  true  "Notes and suggestions"
// @Success      200      {file}    binary
// @Failure      500      {object}  common.ErrorResponse  "Export failed"
// @Router       /summaries/export/pdf [post]
func (h *Report) ExportPDF(c echo.Context) error {
	var req dto.ExportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	m, err := req.ToSummary()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUnsupportedInput(err))
	}

	doc, err := export.PDF(m, req.Suggestions)
	if err != nil {
		h.metrics.ObserveExport("pdf", metrics.OutcomeFailure)
		return HandleError(h.logger, c, errors.ErrReportExportFailed("pdf", err))
	}
	h.metrics.ObserveExport("pdf", metrics.OutcomeSuccess)

	if h.logger != nil {
		h.logger.Info("📄 PDF report exported", zap.Int("bytes", len(doc)))
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="meeting-summary.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", doc)
}

// Emails drafts one follow-up email per assignee
// @Summary      Draft follow-up emails
// @Tags         Reports
// @Accept       json
// @Produce      json
// @Param        request  body      dto.EmailsRequest  true  "Action groups and sender"
// @Success      200      {object}  common.SuccessResponse{data=[]export.EmailTemplate}
// @Failure      422      {object}  common.ErrorResponse  "Invalid request"
// @Router       /summaries/emails [post]
func (h *Report) Emails(c echo.Context) error {
	var req dto.EmailsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	emails, err := export.Emails(req.ActionGroups, req.Sender)
	if err != nil {
		h.metrics.ObserveExport("email", metrics.OutcomeFailure)
		return HandleError(h.logger, c, errors.ErrReportExportFailed("email", err))
	}
	h.metrics.ObserveExport("email", metrics.OutcomeSuccess)
	return HandleSuccess(h.logger, c, emails)
}

// Calendar builds a calendar link for every named task
// @Summary      Calendar links
// @Tags         Reports
// @Accept       json
// @Produce      json
// @Param        request  body      dto.DashboardRequest  true  "Action groups"
// @Success      200      {object}  common.SuccessResponse{data=[]CalendarLink}
// @Router       /summaries/calendar [post]
func (h *Report) Calendar(c echo.Context) error {
	var req dto.DashboardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	links := make([]CalendarLink, 0)
	for _, g := range req.ActionGroups {
		if strings.TrimSpace(g.Assignee) == "" {
			continue
		}
		for _, t := range g.Tasks {
			if strings.TrimSpace(t.Task) == "" {
				continue
			}
			links = append(links, CalendarLink{
				Assignee: g.Assignee,
				TaskID:   t.ID,
				Task:     t.Task,
				URL:      export.CalendarURL(t, g.Assignee),
			})
		}
	}
	h.metrics.ObserveExport("calendar", metrics.OutcomeSuccess)
	return HandleSuccess(h.logger, c, links)
}
