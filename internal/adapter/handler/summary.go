package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
)

// Summary handles meeting notes validation, prompting and parsing
type Summary struct {
	svc    *summary.Service
	logger *zap.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(svc *summary.Service, logger *zap.Logger) *Summary {
	return &Summary{svc: svc, logger: logger}
}

func (h *Summary) notes(c echo.Context) (*dto.NotesRequest, error) {
	var req dto.NotesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validate reports every missing name and duplicate task in the notes
// @Summary      Validate meeting notes
// @Description  Checks assignee and task names and per-assignee task uniqueness
// @Tags         Summaries
// @Accept       json
// @Produce      json
// @Param        request  body      dto.NotesRequest  true  "Meeting notes"
// @Success      200      {object}  common.SuccessResponse{data=summary.Report}
// @Failure      400      {object}  common.ErrorResponse
// @Router       /summaries/validate [post]
func (h *Summary) Validate(c echo.Context) error {
	req, err := h.notes(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, h.svc.Validate(req.ActionGroups))
}

// Prompt returns the summary prompt without calling the generator
// @Summary      Compose summary prompt
// @Tags         Summaries
// @Accept       json
// @Produce      json
// @Param        request  body      dto.NotesRequest  true  "Meeting notes"
// @Success      200      {object}  common.SuccessResponse
// @Failure      422      {object}  common.ErrorResponse  "Validation failed"
// @Router       /summaries/prompt [post]
func (h *Summary) Prompt(c echo.Context) error {
	req, err := h.notes(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	m, err := req.ToSummary()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUnsupportedInput(err))
	}
	prompt, err := h.svc.ComposePrompt(m)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{
		"prompt": prompt,
		"params": h.svc.SummaryParams(),
	})
}

// Generate runs the full summary round-trip
// @Summary      Generate meeting summary
// @Description  Validates the notes, asks the generator for a summary and parses the reply
// @Tags         Summaries
// @Accept       json
// @Produce      json
// @Param        request  body      dto.NotesRequest  true  "Meeting notes"
// @Success      200      {object}  common.SuccessResponse{data=summary.SummaryResult}
// @Failure      422      {object}  common.ErrorResponse  "Validation failed"
// @Failure      502      {object}  common.ErrorResponse  "Generator failed"
// @Failure      503      {object}  common.ErrorResponse  "Generator not configured"
// @Router       /summaries/generate [post]
func (h *Summary) Generate(c echo.Context) error {
	req, err := h.notes(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	m, err := req.ToSummary()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUnsupportedInput(err))
	}
	result, err := h.svc.GenerateSummary(c.Request().Context(), m)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, result)
}

// Parse reads a generator reply or a structured notes object
// @Summary      Parse summary
// @Tags         Summaries
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ParseRequest  true  "Reply text (JSON string) or notes object"
// @Success      200      {object}  common.SuccessResponse{data=entities.MeetingSummary}
// @Failure      400      {object}  common.ErrorResponse  "Unsupported input"
// @Router       /summaries/parse [post]
func (h *Summary) Parse(c echo.Context) error {
	var req dto.ParseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	mode, err := summary.ParseMode(req.Mode)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	m, err := h.svc.Parse(req.Input, mode)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, m)
}

// Suggestions asks for follow-up actions over text or notes
// @Summary      Suggest follow-up actions
// @Tags         Suggestions
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SuggestionRequest  true  "Transcript text or meeting notes"
// @Success      200      {object}  common.SuccessResponse{data=summary.SuggestionResult}
// @Failure      400      {object}  common.ErrorResponse  "No text provided"
// @Failure      502      {object}  common.ErrorResponse  "Generator failed"
// @Router       /suggestions [post]
func (h *Summary) Suggestions(c echo.Context) error {
	var req dto.SuggestionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	src := summary.FromText(req.Text)
	if req.Notes != nil {
		m, err := req.Notes.ToSummary()
		if err != nil {
			return HandleError(h.logger, c, errors.ErrUnsupportedInput(err))
		}
		src = summary.FromSummary(m)
	}

	result, err := h.svc.SuggestActions(c.Request().Context(), src)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, result)
}
