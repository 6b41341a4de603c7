package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
)

// Transcription handles audio uploads
type Transcription struct {
	svc      *summary.Service
	maxBytes int64
	logger   *zap.Logger
}

// NewTranscriptionHandler creates a new transcription handler. Uploads larger
// than maxBytes are rejected; zero disables the limit.
func NewTranscriptionHandler(svc *summary.Service, maxBytes int64, logger *zap.Logger) *Transcription {
	return &Transcription{svc: svc, maxBytes: maxBytes, logger: logger}
}

// Transcribe turns an uploaded recording into transcript text
// @Summary      Transcribe recording
// @Tags         Transcription
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Audio recording"
// @Success      200   {object}  common.SuccessResponse{data=dto.TranscriptResponse}
// @Failure      400   {object}  common.ErrorResponse  "No file uploaded"
// @Failure      502   {object}  common.ErrorResponse  "Transcription failed"
// @Router       /transcribe [post]
func (h *Transcription) Transcribe(c echo.Context) error {
	if h.maxBytes > 0 {
		req := c.Request()
		req.Body = http.MaxBytesReader(c.Response(), req.Body, h.maxBytes)
	}

	header, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMissingFile())
	}
	file, err := header.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMissingFile())
	}
	defer file.Close()

	if h.logger != nil {
		h.logger.Info("🎙️ Audio received",
			zap.String("filename", header.Filename),
			zap.Int64("size", header.Size),
		)
	}

	text, err := h.svc.Transcribe(c.Request().Context(), file)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := dto.TranscriptResponse{Text: text}
	if transcript, err := h.svc.Parse(text, summary.ModeTranscript); err == nil {
		resp.Transcript = transcript
	}
	return HandleSuccess(h.logger, c, resp)
}
