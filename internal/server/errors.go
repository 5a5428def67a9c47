package server

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	apperr "github.com/matzehuels/miniart/pkg/errors"
)

type errorResponse struct {
	Error     string      `json:"error"`
	Code      apperr.Code `json:"code,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code apperr.Code) int {
	switch code {
	case apperr.ErrCodeInvalidInput,
		apperr.ErrCodeInvalidLength,
		apperr.ErrCodeInvalidPercent,
		apperr.ErrCodeInvalidAngle,
		apperr.ErrCodeInvalidRadius,
		apperr.ErrCodeInvalidTemplate,
		apperr.ErrCodeInvalidBackground,
		apperr.ErrCodeInvalidSeed,
		apperr.ErrCodeInvalidCount,
		apperr.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case apperr.ErrCodeNotFound, apperr.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperr.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as JSON. Internal errors are logged and reported
// without detail.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperr.GetCode(err)
	status := statusFor(code)
	resp := errorResponse{
		Error:     apperr.UserMessage(err),
		Code:      code,
		RequestID: middleware.GetReqID(r.Context()),
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", resp.RequestID)
		resp.Error = "internal error"
	}
	writeJSON(w, status, resp)
}
