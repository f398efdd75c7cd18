package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bankmesh/bank-services/internal/dto"
	"github.com/bankmesh/bank-services/internal/platform/logger"
	"github.com/bankmesh/bank-services/internal/redact"
)

// now is the clock used for ErrorResponse.ErrorTime.
var now = time.Now

// ErrorCode returns the upper snake case name of an HTTP status,
// e.g. NOT_FOUND for 404.
func ErrorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return fmt.Sprintf("STATUS_%d", status)
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithStatus writes the success envelope.
func RespondWithStatus(w http.ResponseWriter, r *http.Request, status int, statusMsg string) {
	RespondWithJSON(w, r, status, dto.Response{
		StatusCode: fmt.Sprintf("%d", status),
		StatusMsg:  statusMsg,
	})
}

// RespondWithError writes the error envelope for the request path.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	slog.Debug("sending error response",
		"status_code", status,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, newErrorResponse(r, status, message))
}

// RespondWithErrorAndLog writes the error envelope and logs the underlying error.
//
// Log level strategy:
// - 5xx errors: ERROR level
// - 4xx errors: DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	err error,
) {
	logAttrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, newErrorResponse(r, status, message))
}

// RespondWithValidationErrors writes a 400 response whose body maps each
// invalid field to its message.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, fieldErrors map[string]string) {
	logger.FromContext(r.Context()).Debug("request validation failed",
		slog.String("path", r.URL.Path),
		slog.Int("field_count", len(fieldErrors)))

	RespondWithJSON(w, r, http.StatusBadRequest, fieldErrors)
}

func newErrorResponse(r *http.Request, status int, message string) dto.ErrorResponse {
	return dto.ErrorResponse{
		APIPath:      "uri=" + r.URL.Path,
		ErrorCode:    ErrorCode(status),
		ErrorMessage: message,
		ErrorTime:    now(),
	}
}
