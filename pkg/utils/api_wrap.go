package utils

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status    string      `json:"status"`
	Code      int         `json:"code"`
	ErrorCode string      `json:"error_code,omitempty"`
	Message   string      `json:"message,omitempty"`
	TraceID   string      `json:"trace_id,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
	Path      string      `json:"path,omitempty"`
	Details   interface{} `json:"details,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	respondErrorCoded(c, code, "", message, nil)
}

func respondErrorCoded(c *gin.Context, code int, errorCode, message string, details interface{}) {
	c.JSON(code, APIResponse{
		Status:    "error",
		Code:      code,
		ErrorCode: errorCode,
		Message:   message,
		TraceID:   c.GetString("trace_id"),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.Request.URL.Path,
		Details:   details,
	})
}

// HandleServiceError is the single place where service sentinels and
// translated database errors become HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		code := http.StatusConflict
		if ce.Code == CodeForeignKeyViolation {
			code = http.StatusBadRequest
		}
		respondErrorCoded(c, code, ce.Code, "Database constraint violated", gin.H{
			"constraint": ce.Constraint,
			"field":      ce.Field,
			"value":      ce.Value,
		})
		return
	}

	switch {
	case errors.Is(err, ErrOperationTypeNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrFollowupItemNotFound),
		errors.Is(err, ErrCustomerNotFound),
		errors.Is(err, ErrMeetingNotFound),
		errors.Is(err, ErrLanguageNotFound),
		errors.Is(err, ErrTranslationNotFound),
		errors.Is(err, ErrAccountNotFound):
		respondErrorCoded(c, http.StatusNotFound, "not-found", err.Error(), nil)
	case errors.Is(err, ErrMissingContact),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidFollowKind),
		errors.Is(err, ErrInvalidInput):
		respondErrorCoded(c, http.StatusBadRequest, "bad-request", err.Error(), nil)
	case errors.Is(err, ErrEmailAlreadyExists):
		respondErrorCoded(c, http.StatusConflict, "duplicate-entry", err.Error(), nil)
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidResetToken):
		respondErrorCoded(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		respondErrorCoded(c, http.StatusInternalServerError, "internal", "Internal server error", nil)
	default:
		log.Printf("Unknown error: %v", err)
		respondErrorCoded(c, http.StatusInternalServerError, "internal", "Internal server error", nil)
	}
}
