package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAppError maps the error taxonomy onto HTTP statuses: malformed
// input 400, missing target 404, invariant violation 422, everything
// else a storage fault 500.
func RespondAppError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindParse:
		RespondError(c, http.StatusBadRequest, "bad_request", err)
	case apperr.KindNotFound:
		RespondError(c, http.StatusNotFound, "not_found", err)
	case apperr.KindValidation:
		RespondError(c, http.StatusUnprocessableEntity, "validation_failed", err)
	case apperr.KindStorage:
		RespondError(c, http.StatusInternalServerError, "storage_failure", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
