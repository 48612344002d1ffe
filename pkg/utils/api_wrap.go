package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP statuses.
// Anything unrecognized is a 500 with a generic message; the underlying error
// is logged with the trace id, never sent to the client.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidSignature),
		errors.Is(err, ErrPaymentNotAcceptable):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrPaymentNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrConflict),
		errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUpstreamUnavailable):
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrMisconfigured):
		log.Printf("[trace %s] misconfiguration: %v", traceIDFrom(c), err)
		RespondError(c, http.StatusInternalServerError, ErrMisconfigured.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("[trace %s] database error: %v", traceIDFrom(c), err)
		RespondError(c, http.StatusInternalServerError, "internal server error")
	default:
		log.Printf("[trace %s] unknown error: %v", traceIDFrom(c), err)
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
