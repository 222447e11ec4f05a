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

func traceID(c *gin.Context) string {
	if id, ok := c.Get("trace_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError translates service-layer errors into HTTP responses.
// Format and schema failures from generation are reported as one condition
// with the violation detail in the message; absent and not-owned records are
// indistinguishable to the caller.
func HandleServiceError(c *gin.Context, err error) {
	var schemaErr *SchemaViolationError

	switch {
	case errors.As(err, &schemaErr):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Itinerary generation failed: " + schemaErr.Error(),
			TraceID: traceID(c),
			Data:    gin.H{"violations": schemaErr.Violations},
		})
	case errors.Is(err, ErrContentNotJSON):
		RespondError(c, http.StatusBadRequest, "Itinerary generation failed: "+err.Error())
	case errors.Is(err, ErrInvalidDateRange), errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found or you do not have access to this trip")
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary not found or you do not have access to this itinerary")
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Incorrect username or password")
	case errors.Is(err, ErrInvalidToken):
		RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrUsernameTaken):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAIUpstream):
		RespondError(c, http.StatusBadGateway, "Itinerary generation is temporarily unavailable. Please try again.")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
