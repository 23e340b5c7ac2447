package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/backend/internal/model"
	"github.com/finance-tracker/backend/internal/service"
)

const internalErrorMessage = "An error occurred while processing your request."

// writeServiceError is the single policy translating a domain error into a
// transport response. Every endpoint forwards its service errors here; no
// handler picks its own status code for a given error kind.
func writeServiceError(c *gin.Context, err error) {
	var notFound *service.NotFoundError
	var validation *service.ValidationError

	switch {
	case errors.As(err, &notFound):
		log.Printf("[API] warning: resource not found: %s", notFound.Error())
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: notFound.Error()})
	case errors.As(err, &validation):
		log.Printf("[API] warning: validation error: %s", validation.Message)
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: validation.Message})
	default:
		// Internal detail is logged, never leaked to the caller.
		log.Printf("[API] error: unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: internalErrorMessage})
	}
}

// parseID extracts a positive integer id from the route. Anything else is
// rejected before a service is consulted.
func parseID(c *gin.Context, resource string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid " + resource + " id"})
		return 0, false
	}
	return id, true
}
