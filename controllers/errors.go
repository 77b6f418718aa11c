package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restotrack/restaurant-app/services"
	"github.com/restotrack/restaurant-app/utils"
)

// ErrNoPermission is returned when the authenticated role may not
// perform the requested action.
var ErrNoPermission = &CustomError{"You do not have permission"}

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// respondServiceError maps domain errors to HTTP statuses. Everything
// the services package raises is recoverable by the caller except the
// default branch (opaque storage errors).
func respondServiceError(c *gin.Context, err error) {
	var stockErr *services.InsufficientStockError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, services.ErrMenuItemNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &stockErr),
		errors.Is(err, services.ErrNoInventoryRecord),
		errors.Is(err, services.ErrMenuItemUnavailable),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQuantity):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrTableUnavailable):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrInvalidStatusTransition):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
