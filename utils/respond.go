// Package utils holds the uniform response envelope shared by every handler.
package utils

import (
	"errors"
	"net/http"

	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/gin-gonic/gin"
)

type Toast struct {
	Type    string `json:"type"` // success, error, warning
	Message string `json:"message"`
}

type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Toast   Toast       `json:"toast"`
}

// OK writes a success envelope with a success toast.
func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Toast:   Toast{Type: "success", Message: message},
	})
}

// Fail writes a failure envelope at the given status.
func Fail(c *gin.Context, status int, message string) {
	failWith(c, status, "error", message)
}

// Error maps a service error onto status and toast. Storage failures never
// leak their detail to the client.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		failWith(c, http.StatusNotFound, "error", err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		failWith(c, http.StatusForbidden, "error", err.Error())
	case errors.Is(err, services.ErrOutOfStock):
		failWith(c, http.StatusConflict, "warning", err.Error())
	case errors.Is(err, services.ErrEmptyCart):
		failWith(c, http.StatusConflict, "warning", err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		failWith(c, http.StatusConflict, "error", err.Error())
	case errors.Is(err, services.ErrInvalidOrExpired):
		failWith(c, http.StatusUnauthorized, "error", err.Error())
	case errors.Is(err, services.ErrStorage):
		failWith(c, http.StatusInternalServerError, "error", "something went wrong, please try again")
	default:
		failWith(c, http.StatusBadRequest, "error", err.Error())
	}
}

func failWith(c *gin.Context, status int, toastType, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Toast:   Toast{Type: toastType, Message: message},
	})
}
