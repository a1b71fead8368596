package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/akuntansi-app/akuntansi-backend/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// apiResponse is the uniform envelope every endpoint returns.
type apiResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	IsSuccess bool   `json:"isSuccess"`
	Data      any    `json:"data,omitempty"`
}

func respondSuccess(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, apiResponse{
		Status:    "success",
		Message:   message,
		IsSuccess: true,
		Data:      data,
	})
}

// respondError maps a service error onto the envelope. Validation and unknown
// reference failures are the client's fault; anything unrecognized is reported
// as an internal error without leaking its cause.
func respondError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrReference):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		statusCode = http.StatusConflict
		message = err.Error()
	}

	c.JSON(statusCode, apiResponse{
		Status:    "error",
		Message:   message,
		IsSuccess: false,
	})
}

// respondBindError reports a malformed or invalid request body or query.
// Field-level validation failures list the offending fields by name.
func respondBindError(c *gin.Context, err error) {
	message := "Invalid request format: " + err.Error()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
		}
		message = "Validation failed on: " + strings.Join(fields, ", ")
	}

	c.JSON(http.StatusBadRequest, apiResponse{
		Status:    "error",
		Message:   message,
		IsSuccess: false,
	})
}
