package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	apperrors "github.com/alphanifty/alphanifty_service/pkg/errors"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
)

// requestLogger returns the per-request logger set by the logging middleware
func requestLogger(c *gin.Context, fallback *logger.Logger) *logger.Logger {
	if v, exists := c.Get("logger"); exists {
		if l, ok := v.(*logger.Logger); ok {
			return l
		}
	}
	return fallback
}

// report binding failures under the json field names clients send
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON decodes the request body into v. An empty body leaves v untouched
// so every field falls back to its default. Tag violations are client errors;
// malformed JSON and failed coercions are processing errors.
func bindJSON(c *gin.Context, v interface{}) error {
	err := c.ShouldBindJSON(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.Validation(validationMessage(verrs[0]))
	}
	return apperrors.Processing(err, "Invalid request body")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than zero", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// respondSuccess sends a success envelope
func respondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, entities.Envelope{
		Status: entities.StatusSuccess,
		Data:   data,
	})
}

// respondMessage sends a success envelope with a message
func respondMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, entities.Envelope{
		Status:  entities.StatusSuccess,
		Data:    data,
		Message: message,
	})
}

// respondError maps err to its status code and sends an error envelope
func respondError(c *gin.Context, log *logger.Logger, err error) {
	status := apperrors.GetStatusCode(err)
	if status >= http.StatusInternalServerError {
		requestLogger(c, log).CtxError(c.Request.Context(), "Request failed",
			"error", err,
			"code", apperrors.GetCode(err))
	}

	c.JSON(status, entities.Envelope{
		Status:  entities.StatusError,
		Message: apperrors.Message(err),
	})
}
