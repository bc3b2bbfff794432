package httperr

import (
	"errors"
	"net/http"

	"venuebook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithCategory picks the status from the errs category marker on err.
// Messages for 5xx never include err's text.
func AbortWithCategory(c *gin.Context, err error) {
	var fieldErr *errs.FieldError
	switch {
	case errs.Is(err, errs.ErrValidation):
		var detail any
		if errors.As(err, &fieldErr) {
			detail = fieldErr
		}
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", detail)
	case errs.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.Is(err, errs.ErrConflict):
		AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errs.Is(err, errs.ErrUnavailable):
		AbortWithError(c, http.StatusServiceUnavailable, err, "Upstream unavailable", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
