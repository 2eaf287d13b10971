package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/courtside/trainings-api/internal/pkg/sanitize"
)

type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`
	Details    string `json:"details,omitempty"`
}

func (e *Err) Error() string {
	return e.Msg
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        "bad request",
		Details:    err.Error(),
	}
}

// ErrBadRequestMsg is ErrBadRequest for rejections where the message is
// the answer itself rather than a validation detail.
func ErrBadRequestMsg(msg string) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        msg,
	}
}

func ErrNotFound(msg string) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        msg,
	}
}

func ErrConflict(msg string) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Msg:        msg,
	}
}

func ErrGone(msg string) *Err {
	return &Err{
		StatusCode: http.StatusGone,
		Msg:        msg,
	}
}

func ErrUnauthorized(msg string) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        msg,
	}
}

func ErrTooManyRequests(msg string) *Err {
	return &Err{
		StatusCode: http.StatusTooManyRequests,
		Msg:        msg,
	}
}

// ErrInternalServerError logs the wrapped cause (scrubbed of contact
// details) and returns a generic body. Callers never see internals.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.String("error", sanitize.ScrubErr(err)))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "something went wrong",
	}
}
