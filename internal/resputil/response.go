package resputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BUka228/ProgressQuestWeb/pkg/logutils"
)

// Response is the envelope of every endpoint. The generic parameter exists
// for the swagger definitions.
type Response[T any] struct {
	Code ErrorCode `json:"code"`
	Data T         `json:"data"`
	Msg  string    `json:"msg"`
}

func wrapResponse(c *gin.Context, httpCode int, msg string, data any, code ErrorCode) {
	c.JSON(httpCode, gin.H{
		"code": code,
		"data": data,
		"msg":  msg,
	})
}

func Success(c *gin.Context, data any) {
	wrapResponse(c, http.StatusOK, "", data, OK)
}

// HTTPError responds with an explicit HTTP status code.
func HTTPError(c *gin.Context, httpCode int, msg string, errorCode ErrorCode) {
	wrapResponse(c, httpCode, msg, nil, errorCode)
}

// Error classifies the error code into an HTTP status. Codes that do not map
// to a specific class are treated as internal errors; the caller should have
// logged the details already, the message stays generic for them.
func Error(c *gin.Context, msg string, errorCode ErrorCode) {
	wrapResponse(c, httpStatusFor(errorCode), msg, nil, errorCode)
}

// BadRequestError is a shorthand for validation failures.
func BadRequestError(c *gin.Context, msg string) {
	HTTPError(c, http.StatusBadRequest, msg, InvalidRequest)
}

// InternalError hides the cause from the caller and logs it instead.
func InternalError(c *gin.Context, err error, msg string) {
	logutils.Log.Errorf("%s: %v", msg, err)
	wrapResponse(c, http.StatusInternalServerError, msg, nil, NotSpecified)
}

func httpStatusFor(code ErrorCode) int {
	switch code {
	case OK:
		return http.StatusOK
	case InvalidRequest:
		return http.StatusBadRequest
	case TokenExpired, TokenInvalid, Unauthenticated, InvalidCredentials:
		return http.StatusUnauthorized
	case PermissionDenied:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case EmailAlreadyUsed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
