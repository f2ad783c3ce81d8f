package resp

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rbac-admin/pkg/code"
	"rbac-admin/pkg/logger"
	"rbac-admin/pkg/timex"
	"rbac-admin/pkg/validator"
)

type errorResponse struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Result    interface{} `json:"result,omitempty"`
	Path      string      `json:"path"`
	Timestamp string      `json:"timestamp"`
}

// Error gin Response with error
func Error(c *gin.Context, err error) {
	var e code.ErrorCode
	if !errors.As(err, &e) {
		// 未知错误不向调用方暴露细节
		e = code.ErrInternalServerError
	}
	l := logger.From(c.Request.Context())
	if e.StatusCode() >= http.StatusInternalServerError {
		l.Error("response failed", zap.Error(err))
	} else {
		l.Info("response rejected", zap.String("code", code.FullCode(e)), zap.String("reason", err.Error()))
	}
	c.AbortWithStatusJSON(e.StatusCode(), &errorResponse{
		Code:      code.FullCode(e),
		Message:   e.Message(),
		Result:    e.Result(),
		Path:      c.Request.URL.Path,
		Timestamp: timex.ISO8601(time.Now()),
	})
}

// ErrorParam gin response with invalid parameter tip
func ErrorParam(c *gin.Context, err error) {
	var fields validator.FieldErrors
	if errors.As(err, &fields) {
		Error(c, code.ErrInvalidParam.WithResult(fields))
		return
	}
	Error(c, code.ErrInvalidParam.WithResult(err.Error()))
}
