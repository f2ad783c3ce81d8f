package middlewares

import (
	"errors"
	"fmt"
	"net"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"rbac-admin/pkg/code"
	"rbac-admin/pkg/logger"
	"rbac-admin/pkg/prometheus"
	"rbac-admin/pkg/resp"
)

// Recovery panic logx
func Recovery(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			var brokenPipe bool
			if ne, ok := r.(*net.OpError); ok {
				var se *os.SyscallError
				if errors.As(ne.Err, &se) {
					brokenPipe = strings.Contains(strings.ToLower(se.Error()), "broken pipe") ||
						strings.Contains(strings.ToLower(se.Error()), "connection reset by peer")
				}
			}
			ctx := c.Request.Context()
			prometheus.PanicCounterVec.WithLabelValues(c.Request.Method, c.FullPath()).Inc()
			// 只输出请求头,请求体可能包含密码
			httpRequest, err := httputil.DumpRequest(c.Request, false)
			if err != nil {
				logger.From(ctx).Error(err.Error())
			}
			headers := strings.Split(string(httpRequest), "\r\n")
			for idx, header := range headers {
				current := strings.Split(header, ":")
				if strings.EqualFold(current[0], "Authorization") { // 数据脱敏
					headers[idx] = current[0] + ": *"
				}
			}
			logger.From(ctx).Sugar().Errorf("[Recovery] %s\n%v\n%s",
				strings.Join(headers, "\r\n"), r, debug.Stack())
			if brokenPipe {
				c.Abort()
				return
			}
			resp.Error(c, code.ErrInternalServerError.WithResult(fmt.Sprint("panic: ", c.FullPath())))
		}
	}()
	c.Next()
}
