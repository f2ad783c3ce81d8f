package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rbac-admin/internal/code"
	"rbac-admin/pkg/cache"
	"rbac-admin/pkg/logger"
	"rbac-admin/pkg/resp"
	"rbac-admin/pkg/utils/v"
)

// maxDigestBody 参与摘要的请求体上限
const maxDigestBody = 1 << 20

// RepeatSubmit 相同的写请求在interval内只处理一次
func RepeatSubmit(c cache.Cache, interval time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		switch ctx.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete:
		default:
			ctx.Next()
			return
		}
		body, err := readBody(ctx.Request)
		if err != nil {
			resp.ErrorParam(ctx, err)
			return
		}
		key := repeatSubmitKey(ctx.GetHeader(v.HeaderAuthorization), ctx.Request.Method,
			ctx.Request.URL.RequestURI(), body)
		ok, err := c.SetNX(ctx.Request.Context(), key, "1", interval)
		if err != nil {
			// 缓存不可用时不拦截
			logger.From(ctx.Request.Context()).Warn("repeat submit check skipped", zap.Error(err))
			ctx.Next()
			return
		}
		if !ok {
			resp.Error(ctx, code.ErrRepeatSubmit)
			return
		}
		ctx.Next()
	}
}

func repeatSubmitKey(authorization, method, uri string, body []byte) string {
	d := xxhash.New()
	for _, part := range [][]byte{[]byte(authorization), []byte(method), []byte(uri), body} {
		_, _ = d.Write(part)
		_, _ = d.Write([]byte{0})
	}
	return "repeat_submit:" + strconv.FormatUint(d.Sum64(), 16)
}

// readBody 读取后回填,后续handler仍可绑定
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDigestBody+1))
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), r.Body))
	if len(body) > maxDigestBody {
		body = body[:maxDigestBody]
	}
	return body, nil
}
