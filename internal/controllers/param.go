package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"rbac-admin/pkg/idx"
	"rbac-admin/pkg/resp"
)

// ParamID 解析路径参数id,失败时直接返回400
func ParamID(c *gin.Context) (uint64, bool) {
	id, err := idx.ParseID(c.Param("id"))
	if err != nil {
		resp.ErrorParam(c, errors.Wrap(err, "invalid id"))
		return 0, false
	}
	return id, true
}
