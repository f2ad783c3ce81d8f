package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success 无数据时返回204
func Success(c *gin.Context, data ...interface{}) {
	if len(data) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, WrapResult(data...))
}

// Created 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, WrapResult(data))
}

// WrapResult 包裹返回结果
func WrapResult(result ...interface{}) interface{} {
	response := map[string]interface{}{
		"code":    "200",
		"message": "success",
	}
	if len(result) > 0 {
		response["result"] = result[0]
	}
	return response
}
