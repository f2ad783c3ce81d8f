package logger

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap/zapcore"
)

// RegisterLog 注册查看与调整日志级别的接口
func RegisterLog(router gin.IRoutes) {
	router.GET("/log", getLog)
	router.PUT("/log", updateLog)
}

type LevelContent struct {
	Level string `json:"level" binding:"required,oneof=debug info warn error"`
}

func getLog(c *gin.Context) {
	c.JSON(http.StatusOK, LevelContent{
		Level: level.Level().String(),
	})
}

func updateLog(c *gin.Context) {
	var req LevelContent
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, map[string]interface{}{
			"code":    "4000000001",
			"message": err.Error(),
			"result":  nil,
		})
		return
	}
	l, err := zapcore.ParseLevel(req.Level)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	level.SetLevel(l)
	c.Status(http.StatusNoContent)
}
