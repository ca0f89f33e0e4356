package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// requestLog 给每个请求分配 request id 并记录结构化访问日志。
func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := uuid.NewString()
		c.Set("requestID", rid)
		c.Header("X-Request-ID", rid)

		start := time.Now()
		c.Next()

		logrus.WithFields(logrus.Fields{
			"rid":     rid,
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}
