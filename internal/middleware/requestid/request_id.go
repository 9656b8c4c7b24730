package requestid

import (
	"strings"
	"time"

	"ResearchAssistant/pkg/util"
	"ResearchAssistant/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	HeaderName = "X-Request-ID"
	contextKey = "request_id"
)

// RequestID 为每个请求分配 ID（合法的客户端 X-Request-ID 会被沿用），并记录一行访问日志
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderName))
		if !util.IsValidRequestID(id) {
			id = util.GenerateRequestID()
		}
		c.Set(contextKey, id)
		c.Header(HeaderName, id)

		start := time.Now()
		c.Next()

		zlog.Info("http request",
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

// Get 取出当前请求的 ID
func Get(c *gin.Context) string {
	return c.GetString(contextKey)
}
