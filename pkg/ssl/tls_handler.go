package ssl

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// TlsHandler 将明文 HTTP 请求重定向到同一 Host 的 HTTPS。
// 前置代理终止 TLS 时通过 X-Forwarded-Proto: https 识别为已加密请求。
func TlsHandler() gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect:     true,
		SSLProxyHeaders: map[string]string{"X-Forwarded-Proto": "https"},
	})

	return func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)

		// Process 已经写入了重定向响应，这里只需要中止 Gin 的处理链
		if err != nil {
			c.Abort()
			return
		}

		c.Next()
	}
}
