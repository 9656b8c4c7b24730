package research

import "errors"

// QuotaExceededMessage 外部模型返回 429 时给调用方的固定提示
const QuotaExceededMessage = "Gemini API quota exceeded. Please wait 30 seconds."

var (
	// ErrInvalidOperation 未知的 operation，在调用外部模型之前返回
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrQuotaExceeded 外部模型返回 429，不重试
	ErrQuotaExceeded = errors.New("generative api quota exceeded")
	// ErrUpstream 其余非 2xx 响应或网络失败
	ErrUpstream = errors.New("generative api request failed")
)
