package research

import "context"

// ContentGenerator 外部生成式模型。实现方负责一次同步调用并提取文本，
// 配额与传输错误以 error 返回，解析问题体现在 Result 中。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (Result, error)
}
