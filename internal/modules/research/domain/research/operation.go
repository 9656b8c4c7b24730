package research

import "fmt"

// Operation 选择固定指令前缀的操作名
type Operation string

const (
	OperationSummarize Operation = "summarize"
	OperationSuggest   Operation = "suggest"
)

const (
	summarizePrefix = "Provide a clear and concise summary of the following text in few lines.\n\n"
	suggestPrefix   = "Based on the following content: suggest related topics with headings and bullet points.\n\n"
)

// Prefix 返回 operation 对应的指令前缀
func (o Operation) Prefix() (string, error) {
	switch o {
	case OperationSummarize:
		return summarizePrefix, nil
	case OperationSuggest:
		return suggestPrefix, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOperation, string(o))
	}
}

// BuildPrompt 前缀 + content，content 原样拼接，不做 trim 或转义
func BuildPrompt(op Operation, content string) (string, error) {
	prefix, err := op.Prefix()
	if err != nil {
		return "", err
	}
	return prefix + content, nil
}
