package research

// NoContentSentinel 响应结构合法但没有可用文本时返回的固定字符串
const NoContentSentinel = "No content found in response"

// ParseErrorPrefix 解析失败时旧协议字符串的前缀
const ParseErrorPrefix = "Error Parsing: "

type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultEmpty
	ResultParseError
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultEmpty:
		return "empty"
	case ResultParseError:
		return "parse_error"
	default:
		return "unknown"
	}
}

// Result 提取结果：Success(text) | Empty | ParseError(detail)
type Result struct {
	Kind   ResultKind
	Text   string
	Detail string
}

func Success(text string) Result {
	return Result{Kind: ResultSuccess, Text: text}
}

func Empty() Result {
	return Result{Kind: ResultEmpty}
}

func ParseError(detail string) Result {
	return Result{Kind: ResultParseError, Detail: detail}
}

// Legacy 转换为对外的纯字符串协议，仅在 HTTP 边界使用
func (r Result) Legacy() string {
	switch r.Kind {
	case ResultSuccess:
		return r.Text
	case ResultParseError:
		return ParseErrorPrefix + r.Detail
	default:
		return NoContentSentinel
	}
}
