package gemini

import (
	"encoding/json"
	"fmt"

	"ResearchAssistant/internal/modules/research/domain/research"
)

// ExtractText 从原始响应体中取出第一个候选的第一段文本。
//
// 结构合法但没有文本 -> Empty；JSON 非法或结构无法取值（null 文档、空 parts、
// part 缺少 text）-> ParseError。
func ExtractText(body []byte) research.Result {
	var resp *GenerateContentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return research.ParseError(err.Error())
	}
	if resp == nil {
		return research.ParseError("response body is null")
	}

	if len(resp.Candidates) == 0 {
		return research.Empty()
	}

	first := resp.Candidates[0]
	if first == nil {
		return research.ParseError("first candidate is null")
	}
	if first.Content == nil || first.Content.Parts == nil {
		return research.Empty()
	}

	parts := first.Content.Parts
	if len(parts) == 0 {
		return research.ParseError(fmt.Sprintf("index 0 out of range for parts of length %d", len(parts)))
	}
	if parts[0] == nil || parts[0].Text == nil {
		return research.ParseError("first part has no text")
	}
	if *parts[0].Text == "" {
		return research.Empty()
	}

	return research.Success(*parts[0].Text)
}
