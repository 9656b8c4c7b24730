package request

// ResearchProcessRequest POST /api/research/process 请求体
type ResearchProcessRequest struct {
	Operation string `json:"operation"` // summarize / suggest
	Content   string `json:"content"`   // 原文，原样拼接到提示词后
}
