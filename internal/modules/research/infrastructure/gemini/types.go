package gemini

// GenerateContentRequest generateContent 请求体，contents/parts 均为单元素包装
type GenerateContentRequest struct {
	Contents []RequestContent `json:"contents"`
}

type RequestContent struct {
	Parts []RequestPart `json:"parts"`
}

type RequestPart struct {
	Text string `json:"text"`
}

// GenerateContentResponse 只关心 candidates[0].content.parts[0].text，其余字段忽略。
// 指针与 nil 切片用于区分“字段缺失”和“字段为空”。
type GenerateContentResponse struct {
	Candidates []*Candidate `json:"candidates"`
}

type Candidate struct {
	Content *CandidateContent `json:"content"`
}

type CandidateContent struct {
	Parts []*CandidatePart `json:"parts"`
}

type CandidatePart struct {
	Text *string `json:"text"`
}

func newRequest(prompt string) GenerateContentRequest {
	return GenerateContentRequest{
		Contents: []RequestContent{
			{Parts: []RequestPart{{Text: prompt}}},
		},
	}
}
