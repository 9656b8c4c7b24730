package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"ResearchAssistant/internal/modules/research/domain/research"
)

// maxResponseBytes 响应体读取上限，超出按传输错误处理而不是截断后解析
const maxResponseBytes = 8 << 20

// ErrResponseTooLarge 响应体超过读取上限
var ErrResponseTooLarge = errors.New("response body exceeds size limit")

// TransportError 非 2xx（429 除外）或网络层失败
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gemini transport: %v", e.Err)
	}
	return fmt.Sprintf("gemini returned status %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is 使 errors.Is(err, research.ErrUpstream) 对所有传输错误成立
func (e *TransportError) Is(target error) bool {
	return target == research.ErrUpstream
}

// Client Gemini generateContent 的最小 HTTP 客户端
type Client struct {
	endpoint   string
	redacted   string
	maxBody    int64
	httpClient *http.Client
}

// NewClient endpoint 为 apiURL 与 apiKey 的直接拼接，timeout 约束单次调用的最长耗时
func NewClient(apiURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   apiURL + apiKey,
		redacted:   apiURL + "***",
		maxBody:    maxResponseBytes,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GenerateContent 发送一次请求并提取文本。解析类问题体现在 Result 中，
// 只有配额和传输错误以 error 返回。
func (c *Client) GenerateContent(ctx context.Context, prompt string) (research.Result, error) {
	body, err := c.post(ctx, newRequest(prompt))
	if err != nil {
		return research.Result{}, err
	}
	return ExtractText(body), nil
}

func (c *Client) post(ctx context.Context, payload GenerateContentRequest) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("build request for %s: invalid url", c.redacted)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error 会带上完整 URL，其中包含 key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = c.redacted
		}
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, research.ErrQuotaExceeded
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: truncate(string(body), 512)}
	}
	if int64(len(body)) > c.maxBody {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, c.maxBody),
		}
	}

	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
