package http

import (
	"errors"

	"ResearchAssistant/internal/middleware/requestid"
	"ResearchAssistant/internal/modules/research/application/dto/request"
	"ResearchAssistant/internal/modules/research/application/service"
	"ResearchAssistant/internal/modules/research/domain/research"
	"ResearchAssistant/pkg/back"
	"ResearchAssistant/pkg/xerr"
	"ResearchAssistant/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResearchHandler 文本处理HTTP Handler
type ResearchHandler struct {
	svc service.ResearchService
}

// NewResearchHandler 创建ResearchHandler
func NewResearchHandler(svc service.ResearchService) *ResearchHandler {
	return &ResearchHandler{svc: svc}
}

// Process 处理总结/推荐请求
//
// 路由: POST /api/research/process
// 请求体: ResearchProcessRequest
// 响应: 200 text/plain，内容为模型文本、"No content found in response" 或 "Error Parsing: ..."
func (h *ResearchHandler) Process(c *gin.Context) {
	reqID := requestid.Get(c)

	var req request.ResearchProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Error("research process bind error", zap.Error(err), zap.String("request_id", reqID))
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	result, err := h.svc.ProcessContent(c.Request.Context(), req)
	if err != nil {
		zlog.Error("research process failed", zap.Error(err),
			zap.String("request_id", reqID),
			zap.String("operation", req.Operation))
		back.Result(c, nil, toCodeError(err))
		return
	}

	back.Text(c, result.Legacy())
}

// toCodeError 将业务错误映射为对外错误码
func toCodeError(err error) error {
	switch {
	case errors.Is(err, research.ErrInvalidOperation):
		return xerr.New(xerr.BadRequest, err.Error())
	case errors.Is(err, research.ErrQuotaExceeded):
		return xerr.New(xerr.TooManyRequests, research.QuotaExceededMessage)
	case errors.Is(err, research.ErrUpstream):
		return xerr.ErrUpstream
	default:
		return err
	}
}
