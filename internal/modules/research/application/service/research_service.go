package service

import (
	"context"
	"time"

	"ResearchAssistant/internal/modules/research/application/dto/request"
	"ResearchAssistant/internal/modules/research/domain/research"
	"ResearchAssistant/pkg/zlog"

	"go.uber.org/zap"
)

// ResearchService 文本处理服务接口
type ResearchService interface {
	// ProcessContent 构造提示词并调用外部模型，返回提取结果
	ProcessContent(ctx context.Context, req request.ResearchProcessRequest) (research.Result, error)
}

type researchServiceImpl struct {
	generator research.ContentGenerator
}

// NewResearchService 创建ResearchService
func NewResearchService(generator research.ContentGenerator) ResearchService {
	return &researchServiceImpl{generator: generator}
}

func (s *researchServiceImpl) ProcessContent(ctx context.Context, req request.ResearchProcessRequest) (research.Result, error) {
	op := research.Operation(req.Operation)

	// 未知 operation 必须在任何外部调用之前失败
	prompt, err := research.BuildPrompt(op, req.Content)
	if err != nil {
		return research.Result{}, err
	}

	start := time.Now()
	result, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return research.Result{}, err
	}

	fields := []zap.Field{
		zap.String("operation", string(op)),
		zap.String("result", result.Kind.String()),
		zap.Int("content_len", len(req.Content)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if result.Kind == research.ResultParseError {
		zlog.Warn("research response not parsable", append(fields, zap.String("detail", result.Detail))...)
	} else {
		zlog.Info("research content processed", fields...)
	}

	return result, nil
}
