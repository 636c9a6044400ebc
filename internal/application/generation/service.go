// Package generation 提供文档生成编排能力
package generation

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"docugen-api/internal/domain/model"
	"docugen-api/pkg/logger"
	"docugen-api/pkg/metrics"
	"docugen-api/pkg/tracer"
)

// TextGenerator 抽象文本生成客户端，便于替换/Mock
type TextGenerator interface {
	// Generate 发起一次生成调用，返回去除首尾空白的文本
	Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
	// ModelName 返回当前解析到的模型 ID
	ModelName() string
	// ModelInfo 返回模型元信息快照
	ModelInfo() map[string]string
}

// Service 文档生成编排器
// 并发扇出各文档类型的生成调用，单个失败不影响其余槽位
type Service struct {
	llm TextGenerator
}

// NewService 创建文档生成编排器
func NewService(llm TextGenerator) *Service {
	return &Service{llm: llm}
}

// GenerateDocuments 按请求批量生成文档
// 响应中的 Documents 与请求类型列表等长、顺序一致（允许重复类型）
func (s *Service) GenerateDocuments(ctx context.Context, req *model.GenerationRequest) (*model.GenerationResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("generation request is nil")
	}

	ctx, span := tracer.Start(ctx, "generation.generate_documents")
	defer span.End()

	start := time.Now()

	logger.Info(ctx, "starting document generation",
		"document_types", req.DocumentTypes,
		"project_name", req.ProjectName,
		"input_length", utf8.RuneCountInString(req.InputText),
	)

	docs := make([]model.GeneratedDocument, len(req.DocumentTypes))

	// 扇出：每个槽位一个 goroutine，失败转为占位结果而非错误返回，
	// 因此 errgroup 不会触发取消，所有调用都运行至结束
	var g errgroup.Group
	for i, docType := range req.DocumentTypes {
		i, docType := i, docType
		g.Go(func() error {
			docs[i] = s.generateSingle(ctx, req, docType)
			return nil
		})
	}
	_ = g.Wait()

	elapsed := time.Since(start).Seconds()
	metrics.BatchGenerationDuration.Observe(elapsed)

	logger.Info(ctx, "document generation completed",
		"total_documents", len(docs),
		"generation_time", elapsed,
	)

	return &model.GenerationResponse{
		Documents:      docs,
		GenerationTime: elapsed,
		ModelInfo:      s.llm.ModelInfo(),
	}, nil
}

// generateSingle 生成单个文档，任何失败都折叠为错误占位文档
func (s *Service) generateSingle(ctx context.Context, req *model.GenerationRequest, docType model.DocumentType) model.GeneratedDocument {
	start := time.Now()
	prompt := BuildPrompt(req.InputText, docType, req.ProjectName)

	content, err := s.llm.Generate(ctx, prompt, MaxTokensFor(docType), TemperatureFor(docType))
	if err != nil {
		logger.Error(ctx, "failed to generate document", err, "document_type", docType)
		metrics.DocumentGenerationTotal.WithLabelValues(string(docType), "error").Inc()

		return model.GeneratedDocument{
			DocumentType: docType,
			Content:      fmt.Sprintf("# Error\n\nFailed to generate %s: %s", docType, err.Error()),
			Metadata: map[string]any{
				"error":         true,
				"error_message": err.Error(),
			},
		}
	}

	// 长度一律按字符（rune）计
	outputChars := utf8.RuneCountInString(content)
	metadata := map[string]any{
		"generated_at":  time.Now().Unix(),
		"input_length":  utf8.RuneCountInString(req.InputText),
		"output_length": outputChars,
		"model":         s.llm.ModelName(),
	}
	// 未提供项目名时不落入元数据
	if req.ProjectName != "" {
		metadata["project_name"] = req.ProjectName
	}
	for k, v := range req.AdditionalContext {
		metadata[k] = v
	}

	metrics.DocumentGenerationTotal.WithLabelValues(string(docType), "success").Inc()
	metrics.DocumentGenerationDuration.WithLabelValues(string(docType)).Observe(time.Since(start).Seconds())
	metrics.DocumentOutputChars.WithLabelValues(string(docType)).Observe(float64(outputChars))

	logger.Info(ctx, "document generated",
		"document_type", docType,
		"output_length", outputChars,
	)

	return model.GeneratedDocument{
		DocumentType: docType,
		Content:      content,
		Metadata:     metadata,
	}
}
