// Package llm 提供 LM Studio 文本生成端点客户端
package llm

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"docugen-api/internal/config"
	apperrors "docugen-api/pkg/errors"
	"docugen-api/pkg/logger"
	"docugen-api/pkg/metrics"
)

// Client LM Studio 客户端
// LM Studio 暴露 OpenAI 兼容接口（/v1/models 与 /v1/chat/completions），
// 通过 openai-go SDK 指定 BaseURL 访问。
// Initialize 必须在任何 Generate 调用之前成功完成一次；
// 初始化完成后 model 与 loaded 只读，可被并发生成调用安全共享。
type Client struct {
	baseURL string
	model   string
	timeout time.Duration
	api     openai.Client
	loaded  bool
}

// NewClient 创建客户端，不发起网络请求
func NewClient(cfg *config.LMStudioConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	endpoint := baseURL
	if !strings.HasSuffix(endpoint, "/v1") {
		endpoint += "/v1"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 300 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		model:   cfg.Model,
		timeout: timeout,
		api: openai.NewClient(
			option.WithBaseURL(endpoint),
			option.WithAPIKey(cfg.APIKey),
		),
	}
}

// Initialize 查询端点可用模型并解析生效模型
// 端点不可达返回 CodeLLMUnreachable；无可用模型返回 CodeLLMNoModel；
// 配置的模型不在可用列表时静默回退到首个可用模型。
func (c *Client) Initialize(ctx context.Context) error {
	logger.Info(ctx, "initializing generation endpoint connection", "base_url", c.baseURL)

	page, err := c.api.Models.List(ctx)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeLLMUnreachable,
			fmt.Sprintf("cannot connect to generation endpoint at %s", c.baseURL))
	}

	available := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		available = append(available, m.ID)
	}

	if len(available) == 0 {
		return apperrors.New(apperrors.CodeLLMNoModel, "no models loaded at generation endpoint")
	}

	if !contains(available, c.model) {
		logger.Warn(ctx, "configured model not available, using first available model",
			"configured", c.model,
			"selected", available[0],
		)
		c.model = available[0]
	}

	c.loaded = true
	metrics.ModelLoaded.Set(1)

	logger.Info(ctx, "generation endpoint connection established",
		"model", c.model,
		"available_models", available,
	)
	return nil
}

// Generate 发起一次非流式 chat completion 调用
// 不做重试：单次失败即作为单个失败结果返回给调用方。
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	if !c.loaded {
		return "", apperrors.New(apperrors.CodeLLMNotInitialized,
			"generation endpoint not connected, call Initialize first")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(int64(maxTokens)),
		Temperature: openai.Float(temperature),
	})
	metrics.LLMCallDuration.WithLabelValues(c.model).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(c.model, "error").Inc()

		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", apperrors.Wrap(err, apperrors.CodeLLMCallFailed,
				fmt.Sprintf("generation endpoint error: %d", apiErr.StatusCode)).
				WithDetail(apiErr.RawJSON())
		}
		return "", apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "generation request failed")
	}

	if len(resp.Choices) == 0 {
		metrics.LLMCallTotal.WithLabelValues(c.model, "error").Inc()
		return "", apperrors.New(apperrors.CodeLLMCallFailed, "generation endpoint returned no choices")
	}

	metrics.LLMCallTotal.WithLabelValues(c.model, "success").Inc()
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// ModelName 返回当前生效的模型 ID
func (c *Client) ModelName() string {
	return c.model
}

// Loaded 返回是否已完成初始化
func (c *Client) Loaded() bool {
	return c.loaded
}

// ModelInfo 返回模型元信息快照
func (c *Client) ModelInfo() map[string]string {
	return map[string]string{
		"model_name": c.model,
		"loaded":     strconv.FormatBool(c.loaded),
		"service":    "LM Studio",
		"base_url":   c.baseURL,
	}
}

// MemoryUsage 返回占位的资源描述
// 推理侧资源由 LM Studio 自行管理，这里不测量本进程状态
func (c *Client) MemoryUsage() map[string]any {
	return map[string]any{
		"service":       "LM Studio",
		"local_service": true,
		"memory_info":   "Managed by LM Studio",
	}
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
