package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"docugen-api/internal/application/generation"
)

// fakeGenerator 固定输出的文本生成客户端桩
// failTokens 命中 maxTokens 时返回错误
type fakeGenerator struct {
	failTokens int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	if f.failTokens != 0 && maxTokens == f.failTokens {
		return "", errors.New("endpoint down")
	}
	return "generated body", nil
}

func (f *fakeGenerator) ModelName() string { return "test-model" }

func (f *fakeGenerator) ModelInfo() map[string]string {
	return map[string]string{"model_name": "test-model"}
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("got %d content blocks, want 1", len(res.Content))
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content block is %T, want TextContent", res.Content[0])
	}
	return text.Text
}

// 测试批量工具输出汇总头与各文档小节
func TestGenerateDocumentsTool(t *testing.T) {
	tool := NewGenerateDocumentsTool(generation.NewService(&fakeGenerator{}))

	res, err := tool.Handle(context.Background(), callRequest("generate_documents", map[string]any{
		"input_text": "a package registry",
	}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	text := resultText(t, res)
	if !strings.Contains(text, "# Document Generation Complete") {
		t.Error("missing summary header")
	}
	if !strings.Contains(text, "Generated 3 documents in ") {
		t.Errorf("missing summary line: %q", text)
	}
	for _, section := range []string{"## Prd", "## What Is This", "## Readme"} {
		if !strings.Contains(text, section) {
			t.Errorf("missing section %q", section)
		}
	}
}

// 测试批量工具按指定类型子集生成
func TestGenerateDocumentsToolSubset(t *testing.T) {
	tool := NewGenerateDocumentsTool(generation.NewService(&fakeGenerator{}))

	res, err := tool.Handle(context.Background(), callRequest("generate_documents", map[string]any{
		"input_text":     "a package registry",
		"document_types": []any{"readme"},
	}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	text := resultText(t, res)
	if !strings.Contains(text, "Generated 1 documents in ") {
		t.Errorf("summary line = %q", text)
	}
	if strings.Contains(text, "## Prd") {
		t.Error("prd section present for readme-only request")
	}
}

// 缺失 input_text 参数返回错误文本
func TestGenerateDocumentsToolMissingInput(t *testing.T) {
	tool := NewGenerateDocumentsTool(generation.NewService(&fakeGenerator{}))

	res, err := tool.Handle(context.Background(), callRequest("generate_documents", map[string]any{}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !strings.HasPrefix(resultText(t, res), "Error: ") {
		t.Errorf("text = %q, want error prefix", resultText(t, res))
	}
}

// 测试单文档工具返回原始内容
func TestSingleDocumentTool(t *testing.T) {
	tool := NewGeneratePRDTool(generation.NewService(&fakeGenerator{}))

	res, err := tool.Handle(context.Background(), callRequest("generate_prd", map[string]any{
		"input_text":   "a package registry",
		"project_name": "Registry",
	}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if got := resultText(t, res); got != "generated body" {
		t.Errorf("text = %q, want raw document content", got)
	}
}

// 生成失败时单文档工具返回错误占位文档内容
func TestSingleDocumentToolFailure(t *testing.T) {
	// PRD 的 maxTokens 为 3000
	tool := NewGeneratePRDTool(generation.NewService(&fakeGenerator{failTokens: 3000}))

	res, err := tool.Handle(context.Background(), callRequest("generate_prd", map[string]any{
		"input_text": "a package registry",
	}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	text := resultText(t, res)
	if !strings.Contains(text, "# Error") || !strings.Contains(text, "endpoint down") {
		t.Errorf("text = %q, want error placeholder document", text)
	}
}

// 测试提示词返回引导消息
func TestProjectDocumentationPrompt(t *testing.T) {
	p := NewProjectDocumentationPrompt()

	req := mcp.GetPromptRequest{}
	req.Params.Name = "project_documentation"
	req.Params.Arguments = map[string]string{
		"project_description": "a search engine",
		"project_name":        "Finder",
	}

	res, err := p.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(res.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(res.Messages))
	}

	text, ok := res.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", res.Messages[0].Content)
	}
	if !strings.Contains(text.Text, "'Finder'") || !strings.Contains(text.Text, "a search engine") {
		t.Errorf("prompt text = %q", text.Text)
	}
	if !strings.Contains(text.Text, "generate_documents tool") {
		t.Error("prompt should reference the generate_documents tool")
	}
}

// 缺省项目名时使用占位名
func TestPRDTemplatePromptDefaultName(t *testing.T) {
	p := NewPRDTemplatePrompt()

	req := mcp.GetPromptRequest{}
	req.Params.Name = "prd_template"
	req.Params.Arguments = map[string]string{"project_description": "a search engine"}

	res, err := p.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	text := res.Messages[0].Content.(mcp.TextContent)
	if !strings.Contains(text.Text, "'My Project'") {
		t.Errorf("prompt text = %q, want default project name", text.Text)
	}
}
