// Package mcp 提供 MCP 协议接入层，将文档生成能力暴露为工具与提示词
package mcp

import (
	"context"
	"fmt"
	"strings"

	"docugen-api/internal/application/generation"
	"docugen-api/internal/domain/model"
	"docugen-api/pkg/logger"

	"github.com/mark3labs/mcp-go/mcp"
)

// GenerateDocumentsTool 批量文档生成工具
type GenerateDocumentsTool struct {
	svc *generation.Service
}

// NewGenerateDocumentsTool 创建批量文档生成工具
func NewGenerateDocumentsTool(svc *generation.Service) *GenerateDocumentsTool {
	return &GenerateDocumentsTool{svc: svc}
}

// Definition 返回工具定义
func (t *GenerateDocumentsTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_documents",
		mcp.WithDescription("Generate project documentation (PRD, What-is-this, README) from a project description"),
		mcp.WithString("input_text",
			mcp.Required(),
			mcp.Description("Project description or requirements"),
		),
		mcp.WithString("project_name",
			mcp.Description("Name of the project (optional)"),
		),
		mcp.WithArray("document_types",
			mcp.Description("Types of documents to generate (default: all types)"),
			mcp.Items(map[string]any{
				"type": "string",
				"enum": []string{"prd", "what_is_this", "readme"},
			}),
		),
	)
}

// Handle 处理工具调用
func (t *GenerateDocumentsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputText, err := req.RequireString("input_text")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %s", err.Error())), nil
	}

	projectName := req.GetString("project_name", "")
	typeNames := req.GetStringSlice("document_types", nil)

	var docTypes []model.DocumentType
	if len(typeNames) == 0 {
		docTypes = model.AllDocumentTypes()
	} else {
		for _, name := range typeNames {
			docType, err := model.ParseDocumentType(name)
			if err != nil {
				// 未知类型跳过，与其余类型继续生成
				logger.Warn(ctx, "skipping unknown document type", "type", name)
				continue
			}
			docTypes = append(docTypes, docType)
		}
	}

	resp, err := t.svc.GenerateDocuments(ctx, &model.GenerationRequest{
		InputText:     inputText,
		DocumentTypes: docTypes,
		ProjectName:   projectName,
	})
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %s", err.Error())), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Document Generation Complete\n\nGenerated %d documents in %.2f seconds\n\n",
		len(resp.Documents), resp.GenerationTime)
	for _, doc := range resp.Documents {
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n---\n", doc.DocumentType.DisplayName(), doc.Content)
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// SingleDocumentTool 单文档生成工具，按固定文档类型生成
type SingleDocumentTool struct {
	svc         *generation.Service
	name        string
	description string
	docType     model.DocumentType
}

// NewGeneratePRDTool 创建 PRD 生成工具
func NewGeneratePRDTool(svc *generation.Service) *SingleDocumentTool {
	return &SingleDocumentTool{
		svc:         svc,
		name:        "generate_prd",
		description: "Generate a Product Requirements Document (PRD) from project description",
		docType:     model.DocumentTypePRD,
	}
}

// NewGenerateReadmeTool 创建 README 生成工具
func NewGenerateReadmeTool(svc *generation.Service) *SingleDocumentTool {
	return &SingleDocumentTool{
		svc:         svc,
		name:        "generate_readme",
		description: "Generate a README.md file from project description",
		docType:     model.DocumentTypeReadme,
	}
}

// NewGenerateOverviewTool 创建项目概览生成工具
func NewGenerateOverviewTool(svc *generation.Service) *SingleDocumentTool {
	return &SingleDocumentTool{
		svc:         svc,
		name:        "generate_overview",
		description: "Generate a project overview (What-is-this) document from project description",
		docType:     model.DocumentTypeWhatIsThis,
	}
}

// Definition 返回工具定义
func (t *SingleDocumentTool) Definition() mcp.Tool {
	return mcp.NewTool(t.name,
		mcp.WithDescription(t.description),
		mcp.WithString("input_text",
			mcp.Required(),
			mcp.Description("Project description or requirements"),
		),
		mcp.WithString("project_name",
			mcp.Description("Name of the project (optional)"),
		),
	)
}

// Handle 处理工具调用，返回生成文档的原始内容
func (t *SingleDocumentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputText, err := req.RequireString("input_text")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %s", err.Error())), nil
	}

	projectName := req.GetString("project_name", "")

	resp, err := t.svc.GenerateDocuments(ctx, &model.GenerationRequest{
		InputText:     inputText,
		DocumentTypes: []model.DocumentType{t.docType},
		ProjectName:   projectName,
	})
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Error: %s", err.Error())), nil
	}

	if len(resp.Documents) == 0 {
		return mcp.NewToolResultText("No document generated"), nil
	}

	return mcp.NewToolResultText(resp.Documents[0].Content), nil
}
