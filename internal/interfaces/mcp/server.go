package mcp

import (
	"docugen-api/internal/application/generation"

	"github.com/mark3labs/mcp-go/server"
)

// NewServer 组装 MCP 服务器，注册全部工具与提示词
func NewServer(svc *generation.Service, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"documcp",
		version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	genTool := NewGenerateDocumentsTool(svc)
	s.AddTool(genTool.Definition(), genTool.Handle)

	prdTool := NewGeneratePRDTool(svc)
	s.AddTool(prdTool.Definition(), prdTool.Handle)

	readmeTool := NewGenerateReadmeTool(svc)
	s.AddTool(readmeTool.Definition(), readmeTool.Handle)

	overviewTool := NewGenerateOverviewTool(svc)
	s.AddTool(overviewTool.Definition(), overviewTool.Handle)

	docPrompt := NewProjectDocumentationPrompt()
	s.AddPrompt(docPrompt.Definition(), docPrompt.Handle)

	prdPrompt := NewPRDTemplatePrompt()
	s.AddPrompt(prdPrompt.Definition(), prdPrompt.Handle)

	return s
}

// serverInstructions 返回服务器使用说明
func serverInstructions() string {
	return `DocuMCP generates project documentation from a free-text description
using a locally hosted language model.

Tools:
- generate_documents: generate any combination of PRD, project overview
  (What-is-this) and README in one call
- generate_prd / generate_overview / generate_readme: generate a single
  document and return its raw markdown

Prompts:
- project_documentation: guide for generating the full document set
- prd_template: guide for generating a PRD only`
}
