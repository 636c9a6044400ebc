package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ProjectDocumentationPrompt 引导客户端调用 generate_documents 的提示词
type ProjectDocumentationPrompt struct{}

// NewProjectDocumentationPrompt 创建完整文档集提示词
func NewProjectDocumentationPrompt() *ProjectDocumentationPrompt {
	return &ProjectDocumentationPrompt{}
}

// Definition 返回提示词定义
func (p *ProjectDocumentationPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("project_documentation",
		mcp.WithPromptDescription("Generate comprehensive project documentation including PRD, overview, and README"),
		mcp.WithArgument("project_description",
			mcp.ArgumentDescription("Brief description of your project"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Name of your project"),
		),
	)
}

// Handle 处理提示词请求
func (p *ProjectDocumentationPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	projectDesc := req.Params.Arguments["project_description"]
	projectName := req.Params.Arguments["project_name"]
	if projectName == "" {
		projectName = "My Project"
	}

	text := fmt.Sprintf("Please generate comprehensive documentation for my project '%s'. "+
		"Here's the project description: %s\n\n"+
		"I need a complete set of documentation including:\n"+
		"1. Product Requirements Document (PRD)\n"+
		"2. Project Overview (What-is-this)\n"+
		"3. README.md file\n\n"+
		"Use the generate_documents tool to create all three document types.",
		projectName, projectDesc)

	return mcp.NewGetPromptResult(
		"Generate comprehensive project documentation",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}

// PRDTemplatePrompt 引导客户端调用 generate_prd 的提示词
type PRDTemplatePrompt struct{}

// NewPRDTemplatePrompt 创建 PRD 提示词
func NewPRDTemplatePrompt() *PRDTemplatePrompt {
	return &PRDTemplatePrompt{}
}

// Definition 返回提示词定义
func (p *PRDTemplatePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("prd_template",
		mcp.WithPromptDescription("Generate a Product Requirements Document template"),
		mcp.WithArgument("project_description",
			mcp.ArgumentDescription("Project requirements and description"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Name of your project"),
		),
	)
}

// Handle 处理提示词请求
func (p *PRDTemplatePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	projectDesc := req.Params.Arguments["project_description"]
	projectName := req.Params.Arguments["project_name"]
	if projectName == "" {
		projectName = "My Project"
	}

	text := fmt.Sprintf("Please generate a Product Requirements Document for '%s'. "+
		"Project description: %s\n\n"+
		"Use the generate_prd tool to create a comprehensive PRD.",
		projectName, projectDesc)

	return mcp.NewGetPromptResult(
		"Generate a Product Requirements Document",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}
