// Package generation 提供文档生成编排能力
package generation

import (
	"fmt"

	"docugen-api/internal/domain/model"
)

// 每种文档类型的采样参数为固定策略，与请求内容无关
const (
	defaultMaxTokens   = 2048
	defaultTemperature = 0.7
)

// MaxTokensFor 返回文档类型对应的最大生成长度
func MaxTokensFor(docType model.DocumentType) int {
	switch docType {
	case model.DocumentTypePRD:
		return 3000
	case model.DocumentTypeWhatIsThis:
		return 2500
	case model.DocumentTypeReadme:
		return 2000
	default:
		return defaultMaxTokens
	}
}

// TemperatureFor 返回文档类型对应的采样温度
// PRD 偏确定，概览偏发散，README 居中
func TemperatureFor(docType model.DocumentType) float64 {
	switch docType {
	case model.DocumentTypePRD:
		return 0.3
	case model.DocumentTypeWhatIsThis:
		return 0.7
	case model.DocumentTypeReadme:
		return 0.5
	default:
		return defaultTemperature
	}
}

// BuildPrompt 构造指定文档类型的完整提示词
// 纯函数：相同输入恒产生相同输出，项目名只影响开头的上下文短语
func BuildPrompt(inputText string, docType model.DocumentType, projectName string) string {
	switch docType {
	case model.DocumentTypeWhatIsThis:
		return buildWhatIsThisPrompt(inputText, projectName)
	case model.DocumentTypeReadme:
		return buildReadmePrompt(inputText, projectName)
	default:
		return buildPRDPrompt(inputText, projectName)
	}
}

func buildPRDPrompt(inputText, projectName string) string {
	projectContext := ""
	if projectName != "" {
		projectContext = fmt.Sprintf("for project '%s'", projectName)
	}

	return fmt.Sprintf(`You are a senior product manager. Create a comprehensive Product Requirements Document (PRD) %s based on the following description.

Project Description:
%s

Create a well-structured PRD with the following sections:
1. Overview
2. Goals & Objectives
3. System Context
4. Functional Requirements
5. Non-Functional Requirements
6. Deployment
7. Extensibility
8. Risks & Mitigation

Use clear, professional language and include specific technical details where appropriate. Format the output as Markdown.

PRD:`, projectContext, inputText)
}

func buildWhatIsThisPrompt(inputText, projectName string) string {
	projectContext := ""
	if projectName != "" {
		projectContext = fmt.Sprintf("called '%s'", projectName)
	}

	return fmt.Sprintf(`You are a technical writer. Create an engaging "What is this" overview document %s based on the following description.

Project Description:
%s

Create a compelling overview with the following sections:
1. Vision (what this project aims to achieve)
2. Core Value (why it matters, what problems it solves)
3. Key Features (main capabilities)
4. Target Users (who will use this)
5. Tech Snapshot (high-level technical overview)
6. Roadmap (future plans)
7. Success Metrics

Use an engaging, accessible tone while maintaining technical accuracy. Format the output as Markdown.

What is this:`, projectContext, inputText)
}

func buildReadmePrompt(inputText, projectName string) string {
	projectContext := ""
	if projectName != "" {
		projectContext = fmt.Sprintf("# %s\n\n", projectName)
	}

	return fmt.Sprintf(`You are a developer writing documentation. Create a comprehensive README.md %sbased on the following description.

Project Description:
%s

Create a helpful README with the following sections:
1. Project title and brief description
2. Features
3. Installation instructions
4. Usage examples
5. API documentation (if applicable)
6. Configuration
7. Development setup
8. Contributing guidelines
9. License

Use clear, developer-friendly language with practical examples. Format the output as Markdown.

README:`, projectContext, inputText)
}
