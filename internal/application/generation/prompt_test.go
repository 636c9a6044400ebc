package generation

import (
	"strings"
	"testing"

	"docugen-api/internal/domain/model"
)

// 测试每种文档类型的采样参数策略
func TestGenerationPolicy(t *testing.T) {
	cases := []struct {
		docType     model.DocumentType
		maxTokens   int
		temperature float64
	}{
		{model.DocumentTypePRD, 3000, 0.3},
		{model.DocumentTypeWhatIsThis, 2500, 0.7},
		{model.DocumentTypeReadme, 2000, 0.5},
		{model.DocumentType("unknown"), 2048, 0.7},
	}

	for _, tc := range cases {
		if got := MaxTokensFor(tc.docType); got != tc.maxTokens {
			t.Errorf("MaxTokensFor(%q) = %d, want %d", tc.docType, got, tc.maxTokens)
		}
		if got := TemperatureFor(tc.docType); got != tc.temperature {
			t.Errorf("TemperatureFor(%q) = %v, want %v", tc.docType, got, tc.temperature)
		}
	}
}

// 测试提示词构造为纯函数
func TestBuildPromptDeterministic(t *testing.T) {
	for _, docType := range model.AllDocumentTypes() {
		first := BuildPrompt("a web crawler", docType, "Crawler")
		second := BuildPrompt("a web crawler", docType, "Crawler")
		if first != second {
			t.Errorf("BuildPrompt(%q) is not deterministic", docType)
		}
	}
}

// 测试各类型提示词包含输入描述与章节骨架
func TestBuildPromptSections(t *testing.T) {
	input := "a CLI tool that syncs dotfiles"

	prd := BuildPrompt(input, model.DocumentTypePRD, "")
	for _, section := range []string{"Overview", "Goals & Objectives", "Functional Requirements", "Risks & Mitigation", "PRD:"} {
		if !strings.Contains(prd, section) {
			t.Errorf("prd prompt missing %q", section)
		}
	}
	if !strings.Contains(prd, input) {
		t.Error("prd prompt missing input text")
	}

	overview := BuildPrompt(input, model.DocumentTypeWhatIsThis, "")
	for _, section := range []string{"Vision", "Core Value", "Key Features", "Target Users", "What is this:"} {
		if !strings.Contains(overview, section) {
			t.Errorf("overview prompt missing %q", section)
		}
	}

	readme := BuildPrompt(input, model.DocumentTypeReadme, "")
	for _, section := range []string{"Features", "Installation instructions", "Usage examples", "README:"} {
		if !strings.Contains(readme, section) {
			t.Errorf("readme prompt missing %q", section)
		}
	}
}

// 测试项目名只出现在上下文短语中
func TestBuildPromptProjectName(t *testing.T) {
	input := "desc"

	prd := BuildPrompt(input, model.DocumentTypePRD, "Atlas")
	if !strings.Contains(prd, "for project 'Atlas'") {
		t.Error("prd prompt missing project context phrase")
	}

	overview := BuildPrompt(input, model.DocumentTypeWhatIsThis, "Atlas")
	if !strings.Contains(overview, "called 'Atlas'") {
		t.Error("overview prompt missing project context phrase")
	}

	readme := BuildPrompt(input, model.DocumentTypeReadme, "Atlas")
	if !strings.Contains(readme, "# Atlas\n\n") {
		t.Error("readme prompt missing project heading")
	}

	// 无项目名时不应留下空短语标记
	noName := BuildPrompt(input, model.DocumentTypePRD, "")
	if strings.Contains(noName, "''") {
		t.Error("prd prompt contains empty project name quotes")
	}
}

// 未映射的类型按 PRD 模板处理
func TestBuildPromptUnknownTypeFallsBack(t *testing.T) {
	got := BuildPrompt("desc", model.DocumentType("mystery"), "")
	want := BuildPrompt("desc", model.DocumentTypePRD, "")
	if got != want {
		t.Error("unknown document type should use the prd template")
	}
}
