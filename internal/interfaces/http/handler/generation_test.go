package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"docugen-api/internal/application/generation"
	"docugen-api/internal/config"
	"docugen-api/internal/interfaces/http/dto"
)

// stubGenerator 固定输出的文本生成客户端桩
type stubGenerator struct{}

func (s *stubGenerator) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	return "# Generated\n\ncontent", nil
}

func (s *stubGenerator) ModelName() string { return "stub-model" }

func (s *stubGenerator) ModelInfo() map[string]string {
	return map[string]string{"model_name": "stub-model"}
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Generation.MaxInputChars = 10000

	h := NewGenerationHandler(cfg, generation.NewService(&stubGenerator{}))

	engine := gin.New()
	engine.POST("/api/v1/generate", h.Generate)
	return engine
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// 测试成功生成返回统一响应结构
func TestGenerateSuccess(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(engine, "/api/v1/generate",
		`{"input_text":"a url shortener","document_types":["prd","readme"],"project_name":"Shorty"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp dto.Response[dto.GenerateResponse]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp.Code != 200 || resp.Message != "success" {
		t.Errorf("envelope = %d/%q", resp.Code, resp.Message)
	}
	if len(resp.Data.Documents) != 2 {
		t.Fatalf("got %d documents, want 2", len(resp.Data.Documents))
	}
	if resp.Data.Documents[0].DocumentType != "prd" || resp.Data.Documents[1].DocumentType != "readme" {
		t.Errorf("document order = %q, %q",
			resp.Data.Documents[0].DocumentType, resp.Data.Documents[1].DocumentType)
	}
	if resp.Data.ModelInfo["model_name"] != "stub-model" {
		t.Errorf("model_info = %v", resp.Data.ModelInfo)
	}
}

// 缺省 document_types 时生成全部三种文档
func TestGenerateDefaultTypes(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(engine, "/api/v1/generate", `{"input_text":"a url shortener"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp dto.Response[dto.GenerateResponse]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(resp.Data.Documents) != 3 {
		t.Errorf("got %d documents, want 3", len(resp.Data.Documents))
	}
}

// 多字节输入按字符数计长：4000 个汉字（12000 字节）不应超限
func TestGenerateMultibyteInput(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(engine, "/api/v1/generate",
		`{"input_text":"`+strings.Repeat("文", 4000)+`","document_types":["readme"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body = %s", w.Code, w.Body.String())
	}
}

// 测试入参校验失败返回 400
func TestGenerateValidation(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing input_text", `{}`},
		{"blank input_text", `{"input_text":"   "}`},
		{"unknown document type", `{"input_text":"desc","document_types":["spec"]}`},
		{"malformed json", `{"input_text":`},
		{"input too long", `{"input_text":"` + strings.Repeat("a", 10001) + `"}`},
		{"multibyte input too long", `{"input_text":"` + strings.Repeat("文", 10001) + `"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(engine, "/api/v1/generate", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body = %s", w.Code, w.Body.String())
			}
		})
	}
}
