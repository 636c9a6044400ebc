package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"docugen-api/internal/application/render"
	"docugen-api/internal/interfaces/http/dto"
)

// 测试 Markdown 预览渲染接口
func TestRender(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewRenderHandler(render.NewRenderer())
	engine := gin.New()
	engine.POST("/api/v1/render", h.Render)

	w := postJSON(engine, "/api/v1/render", `{"markdown":"# Hello"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp dto.Response[dto.RenderResponse]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if !strings.Contains(resp.Data.HTML, "<h1>Hello</h1>") {
		t.Errorf("html = %q", resp.Data.HTML)
	}
}

// 缺失 markdown 字段返回 400
func TestRenderValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewRenderHandler(render.NewRenderer())
	engine := gin.New()
	engine.POST("/api/v1/render", h.Render)

	w := postJSON(engine, "/api/v1/render", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
