package render

import (
	"strings"
	"testing"
)

// 测试基本 Markdown 渲染
func TestToHTML(t *testing.T) {
	r := NewRenderer()

	html, err := r.ToHTML("# Title\n\nsome **bold** text")
	if err != nil {
		t.Fatalf("ToHTML returned error: %v", err)
	}
	if !strings.Contains(html, "<h1>Title</h1>") {
		t.Errorf("output missing h1: %q", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("output missing strong: %q", html)
	}
}

// 测试 GFM 表格扩展生效
func TestToHTMLTable(t *testing.T) {
	r := NewRenderer()

	html, err := r.ToHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("ToHTML returned error: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("gfm table not rendered: %q", html)
	}
}

// 空输入渲染为空片段
func TestToHTMLEmpty(t *testing.T) {
	r := NewRenderer()

	html, err := r.ToHTML("")
	if err != nil {
		t.Fatalf("ToHTML returned error: %v", err)
	}
	if strings.TrimSpace(html) != "" {
		t.Errorf("empty input produced %q", html)
	}
}
