package config

import (
	"testing"
)

// 测试 ${VAR:default} 占位符替换
func TestExpandEnv(t *testing.T) {
	t.Setenv("DOCUGEN_TEST_PORT", "9000")

	cases := []struct {
		in   string
		want string
	}{
		{"port: ${DOCUGEN_TEST_PORT:8000}", "port: 9000"},
		{"port: ${DOCUGEN_TEST_MISSING:8000}", "port: 8000"},
		{"host: ${DOCUGEN_TEST_MISSING_NO_DEFAULT}", "host: ${DOCUGEN_TEST_MISSING_NO_DEFAULT}"},
		{"plain value", "plain value"},
		{"url: ${DOCUGEN_TEST_URL:http://localhost:1234}", "url: http://localhost:1234"},
	}

	for _, tc := range cases {
		if got := expandEnv(tc.in); got != tc.want {
			t.Errorf("expandEnv(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// 测试无配置文件时默认值生效，MustLoad 在正常路径下不 panic
func TestLoadDefaults(t *testing.T) {
	cfg := MustLoad()

	if cfg.Server.HTTP.Port != 8000 {
		t.Errorf("port = %d, want 8000", cfg.Server.HTTP.Port)
	}
	if cfg.LMStudio.BaseURL != "http://localhost:1234" {
		t.Errorf("base_url = %q", cfg.LMStudio.BaseURL)
	}
	if cfg.LMStudio.Model != "local-model" {
		t.Errorf("model = %q", cfg.LMStudio.Model)
	}
	if cfg.Generation.MaxInputChars != 10000 {
		t.Errorf("max_input_chars = %d, want 10000", cfg.Generation.MaxInputChars)
	}
	if cfg.Observability.Metrics.Path != "/metrics" {
		t.Errorf("metrics path = %q", cfg.Observability.Metrics.Path)
	}
}
