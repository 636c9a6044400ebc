// Package main MCP 服务入口，通过 stdio 提供文档生成工具
package main

import (
	"context"
	"fmt"
	"os"

	"docugen-api/internal/application/generation"
	"docugen-api/internal/config"
	"docugen-api/internal/infrastructure/llm"
	mcpserver "docugen-api/internal/interfaces/mcp"
	"docugen-api/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

// Version 版本信息，构建时注入
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件（如果存在）
	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdio 模式下 stdout 承载 MCP 协议消息，日志写到 stderr
	logger.InitWithOutput(
		cfg.Observability.Logging.Level,
		cfg.Observability.Logging.Format,
		os.Stderr,
	)

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info("starting mcp-server",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
	)

	// 初始化文本生成客户端
	llmClient := llm.NewClient(&cfg.LMStudio)
	if err := llmClient.Initialize(ctx); err != nil {
		logger.Fatal(ctx, "failed to initialize llm client", err)
	}

	genService := generation.NewService(llmClient)

	s := mcpserver.NewServer(genService, Version)

	log.Info("mcp server listening on stdio")
	if err := server.ServeStdio(s); err != nil {
		logger.Fatal(ctx, "mcp server error", err)
	}
}
