// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docugen-api/internal/interfaces/http/dto"
)

// ModelStatus 就绪检查所需的生成客户端状态视图
type ModelStatus interface {
	Loaded() bool
	ModelInfo() map[string]string
	MemoryUsage() map[string]any
}

// HealthHandler 健康检查处理器
type HealthHandler struct {
	llm     ModelStatus
	version string
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(llm ModelStatus, version string) *HealthHandler {
	return &HealthHandler{
		llm:     llm,
		version: version,
	}
}

// Live 存活检查接口
// @Summary 存活检查
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// Ready 就绪检查接口
// 生成客户端完成初始化前返回 503，但不报错
// @Summary 就绪检查
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	loaded := h.llm != nil && h.llm.Loaded()

	resp := dto.HealthResponse{
		ModelLoaded: loaded,
	}
	if loaded {
		resp.Status = "healthy"
		resp.Message = "service is running and model is loaded"
		resp.MemoryUsage = h.llm.MemoryUsage()
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Status = "model_not_loaded"
	resp.Message = "service is running but model is not loaded"
	c.JSON(http.StatusServiceUnavailable, resp)
}

// Snapshot 模型状态快照接口
// @Summary 模型状态快照
// @Description 返回模型加载标记、模型信息与资源占位描述
// @Tags System
// @Produce json
// @Success 200 {object} dto.MetricsSnapshotResponse
// @Router /api/v1/metrics [get]
func (h *HealthHandler) Snapshot(c *gin.Context) {
	loaded := 0
	if h.llm != nil && h.llm.Loaded() {
		loaded = 1
	}

	resp := dto.MetricsSnapshotResponse{
		ModelLoaded: loaded,
	}
	if h.llm != nil {
		resp.ModelInfo = h.llm.ModelInfo()
		resp.MemoryUsage = h.llm.MemoryUsage()
	}

	c.JSON(http.StatusOK, resp)
}
