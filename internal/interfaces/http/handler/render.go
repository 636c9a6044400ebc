// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"docugen-api/internal/application/render"
	"docugen-api/internal/interfaces/http/dto"
	apperrors "docugen-api/pkg/errors"
	"docugen-api/pkg/logger"
)

// RenderHandler Markdown 预览渲染处理器
type RenderHandler struct {
	renderer *render.Renderer
}

// NewRenderHandler 创建渲染处理器
func NewRenderHandler(renderer *render.Renderer) *RenderHandler {
	return &RenderHandler{renderer: renderer}
}

// Render 渲染 Markdown 为 HTML 预览
// @Summary 渲染 Markdown 预览
// @Tags Generation
// @Accept json
// @Produce json
// @Param body body dto.RenderRequest true "渲染请求"
// @Success 200 {object} dto.Response[dto.RenderResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/render [post]
func (h *RenderHandler) Render(c *gin.Context) {
	var req dto.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	html, err := h.renderer.ToHTML(req.Markdown)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to render markdown", err)
		appErr := apperrors.Wrap(err, apperrors.CodeRenderFailed, "failed to render markdown")
		dto.ErrorWithDetail(c, appErr.HTTPStatus, appErr.Message, &dto.ErrorDetail{
			ErrorCode: string(appErr.Code),
		})
		return
	}

	dto.Success(c, dto.RenderResponse{HTML: html})
}
