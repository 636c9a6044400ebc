// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"docugen-api/internal/application/generation"
	"docugen-api/internal/config"
	"docugen-api/internal/interfaces/http/dto"
	apperrors "docugen-api/pkg/errors"
	"docugen-api/pkg/logger"
)

// GenerationHandler 文档生成处理器
type GenerationHandler struct {
	cfg *config.Config
	svc *generation.Service
}

// NewGenerationHandler 创建文档生成处理器
func NewGenerationHandler(cfg *config.Config, svc *generation.Service) *GenerationHandler {
	return &GenerationHandler{
		cfg: cfg,
		svc: svc,
	}
}

// Generate 批量生成文档
// @Summary 批量生成文档
// @Description 根据项目描述并发生成 PRD / 概览 / README，单个失败以错误占位文档返回
// @Tags Generation
// @Accept json
// @Produce json
// @Param body body dto.GenerateRequest true "生成请求"
// @Success 200 {object} dto.Response[dto.GenerateResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/generate [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	genReq, err := req.ToModel(h.cfg.Generation.MaxInputChars)
	if err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	logger.Info(ctx, "received generation request",
		"document_types", genReq.DocumentTypes,
		"project_name", genReq.ProjectName,
		"input_length", len(genReq.InputText),
	)

	resp, err := h.svc.GenerateDocuments(ctx, genReq)
	if err != nil {
		logger.Error(ctx, "unexpected error during generation", err)
		appErr := apperrors.AsAppError(err)
		if appErr.Code == apperrors.CodeUnknown {
			appErr = apperrors.Wrap(err, apperrors.CodeGenerationFailed, "document generation failed")
		}
		dto.ErrorWithDetail(c, appErr.HTTPStatus, appErr.Message, &dto.ErrorDetail{
			ErrorCode: string(appErr.Code),
			Details:   appErr.Detail,
		})
		return
	}

	dto.Success(c, dto.NewGenerateResponse(resp))
}
