// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"docugen-api/internal/domain/model"
)

// GenerateRequest 文档生成请求体
type GenerateRequest struct {
	InputText         string         `json:"input_text" binding:"required"`
	DocumentTypes     []string       `json:"document_types"`
	ProjectName       string         `json:"project_name"`
	AdditionalContext map[string]any `json:"additional_context"`
}

// ToModel 校验请求并转换为领域模型
// document_types 缺省时生成全部三种文档；未知类型视为校验错误
func (r *GenerateRequest) ToModel(maxInputChars int) (*model.GenerationRequest, error) {
	if strings.TrimSpace(r.InputText) == "" {
		return nil, fmt.Errorf("input_text cannot be empty")
	}
	// 长度上限按字符（rune）计，多字节输入不受字节数影响
	if maxInputChars > 0 && utf8.RuneCountInString(r.InputText) > maxInputChars {
		return nil, fmt.Errorf("input_text too long (max %d characters)", maxInputChars)
	}

	var docTypes []model.DocumentType
	if len(r.DocumentTypes) == 0 {
		docTypes = model.AllDocumentTypes()
	} else {
		docTypes = make([]model.DocumentType, 0, len(r.DocumentTypes))
		for _, s := range r.DocumentTypes {
			dt, err := model.ParseDocumentType(s)
			if err != nil {
				return nil, err
			}
			docTypes = append(docTypes, dt)
		}
	}

	return &model.GenerationRequest{
		InputText:         r.InputText,
		DocumentTypes:     docTypes,
		ProjectName:       r.ProjectName,
		AdditionalContext: r.AdditionalContext,
	}, nil
}

// GeneratedDocumentResponse 单个生成结果
type GeneratedDocumentResponse struct {
	DocumentType string         `json:"document_type"`
	Content      string         `json:"content"`
	Metadata     map[string]any `json:"metadata"`
}

// GenerateResponse 批量生成响应体
type GenerateResponse struct {
	Documents      []GeneratedDocumentResponse `json:"documents"`
	GenerationTime float64                     `json:"generation_time"`
	ModelInfo      map[string]string           `json:"model_info"`
}

// NewGenerateResponse 从领域模型构造响应体
func NewGenerateResponse(resp *model.GenerationResponse) GenerateResponse {
	docs := make([]GeneratedDocumentResponse, 0, len(resp.Documents))
	for _, d := range resp.Documents {
		docs = append(docs, GeneratedDocumentResponse{
			DocumentType: string(d.DocumentType),
			Content:      d.Content,
			Metadata:     d.Metadata,
		})
	}
	return GenerateResponse{
		Documents:      docs,
		GenerationTime: resp.GenerationTime,
		ModelInfo:      resp.ModelInfo,
	}
}

// RenderRequest Markdown 渲染请求体
type RenderRequest struct {
	Markdown string `json:"markdown" binding:"required"`
}

// RenderResponse Markdown 渲染响应体
type RenderResponse struct {
	HTML string `json:"html"`
}

// HealthResponse 就绪检查响应体
type HealthResponse struct {
	Status      string         `json:"status"`
	Message     string         `json:"message"`
	ModelLoaded bool           `json:"model_loaded"`
	MemoryUsage map[string]any `json:"memory_usage,omitempty"`
}

// MetricsSnapshotResponse 模型状态快照响应体
type MetricsSnapshotResponse struct {
	ModelLoaded int               `json:"model_loaded"`
	ModelInfo   map[string]string `json:"model_info"`
	MemoryUsage map[string]any    `json:"memory_usage"`
}
