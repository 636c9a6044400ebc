// Package model 提供文档生成领域模型
package model

import (
	"fmt"
	"strings"
)

// DocumentType 支持的文档类型
type DocumentType string

const (
	// DocumentTypePRD 产品需求文档
	DocumentTypePRD DocumentType = "prd"
	// DocumentTypeWhatIsThis 项目概览文档
	DocumentTypeWhatIsThis DocumentType = "what_is_this"
	// DocumentTypeReadme README 文档
	DocumentTypeReadme DocumentType = "readme"
)

// AllDocumentTypes 返回全部文档类型，顺序固定
func AllDocumentTypes() []DocumentType {
	return []DocumentType{DocumentTypePRD, DocumentTypeWhatIsThis, DocumentTypeReadme}
}

// ParseDocumentType 解析文档类型字符串，未知类型返回错误
func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case DocumentTypePRD, DocumentTypeWhatIsThis, DocumentTypeReadme:
		return DocumentType(s), nil
	default:
		return "", fmt.Errorf("unknown document type: %q", s)
	}
}

// Valid 判断是否为已知文档类型
func (t DocumentType) Valid() bool {
	_, err := ParseDocumentType(string(t))
	return err == nil
}

// DisplayName 返回展示用名称，如 what_is_this -> "What Is This"
func (t DocumentType) DisplayName() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// GenerationRequest 文档生成请求
// 每次调用创建一份，不可变，不做持久化
type GenerationRequest struct {
	InputText         string
	DocumentTypes     []DocumentType
	ProjectName       string
	AdditionalContext map[string]any
}

// GeneratedDocument 单个生成结果
// 失败的生成同样占据一个槽位，通过 Metadata 中的 error 标记区分
type GeneratedDocument struct {
	DocumentType DocumentType   `json:"document_type"`
	Content      string         `json:"content"`
	Metadata     map[string]any `json:"metadata"`
}

// IsError 判断该文档是否为失败占位结果
func (d *GeneratedDocument) IsError() bool {
	flag, ok := d.Metadata["error"].(bool)
	return ok && flag
}

// GenerationResponse 批量生成响应
// Documents 与请求的类型列表等长且顺序一致
type GenerationResponse struct {
	Documents      []GeneratedDocument `json:"documents"`
	GenerationTime float64             `json:"generation_time"`
	ModelInfo      map[string]string   `json:"model_info"`
}
