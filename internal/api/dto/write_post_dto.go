package dto

import "io"

// WritePostDTO 发帖/改帖的正文字段，JSON 与 multipart 共用
type WritePostDTO struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=draft published"`
}

// UploadFile 随帖上传的代表图
type UploadFile struct {
	FileName string
	Reader   io.Reader
}
