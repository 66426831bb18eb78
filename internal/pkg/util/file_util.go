package util

import (
	"Crudboard/internal/model"
	"fmt"
)

// PartitionAttachments 按服务端给的 file_type 把附件拆成图片和文档两组
// 不做扩展名或 MIME 推断，保持原有顺序
func PartitionAttachments(files []model.Attachment) (images, documents []model.Attachment) {
	for _, f := range files {
		switch f.FileType {
		case model.FileTypeImage:
			images = append(images, f)
		case model.FileTypeDocument:
			documents = append(documents, f)
		}
	}
	return images, documents
}

// FormatFileSize 文件大小的可读格式，与服务端 file_size_formatted 同一套规则
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
