package dto

// AttachmentDTO /posts/{id}/files 列表项
type AttachmentDTO struct {
	ID                int64  `json:"id"`
	FileName          string `json:"file_name"`
	FileURL           string `json:"file_url"`
	FileType          string `json:"file_type"`
	FileSizeFormatted string `json:"file_size_formatted"`
}
