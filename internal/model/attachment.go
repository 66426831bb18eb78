package model

const (
	FileTypeImage    = "image"
	FileTypeDocument = "document"
)

// Attachment 附件，file_type 由服务端预先分类
type Attachment struct {
	ID                int64
	FileName          string
	FileURL           string
	FileType          string
	FileSizeFormatted string
}
