package dto

// CommentDTO 评论，作者名嵌在 user 里，形态异常时由上层兜底
type CommentDTO struct {
	ID        int64           `json:"id"`
	Content   string          `json:"content"`
	AuthorID  int64           `json:"author_id"`
	CreatedAt string          `json:"created_at"`
	User      *CommentUserDTO `json:"user"`
}

// CommentUserDTO 评论作者信息
type CommentUserDTO struct {
	UserName string `json:"user_name"`
}

// CreateCommentRequest 提交给 /posts/{id}/comments 的请求体
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}
