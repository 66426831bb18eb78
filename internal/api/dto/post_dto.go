package dto

// PostDTO /posts 列表项
type PostDTO struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   int64  `json:"author_id"`
	AuthorName string `json:"author_name"`
	ViewCount  int64  `json:"view_count"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// PostDetailDTO /posts/{id} 详情，作者名嵌在 users 里
type PostDetailDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  int64  `json:"author_id"`
	ViewCount int64  `json:"view_count"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Users     struct {
		UserName string `json:"user_name"`
	} `json:"users"`
}
