package model

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// Post 帖子。view_count 由服务端在详情读取时自增，客户端不直接修改
type Post struct {
	ID         int64
	Title      string
	Content    string
	AuthorID   int64
	AuthorName string
	ViewCount  int64
	Status     string
	CreatedAt  string
	UpdatedAt  string
}
