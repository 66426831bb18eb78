package model

// Comment 评论，归属于一条帖子，顺序以服务端为准
type Comment struct {
	ID        int64
	Content   string
	AuthorID  int64
	Author    string
	CreatedAt string
}
