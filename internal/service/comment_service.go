package service

import (
	"Crudboard/internal/api"
	"Crudboard/internal/api/dto"
	"Crudboard/internal/model"
	"Crudboard/internal/pkg/util"
	"Crudboard/internal/session"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"sync"
)

// CommentThread 一条帖子下的评论列表，与服务端保持同步
// 创建走乐观更新：先把新评论插到最前面，再整体重拉以服务端顺序为准
type CommentThread struct {
	client *api.Client
	sess   *session.Store
	postID int64

	mu       sync.Mutex
	comments []model.Comment
}

func NewCommentThread(client *api.Client, sess *session.Store, postID int64) *CommentThread {
	return &CommentThread{
		client: client,
		sess:   sess,
		postID: postID,
	}
}

// Refresh 拉取权威的完整列表
func (t *CommentThread) Refresh(ctx context.Context) error {
	resp, err := t.client.R(ctx).Get(fmt.Sprintf("/posts/%d/comments", t.postID))
	if err != nil {
		return classify(err, ErrCommentCreateFailed)
	}

	var commentDTOs []dto.CommentDTO
	if err := api.DecodeData(resp, &commentDTOs); err != nil {
		return err
	}

	comments := make([]model.Comment, 0, len(commentDTOs))
	for _, d := range commentDTOs {
		comments = append(comments, toComment(d))
	}

	t.mu.Lock()
	t.comments = comments
	t.mu.Unlock()
	return nil
}

// Comments 当前列表的拷贝
func (t *CommentThread) Comments() []model.Comment {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]model.Comment, len(t.comments))
	copy(out, t.comments)
	return out
}

// Count 评论数
func (t *CommentThread) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.comments)
}

// Create 发表评论。空白内容在本地就拦下，不发请求
func (t *CommentThread) Create(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrCommentEmpty
	}

	resp, err := t.client.R(ctx).
		SetBody(&dto.CreateCommentRequest{Content: content}).
		Post(fmt.Sprintf("/posts/%d/comments", t.postID))
	if err != nil {
		return classify(err, ErrCommentCreateFailed)
	}

	var created dto.CommentDTO
	if err := api.DecodeData(resp, &created); err != nil {
		return err
	}

	// 乐观插入只是掩盖延迟，随后的重拉才是事实来源
	t.mu.Lock()
	t.comments = append([]model.Comment{toComment(created)}, t.comments...)
	t.mu.Unlock()

	if err := t.Refresh(ctx); err != nil {
		log.WarnContext(ctx, "comment reconciliation fetch failed",
			"postId", t.postID, "err", err)
		return err
	}
	return nil
}

// Delete 删除评论，只有作者本人能走到真正的请求
func (t *CommentThread) Delete(ctx context.Context, commentID int64) error {
	t.mu.Lock()
	var target *model.Comment
	for i := range t.comments {
		if t.comments[i].ID == commentID {
			target = &t.comments[i]
			break
		}
	}
	t.mu.Unlock()

	if target == nil {
		return ErrCommentNotFound
	}

	ok, err := t.CanDelete(*target)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCommentNotOwned
	}

	if _, err := t.client.R(ctx).Delete(fmt.Sprintf("/comments/%d", commentID)); err != nil {
		return classify(err, ErrPostDeleteFailed)
	}

	t.mu.Lock()
	kept := t.comments[:0]
	for _, c := range t.comments {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	t.comments = kept
	t.mu.Unlock()
	return nil
}

// CanDelete 当前会话用户是否是这条评论的作者
func (t *CommentThread) CanDelete(c model.Comment) (bool, error) {
	user, err := t.sess.CurrentUser()
	if err != nil || user == nil {
		return false, err
	}
	return user.UserIdx == c.AuthorID, nil
}

// toComment 作者名优先取嵌套 user，形态异常时给兜底名
func toComment(d dto.CommentDTO) model.Comment {
	author := util.UnknownUserName
	if d.User != nil && d.User.UserName != "" {
		author = d.User.UserName
	}
	return model.Comment{
		ID:        d.ID,
		Content:   d.Content,
		AuthorID:  d.AuthorID,
		Author:    author,
		CreatedAt: d.CreatedAt,
	}
}
