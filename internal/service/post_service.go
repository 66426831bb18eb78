package service

import (
	"Crudboard/internal/api"
	"Crudboard/internal/api/dto"
	"Crudboard/internal/model"
	"Crudboard/internal/pkg/fetch"
	"Crudboard/internal/pkg/util"
	"Crudboard/internal/session"
	"context"
	"fmt"
	log "log/slog"
	"strconv"

	"github.com/jinzhu/copier"
)

// PostPage 帖子列表的一页
type PostPage struct {
	Posts      []model.Post
	TotalPages int
}

// PostDetail 帖子详情和它的附件
// 附件拉取失败不影响帖子展示，Attachments 此时为空
type PostDetail struct {
	Post        model.Post
	Attachments []model.Attachment
}

type PostService interface {
	List(ctx context.Context, page, limit int) (*PostPage, error)
	// Get 详情读取在服务端自增浏览量，同一篇帖子在本实例内只真正请求一次
	Get(ctx context.Context, id int64) (*PostDetail, error)
	IsAuthor(post *model.Post) (bool, error)
	Create(ctx context.Context, d *dto.WritePostDTO, image *dto.UploadFile) error
	Update(ctx context.Context, id int64, d *dto.WritePostDTO, image *dto.UploadFile) error
	Delete(ctx context.Context, id int64) error
}

type PostServiceImpl struct {
	client *api.Client
	sess   *session.Store
	dedupe *fetch.Deduper
}

func NewPostService(client *api.Client, sess *session.Store) PostService {
	return &PostServiceImpl{
		client: client,
		sess:   sess,
		dedupe: fetch.NewDeduper(),
	}
}

func postKey(id int64) string {
	return "posts/" + strconv.FormatInt(id, 10)
}

// List 把 page/limit 也发给服务端，但当前后端会返回完整集合，
// 分页仍以本地切片为准（决策记录见 DESIGN.md）
func (s *PostServiceImpl) List(ctx context.Context, page, limit int) (*PostPage, error) {
	resp, err := s.client.R(ctx).
		SetQueryParams(map[string]string{
			"page":  strconv.Itoa(page),
			"limit": strconv.Itoa(limit),
		}).
		Get("/posts")
	if err != nil {
		return nil, classify(err, ErrPostLoadFailed)
	}

	var postDTOs []dto.PostDTO
	if err := api.DecodeData(resp, &postDTOs); err != nil {
		return nil, err
	}

	var posts []model.Post
	if err := copier.Copy(&posts, &postDTOs); err != nil {
		return nil, err
	}

	pagePosts, totalPages := util.Paginate(posts, page, limit)
	return &PostPage{Posts: pagePosts, TotalPages: totalPages}, nil
}

func (s *PostServiceImpl) Get(ctx context.Context, id int64) (*PostDetail, error) {
	v, err := s.dedupe.Do(postKey(id), func() (any, error) {
		return s.fetchDetail(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*PostDetail), nil
}

func (s *PostServiceImpl) fetchDetail(ctx context.Context, id int64) (*PostDetail, error) {
	resp, err := s.client.R(ctx).Get(fmt.Sprintf("/posts/%d", id))
	if err != nil {
		return nil, classify(err, ErrPostLoadFailed)
	}

	var detailDTO dto.PostDetailDTO
	if err := api.DecodeData(resp, &detailDTO); err != nil {
		return nil, err
	}

	post := model.Post{}
	if err := copier.Copy(&post, &detailDTO); err != nil {
		return nil, err
	}
	post.ID = id
	post.AuthorName = detailDTO.Users.UserName

	detail := &PostDetail{Post: post}

	// 附件拉不到也照样出帖子
	files, err := s.fetchAttachments(ctx, id)
	if err != nil {
		log.WarnContext(ctx, "failed to load attachments", "postId", id, "err", err)
	} else {
		detail.Attachments = files
	}

	return detail, nil
}

func (s *PostServiceImpl) fetchAttachments(ctx context.Context, id int64) ([]model.Attachment, error) {
	resp, err := s.client.R(ctx).Get(fmt.Sprintf("/posts/%d/files", id))
	if err != nil {
		return nil, err
	}

	var fileDTOs []dto.AttachmentDTO
	if err := api.DecodeData(resp, &fileDTOs); err != nil {
		return nil, err
	}

	var files []model.Attachment
	if err := copier.Copy(&files, &fileDTOs); err != nil {
		return nil, err
	}
	return files, nil
}

// IsAuthor 当前会话用户是否是帖子作者
func (s *PostServiceImpl) IsAuthor(post *model.Post) (bool, error) {
	user, err := s.sess.CurrentUser()
	if err != nil || user == nil {
		return false, err
	}
	return user.UserIdx == post.AuthorID, nil
}

func (s *PostServiceImpl) Create(ctx context.Context, d *dto.WritePostDTO, image *dto.UploadFile) error {
	if err := util.ValidateDTO(d); err != nil {
		return err
	}

	req := s.client.R(ctx)
	if image != nil {
		req.SetFormData(map[string]string{
			"title":   d.Title,
			"content": d.Content,
			"status":  d.Status,
		}).SetFileReader("image", image.FileName, image.Reader)
	} else {
		req.SetBody(d)
	}

	if _, err := req.Post("/write"); err != nil {
		return classify(err, ErrPostWriteFailed)
	}
	return nil
}

func (s *PostServiceImpl) Update(ctx context.Context, id int64, d *dto.WritePostDTO, image *dto.UploadFile) error {
	if err := util.ValidateDTO(d); err != nil {
		return err
	}

	req := s.client.R(ctx)
	if image != nil {
		req.SetFormData(map[string]string{
			"title":   d.Title,
			"content": d.Content,
			"status":  d.Status,
		}).SetFileReader("image", image.FileName, image.Reader)
	} else {
		req.SetBody(d)
	}

	if _, err := req.Put(fmt.Sprintf("/posts/%d", id)); err != nil {
		return classify(err, ErrPostWriteFailed)
	}

	// 内容变了，缓存的详情作废
	s.dedupe.Forget(postKey(id))
	return nil
}

func (s *PostServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.client.R(ctx).Delete(fmt.Sprintf("/posts/%d", id)); err != nil {
		return classify(err, ErrPostDeleteFailed)
	}

	s.dedupe.Forget(postKey(id))
	return nil
}

// classify 传输层失败统一成网络错误，响应错误归到各功能的固定文案
func classify(err error, fallback error) error {
	if err == nil {
		return nil
	}
	if api.IsTransport(err) {
		return ErrNetwork
	}
	return fallback
}
