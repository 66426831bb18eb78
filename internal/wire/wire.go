package wire

import (
	"Crudboard/internal/api"
	"Crudboard/internal/config"
	"Crudboard/internal/pkg/localstore"
	"Crudboard/internal/service"
	"Crudboard/internal/session"
)

// ApplicationContainer 封装了客户端运行所需的所有顶级组件
type ApplicationContainer struct {
	Store   *localstore.Store
	Session *session.Store
	Client  *api.Client
	Auth    service.AuthService
	Posts   service.PostService
}

func BuildApplication(cfg *config.Config) (*ApplicationContainer, error) {
	kv, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		return nil, err
	}

	sess := session.NewStore(kv)
	client := api.NewClient(cfg, sess)

	return &ApplicationContainer{
		Store:   kv,
		Session: sess,
		Client:  client,
		Auth:    service.NewAuthService(client, sess),
		Posts:   service.NewPostService(client, sess),
	}, nil
}

// CommentThread 某条帖子的评论线程
func (c *ApplicationContainer) CommentThread(postID int64) *service.CommentThread {
	return service.NewCommentThread(c.Client, c.Session, postID)
}

func (c *ApplicationContainer) Close() error {
	return c.Store.Close()
}
