package model

// UserProfile 登录时服务端返回的用户快照，下次登录前不再刷新
type UserProfile struct {
	UserIdx  int64  `json:"userIdx"`
	UserName string `json:"userName"`
}
