package session

import (
	"Crudboard/internal/model"
	"Crudboard/internal/pkg/localstore"
	"fmt"

	"github.com/goccy/go-json"
)

const (
	TokenKey      = "access_token"
	UserKey       = "user_info"
	RememberMeKey = "remember_me"
)

// Store 会话存储，统一持有 token、用户快照和自动登录偏好
// 三个槽位的写入走同一个事务，不存在写一半的中间态
type Store struct {
	kv *localstore.Store
}

func NewStore(kv *localstore.Store) *Store {
	return &Store{kv: kv}
}

// SetSession 登录成功后一次性写入全部会话状态
func (s *Store) SetSession(token string, user *model.UserProfile, rememberMe bool) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}

	return s.kv.SetAll(map[string]string{
		TokenKey:      token,
		UserKey:       string(userJSON),
		RememberMeKey: fmt.Sprintf("%t", rememberMe),
	})
}

// ClearSession 清空全部会话状态，对已空的存储同样成立
func (s *Store) ClearSession() error {
	return s.kv.DeleteAll(TokenKey, UserKey, RememberMeKey)
}

// Logout 登出即清会话
func (s *Store) Logout() error {
	return s.ClearSession()
}

// Token 当前访问令牌，未登录时为空串
func (s *Store) Token() (string, error) {
	token, ok, err := s.kv.Get(TokenKey)
	if err != nil || !ok {
		return "", err
	}
	return token, nil
}

// User 缓存的用户快照，未登录时为 nil
func (s *Store) User() (*model.UserProfile, error) {
	raw, ok, err := s.kv.Get(UserKey)
	if err != nil || !ok {
		return nil, err
	}

	var user model.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to decode user profile: %w", err)
	}
	return &user, nil
}

// RememberMe 自动登录偏好，独立于登录状态存在
func (s *Store) RememberMe() (bool, error) {
	raw, ok, err := s.kv.Get(RememberMeKey)
	if err != nil || !ok {
		return false, err
	}
	return raw == "true", nil
}

// IsAuthenticated 有 token 即视为已登录
// token 能解析出 exp 且已过期时按未登录处理，等不到第一个 401
func (s *Store) IsAuthenticated() (bool, error) {
	token, err := s.Token()
	if err != nil || token == "" {
		return false, err
	}

	if claims, err := ParseClaims(token); err == nil && claims.Expired() {
		return false, nil
	}
	return true, nil
}

// CurrentUser 已登录时返回用户快照，其余情况返回 nil
func (s *Store) CurrentUser() (*model.UserProfile, error) {
	ok, err := s.IsAuthenticated()
	if err != nil || !ok {
		return nil, err
	}
	return s.User()
}
