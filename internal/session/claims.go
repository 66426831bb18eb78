package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims 服务端签进 access_token 的声明
// 客户端没有签名密钥，只做不验签的解析，用于提前发现过期会话
type TokenClaims struct {
	UserIdx  int64  `json:"user_idx"`
	UserName string `json:"user_name"`
	jwt.RegisteredClaims
}

// ParseClaims 解析 token 声明，token 不是 JWT 时返回错误
func ParseClaims(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Expired exp 存在且早于当前时间
func (c *TokenClaims) Expired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Before(time.Now())
}
