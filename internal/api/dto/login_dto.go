package dto

// LoginRequest 提交给 /login 的请求体
type LoginRequest struct {
	UserID     string `json:"userId" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse /login 的响应，不走 {data} 信封
type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	RememberMe  bool    `json:"remember_me"`
	User        UserDTO `json:"user"`
}

// UserDTO 登录响应里的用户信息
type UserDTO struct {
	UserIdx  int64  `json:"userIdx"`
	UserName string `json:"userName"`
}
