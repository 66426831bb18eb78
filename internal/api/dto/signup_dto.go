package dto

// SignupForm 注册表单的客户端状态，含确认密码
type SignupForm struct {
	UserID          string `json:"userId" validate:"required,user_id"`
	Password        string `json:"password" validate:"required,max=20"`
	PasswordConfirm string `json:"-" validate:"eqfield=Password"`
	UserName        string `json:"userName" validate:"required,user_name"`
}

// SignupRequest 提交给 /signup 的请求体，只有三个字段
type SignupRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	UserName string `json:"userName"`
}
