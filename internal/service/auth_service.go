package service

import (
	"Crudboard/internal/api"
	"Crudboard/internal/api/dto"
	"Crudboard/internal/model"
	"Crudboard/internal/pkg/util"
	"Crudboard/internal/session"
	"context"
	"errors"
	log "log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
)

// FieldErrors 按表单字段归档的校验错误，非空时阻止提交
type FieldErrors map[string]string

// 注册表单的字段错误文案
var signupFieldMessages = map[string]string{
	"userId":          "아이디는 5-20자 영문 소문자/숫자만 가능합니다",
	"password":        "비밀번호는 최대 20자까지 가능합니다",
	"passwordConfirm": "비밀번호가 일치하지 않습니다",
	"userName":        "별명은 2-10자 한글/영문/숫자만 가능합니다",
}

// 结构体字段名到表单字段名的映射
var signupFieldKeys = map[string]string{
	"UserID":          "userId",
	"Password":        "password",
	"PasswordConfirm": "passwordConfirm",
	"UserName":        "userName",
}

type AuthService interface {
	// ValidateSignupField 增量校验：只重算被修改的字段，改密码时连带确认密码
	ValidateSignupField(form *dto.SignupForm, field string, errs FieldErrors)
	// ValidateSignup 提交前的整体校验
	ValidateSignup(form *dto.SignupForm) FieldErrors
	Signup(ctx context.Context, form *dto.SignupForm) (FieldErrors, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*model.UserProfile, error)
	Logout() error
	RememberMe() bool
}

type AuthServiceImpl struct {
	client *api.Client
	sess   *session.Store
}

func NewAuthService(client *api.Client, sess *session.Store) AuthService {
	return &AuthServiceImpl{
		client: client,
		sess:   sess,
	}
}

func (s *AuthServiceImpl) ValidateSignupField(form *dto.SignupForm, field string, errs FieldErrors) {
	switch field {
	case "userId":
		if !util.VarValid(form.UserID, "required,user_id") {
			errs["userId"] = signupFieldMessages["userId"]
		} else {
			delete(errs, "userId")
		}
	case "password":
		if !util.VarValid(form.Password, "required,max=20") {
			errs["password"] = signupFieldMessages["password"]
		} else {
			delete(errs, "password")
		}
		// 密码变了，已填过的确认密码要重新对一遍
		if form.PasswordConfirm != "" {
			s.ValidateSignupField(form, "passwordConfirm", errs)
		}
	case "passwordConfirm":
		if form.PasswordConfirm != form.Password {
			errs["passwordConfirm"] = signupFieldMessages["passwordConfirm"]
		} else {
			delete(errs, "passwordConfirm")
		}
	case "userName":
		if !util.VarValid(form.UserName, "required,user_name") {
			errs["userName"] = signupFieldMessages["userName"]
		} else {
			delete(errs, "userName")
		}
	}
}

func (s *AuthServiceImpl) ValidateSignup(form *dto.SignupForm) FieldErrors {
	errs := FieldErrors{}

	err := util.ValidateDTO(form)
	if err == nil {
		return errs
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		errs["userId"] = signupFieldMessages["userId"]
		return errs
	}

	for _, fe := range vErrs {
		key, ok := signupFieldKeys[fe.StructField()]
		if !ok {
			continue
		}
		if _, exists := errs[key]; !exists {
			errs[key] = signupFieldMessages[key]
		}
	}
	return errs
}

func (s *AuthServiceImpl) Signup(ctx context.Context, form *dto.SignupForm) (FieldErrors, error) {
	if errs := s.ValidateSignup(form); len(errs) > 0 {
		return errs, nil
	}

	req := &dto.SignupRequest{
		UserID:   form.UserID,
		Password: form.Password,
		UserName: form.UserName,
	}

	_, err := s.client.R(ctx).SetBody(req).Post("/signup")
	if err != nil {
		apiErr, ok := api.AsError(err)
		if !ok {
			return nil, ErrNetwork
		}
		switch apiErr.StatusCode {
		case 400:
			// 400 归到 userId 字段：重复的아이디
			detail := apiErr.Detail
			if detail == "" {
				detail = "이미 존재하는 아이디입니다"
			}
			return FieldErrors{"userId": detail}, nil
		case 500:
			return nil, ErrServerError
		default:
			if apiErr.Detail != "" {
				return nil, errors.New(apiErr.Detail)
			}
			return nil, ErrSignupFailed
		}
	}

	log.InfoContext(ctx, "signup succeeded", "userId", form.UserID)
	return nil, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*model.UserProfile, error) {
	resp, err := s.client.R(ctx).SetBody(req).Post("/login")
	if err != nil {
		apiErr, ok := api.AsError(err)
		if !ok {
			return nil, ErrNetwork
		}
		if apiErr.Detail != "" {
			return nil, errors.New(apiErr.Detail)
		}
		return nil, ErrLoginFailed
	}

	var loginResp dto.LoginResponse
	if err := api.DecodeBody(resp, &loginResp); err != nil {
		return nil, err
	}

	user := &model.UserProfile{}
	if err := copier.Copy(user, &loginResp.User); err != nil {
		return nil, err
	}

	if err := s.sess.SetSession(loginResp.AccessToken, user, req.RememberMe); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "login succeeded",
		"userIdx", user.UserIdx,
		"rememberMe", req.RememberMe)
	return user, nil
}

func (s *AuthServiceImpl) Logout() error {
	return s.sess.Logout()
}

// RememberMe 上次持久化的自动登录偏好，表单挂载时用来预填
func (s *AuthServiceImpl) RememberMe() bool {
	remember, err := s.sess.RememberMe()
	if err != nil {
		log.Warn("failed to read remember_me", "err", err)
		return false
	}
	return remember
}
