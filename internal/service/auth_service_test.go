package service

import (
	"Crudboard/internal/api/dto"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() *dto.SignupForm {
	return &dto.SignupForm{
		UserID:          "tester1",
		Password:        "pass123",
		PasswordConfirm: "pass123",
		UserName:        "홍길동",
	}
}

func TestValidateSignup(t *testing.T) {
	svc := &AuthServiceImpl{}

	tests := []struct {
		name      string
		mutate    func(*dto.SignupForm)
		wantField string
	}{
		{"valid form", func(f *dto.SignupForm) {}, ""},
		{"userId too short", func(f *dto.SignupForm) { f.UserID = "abc1" }, "userId"},
		{"userId uppercase", func(f *dto.SignupForm) { f.UserID = "Tester1" }, "userId"},
		{"userId with symbol", func(f *dto.SignupForm) { f.UserID = "tester_1" }, "userId"},
		{"userId too long", func(f *dto.SignupForm) { f.UserID = "abcdefghijklmnopqrstu" }, "userId"},
		{"password empty", func(f *dto.SignupForm) { f.Password = ""; f.PasswordConfirm = "" }, "password"},
		{"password too long", func(f *dto.SignupForm) {
			f.Password = "aaaaaaaaaaaaaaaaaaaaa"
			f.PasswordConfirm = f.Password
		}, "password"},
		{"password mismatch", func(f *dto.SignupForm) { f.PasswordConfirm = "other" }, "passwordConfirm"},
		{"userName too short", func(f *dto.SignupForm) { f.UserName = "홍" }, "userName"},
		{"userName with space", func(f *dto.SignupForm) { f.UserName = "홍 길동" }, "userName"},
		{"userName too long", func(f *dto.SignupForm) { f.UserName = "가나다라마바사아자차카" }, "userName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)

			errs := svc.ValidateSignup(form)
			if tt.wantField == "" {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, tt.wantField)
				assert.Equal(t, signupFieldMessages[tt.wantField], errs[tt.wantField])
			}
		})
	}
}

func TestValidateSignupField_Incremental(t *testing.T) {
	svc := &AuthServiceImpl{}
	form := validForm()
	errs := FieldErrors{}

	form.UserID = "ab"
	svc.ValidateSignupField(form, "userId", errs)
	assert.Contains(t, errs, "userId")

	form.UserID = "tester1"
	svc.ValidateSignupField(form, "userId", errs)
	assert.NotContains(t, errs, "userId")

	// 改密码要连带重新校验确认密码
	form.Password = "changed"
	svc.ValidateSignupField(form, "password", errs)
	assert.Contains(t, errs, "passwordConfirm")

	form.PasswordConfirm = "changed"
	svc.ValidateSignupField(form, "passwordConfirm", errs)
	assert.Empty(t, errs)
}

func TestSignup_Success(t *testing.T) {
	var calls atomic.Int32
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/signup", r.URL.Path)
		calls.Add(1)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"userId":"tester1","userName":"홍길동"}`))
	}))
	defer srv.Close()

	client, sess := newTestEnv(t, srv.URL)
	svc := NewAuthService(client, sess)

	fieldErrs, err := svc.Signup(context.Background(), validForm())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, int32(1), calls.Load())

	// 请求体只有三个字段
	assert.Len(t, gotBody, 3)
	assert.Equal(t, "tester1", gotBody["userId"])
	assert.Equal(t, "pass123", gotBody["password"])
	assert.Equal(t, "홍길동", gotBody["userName"])
}

func TestSignup_BlockedByValidation(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client, sess := newTestEnv(t, srv.URL)
	svc := NewAuthService(client, sess)

	form := validForm()
	form.UserID = "NoGood"

	fieldErrs, err := svc.Signup(context.Background(), form)
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "userId")
	assert.Equal(t, int32(0), calls.Load(), "invalid form must not reach the server")
}

func TestSignup_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantField  string
		wantErr    error
		wantErrMsg string
	}{
		{"400 duplicate id", http.StatusBadRequest, `{"detail":"이미 존재하는 아이디입니다"}`, "userId", nil, ""},
		{"400 without detail", http.StatusBadRequest, `{}`, "userId", nil, ""},
		{"500 server error", http.StatusInternalServerError, `{}`, "", ErrServerError, ""},
		{"other status with detail", http.StatusForbidden, `{"detail":"뭔가 잘못되었습니다"}`, "", nil, "뭔가 잘못되었습니다"},
		{"other status without detail", http.StatusConflict, `{}`, "", ErrSignupFailed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, sess := newTestEnv(t, srv.URL)
			svc := NewAuthService(client, sess)

			fieldErrs, err := svc.Signup(context.Background(), validForm())
			if tt.wantField != "" {
				require.NoError(t, err)
				assert.Contains(t, fieldErrs, tt.wantField)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
			}
		})
	}
}

func TestSignup_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, sess := newTestEnv(t, srv.URL)
	svc := NewAuthService(client, sess)

	_, err := svc.Signup(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tester1", body["userId"])
		assert.Equal(t, true, body["rememberMe"])

		w.Write([]byte(`{"access_token":"T","token_type":"bearer","user":{"userIdx":1,"userName":"a"}}`))
	}))
	defer srv.Close()

	client, sess := newTestEnv(t, srv.URL)
	svc := NewAuthService(client, sess)

	user, err := svc.Login(context.Background(), &dto.LoginRequest{
		UserID:     "tester1",
		Password:   "pass123",
		RememberMe: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserIdx)

	ok, err := sess.IsAuthenticated()
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := sess.User()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.UserIdx)

	remember, err := sess.RememberMe()
	require.NoError(t, err)
	assert.True(t, remember)
	assert.True(t, svc.RememberMe())
}

func TestLogin_Failure(t *testing.T) {
	t.Run("response with detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"아이디 또는 비밀번호가 일치하지 않습니다."}`))
		}))
		defer srv.Close()

		client, sess := newTestEnv(t, srv.URL)
		svc := NewAuthService(client, sess)

		_, err := svc.Login(context.Background(), &dto.LoginRequest{UserID: "x", Password: "y"})
		assert.EqualError(t, err, "아이디 또는 비밀번호가 일치하지 않습니다.")
	})

	t.Run("response without detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client, sess := newTestEnv(t, srv.URL)
		svc := NewAuthService(client, sess)

		_, err := svc.Login(context.Background(), &dto.LoginRequest{UserID: "x", Password: "y"})
		assert.ErrorIs(t, err, ErrLoginFailed)
	})

	t.Run("transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client, sess := newTestEnv(t, srv.URL)
		svc := NewAuthService(client, sess)

		_, err := svc.Login(context.Background(), &dto.LoginRequest{UserID: "x", Password: "y"})
		assert.ErrorIs(t, err, ErrNetwork)
	})
}

func TestLogout(t *testing.T) {
	client, sess := newTestEnv(t, "http://localhost:0")
	svc := NewAuthService(client, sess)

	loginAs(t, sess, 1, "a")
	require.NoError(t, svc.Logout())

	ok, err := sess.IsAuthenticated()
	require.NoError(t, err)
	assert.False(t, ok)

	// 已空的会话再登出也不报错
	assert.NoError(t, svc.Logout())
}
