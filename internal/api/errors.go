package api

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// Error 带有 HTTP 响应的请求错误
// 拿不到响应的传输层失败（断网、超时）不会产生 *Error
type Error struct {
	StatusCode int
	Detail     string
	Body       []byte
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api: %d", e.StatusCode)
}

// newError 从非 2xx 响应构造错误，detail 字段存在时顺带取出
func newError(resp *resty.Response) *Error {
	apiErr := &Error{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}

// AsError 从错误链中取出 *Error
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus 错误链中存在指定状态码的响应错误
func IsStatus(err error, code int) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.StatusCode == code
}

// IsTransport 没有任何响应的网络层失败
func IsTransport(err error) bool {
	if err == nil {
		return false
	}
	_, ok := AsError(err)
	return !ok
}
