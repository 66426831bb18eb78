package api

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// Envelope 服务端响应的 {data: ...} 包装
type Envelope struct {
	Data json.RawMessage `json:"data"`
}

// DecodeData 解出信封里的 data 字段
func DecodeData(resp *resty.Response, out any) error {
	var env Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("response envelope has no data field")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// DecodeBody 解整个响应体，用于不带信封的接口（如登录）
func DecodeBody(resp *resty.Response, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
