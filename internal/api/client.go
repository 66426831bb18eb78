package api

import (
	"Crudboard/internal/config"
	"Crudboard/internal/pkg/logger"
	"Crudboard/internal/session"
	"context"
	log "log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Client 后端 REST 接口的唯一出口
// 固定 base URL、10 秒超时、零重试，发出前统一注入 Bearer token
type Client struct {
	http *resty.Client
}

func NewClient(cfg *config.Config, sess *session.Store) *Client {
	c := resty.New().
		SetBaseURL(cfg.Server.BaseURL).
		SetTimeout(cfg.Server.Timeout()).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	c.JSONMarshal = json.Marshal
	c.JSONUnmarshal = json.Unmarshal

	// token 注入不关心请求体形态，JSON 和 multipart 一视同仁
	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token, err := sess.Token(); err == nil && token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}

		traceID := logger.TraceID(req.Context())
		if traceID == "" {
			traceID = uuid.New().String()
			req.SetContext(logger.WithTraceID(req.Context(), traceID))
		}
		req.SetHeader("X-Trace-ID", traceID)
		return nil
	})

	// 非 2xx 一律转成 *api.Error 交给各功能层自己解释
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		ctx := resp.Request.Context()
		if resp.IsError() {
			apiErr := newError(resp)
			log.WarnContext(ctx, "api request failed",
				"method", resp.Request.Method,
				"url", resp.Request.URL,
				"status", resp.StatusCode(),
				"detail", apiErr.Detail)
			return apiErr
		}

		log.InfoContext(ctx, "api request",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"elapsed", resp.Time().String())
		return nil
	})

	return &Client{http: c}
}

// R 开启一个携带 ctx 的请求
func (c *Client) R(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// BaseURL 当前配置的服务端地址
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}
