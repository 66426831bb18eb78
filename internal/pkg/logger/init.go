package logger

import (
	"Crudboard/internal/config"
	"io"
	log "log/slog"
	"os"
	"path/filepath"
)

var LogWriter io.Writer

// InitLogger 初始化全局日志
// 客户端日志只落本地：stderr 必出，配置了 log.file 时再镜像一份到文件
func InitLogger() {
	cfg := config.Cfg.Log

	hStderr := log.NewJSONHandler(os.Stderr, &log.HandlerOptions{Level: log.LevelInfo})

	var finalHandler log.Handler = hStderr
	LogWriter = os.Stderr

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err == nil {
			f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				hFile := log.NewJSONHandler(f, &log.HandlerOptions{Level: log.LevelInfo})
				finalHandler = &TeeHandler{
					handlers: []log.Handler{hStderr, hFile},
				}
				LogWriter = f
			} else {
				log.Warn("Failed to open log file, logging to stderr only", "err", err)
			}
		}
	}

	logger := log.New(&ContextHandler{finalHandler})
	log.SetDefault(logger)
}
