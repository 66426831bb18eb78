package config

import "time"

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig 后端 API 配置
type ServerConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout 请求超时时间
func (c ServerConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StoreConfig 本地持久化存储配置
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig 日志配置，File 为空时仅输出到 stderr
type LogConfig struct {
	File string `mapstructure:"file"`
}
