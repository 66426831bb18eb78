package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 加载配置并填充到 Cfg
// 配置文件缺失时退回默认值 + 环境变量（BOARD_ 前缀）
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("BOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.base_url", "http://localhost:8000")
	viper.SetDefault("server.timeout_seconds", 10)
	viper.SetDefault("store.path", defaultStorePath())
	viper.SetDefault("log.file", "")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath()
	}

	Cfg = &cfg

	return nil
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "local.db"
	}
	return filepath.Join(home, ".crudboard", "local.db")
}
