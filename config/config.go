package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Port     int    `mapstructure:"port"`
	MongoURI string `mapstructure:"mongoURI"`
	MongoDB  string `mapstructure:"mongoDB"`
	GinMode  string `mapstructure:"ginMode"`
	LogLevel string `mapstructure:"logLevel"`
	CORS     struct {
		AllowOrigins []string `mapstructure:"allowOrigins"`
	} `mapstructure:"cors"`
	Upload struct {
		MaxSizeMB int64 `mapstructure:"maxSizeMB"`
	} `mapstructure:"upload"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"metrics"`
	OperationLog struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"operationLog"`
}

// Debug 是否为调试模式
func (c *Config) Debug() bool {
	return c.GinMode == "debug"
}

// MaxUploadBytes 上传文件大小上限（字节）
func (c *Config) MaxUploadBytes() int64 {
	return c.Upload.MaxSizeMB << 20
}

// 环境变量与配置键的对应关系
var envBindings = map[string][]string{
	"port":                 {"PORT"},
	"mongoURI":             {"MONGO_URL", "MONGO_URI"},
	"mongoDB":              {"MONGO_DB"},
	"ginMode":              {"GIN_MODE"},
	"logLevel":             {"LOG_LEVEL"},
	"cors.allowOrigins":    {"CORS_ALLOW_ORIGINS"},
	"upload.maxSizeMB":     {"UPLOAD_MAX_SIZE_MB"},
	"metrics.enabled":      {"METRICS_ENABLED"},
	"operationLog.enabled": {"OPERATION_LOG_ENABLED"},
}

// LoadConfig 从 .env、配置文件和环境变量加载配置
func LoadConfig(path string) (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("port", 8001)
	v.SetDefault("mongoURI", "mongodb://localhost:27017/realestatedb")
	v.SetDefault("mongoDB", "realestatedb")
	v.SetDefault("ginMode", "release")
	v.SetDefault("logLevel", "info")
	v.SetDefault("cors.allowOrigins", []string{"*"})
	v.SetDefault("upload.maxSizeMB", 10)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("operationLog.enabled", true)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("绑定环境变量失败 %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// 环境变量中的来源列表以逗号分隔
	cfg.CORS.AllowOrigins = splitList(cfg.CORS.AllowOrigins)

	if cfg.Port <= 0 {
		return nil, fmt.Errorf("无效的端口: %d", cfg.Port)
	}
	if cfg.Upload.MaxSizeMB <= 0 {
		return nil, fmt.Errorf("无效的上传大小限制: %d", cfg.Upload.MaxSizeMB)
	}

	return &cfg, nil
}

// splitList 展开逗号分隔的列表项并去除空白
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
