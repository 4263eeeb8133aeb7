package config

import (
	"log"
	"os"
	"time"

	"HibiscusTTS/pkg/cache"
	"HibiscusTTS/pkg/logger"
	stores "HibiscusTTS/pkg/storage"
	"HibiscusTTS/pkg/util"
)

// Config 全局配置，启动时一次性从环境读取
type Config struct {
	Addr      string `env:"ADDR"`
	Mode      string `env:"MODE"` // gin 运行模式：debug / release / test
	APIPrefix string `env:"API_PREFIX"`

	// 存储：memory 或 database
	StoreBackend string `env:"STORE_BACKEND"`
	DBDriver     string `env:"DB_DRIVER"` // mysql / pg / sqlite（默认）
	DSN          string `env:"DSN"`

	Log   logger.LogConfig
	Cache cache.Config
	Minio stores.MinioConfig

	// 各 TTS 服务商凭证；缺失不会阻止启动，调用时才报 not configured
	OpenAIAPIKey       string `env:"OPENAI_API_KEY"`
	GrokAPIKey         string `env:"GROK_API_KEY"`
	GrocAPIKey         string `env:"GROC_API_KEY"`
	AzureSpeechKey     string `env:"AZURE_SPEECH_KEY"`
	AzureSpeechRegion  string `env:"AZURE_SPEECH_REGION"`
	GoogleCloudAPIKey  string `env:"GOOGLE_CLOUD_API_KEY"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	ElevenLabsAPIKey   string `env:"ELEVENLABS_API_KEY"`
}

var GlobalConfig *Config

func Load() error {
	// 1. 根据环境加载 .env 文件
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development" // 默认使用开发环境
	}
	err := util.LoadEnv(env)
	if err != nil {
		log.Printf("Failed to load .env file: %v", err)
	}

	// 2. 加载全局配置
	GlobalConfig = &Config{
		Addr:         util.GetEnvDefault("ADDR", ":8080"),
		Mode:         util.GetEnvDefault("MODE", "debug"),
		APIPrefix:    util.GetEnvDefault("API_PREFIX", "/api"),
		StoreBackend: util.GetEnvDefault("STORE_BACKEND", "memory"),
		DBDriver:     util.GetEnv("DB_DRIVER"),
		DSN:          util.GetEnv("DSN"),
		Log: logger.LogConfig{
			Level:      util.GetEnv("LOG_LEVEL"),
			Filename:   util.GetEnv("LOG_FILENAME"),
			MaxSize:    int(util.GetIntEnv("LOG_MAX_SIZE")),
			MaxAge:     int(util.GetIntEnv("LOG_MAX_AGE")),
			MaxBackups: int(util.GetIntEnv("LOG_MAX_BACKUPS")),
		},
		Cache: cache.Config{
			Type: util.GetEnvDefault("CACHE_TYPE", "local"),
			Redis: cache.RedisConfig{
				Addr:     util.GetEnvDefault("REDIS_ADDR", "localhost:6379"),
				Password: util.GetEnv("REDIS_PASSWORD"),
				DB:       int(util.GetIntEnv("REDIS_DB")),
				PoolSize: int(util.GetIntEnv("REDIS_POOL_SIZE")),
			},
			Local: cache.LocalConfig{
				DefaultExpiration: 5 * time.Minute,
				CleanupInterval:   10 * time.Minute,
			},
		},
		Minio: stores.MinioConfig{
			Endpoint:  util.GetEnv("MINIO_ENDPOINT"),
			AccessKey: util.GetEnv("MINIO_ACCESS_KEY"),
			SecretKey: util.GetEnv("MINIO_SECRET_KEY"),
			Bucket:    util.GetEnvDefault("MINIO_BUCKET", "tts-audio"),
			UseSSL:    util.GetBoolEnv("MINIO_USE_SSL"),
			BaseURL:   util.GetEnv("MINIO_PUBLIC_BASE"),
		},
		OpenAIAPIKey:       util.GetEnv("OPENAI_API_KEY"),
		GrokAPIKey:         util.GetEnv("GROK_API_KEY"),
		GrocAPIKey:         util.GetEnv("GROC_API_KEY"),
		AzureSpeechKey:     util.GetEnv("AZURE_SPEECH_KEY"),
		AzureSpeechRegion:  util.GetEnv("AZURE_SPEECH_REGION"),
		GoogleCloudAPIKey:  util.GetEnv("GOOGLE_CLOUD_API_KEY"),
		AWSAccessKeyID:     util.GetEnv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: util.GetEnv("AWS_SECRET_ACCESS_KEY"),
		ElevenLabsAPIKey:   util.GetEnv("ELEVENLABS_API_KEY"),
	}
	return nil
}
