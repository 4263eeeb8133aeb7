package main

import (
	"log"

	handlers "HibiscusTTS/internal/handler"
	"HibiscusTTS/internal/store"
	"HibiscusTTS/internal/tts"
	"HibiscusTTS/pkg/cache"
	"HibiscusTTS/pkg/config"
	"HibiscusTTS/pkg/logger"
	"HibiscusTTS/pkg/metrics"
	"HibiscusTTS/pkg/middleware"
	stores "HibiscusTTS/pkg/storage"
	"HibiscusTTS/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg := config.GlobalConfig

	if err := logger.Init(cfg.Log); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	zlog := logger.L()

	// 存储后端：默认内存，database 时按 DB_DRIVER 连接
	var db *gorm.DB
	var recordStore store.Store
	switch cfg.StoreBackend {
	case "database":
		var err error
		db, err = util.NewDatabase(&gorm.Config{}, cfg.DBDriver, cfg.DSN)
		if err != nil {
			zlog.Fatal("open database", zap.Error(err))
		}
		recordStore, err = store.NewGorm(db)
		if err != nil {
			zlog.Fatal("migrate database", zap.Error(err))
		}
	default:
		recordStore = store.NewMemory()
	}

	// 音频引用：配置了 MinIO 则存对象，否则内嵌 data URL
	var audioStore stores.AudioStore
	if cfg.Minio.Endpoint != "" {
		var err error
		audioStore, err = stores.NewMinioStore(cfg.Minio)
		if err != nil {
			zlog.Fatal("connect minio", zap.Error(err))
		}
		zlog.Info("audio store: minio", zap.String("bucket", cfg.Minio.Bucket))
	} else {
		audioStore = stores.NewDataURLStore()
	}

	c, err := cache.NewCache(cfg.Cache)
	if err != nil {
		zlog.Fatal("init cache", zap.Error(err))
	}
	defer c.Close()

	registry := tts.NewRegistry(tts.Credentials{
		OpenAIAPIKey:       cfg.OpenAIAPIKey,
		GrokAPIKey:         cfg.GrokAPIKey,
		GrocAPIKey:         cfg.GrocAPIKey,
		AzureSpeechKey:     cfg.AzureSpeechKey,
		AzureSpeechRegion:  cfg.AzureSpeechRegion,
		GoogleCloudAPIKey:  cfg.GoogleCloudAPIKey,
		AWSAccessKeyID:     cfg.AWSAccessKeyID,
		AWSSecretAccessKey: cfg.AWSSecretAccessKey,
		ElevenLabsAPIKey:   cfg.ElevenLabsAPIKey,
	}, zlog)
	generator := tts.NewGenerator(recordStore, registry, audioStore, zlog)

	gin.SetMode(cfg.Mode)
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.AccessLog(zlog), metrics.Middleware())
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	h := handlers.New(db, recordStore, generator, registry, c, zlog)
	h.Register(engine, cfg.APIPrefix)

	zlog.Info("server listening",
		zap.String("addr", cfg.Addr),
		zap.String("store", cfg.StoreBackend))
	if err := engine.Run(cfg.Addr); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
