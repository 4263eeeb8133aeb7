package handlers

import (
	"HibiscusTTS/internal/store"
	"HibiscusTTS/internal/tts"
	"HibiscusTTS/pkg/cache"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handlers HTTP 层依赖集合
type Handlers struct {
	db        *gorm.DB // 内存存储时为 nil，仅健康检查使用
	store     store.Store
	generator *tts.Generator
	registry  *tts.Registry
	cache     cache.Cache
	log       *zap.Logger
}

// New assembles the handler set.
func New(db *gorm.DB, s store.Store, g *tts.Generator, r *tts.Registry, c cache.Cache, log *zap.Logger) *Handlers {
	return &Handlers{
		db:        db,
		store:     s,
		generator: g,
		registry:  r,
		cache:     c,
		log:       log,
	}
}

// Register 挂载全部路由
func (h *Handlers) Register(r *gin.Engine, prefix string) {
	api := r.Group(prefix)
	{
		api.GET("/tts-tests", h.handleListTtsTests)
		api.POST("/tts-tests", h.handleCreateTtsTest)
		api.POST("/tts-tests/:id/generate", h.handleGenerateTts)
		api.GET("/tts-tests/:id", h.handleGetTtsTest)
		api.GET("/providers", h.handleListProviders)
		api.GET("/health", h.HealthCheck)
	}
}
