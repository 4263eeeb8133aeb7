package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"HibiscusTTS/internal/models"
	"HibiscusTTS/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 50

	// 仅缓存默认条数的历史列表（前端轮询热点），写操作后失效
	recentCacheKey = "tts:recent:default"
	recentCacheTTL = 30 * time.Second
)

// 获取最近的测试记录
func (h *Handlers) handleListTtsTests(c *gin.Context) {
	limit := cast.ToInt(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	if limit == defaultRecentLimit {
		if v, ok := h.cache.Get(c.Request.Context(), recentCacheKey); ok {
			if data, ok := v.([]byte); ok {
				c.Data(http.StatusOK, "application/json; charset=utf-8", data)
				return
			}
		}
	}

	tests, err := h.store.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("list recent tts tests failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch TTS tests"})
		return
	}

	if limit == defaultRecentLimit {
		if data, err := json.Marshal(tests); err == nil {
			_ = h.cache.Set(c.Request.Context(), recentCacheKey, data, recentCacheTTL)
		}
	}
	c.JSON(http.StatusOK, tests)
}

// 创建待生成的测试记录
func (h *Handlers) handleCreateTtsTest(c *gin.Context) {
	var req models.CreateTtsTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "errors": err.Error()})
		return
	}
	if !models.IsProvider(req.Provider) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"errors":  "unknown provider: " + req.Provider,
		})
		return
	}

	test, err := h.store.Create(c.Request.Context(), req.Text, req.Provider, req.VoiceSettings)
	if err != nil {
		h.log.Error("create tts test failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create TTS test"})
		return
	}

	_ = h.cache.Delete(c.Request.Context(), recentCacheKey)
	c.JSON(http.StatusCreated, test)
}

// 触发一次生成；失败时响应体仍携带更新后的记录，便于前端展示 errorMessage
func (h *Handlers) handleGenerateTts(c *gin.Context) {
	id := c.Param("id")

	test, err := h.generator.Generate(c.Request.Context(), id)
	_ = h.cache.Delete(c.Request.Context(), recentCacheKey)

	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "TTS test not found"})
			return
		}
		if test != nil {
			// 分发失败：终态记录随 500 一起返回
			c.JSON(http.StatusInternalServerError, test)
			return
		}
		h.log.Error("generate tts failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate TTS audio"})
		return
	}

	c.JSON(http.StatusOK, test)
}

// 按 ID 查询单条记录
func (h *Handlers) handleGetTtsTest(c *gin.Context) {
	id := c.Param("id")

	test, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "TTS test not found"})
			return
		}
		h.log.Error("get tts test failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch TTS test"})
		return
	}

	c.JSON(http.StatusOK, test)
}
