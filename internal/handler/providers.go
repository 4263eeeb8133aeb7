package handlers

import (
	"HibiscusTTS/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProviderInfo 服务商及其可用状态，供前端渲染下拉框
type ProviderInfo struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"` // 凭证是否就绪
}

// 列出全部支持的服务商
func (h *Handlers) handleListProviders(c *gin.Context) {
	infos := make([]ProviderInfo, 0)
	for _, name := range h.registry.Names() {
		p, err := h.registry.Resolve(name)
		if err != nil {
			continue
		}
		infos = append(infos, ProviderInfo{
			Name:       name,
			Configured: p.Configured(),
		})
	}
	response.Success(c, "get tts providers", infos)
}
