package stores

import "context"

// AudioStore 将生成的音频保存为可直接播放/下载的引用
//
// 默认实现把字节内嵌为 data URL；配置了对象存储时改存 MinIO。
type AudioStore interface {
	// Save 保存一段音频，返回自包含的访问地址
	Save(ctx context.Context, key string, audio []byte) (string, error)
}
