package store

import (
	"context"

	"HibiscusTTS/internal/models"
	"HibiscusTTS/pkg/errors"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.WithCode(errors.CodeNotFound, "TTS test not found")

// Patch 部分更新；nil 字段保持原值，最后写入者胜出
type Patch struct {
	Status           *string
	AudioURL         *string
	ErrorMessage     *string
	GenerationTimeMs *int64
	AudioSizeBytes   *int64

	// 显式清空：终态互斥字段在重跑反转结果时必须抹掉另一侧
	ClearErrorMessage   bool // 成功路径覆盖历史失败
	ClearAudioURL       bool // 失败路径覆盖历史成功
	ClearAudioSizeBytes bool
}

// Store 测试记录的存储抽象，内存与数据库两种实现
//
// 所有写入对后续读取立即可见。Store 不校验
// audioUrl/errorMessage 互斥不变式，由生成编排器保证。
type Store interface {
	// Create 以 pending 状态落库并分配 ID，结果字段全部为空
	Create(ctx context.Context, text, provider string, settings models.VoiceSettings) (*models.TtsTest, error)

	// Get 按 ID 查询，不存在时返回 ErrNotFound
	Get(ctx context.Context, id string) (*models.TtsTest, error)

	// Update 合并部分字段，不存在时返回 ErrNotFound
	Update(ctx context.Context, id string, patch Patch) (*models.TtsTest, error)

	// ListRecent 按创建时间倒序返回最多 limit 条记录
	ListRecent(ctx context.Context, limit int) ([]models.TtsTest, error)
}

// StrPtr 返回字符串指针，便于构造 Patch
func StrPtr(s string) *string { return &s }

// Int64Ptr 返回 int64 指针，便于构造 Patch
func Int64Ptr(n int64) *int64 { return &n }
