package store

import (
	"context"
	"errors"

	"HibiscusTTS/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormStore 数据库存储，sqlite / mysql / postgres 由连接方决定
type gormStore struct {
	db *gorm.DB
}

// NewGorm creates a database-backed Store and migrates the tts_tests table.
func NewGorm(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&models.TtsTest{}); err != nil {
		return nil, err
	}
	return &gormStore{db: db}, nil
}

func (g *gormStore) Create(ctx context.Context, text, provider string, settings models.VoiceSettings) (*models.TtsTest, error) {
	if settings == nil {
		settings = models.VoiceSettings{}
	}
	test := &models.TtsTest{
		ID:            uuid.NewString(),
		Text:          text,
		Provider:      provider,
		VoiceSettings: settings,
		Status:        models.StatusPending,
	}
	if err := g.db.WithContext(ctx).Create(test).Error; err != nil {
		return nil, err
	}
	return test, nil
}

func (g *gormStore) Get(ctx context.Context, id string) (*models.TtsTest, error) {
	var test models.TtsTest
	err := g.db.WithContext(ctx).First(&test, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (g *gormStore) Update(ctx context.Context, id string, patch Patch) (*models.TtsTest, error) {
	// 先确认存在；MySQL 对无变化的 UPDATE 会报告 0 行，不能用影响行数判断
	if _, err := g.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.ClearAudioURL {
		updates["audio_url"] = nil
	} else if patch.AudioURL != nil {
		updates["audio_url"] = *patch.AudioURL
	}
	if patch.ClearErrorMessage {
		updates["error_message"] = nil
	} else if patch.ErrorMessage != nil {
		updates["error_message"] = *patch.ErrorMessage
	}
	if patch.GenerationTimeMs != nil {
		updates["generation_time_ms"] = *patch.GenerationTimeMs
	}
	if patch.ClearAudioSizeBytes {
		updates["audio_size_bytes"] = nil
	} else if patch.AudioSizeBytes != nil {
		updates["audio_size_bytes"] = *patch.AudioSizeBytes
	}

	if len(updates) > 0 {
		err := g.db.WithContext(ctx).Model(&models.TtsTest{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return g.Get(ctx, id)
}

func (g *gormStore) ListRecent(ctx context.Context, limit int) ([]models.TtsTest, error) {
	var tests []models.TtsTest
	err := g.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}
