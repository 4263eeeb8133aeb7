package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"HibiscusTTS/internal/models"

	"github.com/google/uuid"
)

// memoryStore 进程内存储，适合本地调试与测试
type memoryStore struct {
	mu    sync.RWMutex
	tests map[string]*models.TtsTest
	order []string // 创建顺序，作为同一时间戳的稳定并列判定
}

// NewMemory creates an in-process Store backed by a map.
func NewMemory() Store {
	return &memoryStore{
		tests: make(map[string]*models.TtsTest),
		order: make([]string, 0),
	}
}

func (m *memoryStore) Create(ctx context.Context, text, provider string, settings models.VoiceSettings) (*models.TtsTest, error) {
	if settings == nil {
		settings = models.VoiceSettings{}
	}
	test := &models.TtsTest{
		ID:            uuid.NewString(),
		Text:          text,
		Provider:      provider,
		VoiceSettings: settings,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tests[test.ID] = test
	m.order = append(m.order, test.ID)

	out := *test
	return &out, nil
}

func (m *memoryStore) Get(ctx context.Context, id string) (*models.TtsTest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	test, ok := m.tests[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *test
	return &out, nil
}

func (m *memoryStore) Update(ctx context.Context, id string, patch Patch) (*models.TtsTest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	test, ok := m.tests[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Status != nil {
		test.Status = *patch.Status
	}
	if patch.ClearAudioURL {
		test.AudioURL = nil
	} else if patch.AudioURL != nil {
		test.AudioURL = patch.AudioURL
	}
	if patch.ClearErrorMessage {
		test.ErrorMessage = nil
	} else if patch.ErrorMessage != nil {
		test.ErrorMessage = patch.ErrorMessage
	}
	if patch.GenerationTimeMs != nil {
		test.GenerationTimeMs = patch.GenerationTimeMs
	}
	if patch.ClearAudioSizeBytes {
		test.AudioSizeBytes = nil
	} else if patch.AudioSizeBytes != nil {
		test.AudioSizeBytes = patch.AudioSizeBytes
	}

	out := *test
	return &out, nil
}

func (m *memoryStore) ListRecent(ctx context.Context, limit int) ([]models.TtsTest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// 创建序号，保证同一时间戳下排序在进程生命周期内稳定
	seq := make(map[string]int, len(m.order))
	for i, id := range m.order {
		seq[id] = i
	}

	tests := make([]models.TtsTest, 0, len(m.tests))
	for _, t := range m.tests {
		tests = append(tests, *t)
	}
	sort.SliceStable(tests, func(i, j int) bool {
		if tests[i].CreatedAt.Equal(tests[j].CreatedAt) {
			return seq[tests[i].ID] > seq[tests[j].ID]
		}
		return tests[i].CreatedAt.After(tests[j].CreatedAt)
	})

	if limit > 0 && len(tests) > limit {
		tests = tests[:limit]
	}
	return tests, nil
}
