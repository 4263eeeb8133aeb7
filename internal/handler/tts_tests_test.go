package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"HibiscusTTS/internal/models"
	"HibiscusTTS/internal/store"
	"HibiscusTTS/internal/tts"
	"HibiscusTTS/pkg/cache"
	stores "HibiscusTTS/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeProvider 测试替身，按需返回音频或错误
type fakeProvider struct {
	name  string
	audio []byte
	err   error
}

func (f *fakeProvider) Name() string     { return f.name }
func (f *fakeProvider) Configured() bool { return true }

func (f *fakeProvider) Synthesize(ctx context.Context, text string, settings models.VoiceSettings) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

func newTestRouter(t *testing.T, providers ...tts.Provider) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewMemory()
	registry := tts.NewRegistry(tts.Credentials{GrokAPIKey: "k"}, zap.NewNop())
	for _, p := range providers {
		registry.Register(p)
	}
	generator := tts.NewGenerator(s, registry, stores.NewDataURLStore(), zap.NewNop())
	c := cache.NewLocalCache(cache.LocalConfig{})

	h := New(nil, s, generator, registry, c, zap.NewNop())
	engine := gin.New()
	h.Register(engine, "/api")
	return engine, s
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeRecord(t *testing.T, w *httptest.ResponseRecorder) models.TtsTest {
	t.Helper()
	var test models.TtsTest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &test))
	return test
}

func TestCreateTtsTest(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/tts-tests", gin.H{
		"text":          "Hello world",
		"provider":      "openai",
		"voiceSettings": gin.H{"voice": "alloy"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	test := decodeRecord(t, w)
	assert.NotEmpty(t, test.ID)
	assert.Equal(t, models.StatusPending, test.Status)
	assert.Nil(t, test.AudioURL)
	assert.Nil(t, test.ErrorMessage)
}

func TestCreateTtsTestValidation(t *testing.T) {
	engine, s := newTestRouter(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"empty text", gin.H{"text": "", "provider": "openai"}},
		{"missing text", gin.H{"provider": "openai"}},
		{"text too long", gin.H{"text": strings.Repeat("a", 501), "provider": "openai"}},
		{"missing provider", gin.H{"text": "hello"}},
		{"unknown provider", gin.H{"text": "hello", "provider": "espeak"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, engine, http.MethodPost, "/api/tts-tests", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Invalid request data")
		})
	}

	// 校验失败的请求不应留下任何记录
	tests, err := s.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, tests)
}

func TestGenerateSuccessEndToEnd(t *testing.T) {
	engine, _ := newTestRouter(t, &fakeProvider{name: "openai", audio: []byte("mpeg bytes")})

	w := doJSON(t, engine, http.MethodPost, "/api/tts-tests", gin.H{
		"text":          "Hello world",
		"provider":      "openai",
		"voiceSettings": gin.H{"voice": "alloy"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeRecord(t, w)

	w = doJSON(t, engine, http.MethodPost, "/api/tts-tests/"+created.ID+"/generate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	test := decodeRecord(t, w)
	assert.Equal(t, models.StatusSuccess, test.Status)
	require.NotNil(t, test.AudioURL)
	assert.Contains(t, *test.AudioURL, "data:audio/mpeg;base64,")
	require.NotNil(t, test.AudioSizeBytes)
	assert.Greater(t, *test.AudioSizeBytes, int64(0))
	require.NotNil(t, test.GenerationTimeMs)
}

func TestGenerateNotImplementedProvider(t *testing.T) {
	// grok 凭证已配置但无真实后端：失败记录随 500 返回
	engine, _ := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/tts-tests", gin.H{
		"text":     "Hello world",
		"provider": "grok",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeRecord(t, w)

	w = doJSON(t, engine, http.MethodPost, "/api/tts-tests/"+created.ID+"/generate", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	test := decodeRecord(t, w)
	assert.Equal(t, created.ID, test.ID)
	assert.Equal(t, models.StatusFailed, test.Status)
	require.NotNil(t, test.ErrorMessage)
	assert.Contains(t, *test.ErrorMessage, "not yet implemented")
	assert.Nil(t, test.AudioURL)
}

func TestGenerateUnknownID(t *testing.T) {
	engine, s := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/tts-tests/1f0a8fb4-dead-beef-0000-000000000000/generate", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "TTS test not found")

	tests, err := s.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, tests)
}

func TestGetTtsTest(t *testing.T) {
	engine, s := newTestRouter(t)

	created, err := s.Create(context.Background(), "hello", "openai", nil)
	require.NoError(t, err)

	w := doJSON(t, engine, http.MethodGet, "/api/tts-tests/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, decodeRecord(t, w).ID)

	w = doJSON(t, engine, http.MethodGet, "/api/tts-tests/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRecentReflectsNewCreates(t *testing.T) {
	engine, _ := newTestRouter(t)

	for _, text := range []string{"first", "second", "third"} {
		w := doJSON(t, engine, http.MethodPost, "/api/tts-tests", gin.H{
			"text":     text,
			"provider": "openai",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, engine, http.MethodGet, "/api/tts-tests", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tests []models.TtsTest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tests))
	require.Len(t, tests, 3)
	assert.Equal(t, "third", tests[0].Text)

	// 列表有缓存：新建记录后缓存应失效，下一次查询立即看到新记录
	wc := doJSON(t, engine, http.MethodPost, "/api/tts-tests", gin.H{
		"text":     "fourth",
		"provider": "azure",
	})
	require.Equal(t, http.StatusCreated, wc.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/tts-tests", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tests = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tests))
	require.Len(t, tests, 4)
	assert.Equal(t, "fourth", tests[0].Text)
}

func TestListRecentLimit(t *testing.T) {
	engine, s := newTestRouter(t)

	for i := 0; i < 5; i++ {
		_, err := s.Create(context.Background(), "text", "openai", nil)
		require.NoError(t, err)
	}

	w := doJSON(t, engine, http.MethodGet, "/api/tts-tests?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tests []models.TtsTest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tests))
	assert.Len(t, tests, 2)
}

func TestListProviders(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/providers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Code int            `json:"code"`
		Data []ProviderInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 7)

	configured := make(map[string]bool, len(body.Data))
	for _, p := range body.Data {
		configured[p.Name] = p.Configured
	}
	assert.True(t, configured["grok"]) // 测试注册表里只配置了 grok
	assert.False(t, configured["openai"])
	assert.False(t, configured["aws"])
}

func TestHealthCheckMemoryStore(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
