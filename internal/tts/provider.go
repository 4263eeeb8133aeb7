package tts

import (
	"context"
	"sort"

	"HibiscusTTS/internal/models"
	"HibiscusTTS/pkg/errors"

	"go.uber.org/zap"
)

// Provider 单个 TTS 服务商的调用封装
//
// Synthesize 返回原始音频字节；凭证缺失、未接入、上游失败都以
// 带错误码的 error 返回，由编排器统一落入记录。
type Provider interface {
	Name() string

	// Configured 是否具备调用所需的凭证
	Configured() bool

	Synthesize(ctx context.Context, text string, settings models.VoiceSettings) ([]byte, error)
}

// Credentials 各服务商的环境凭证，缺失不阻止启动，只在调用时报错
type Credentials struct {
	OpenAIAPIKey       string
	GrokAPIKey         string
	GrocAPIKey         string
	AzureSpeechKey     string
	AzureSpeechRegion  string
	GoogleCloudAPIKey  string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	ElevenLabsAPIKey   string
}

// Registry 服务商标识到实现的映射，集合封闭
type Registry struct {
	providers map[string]Provider
}

// NewRegistry builds the dispatch table for the fixed provider set.
func NewRegistry(creds Credentials, log *zap.Logger) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	r.Register(newOpenAI(creds.OpenAIAPIKey, log))
	r.Register(newPlaceholder("grok",
		func() bool { return creds.GrokAPIKey != "" },
		"Grok API key not configured",
		"Grok TTS integration not yet implemented"))
	r.Register(newPlaceholder("groc",
		func() bool { return creds.GrocAPIKey != "" },
		"Groc API key not configured",
		"Groc TTS integration not yet implemented"))
	r.Register(newPlaceholder("azure",
		func() bool { return creds.AzureSpeechKey != "" && creds.AzureSpeechRegion != "" },
		"Azure Speech credentials not configured",
		"Azure TTS integration not yet implemented"))
	r.Register(newPlaceholder("google",
		func() bool { return creds.GoogleCloudAPIKey != "" },
		"Google Cloud API key not configured",
		"Google Cloud TTS integration not yet implemented"))
	r.Register(newPlaceholder("aws",
		func() bool { return creds.AWSAccessKeyID != "" && creds.AWSSecretAccessKey != "" },
		"AWS credentials not configured",
		"AWS Polly integration not yet implemented"))
	r.Register(newPlaceholder("elevenlabs",
		func() bool { return creds.ElevenLabsAPIKey != "" },
		"ElevenLabs API key not configured",
		"ElevenLabs TTS integration not yet implemented"))
	return r
}

// Register 注册或覆盖一个服务商实现
func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

// Resolve 查找服务商实现，标识不在集合内视为 UnsupportedProvider
func (r *Registry) Resolve(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, errors.WithCodef(errors.CodeUnsupportedProvider, "Unsupported TTS provider: %s", name)
	}
	return p, nil
}

// Names 返回全部标识，字典序
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
