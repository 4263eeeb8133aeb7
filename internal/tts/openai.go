package tts

import (
	"context"
	"io"

	"HibiscusTTS/internal/models"
	"HibiscusTTS/pkg/errors"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// openai 可识别的 voiceSettings 键，其余键记日志后忽略
var openaiSettingKeys = map[string]bool{
	"model":        true,
	"voice":        true,
	"speed":        true,
	"instructions": true,
}

// openaiProvider 经 OpenAI /v1/audio/speech 的真实实现
type openaiProvider struct {
	apiKey string
	client *openai.Client
	log    *zap.Logger
}

func newOpenAI(apiKey string, log *zap.Logger) Provider {
	p := &openaiProvider{apiKey: apiKey, log: log}
	if apiKey != "" {
		p.client = openai.NewClient(apiKey)
	}
	return p
}

func (p *openaiProvider) Name() string {
	return "openai"
}

func (p *openaiProvider) Configured() bool {
	return p.apiKey != ""
}

func (p *openaiProvider) Synthesize(ctx context.Context, text string, settings models.VoiceSettings) ([]byte, error) {
	if p.client == nil {
		return nil, errors.WithCode(errors.CodeNotConfigured, "OpenAI API key not configured")
	}

	for key := range settings {
		if !openaiSettingKeys[key] {
			p.log.Warn("ignoring unrecognized voice setting",
				zap.String("provider", "openai"),
				zap.String("key", key))
		}
	}

	resp, err := p.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(settings.String("model", string(openai.TTSModel1))),
		Input: text,
		Voice: openai.SpeechVoice(settings.String("voice", string(openai.VoiceAlloy))),
		Speed: settings.Float("speed", 1.0),
		// instructions 仅 gpt-4o-mini-tts 系列生效，tts-1 会被服务端忽略
		Instructions: settings.String("instructions", ""),
	})
	if err != nil {
		return nil, errors.WrapCode(errors.CodeUpstreamFailure, err, "OpenAI TTS failed")
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, errors.WrapCode(errors.CodeUpstreamFailure, err, "OpenAI TTS read failed")
	}
	return audio, nil
}
