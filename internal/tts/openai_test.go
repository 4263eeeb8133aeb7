package tts

import (
	"context"
	"testing"

	"HibiscusTTS/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOpenAISettingKeyRecognition(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := newOpenAI("test-key", zap.New(core))

	// 取消上下文避免真实外呼，只看设置键的识别路径
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Synthesize(ctx, "hello", models.VoiceSettings{
		"model":        "gpt-4o-mini-tts",
		"voice":        "nova",
		"speed":        1.1,
		"instructions": "speak softly",
	})
	require.Error(t, err)
	assert.Zero(t, logs.Len())

	_, err = p.Synthesize(ctx, "hello", models.VoiceSettings{"pitch": 2})
	require.Error(t, err)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "ignoring unrecognized voice setting", logs.All()[0].Message)
}
