package tts

import (
	"context"

	"HibiscusTTS/internal/models"
	"HibiscusTTS/pkg/errors"
)

// placeholderProvider 尚未接入真实后端的服务商
//
// 凭证检查仍然先行，之后固定返回 NotImplemented——这是合法终态，
// 调用方按普通分发失败处理即可。
type placeholderProvider struct {
	name              string
	configured        func() bool
	notConfiguredMsg  string
	notImplementedMsg string
}

func newPlaceholder(name string, configured func() bool, notConfiguredMsg, notImplementedMsg string) Provider {
	return &placeholderProvider{
		name:              name,
		configured:        configured,
		notConfiguredMsg:  notConfiguredMsg,
		notImplementedMsg: notImplementedMsg,
	}
}

func (p *placeholderProvider) Name() string {
	return p.name
}

func (p *placeholderProvider) Configured() bool {
	return p.configured()
}

func (p *placeholderProvider) Synthesize(ctx context.Context, text string, settings models.VoiceSettings) ([]byte, error) {
	if !p.configured() {
		return nil, errors.WithCode(errors.CodeNotConfigured, p.notConfiguredMsg)
	}
	return nil, errors.WithCode(errors.CodeNotImplemented, p.notImplementedMsg)
}
