package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// 生成状态：pending -> success / failed，终态后不再自动流转
const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Providers 支持的 TTS 服务商（封闭集合，新增需同步注册表）
var Providers = []string{
	"openai",
	"grok",
	"groc",
	"azure",
	"google",
	"aws",
	"elevenlabs",
}

// IsProvider reports whether name is in the supported provider set.
func IsProvider(name string) bool {
	for _, p := range Providers {
		if p == name {
			return true
		}
	}
	return false
}

// VoiceSettings 服务商相关的可选参数包，按文本列存储
type VoiceSettings map[string]interface{}

// Value implements driver.Valuer so the settings bag can live in a text column.
func (vs VoiceSettings) Value() (driver.Value, error) {
	if vs == nil {
		return "{}", nil
	}
	data, err := json.Marshal(vs)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (vs *VoiceSettings) Scan(value interface{}) error {
	if value == nil {
		*vs = VoiceSettings{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported voice settings column type %T", value)
	}
	if len(data) == 0 {
		*vs = VoiceSettings{}
		return nil
	}
	return json.Unmarshal(data, vs)
}

// String 返回指定键的字符串值，缺失或类型不符时返回默认值
func (vs VoiceSettings) String(key, def string) string {
	if v, ok := vs[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}

// Float 返回指定键的数值，JSON 反序列化后数字统一为 float64
func (vs VoiceSettings) Float(key string, def float64) float64 {
	if v, ok := vs[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return def
}

// TtsTest 一次文本转语音的测试记录
type TtsTest struct {
	ID               string        `json:"id" gorm:"primaryKey;size:36"`
	Text             string        `json:"text" gorm:"type:text"`                  // 待合成文本，1-500 字符
	Provider         string        `json:"provider" gorm:"size:32;index"`          // 服务商标识
	VoiceSettings    VoiceSettings `json:"voiceSettings" gorm:"type:text"`         // 服务商自定义参数
	Status           string        `json:"status" gorm:"size:16;default:pending"`  // pending / success / failed
	AudioURL         *string       `json:"audioUrl" gorm:"type:text"`              // 成功时的音频引用（data URL 或对象地址）
	ErrorMessage     *string       `json:"errorMessage" gorm:"type:text"`          // 失败时的错误描述
	GenerationTimeMs *int64        `json:"generationTimeMs"`                       // 调用耗时（毫秒），两种终态都会写入
	AudioSizeBytes   *int64        `json:"audioSizeBytes"`                         // 音频字节数，仅成功时写入
	CreatedAt        time.Time     `json:"createdAt" gorm:"autoCreateTime;index"`  // 历史列表按此倒序
}

// TableName 指定表名，与历史数据保持一致
func (TtsTest) TableName() string {
	return "tts_tests"
}

// Terminal reports whether the record reached success or failed.
func (t *TtsTest) Terminal() bool {
	return t.Status == StatusSuccess || t.Status == StatusFailed
}

// CreateTtsTestRequest 创建测试记录的请求体
type CreateTtsTestRequest struct {
	Text          string        `json:"text" binding:"required,min=1,max=500"`
	Provider      string        `json:"provider" binding:"required"`
	VoiceSettings VoiceSettings `json:"voiceSettings"`
}
