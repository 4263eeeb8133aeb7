package stores

import (
	"context"
	"encoding/base64"
)

const dataURLPrefix = "data:audio/mpeg;base64,"

// dataURLStore 把音频直接编码进返回的地址里，无外部依赖
type dataURLStore struct{}

// NewDataURLStore creates the embedded base64 audio store.
func NewDataURLStore() AudioStore {
	return &dataURLStore{}
}

func (s *dataURLStore) Save(ctx context.Context, key string, audio []byte) (string, error) {
	return dataURLPrefix + base64.StdEncoding.EncodeToString(audio), nil
}
