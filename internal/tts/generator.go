package tts

import (
	"context"
	"time"

	"HibiscusTTS/internal/models"
	"HibiscusTTS/internal/store"
	"HibiscusTTS/pkg/metrics"
	stores "HibiscusTTS/pkg/storage"

	"go.uber.org/zap"
)

// Generator 生成编排器：查记录 -> 分发 -> 计时 -> 原子写回终态
//
// 同一记录的并发生成不会被串行化，最终更新为最后写入者胜出；
// 单用户交互工具下可接受，若将来开放并发需按记录加锁或乐观版本。
type Generator struct {
	store    store.Store
	registry *Registry
	audio    stores.AudioStore
	log      *zap.Logger
}

// NewGenerator wires the orchestrator's dependencies.
func NewGenerator(s store.Store, r *Registry, audio stores.AudioStore, log *zap.Logger) *Generator {
	return &Generator{
		store:    s,
		registry: r,
		audio:    audio,
		log:      log,
	}
}

// Generate 对指定记录执行一次生成尝试
//
// 记录不存在时返回 (nil, ErrNotFound)，状态不变。其余失败把错误
// 写入记录并连同更新后的记录一起返回，调用方据此渲染 errorMessage。
// 成功返回 (记录, nil)。不会对已是终态的记录设防，重发即重跑。
func (g *Generator) Generate(ctx context.Context, id string) (*models.TtsTest, error) {
	test, err := g.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	g.log.Info("starting TTS generation",
		zap.String("id", test.ID),
		zap.String("provider", test.Provider),
		zap.Int("textLen", len(test.Text)))

	start := time.Now()
	audio, dispatchErr := g.dispatch(ctx, test)
	elapsed := time.Since(start)
	elapsedMs := elapsed.Milliseconds()

	if dispatchErr != nil {
		g.log.Warn("TTS generation failed",
			zap.String("id", test.ID),
			zap.String("provider", test.Provider),
			zap.Int64("elapsedMs", elapsedMs),
			zap.Error(dispatchErr))
		metrics.RecordGeneration(test.Provider, models.StatusFailed, elapsed)

		updated, err := g.store.Update(ctx, id, store.Patch{
			Status:              store.StrPtr(models.StatusFailed),
			ErrorMessage:        store.StrPtr(dispatchErr.Error()),
			GenerationTimeMs:    store.Int64Ptr(elapsedMs),
			ClearAudioURL:       true,
			ClearAudioSizeBytes: true,
		})
		if err != nil {
			return nil, err
		}
		return updated, dispatchErr
	}

	audioURL, err := g.audio.Save(ctx, test.ID, audio)
	if err != nil {
		// 音频落盘失败同样是本次尝试的失败终态
		metrics.RecordGeneration(test.Provider, models.StatusFailed, elapsed)
		updated, uerr := g.store.Update(ctx, id, store.Patch{
			Status:              store.StrPtr(models.StatusFailed),
			ErrorMessage:        store.StrPtr(err.Error()),
			GenerationTimeMs:    store.Int64Ptr(elapsedMs),
			ClearAudioURL:       true,
			ClearAudioSizeBytes: true,
		})
		if uerr != nil {
			return nil, uerr
		}
		return updated, err
	}

	size := int64(len(audio))
	g.log.Info("TTS generation succeeded",
		zap.String("id", test.ID),
		zap.String("provider", test.Provider),
		zap.Int64("elapsedMs", elapsedMs),
		zap.Int64("sizeBytes", size))
	metrics.RecordGeneration(test.Provider, models.StatusSuccess, elapsed)
	metrics.RecordAudioSize(size)

	updated, err := g.store.Update(ctx, id, store.Patch{
		Status:            store.StrPtr(models.StatusSuccess),
		AudioURL:          store.StrPtr(audioURL),
		GenerationTimeMs:  store.Int64Ptr(elapsedMs),
		AudioSizeBytes:    store.Int64Ptr(size),
		ClearErrorMessage: true,
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// dispatch 解析并调用服务商；标识不在集合内与调用失败走同一分支
func (g *Generator) dispatch(ctx context.Context, test *models.TtsTest) ([]byte, error) {
	provider, err := g.registry.Resolve(test.Provider)
	if err != nil {
		return nil, err
	}
	settings := test.VoiceSettings
	if settings == nil {
		settings = models.VoiceSettings{}
	}
	return provider.Synthesize(ctx, test.Text, settings)
}
