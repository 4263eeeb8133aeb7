package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig 日志配置，来自环境变量
type LogConfig struct {
	Level      string // debug / info / warn / error
	Filename   string // 为空时只输出到 stdout
	MaxSize    int    // 单文件上限，MB
	MaxAge     int    // 保留天数
	MaxBackups int    // 保留个数
}

var log *zap.Logger = zap.NewNop()

// Init 初始化全局日志器
func Init(cfg LogConfig) error {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return err
		}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}
	if cfg.Filename != "" {
		// 文件输出走滚动切割
		writer := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxAge,
			MaxBackups: cfg.MaxBackups,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(writer), level))
	}

	log = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return nil
}

// L 返回全局日志器，Init 之前为 no-op
func L() *zap.Logger {
	return log
}

// Sync 刷新缓冲日志
func Sync() {
	_ = log.Sync()
}
