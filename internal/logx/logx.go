package logx

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 构造 SugaredLogger。dev 为真时用 development 配置（彩色、带调用栈），
// level 是 zap 认识的级别名（debug / info / warn / error），空串按 info 处理。
func New(level string, dev bool) (*zap.SugaredLogger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("logx: bad level %q: %w", level, err)
		}
	}

	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Must 和 New 一样，出错直接 panic；给 main 用
func Must(level string, dev bool) *zap.SugaredLogger {
	log, err := New(level, dev)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return log
}

// Nop 丢弃所有日志
func Nop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
