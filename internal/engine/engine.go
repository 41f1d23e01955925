package engine

import (
	"go.uber.org/zap"
)

// 默认搜索深度（ply）
const DefaultDepth = 3

// Engine 只保存配置，本身无状态，可以被多盘棋共用
type Engine struct {
	cfg SearchConfig
	log *zap.SugaredLogger
}

// NewEngine 返回一个 MaxDepth 为 DefaultDepth、不打日志的引擎
func NewEngine() *Engine {
	return &Engine{
		cfg: SearchConfig{MaxDepth: DefaultDepth},
		log: zap.NewNop().Sugar(),
	}
}

// WithConfig 返回使用 cfg 的副本；MaxDepth <= 0 时用默认深度
func (e *Engine) WithConfig(cfg SearchConfig) *Engine {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultDepth
	}
	ne := *e
	ne.cfg = cfg
	return &ne
}

// WithLogger 返回打日志到 log 的副本
func (e *Engine) WithLogger(log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	ne := *e
	ne.log = log
	return &ne
}

func (e *Engine) Config() SearchConfig { return e.cfg }
