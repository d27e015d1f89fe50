package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 建立 Logger 的參數（對應 config.LogConfig）
type Options struct {
	Mode    string // development | production
	Level   string // debug | info | warn | error，空字串為 debug
	Service string // 每筆記錄附帶的 service 欄位，可為空
}

// Logger 以 key/value 形式記錄的 zap 包裝
//
// 滿足 application 層各自定義的 Logger 接口（Info / Warn / Error）。
type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New 依模式建立 Logger（prod / production 為 JSON 輸出，其他為開發模式）
func New(opts Options) (*Logger, error) {
	cfg := zapConfig(opts.Mode)

	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	// 呼叫位置指向使用端，而不是本包裝
	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	sugared := zapLogger.Sugar()
	if opts.Service != "" {
		sugared = sugared.With("service", opts.Service)
	}
	return &Logger{SugaredLogger: sugared}, nil
}

func zapConfig(mode string) zap.Config {
	switch strings.ToLower(mode) {
	case "prod", "production":
		return zap.NewProductionConfig()
	default:
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}
}

func parseLevel(level string) (zapcore.Level, error) {
	lvl := zapcore.DebugLevel
	if level == "" {
		return lvl, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return lvl, err
	}
	return lvl, nil
}

// NewNop 不輸出任何內容（測試用）
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Sync 刷新緩衝
func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}

// With 返回附帶固定欄位的子 Logger
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}

// Component 返回帶 component 欄位的子 Logger（broker、relay 等）
func (l *Logger) Component(name string) *Logger {
	return l.With("component", name)
}
