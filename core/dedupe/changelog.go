package dedupe

import "go.uber.org/zap"

// ChangeLog receives one entry per merge decision.
type ChangeLog interface {
	Record(msg string, fields ...zap.Field)
}

// ZapChangeLog writes change entries to a zap logger at info level.
func ZapChangeLog(l *zap.Logger) ChangeLog {
	if l == nil {
		return NopChangeLog()
	}
	return zapChangeLog{l: l}
}

// NopChangeLog discards every entry.
func NopChangeLog() ChangeLog {
	return nopChangeLog{}
}

type zapChangeLog struct {
	l *zap.Logger
}

func (z zapChangeLog) Record(msg string, fields ...zap.Field) {
	z.l.Info(msg, fields...)
}

type nopChangeLog struct{}

func (nopChangeLog) Record(string, ...zap.Field) {}
