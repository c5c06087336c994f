package dedupe

import (
	"lead-consolidator/core/record"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// lead builds a record from alternating field names and values.
func lead(pairs ...any) *record.Record {
	return record.FromPairs(pairs...)
}

// observed returns a change log whose entries can be inspected.
func observed() (ChangeLog, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return ZapChangeLog(zap.New(core)), logs
}

func cloneAll(records []*record.Record) []*record.Record {
	out := make([]*record.Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
