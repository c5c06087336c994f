package dedupe

import (
	"sort"

	"lead-consolidator/core/record"

	"go.uber.org/zap"
)

// Merger folds a bucket of duplicate records into one survivor.
type Merger struct {
	timestampField string
	log            ChangeLog
}

// NewMerger creates a merger ordering records by timestampField.
func NewMerger(timestampField string, log ChangeLog) *Merger {
	if log == nil {
		log = NopChangeLog()
	}
	return &Merger{timestampField: timestampField, log: log}
}

// Merge consolidates bucket into its oldest record and returns it.
// The survivor is mutated in place: walking the records oldest to newest,
// a field it lacks is added and a field holding a different value is
// overwritten. A null never replaces a non-null value.
// A single-record bucket is returned unchanged without logging.
func (m *Merger) Merge(bucket []*record.Record, key string) MergeResult {
	if len(bucket) == 0 {
		return MergeResult{Key: key}
	}

	ordered := SortByTimestamp(bucket, m.timestampField)
	survivor := ordered[0]
	res := MergeResult{
		Record: survivor,
		Key:    key,
		Value:  survivor.Key(key).String(),
		Size:   len(bucket),
		Oldest: survivor.Timestamp(m.timestampField).String(),
	}
	if len(bucket) == 1 {
		return res
	}

	m.log.Record("merging duplicate group",
		zap.Int("size", res.Size),
		zap.String("key", key),
		zap.String("value", res.Value),
		zap.String("oldest", res.Oldest),
	)
	if n := undated(bucket, m.timestampField); n > 0 {
		m.log.Record("records without a usable timestamp ordered after dated records",
			zap.String("key", key),
			zap.String("value", res.Value),
			zap.String("field", m.timestampField),
			zap.Int("count", n),
		)
	}

	for _, rec := range ordered {
		source := rec.Timestamp(m.timestampField).String()
		for _, field := range rec.Fields() {
			val, _ := rec.Get(field)
			cur, present := survivor.Get(field)

			var kind ChangeKind
			switch {
			case !present:
				kind = ChangeAdded
			case val == nil && cur != nil:
				continue
			case !record.SameValue(cur, val):
				kind = ChangeUpdated
			default:
				continue
			}

			survivor.Set(field, val)
			change := FieldChange{Field: field, Kind: kind, Value: val, Source: source}
			if present {
				change.Previous = cur
			}
			res.Changes = append(res.Changes, change)

			m.log.Record("field "+string(kind),
				zap.String("key", key),
				zap.String("value", res.Value),
				zap.String("field", field),
				zap.Any("previous", change.Previous),
				zap.Any("new", val),
				zap.String("source", source),
			)
		}
	}

	return res
}

// SortByTimestamp returns a copy of records ordered oldest first.
// Records with a parseable timestamp come first, compared as instants.
// Records whose timestamp does not parse follow, compared by raw text, and
// records without the field come last. Ties keep input order.
func SortByTimestamp(records []*record.Record, field string) []*record.Record {
	out := make([]*record.Record, len(records))
	copy(out, records)

	stamps := make(map[*record.Record]record.Timestamp, len(out))
	for _, r := range out {
		stamps[r] = r.Timestamp(field)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := stamps[out[i]], stamps[out[j]]
		if ra, rb := timestampRank(a), timestampRank(b); ra != rb {
			return ra < rb
		}
		switch {
		case a.Valid:
			return a.Time.Before(b.Time)
		case a.Present:
			return a.String() < b.String()
		default:
			return false
		}
	})
	return out
}

// undated counts records whose timestamp is missing or does not parse.
func undated(records []*record.Record, field string) int {
	n := 0
	for _, r := range records {
		if !r.Timestamp(field).Valid {
			n++
		}
	}
	return n
}

func timestampRank(ts record.Timestamp) int {
	switch {
	case ts.Valid:
		return 0
	case ts.Present:
		return 1
	default:
		return 2
	}
}
