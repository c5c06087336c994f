package dedupe

import (
	"errors"
	"fmt"

	"lead-consolidator/core/record"

	"go.uber.org/zap"
)

// ErrNilRecord indicates a nil record was passed to Resolve.
var ErrNilRecord = errors.New("nil record")

// Consolidator merges duplicate records until no identifying key repeats.
type Consolidator struct {
	opts   Options
	merger *Merger
	log    ChangeLog
}

// New validates opts and creates a consolidator writing merge decisions to log.
func New(opts Options, log ChangeLog) (*Consolidator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = NopChangeLog()
	}
	keys := make([]string, len(opts.Keys))
	copy(keys, opts.Keys)
	opts.Keys = keys

	return &Consolidator{
		opts:   opts,
		merger: NewMerger(opts.TimestampField, log),
		log:    log,
	}, nil
}

// Options returns the options the consolidator runs with.
func (c *Consolidator) Options() Options {
	return c.opts
}

// Resolve runs consolidation passes until no key value is shared by two
// records. Records are mutated in place. If duplicates remain after
// MaxPasses passes a *ConvergenceError is returned.
func (c *Consolidator) Resolve(records []*record.Record) (*Result, error) {
	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("record %d: %w", i, ErrNilRecord)
		}
	}

	result := &Result{Summary: Summary{InputRecords: len(records)}}
	current := records

	var remaining []Duplicate
	for pass := 1; pass <= c.opts.MaxPasses; pass++ {
		out, groups := c.pass(current)
		remaining = FindDuplicates(out, c.opts.Keys, c.opts.SkipMissing)

		result.Passes = append(result.Passes, PassSummary{
			Pass:      pass,
			Input:     len(current),
			Output:    len(out),
			Groups:    groups,
			Remaining: remaining,
		})
		result.Summary.Passes = pass
		result.Summary.Groups += len(groups)
		for _, g := range groups {
			result.Summary.FieldChanges += len(g.Changes)
		}
		current = out

		if len(remaining) == 0 {
			result.Records = current
			result.Summary.OutputRecords = len(current)
			result.Summary.Absorbed = len(records) - len(current)
			return result, nil
		}

		c.log.Record("duplicates remain, running another pass",
			zap.Int("pass", pass),
			zap.Int("records", len(current)),
			zap.Int("duplicates", len(remaining)),
		)
	}

	return nil, &ConvergenceError{Passes: c.opts.MaxPasses, Remaining: remaining}
}

// pendingGroup is a duplicate bucket claimed during a pass.
type pendingGroup struct {
	key     string
	members []*record.Record
	merged  bool
}

// pass claims every record for at most one duplicate group, trying keys in
// order, then merges the groups. A survivor takes the position of its
// group's first member; unclaimed records keep theirs.
func (c *Consolidator) pass(records []*record.Record) ([]*record.Record, []MergeResult) {
	groupOf := make(map[*record.Record]*pendingGroup)
	unclaimed := records

	for _, key := range c.opts.Keys {
		ix := BuildIndex(unclaimed, key)
		claimed := false
		for _, b := range ix.Duplicates() {
			if b.Value.Missing() {
				if c.opts.SkipMissing {
					continue
				}
				c.log.Record("records missing identifying key grouped together",
					zap.String("key", key),
					zap.Int("size", len(b.Records)),
				)
			}
			g := &pendingGroup{key: key, members: b.Records}
			for _, r := range b.Records {
				groupOf[r] = g
			}
			claimed = true
		}
		if !claimed {
			continue
		}
		next := make([]*record.Record, 0, len(unclaimed))
		for _, r := range unclaimed {
			if _, ok := groupOf[r]; !ok {
				next = append(next, r)
			}
		}
		unclaimed = next
	}

	if len(groupOf) == 0 {
		return records, nil
	}

	out := make([]*record.Record, 0, len(records))
	var merged []MergeResult
	for _, r := range records {
		g, ok := groupOf[r]
		if !ok {
			out = append(out, r)
			continue
		}
		if g.merged {
			continue
		}
		g.merged = true
		res := c.merger.Merge(g.members, g.key)
		out = append(out, res.Record)
		merged = append(merged, res)
	}
	return out, merged
}

// Resolve consolidates records on the given keys with default options.
// An empty keys slice uses DefaultKeys.
func Resolve(records []*record.Record, keys []string, log ChangeLog) ([]*record.Record, error) {
	opts := DefaultOptions()
	if len(keys) > 0 {
		opts.Keys = keys
	}
	c, err := New(opts, log)
	if err != nil {
		return nil, err
	}
	res, err := c.Resolve(records)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}
