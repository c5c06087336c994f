// Package dedupe consolidates lead records that describe the same person.
//
// Records are matched on one or more identifying keys (by default "_id"
// and "email"). Records sharing a key value form a duplicate group; each
// group is merged into a single survivor, and the whole set is checked again
// until no key has a repeated value.
//
// # Architecture
//
// The package consists of three components:
//
// 1. Index: for one key, maps each value to the bucket of records holding it,
// in first-seen order. Every key gets its own independent partition of the
// same records.
//
// 2. Merger: folds one bucket into its oldest record. Records are sorted by
// the timestamp field and applied oldest to newest; a field that is absent is
// added and a field that differs is overwritten, so the newest non-null value
// of every field survives.
//
// 3. Consolidator: runs bounded passes. Each pass claims every record for at
// most one duplicate group (keys are tried in configured order), merges the
// groups, then scans the result for values that still repeat. Remaining
// duplicates start another pass; running out of passes is reported as a
// *ConvergenceError.
//
// # Change Log
//
// Every merge decision is written to an injected ChangeLog: one entry per
// merged group and one per field that was added or overwritten. Use
// ZapChangeLog to back it with a zap logger, or NopChangeLog to discard it.
//
// # Known Limitation
//
// A record that lacks an identifying key is placed in a shared "missing"
// bucket for that key, so two records without an email are treated as
// duplicates of each other. Set Options.SkipMissing to exclude such records
// from that key's detection instead.
//
// # Usage Example
//
//	c, err := dedupe.New(dedupe.DefaultOptions(), dedupe.ZapChangeLog(log))
//	if err != nil {
//	    return err
//	}
//	result, err := c.Resolve(records)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Summary.OutputRecords)
package dedupe
